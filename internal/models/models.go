package models

// ClaimStatus is the backend's closed status set. The server is the sole
// authority on transition legality; the client renders whatever it returns.
type ClaimStatus string

const (
	StatusSubmitted          ClaimStatus = "SUBMITTED"
	StatusInReview           ClaimStatus = "IN_REVIEW"
	StatusApproved           ClaimStatus = "APPROVED"
	StatusRejected           ClaimStatus = "REJECTED"
	StatusPendingInfo        ClaimStatus = "PENDING_INFO"
	StatusUnderInvestigation ClaimStatus = "UNDER_INVESTIGATION"
	StatusPaid               ClaimStatus = "PAID"
	StatusClosed             ClaimStatus = "CLOSED"
	StatusCancelled          ClaimStatus = "CANCELLED"
)

type ClaimType string

const (
	TypeCollision ClaimType = "COLLISION"
	TypeTheft     ClaimType = "THEFT"
	TypeVandalism ClaimType = "VANDALISM"
	TypeDisaster  ClaimType = "DISASTER"
)

// ClaimStatuses returns every status in dropdown order.
func ClaimStatuses() []ClaimStatus {
	return []ClaimStatus{
		StatusSubmitted, StatusInReview, StatusApproved, StatusRejected,
		StatusPendingInfo, StatusUnderInvestigation, StatusPaid,
		StatusClosed, StatusCancelled,
	}
}

func ClaimTypes() []ClaimType {
	return []ClaimType{TypeCollision, TypeTheft, TypeVandalism, TypeDisaster}
}

type PolicyHolder struct {
	ID                  int64   `json:"id"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	Address             string  `json:"address"`
	City                string  `json:"city"`
	Province            string  `json:"province"`
	PostalCode          string  `json:"postalCode"`
	DriverLicenseNumber string  `json:"driverLicenseNumber"`
	VehicleVIN          *string `json:"vehicleVIN"`
}

// Adjuster is a staff identity that may own a claim's review.
type Adjuster struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (a Adjuster) DisplayName() string {
	return a.FirstName + " " + a.LastName
}

// Claim mirrors the backend's claim record. Dates travel as ISO strings
// (YYYY-MM-DD); nil pointers mean the backend reported null.
type Claim struct {
	ID                    int64        `json:"id"`
	ClaimNumber           string       `json:"claimNumber"`
	ClaimType             ClaimType    `json:"claimType"`
	Status                ClaimStatus  `json:"status"`
	ClaimDate             string       `json:"claimDate"`
	DateOfAccident        string       `json:"dateOfAccident"`
	AccidentDescription   string       `json:"accidentDescription"`
	PoliceReportNumber    *string      `json:"policeReportNumber"`
	LocationOfAccident    *string      `json:"locationOfAccident"`
	DamageDescription     *string      `json:"damageDescription"`
	EstimatedRepairCost   *float64     `json:"estimatedRepairCost"`
	FinalSettlementAmount *float64     `json:"finalSettlementAmount"`
	PolicyHolder          PolicyHolder `json:"policyHolder"`
	Adjuster              *Adjuster    `json:"adjuster"`
}

// AuditUser is the acting user recorded on an audit entry.
type AuditUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// AuditEntry is server-owned and append-only; the client never writes one.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp string    `json:"timestamp"`
	User      AuditUser `json:"user"`
}

// Identity is the authenticated user reported by the backend.
type Identity struct {
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

const (
	RoleAdmin    = "ADMIN"
	RoleAdjuster = "ADJUSTER"
)
