package gateway

import "claimpilot/internal/models"

// NewPolicyHolder is the policyholder block embedded in a claim submission.
// Optional pointers serialize as explicit null, matching the backend's
// contract for absent values.
type NewPolicyHolder struct {
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

// NewClaim is the create payload. ClaimDate is set to today by the caller
// and Status to SUBMITTED; the server re-asserts both.
type NewClaim struct {
	ClaimType           models.ClaimType   `json:"claimType"`
	Status              models.ClaimStatus `json:"status"`
	ClaimDate           string             `json:"claimDate"`
	DateOfAccident      string             `json:"dateOfAccident"`
	AccidentDescription string             `json:"accidentDescription"`
	PoliceReportNumber  *string            `json:"policeReportNumber"`
	LocationOfAccident  *string            `json:"locationOfAccident"`
	DamageDescription   *string            `json:"damageDescription"`
	EstimatedRepairCost *float64           `json:"estimatedRepairCost"`
	PolicyHolder        NewPolicyHolder    `json:"policyHolder"`
}

// ClaimPatch is a full or partial update body. Keys absent from the map are
// left untouched by the backend; a key with a nil value clears the field.
type ClaimPatch map[string]any
