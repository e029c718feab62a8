package validate

import "claimpilot/internal/models"

func statusValues() []string {
	out := make([]string, 0, len(models.ClaimStatuses()))
	for _, s := range models.ClaimStatuses() {
		out = append(out, string(s))
	}
	return out
}

func typeValues() []string {
	out := make([]string, 0, len(models.ClaimTypes()))
	for _, t := range models.ClaimTypes() {
		out = append(out, string(t))
	}
	return out
}

// SubmitClaim covers the public submission form: the policyholder block
// followed by the claim block.
func SubmitClaim() Schema {
	return Schema{Fields: []Field{
		{Name: "firstName", Rules: []Rule{Required("First name")}},
		{Name: "lastName", Rules: []Rule{Required("Last name")}},
		{Name: "email", Rules: []Rule{Email}},
		{Name: "phone", Rules: []Rule{Phone}},
		{Name: "address", Rules: []Rule{Required("Address")}},
		{Name: "city", Rules: []Rule{Required("City")}},
		{Name: "province", Rules: []Rule{Required("Province")}},
		{Name: "postalCode", Rules: []Rule{Required("Postal code"), PostalCode}},
		{Name: "driverLicenseNumber", Rules: []Rule{Required("Driver license number")}},
		{Name: "vehicleVIN"},
		{Name: "claimType", Rules: []Rule{OneOf("Claim type", typeValues())}},
		{Name: "dateOfAccident", Rules: []Rule{Required("Date of accident"), ValidDate}},
		{Name: "accidentDescription", Rules: []Rule{Required("Accident description"), MaxLen(5000, "Description too long")}},
		{Name: "policeReportNumber"},
		{Name: "locationOfAccident"},
		{Name: "damageDescription"},
		{Name: "estimatedRepairCost", Rules: []Rule{NonNegative("Cost")}},
	}}
}

// ClaimEdit covers the edit form on the claim detail page. The policyholder
// block is not editable there.
func ClaimEdit() Schema {
	return Schema{Fields: []Field{
		{Name: "claimType", Rules: []Rule{OneOf("Claim type", typeValues())}},
		{Name: "status", Rules: []Rule{OneOf("Status", statusValues())}},
		{Name: "claimDate", Rules: []Rule{Required("Claim date"), ValidDate}},
		{Name: "dateOfAccident", Rules: []Rule{Required("Date of accident"), ValidDate}},
		{Name: "accidentDescription", Rules: []Rule{Required("Accident description"), MaxLen(5000, "Description too long")}},
		{Name: "policeReportNumber"},
		{Name: "locationOfAccident"},
		{Name: "damageDescription"},
		{Name: "estimatedRepairCost", Rules: []Rule{NonNegative("Estimated repair cost")}},
		{Name: "finalSettlementAmount", Rules: []Rule{NonNegative("Final settlement amount")}},
	}}
}

// StatusUpdate covers the inline per-row dashboard edit.
func StatusUpdate() Schema {
	return Schema{Fields: []Field{
		{Name: "status", Rules: []Rule{OneOf("Status", statusValues())}},
		{Name: "estimatedRepairCost", Rules: []Rule{NonNegative("Estimated amount")}},
		{Name: "finalSettlementAmount", Rules: []Rule{NonNegative("Final amount")}},
	}}
}

// AssignAdjuster covers the admin assignment control. Zero is the sentinel
// for "unassigned" and is a valid choice.
func AssignAdjuster() Schema {
	return Schema{Fields: []Field{
		{Name: "adjusterId", Rules: []Rule{Integer("Adjuster")}},
	}}
}

// TrackClaim is the public lookup: every field optional, but at least two
// of the four must be supplied.
func TrackClaim() Schema {
	return Schema{
		Fields: []Field{
			{Name: "claimNumber"},
			{Name: "email", Rules: []Rule{Email}},
			{Name: "firstName"},
			{Name: "lastName"},
		},
		Cross: []CrossRule{func(values map[string]string) string {
			filled := 0
			for _, k := range []string{"claimNumber", "email", "firstName", "lastName"} {
				if values[k] != "" {
					filled++
				}
			}
			if filled < 2 {
				return "Please provide at least two fields."
			}
			return ""
		}},
	}
}
