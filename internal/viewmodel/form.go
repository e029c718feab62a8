package viewmodel

import (
	"claimpilot/internal/gateway"
	"claimpilot/internal/models"
)

// draftFrom flattens a server claim into form values. Wire nulls become the
// empty-string sentinel here and nowhere else; editPatch is the inverse.
func draftFrom(c *models.Claim) map[string]string {
	return map[string]string{
		"claimNumber":           c.ClaimNumber,
		"claimType":             string(c.ClaimType),
		"status":                string(c.Status),
		"claimDate":             c.ClaimDate,
		"dateOfAccident":        c.DateOfAccident,
		"accidentDescription":   c.AccidentDescription,
		"policeReportNumber":    models.OptStr(c.PoliceReportNumber),
		"locationOfAccident":    models.OptStr(c.LocationOfAccident),
		"damageDescription":     models.OptStr(c.DamageDescription),
		"estimatedRepairCost":   models.OptMoney(c.EstimatedRepairCost),
		"finalSettlementAmount": models.OptMoney(c.FinalSettlementAmount),
	}
}

// editPatch serializes a validated detail draft. Empty sentinels go back to
// explicit nulls so the backend clears the field.
func editPatch(id int64, values map[string]string) gateway.ClaimPatch {
	return gateway.ClaimPatch{
		"id":                    id,
		"claimType":             values["claimType"],
		"status":                values["status"],
		"claimDate":             values["claimDate"],
		"dateOfAccident":        values["dateOfAccident"],
		"accidentDescription":   values["accidentDescription"],
		"policeReportNumber":    models.StrOpt(values["policeReportNumber"]),
		"locationOfAccident":    models.StrOpt(values["locationOfAccident"]),
		"damageDescription":     models.StrOpt(values["damageDescription"]),
		"estimatedRepairCost":   models.MoneyOpt(values["estimatedRepairCost"]),
		"finalSettlementAmount": models.MoneyOpt(values["finalSettlementAmount"]),
	}
}

// rowPatch serializes the inline dashboard edit: status and amounts only.
func rowPatch(values map[string]string) gateway.ClaimPatch {
	return gateway.ClaimPatch{
		"status":                values["status"],
		"estimatedRepairCost":   models.MoneyOpt(values["estimatedRepairCost"]),
		"finalSettlementAmount": models.MoneyOpt(values["finalSettlementAmount"]),
	}
}
