package handlers

import (
	"net/http"
	"time"

	"claimpilot/internal/gateway"
	"claimpilot/internal/models"
	"claimpilot/internal/validate"
)

func Home(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env.Renderer.render(w, r, http.StatusOK, "home.html", "ClaimPilot", nil)
	}
}

var submitClaimFields = []string{
	"firstName", "lastName", "email", "phone", "address", "city", "province",
	"postalCode", "driverLicenseNumber", "vehicleVIN", "claimType",
	"dateOfAccident", "accidentDescription", "policeReportNumber",
	"locationOfAccident", "damageDescription", "estimatedRepairCost",
}

type submitClaimPage struct {
	Values map[string]string
	Errors validate.Errors
	Error  string
	Claim  *models.Claim
}

func SubmitClaimForm(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env.Renderer.render(w, r, http.StatusOK, "submit_claim.html", "Submit a New Claim",
			submitClaimPage{Values: map[string]string{}})
	}
}

// SubmitClaim validates the submission and creates the claim. The claim
// date is today, set at submission time; the server assigns everything else.
func SubmitClaim(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		values := formValues(r, submitClaimFields...)
		normalized, errs := validate.SubmitClaim().Validate(values)
		if !errs.Valid() {
			env.Renderer.render(w, r, http.StatusUnprocessableEntity, "submit_claim.html", "Submit a New Claim",
				submitClaimPage{Values: values, Errors: errs})
			return
		}
		payload := gateway.NewClaim{
			ClaimType:           models.ClaimType(normalized["claimType"]),
			Status:              models.StatusSubmitted,
			ClaimDate:           time.Now().Format("2006-01-02"),
			DateOfAccident:      normalized["dateOfAccident"],
			AccidentDescription: normalized["accidentDescription"],
			PoliceReportNumber:  models.StrOpt(normalized["policeReportNumber"]),
			LocationOfAccident:  models.StrOpt(normalized["locationOfAccident"]),
			DamageDescription:   models.StrOpt(normalized["damageDescription"]),
			EstimatedRepairCost: models.MoneyOpt(normalized["estimatedRepairCost"]),
			PolicyHolder: gateway.NewPolicyHolder{
				FirstName:           normalized["firstName"],
				LastName:            normalized["lastName"],
				Email:               models.StrOpt(normalized["email"]),
				Phone:               models.StrOpt(normalized["phone"]),
				Address:             normalized["address"],
				City:                normalized["city"],
				Province:            normalized["province"],
				PostalCode:          normalized["postalCode"],
				DriverLicenseNumber: normalized["driverLicenseNumber"],
				VehicleVIN:          models.StrOpt(normalized["vehicleVIN"]),
			},
		}
		claim, err := env.Gateway.CreateClaim(r.Context(), payload)
		if err != nil {
			env.Renderer.render(w, r, http.StatusBadGateway, "submit_claim.html", "Submit a New Claim",
				submitClaimPage{Values: values, Error: err.Error()})
			return
		}
		env.Renderer.render(w, r, http.StatusOK, "submit_claim.html", "Claim Submitted",
			submitClaimPage{Values: map[string]string{}, Claim: claim})
	}
}

type trackClaimPage struct {
	Values map[string]string
	Errors validate.Errors
	Status string
	Error  string
}

func TrackClaimForm(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env.Renderer.render(w, r, http.StatusOK, "track_claim.html", "Track Your Claim",
			trackClaimPage{Values: map[string]string{}})
	}
}

// TrackClaim is the public status lookup. The backend's plain-text answer
// is rendered as-is; so is its rejection detail.
func TrackClaim(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		values := formValues(r, "claimNumber", "email", "firstName", "lastName")
		normalized, errs := validate.TrackClaim().Validate(values)
		if !errs.Valid() {
			env.Renderer.render(w, r, http.StatusUnprocessableEntity, "track_claim.html", "Track Your Claim",
				trackClaimPage{Values: values, Errors: errs})
			return
		}
		status, err := env.Gateway.LookupStatus(r.Context(), gateway.StatusCriteria{
			ClaimNumber: normalized["claimNumber"],
			Email:       normalized["email"],
			FirstName:   normalized["firstName"],
			LastName:    normalized["lastName"],
		})
		if err != nil {
			env.Renderer.render(w, r, http.StatusOK, "track_claim.html", "Track Your Claim",
				trackClaimPage{Values: values, Error: err.Error()})
			return
		}
		env.Renderer.render(w, r, http.StatusOK, "track_claim.html", "Track Your Claim",
			trackClaimPage{Values: values, Status: "Claim Status: " + status})
	}
}
