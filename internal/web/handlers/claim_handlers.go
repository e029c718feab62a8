package handlers

import (
	"fmt"
	"net/http"

	"claimpilot/internal/models"
	"claimpilot/internal/session"
	"claimpilot/internal/viewmodel"
)

var claimEditFields = []string{
	"claimType", "status", "claimDate", "dateOfAccident",
	"accidentDescription", "policeReportNumber", "locationOfAccident",
	"damageDescription", "estimatedRepairCost", "finalSettlementAmount",
}

type claimDetailPage struct {
	VM *viewmodel.ClaimDetail
}

// ClaimDetail renders one claim in view or edit mode. Edit mode is entered
// with ?mode=edit and never touches the network.
func ClaimDetail(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := claimID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		vm := viewmodel.NewClaimDetail(env.Gateway, session.Token(r.Context()), id)
		vm.Load(r.Context())
		if sessionExpired(env, w, r, vm.Err()) {
			return
		}
		if vm.State() == viewmodel.LoadReady && r.URL.Query().Get("mode") == "edit" {
			vm.BeginEdit()
		}
		env.Renderer.render(w, r, http.StatusOK, "claim_detail.html", "Claim Details", claimDetailPage{VM: vm})
	}
}

// ClaimUpdate handles the detail edit form: save submits the draft through
// the view-model, cancel discards it. A failed save re-renders edit mode
// with the draft and errors intact.
func ClaimUpdate(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := claimID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		vm := viewmodel.NewClaimDetail(env.Gateway, session.Token(r.Context()), id)
		vm.Load(r.Context())
		if sessionExpired(env, w, r, vm.Err()) {
			return
		}
		if vm.State() != viewmodel.LoadReady {
			env.Renderer.render(w, r, http.StatusOK, "claim_detail.html", "Claim Details", claimDetailPage{VM: vm})
			return
		}
		if r.PostFormValue("action") == "cancel" {
			vm.Cancel()
			http.Redirect(w, r, fmt.Sprintf("/claims/%d", id), http.StatusFound)
			return
		}
		vm.BeginEdit()
		vm.SetFields(formValues(r, claimEditFields...))
		if vm.Submit(r.Context()) {
			http.Redirect(w, r, fmt.Sprintf("/claims/%d", id), http.StatusFound)
			return
		}
		if sessionExpired(env, w, r, vm.Err()) {
			return
		}
		env.Renderer.render(w, r, http.StatusUnprocessableEntity, "claim_detail.html", "Claim Details", claimDetailPage{VM: vm})
	}
}

type auditPage struct {
	ClaimID int64
	Entries []models.AuditEntry
	Error   string
}

// ClaimAudit lists the server-owned audit trail in the order the backend
// returns it.
func ClaimAudit(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := claimID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		entries, err := env.Gateway.AuditTrail(r.Context(), session.Token(r.Context()), id)
		if sessionExpired(env, w, r, err) {
			return
		}
		data := auditPage{ClaimID: id, Entries: entries}
		if err != nil {
			data.Error = err.Error()
		}
		env.Renderer.render(w, r, http.StatusOK, "audit.html", "Audit Trail", data)
	}
}
