package handlers

import (
	"net/http"

	"claimpilot/internal/models"
	"claimpilot/internal/session"
	"claimpilot/internal/viewmodel"
)

type listPage struct {
	VM        *viewmodel.ClaimList
	Adjusters []models.Adjuster
	Admin     bool
}

func loadList(env *Env, r *http.Request) *viewmodel.ClaimList {
	vm := viewmodel.NewClaimList(env.Gateway, session.Token(r.Context()))
	vm.SetFilter(r.URL.Query().Get("status"))
	vm.Load(r.Context())
	return vm
}

var rowFields = []string{"status", "estimatedRepairCost", "finalSettlementAmount"}

func listTitle(admin bool) string {
	if admin {
		return "Admin Dashboard"
	}
	return "Dashboard"
}

// loadAdjusters fetches the assignment dropdown options, tolerating failure.
func loadAdjusters(env *Env, r *http.Request) ([]models.Adjuster, error) {
	adjusters, err := env.Gateway.ListAdjusters(r.Context(), session.Token(r.Context()))
	if err != nil {
		env.Lg.Warnw("adjuster list unavailable", "error", err)
	}
	return adjusters, err
}

func submitRow(env *Env, w http.ResponseWriter, r *http.Request, admin bool) {
	id, ok := claimID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	vm := loadList(env, r)
	vm.SetFilter(r.PostFormValue("filterStatus"))
	if vm.State() == viewmodel.LoadReady {
		for name, value := range formValues(r, rowFields...) {
			vm.SetRowField(id, name, value)
		}
		vm.SubmitRow(r.Context(), id)
	}
	if sessionExpired(env, w, r, vm.Err()) {
		return
	}
	data := listPage{VM: vm, Admin: admin}
	if admin {
		var err error
		data.Adjusters, err = loadAdjusters(env, r)
		if sessionExpired(env, w, r, err) {
			return
		}
	}
	env.Renderer.render(w, r, http.StatusOK, "dashboard.html", listTitle(admin), data)
}

// Dashboard is the adjuster list view with inline row updates.
func Dashboard(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vm := loadList(env, r)
		if sessionExpired(env, w, r, vm.Err()) {
			return
		}
		env.Renderer.render(w, r, http.StatusOK, "dashboard.html", listTitle(false),
			listPage{VM: vm})
	}
}

func DashboardRowUpdate(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submitRow(env, w, r, false)
	}
}

// Admin is the admin list view: filter, inline updates and adjuster
// assignment.
func Admin(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vm := loadList(env, r)
		if sessionExpired(env, w, r, vm.Err()) {
			return
		}
		adjusters, err := loadAdjusters(env, r)
		if sessionExpired(env, w, r, err) {
			return
		}
		env.Renderer.render(w, r, http.StatusOK, "dashboard.html", listTitle(true),
			listPage{VM: vm, Adjusters: adjusters, Admin: true})
	}
}

func AdminRowUpdate(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submitRow(env, w, r, true)
	}
}

// AdminAssign sets or clears a claim's adjuster from the admin table.
func AdminAssign(env *Env) http.HandlerFunc {
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
		vm := loadList(env, r)
		vm.SetFilter(r.PostFormValue("filterStatus"))
		if vm.State() == viewmodel.LoadReady {
			vm.AssignRow(r.Context(), id, r.PostFormValue("adjusterId"))
		}
		if sessionExpired(env, w, r, vm.Err()) {
			return
		}
		adjusters, err := loadAdjusters(env, r)
		if sessionExpired(env, w, r, err) {
			return
		}
		env.Renderer.render(w, r, http.StatusOK, "dashboard.html", listTitle(true),
			listPage{VM: vm, Adjusters: adjusters, Admin: true})
	}
}
