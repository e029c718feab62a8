package viewmodel

import (
	"context"
	"sort"
	"strconv"

	"claimpilot/internal/gateway"
	"claimpilot/internal/models"
	"claimpilot/internal/validate"
)

// FilterAll shows every status.
const FilterAll = "ALL"

// ListAPI is the slice of the gateway the list view-model needs.
type ListAPI interface {
	ListClaims(ctx context.Context, token string) ([]models.Claim, error)
	UpdateClaim(ctx context.Context, token string, id int64, patch gateway.ClaimPatch) (*models.Claim, error)
	AssignAdjuster(ctx context.Context, token string, claimID, adjusterID int64) (*models.Claim, error)
}

// RowEdit is one row's in-progress inline edit. Rows are independent; a
// failure on one row never touches another.
type RowEdit struct {
	Values  map[string]string
	Errors  validate.Errors
	Failure string
	Updated bool
}

// ClaimList holds the dashboard collection with client-side filtering,
// date-descending ordering and per-row inline mutation.
type ClaimList struct {
	api   ListAPI
	token string

	state      LoadState
	failReason string
	lastErr    error
	claims     []models.Claim
	filter     string
	rows       map[int64]*RowEdit
}

func NewClaimList(api ListAPI, token string) *ClaimList {
	return &ClaimList{api: api, token: token, filter: FilterAll, rows: map[int64]*RowEdit{}}
}

// Load populates the collection once; afterwards only per-row updates
// change it.
func (l *ClaimList) Load(ctx context.Context) {
	l.state = LoadPending
	claims, err := l.api.ListClaims(ctx, l.token)
	if err != nil {
		l.state = LoadFailed
		l.failReason = err.Error()
		l.lastErr = err
		return
	}
	l.lastErr = nil
	l.claims = claims
	l.state = LoadReady
}

func (l *ClaimList) State() LoadState { return l.state }

func (l *ClaimList) Ready() bool { return l.state == LoadReady }

func (l *ClaimList) Failed() bool { return l.state == LoadFailed }

func (l *ClaimList) FailReason() string { return l.failReason }

// Err is the gateway error behind the most recent load or row failure, nil
// after a success. Callers branch on its sentinels.
func (l *ClaimList) Err() error { return l.lastErr }

func (l *ClaimList) Filter() string { return l.filter }

func (l *ClaimList) SetFilter(status string) {
	if status == "" {
		status = FilterAll
	}
	l.filter = status
}

// Visible applies the status filter then orders by claim date descending.
// The sort is stable: equal dates keep the server's original order. ISO
// dates compare correctly as strings.
func (l *ClaimList) Visible() []models.Claim {
	out := make([]models.Claim, 0, len(l.claims))
	for _, c := range l.claims {
		if l.filter == FilterAll || string(c.Status) == l.filter {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ClaimDate > out[j].ClaimDate
	})
	return out
}

// Row returns the in-progress edit for a claim, seeding it from the stored
// row on first access.
func (l *ClaimList) Row(id int64) *RowEdit {
	if r, ok := l.rows[id]; ok {
		return r
	}
	r := &RowEdit{Values: map[string]string{}}
	for _, c := range l.claims {
		if c.ID == id {
			r.Values = map[string]string{
				"status":                string(c.Status),
				"estimatedRepairCost":   models.OptMoney(c.EstimatedRepairCost),
				"finalSettlementAmount": models.OptMoney(c.FinalSettlementAmount),
			}
			break
		}
	}
	l.rows[id] = r
	return r
}

func (l *ClaimList) SetRowField(id int64, name, value string) {
	l.Row(id).Values[name] = value
}

// replaceRow swaps in the server's post-update record for one claim and
// leaves every other row untouched.
func (l *ClaimList) replaceRow(updated *models.Claim) {
	for i := range l.claims {
		if l.claims[i].ID == updated.ID {
			l.claims[i] = *updated
			return
		}
	}
}

// SubmitRow validates and pushes one row's status/amount edit. On success
// the matching row is replaced by the server record and the edit is marked
// confirmed; on failure the stored row and the user's draft both survive.
func (l *ClaimList) SubmitRow(ctx context.Context, id int64) bool {
	row := l.Row(id)
	row.Updated = false
	row.Failure = ""
	normalized, errs := validate.StatusUpdate().Validate(row.Values)
	if !errs.Valid() {
		row.Errors = errs
		return false
	}
	row.Errors = nil
	l.lastErr = nil
	updated, err := l.api.UpdateClaim(ctx, l.token, id, rowPatch(normalized))
	if err != nil {
		row.Failure = err.Error()
		l.lastErr = err
		return false
	}
	l.replaceRow(updated)
	row.Values = map[string]string{
		"status":                string(updated.Status),
		"estimatedRepairCost":   models.OptMoney(updated.EstimatedRepairCost),
		"finalSettlementAmount": models.OptMoney(updated.FinalSettlementAmount),
	}
	row.Updated = true
	return true
}

// AssignRow sets or clears a claim's adjuster. adjusterID comes straight
// from the form; 0 is the unassigned sentinel.
func (l *ClaimList) AssignRow(ctx context.Context, id int64, adjusterID string) bool {
	row := l.Row(id)
	row.Updated = false
	row.Failure = ""
	_, errs := validate.AssignAdjuster().Validate(map[string]string{"adjusterId": adjusterID})
	if !errs.Valid() {
		row.Errors = errs
		return false
	}
	row.Errors = nil
	l.lastErr = nil
	aid, _ := strconv.ParseInt(adjusterID, 10, 64)
	updated, err := l.api.AssignAdjuster(ctx, l.token, id, aid)
	if err != nil {
		row.Failure = err.Error()
		l.lastErr = err
		return false
	}
	l.replaceRow(updated)
	row.Updated = true
	return true
}
