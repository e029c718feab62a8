// Package viewmodel implements the fetch -> local state -> edit -> validate
// -> submit -> reconcile cycle shared by every page. A view-model instance
// belongs to a single goroutine; it is not safe for concurrent use.
package viewmodel

import (
	"context"

	"claimpilot/internal/gateway"
	"claimpilot/internal/models"
	"claimpilot/internal/validate"
)

type LoadState int

const (
	LoadPending LoadState = iota
	LoadReady
	LoadFailed
)

type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

// DetailAPI is the slice of the gateway the detail view-model needs.
type DetailAPI interface {
	GetClaim(ctx context.Context, token string, id int64) (*models.Claim, error)
	UpdateClaim(ctx context.Context, token string, id int64, patch gateway.ClaimPatch) (*models.Claim, error)
}

// ClaimDetail holds one claim's server-confirmed state plus an in-progress
// draft. The server copy is only ever replaced by a gateway response, so
// view mode always shows server-confirmed truth.
type ClaimDetail struct {
	api   DetailAPI
	token string
	id    int64

	state      LoadState
	failReason string
	mode       Mode
	server     *models.Claim
	draft      map[string]string
	fieldErrs  validate.Errors
	submitErr  string
	lastErr    error

	// gen guards against a response landing after the view went away:
	// Close or a re-Load bumps it, and a resolved call with a stale
	// generation is dropped.
	gen int
}

func NewClaimDetail(api DetailAPI, token string, id int64) *ClaimDetail {
	return &ClaimDetail{api: api, token: token, id: id, draft: map[string]string{}}
}

// Load fetches the claim and initializes the draft from it.
func (d *ClaimDetail) Load(ctx context.Context) {
	d.gen++
	gen := d.gen
	d.state = LoadPending
	claim, err := d.api.GetClaim(ctx, d.token, d.id)
	if gen != d.gen {
		return
	}
	if err != nil {
		d.state = LoadFailed
		d.failReason = err.Error()
		d.lastErr = err
		return
	}
	d.lastErr = nil
	d.server = claim
	d.draft = draftFrom(claim)
	d.state = LoadReady
	d.mode = ModeView
}

// Close marks the view-model dead; any in-flight result is discarded.
func (d *ClaimDetail) Close() { d.gen++ }

func (d *ClaimDetail) State() LoadState { return d.state }

func (d *ClaimDetail) Ready() bool { return d.state == LoadReady }

func (d *ClaimDetail) Failed() bool { return d.state == LoadFailed }

func (d *ClaimDetail) Editing() bool { return d.mode == ModeEdit }

func (d *ClaimDetail) FailReason() string { return d.failReason }

func (d *ClaimDetail) Mode() Mode { return d.mode }

func (d *ClaimDetail) Claim() *models.Claim { return d.server }

func (d *ClaimDetail) Draft() map[string]string { return d.draft }

func (d *ClaimDetail) Field(name string) string { return d.draft[name] }

func (d *ClaimDetail) Errors() validate.Errors { return d.fieldErrs }

func (d *ClaimDetail) SubmitError() string { return d.submitErr }

// Err is the gateway error behind the most recent load or submit failure,
// nil after a success. Callers branch on its sentinels.
func (d *ClaimDetail) Err() error { return d.lastErr }

// BeginEdit copies the server state into the draft verbatim. No network.
func (d *ClaimDetail) BeginEdit() {
	if d.server == nil {
		return
	}
	d.draft = draftFrom(d.server)
	d.mode = ModeEdit
	d.fieldErrs = nil
	d.submitErr = ""
}

// SetField records an edit in the draft only; the server copy is untouched
// until Submit succeeds.
func (d *ClaimDetail) SetField(name, value string) {
	d.draft[name] = value
}

// SetFields applies a whole form post to the draft.
func (d *ClaimDetail) SetFields(values map[string]string) {
	for k, v := range values {
		d.draft[k] = v
	}
}

// Cancel discards the draft and returns to view mode.
func (d *ClaimDetail) Cancel() {
	if d.server != nil {
		d.draft = draftFrom(d.server)
	}
	d.mode = ModeView
	d.fieldErrs = nil
	d.submitErr = ""
}

// Submit validates the draft and, when clean, pushes it to the backend. On
// success the server response replaces the local copy and the view-model
// returns to view mode; on any failure it stays in edit mode with the draft
// intact. Reports whether the update was confirmed.
func (d *ClaimDetail) Submit(ctx context.Context) bool {
	if d.server == nil {
		return false
	}
	normalized, errs := validate.ClaimEdit().Validate(d.draft)
	if !errs.Valid() {
		d.fieldErrs = errs
		return false
	}
	d.fieldErrs = nil
	d.submitErr = ""
	d.lastErr = nil
	gen := d.gen
	updated, err := d.api.UpdateClaim(ctx, d.token, d.id, editPatch(d.id, normalized))
	if gen != d.gen {
		return false
	}
	if err != nil {
		d.submitErr = err.Error()
		d.lastErr = err
		return false
	}
	d.server = updated
	d.draft = draftFrom(updated)
	d.mode = ModeView
	return true
}
