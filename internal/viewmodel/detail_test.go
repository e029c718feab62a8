package viewmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimpilot/internal/gateway"
	"claimpilot/internal/models"
)

type fakeAPI struct {
	claims     map[int64]models.Claim
	list       []models.Claim
	getErr     error
	updateErr  error
	assignErr  error
	updates    []gateway.ClaimPatch
	updateResp *models.Claim
	// onUpdate runs while the update is "in flight", before it resolves
	onUpdate func()
}

func (f *fakeAPI) ListClaims(ctx context.Context, token string) ([]models.Claim, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.list, nil
}

func (f *fakeAPI) GetClaim(ctx context.Context, token string, id int64) (*models.Claim, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.claims[id]
	if !ok {
		return nil, gateway.ErrNotFound
	}
	return &c, nil
}

func (f *fakeAPI) UpdateClaim(ctx context.Context, token string, id int64, patch gateway.ClaimPatch) (*models.Claim, error) {
	f.updates = append(f.updates, patch)
	if f.onUpdate != nil {
		f.onUpdate()
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateResp != nil {
		return f.updateResp, nil
	}
	c := f.claims[id]
	if s, ok := patch["status"].(string); ok {
		c.Status = models.ClaimStatus(s)
	}
	return &c, nil
}

func (f *fakeAPI) AssignAdjuster(ctx context.Context, token string, claimID, adjusterID int64) (*models.Claim, error) {
	if f.assignErr != nil {
		return nil, f.assignErr
	}
	c := f.claims[claimID]
	if adjusterID == gateway.UnassignedAdjuster {
		c.Adjuster = nil
	} else {
		c.Adjuster = &models.Adjuster{ID: adjusterID, FirstName: "Alex", LastName: "Park"}
	}
	return &c, nil
}

func storedClaim() models.Claim {
	report := "PR-100"
	cost := 1200.0
	return models.Claim{
		ID:                  5,
		ClaimNumber:         "CLM-2024-0042",
		ClaimType:           models.TypeCollision,
		Status:              models.StatusSubmitted,
		ClaimDate:           "2024-02-01",
		DateOfAccident:      "2024-01-28",
		AccidentDescription: "Rear-ended at an intersection.",
		PoliceReportNumber:  &report,
		EstimatedRepairCost: &cost,
	}
}

func readyDetail(t *testing.T, api *fakeAPI) *ClaimDetail {
	t.Helper()
	vm := NewClaimDetail(api, "tok", 5)
	vm.Load(context.Background())
	require.Equal(t, LoadReady, vm.State())
	return vm
}

func TestDetailLoad_InitializesDraftFromServer(t *testing.T) {
	api := &fakeAPI{claims: map[int64]models.Claim{5: storedClaim()}}
	vm := readyDetail(t, api)

	assert.Equal(t, ModeView, vm.Mode())
	assert.Equal(t, "CLM-2024-0042", vm.Claim().ClaimNumber)
	assert.Equal(t, "PR-100", vm.Field("policeReportNumber"))
	// wire null maps to the empty sentinel for form binding
	assert.Equal(t, "", vm.Field("damageDescription"))
	assert.Equal(t, "1200", vm.Field("estimatedRepairCost"))
}

func TestDetailLoad_Failure(t *testing.T) {
	api := &fakeAPI{claims: map[int64]models.Claim{}}
	vm := NewClaimDetail(api, "tok", 99)
	vm.Load(context.Background())
	assert.Equal(t, LoadFailed, vm.State())
	assert.NotEmpty(t, vm.FailReason())
}

func TestDetailErr_ExposesGatewaySentinel(t *testing.T) {
	api := &fakeAPI{getErr: gateway.ErrUnauthorized}
	vm := NewClaimDetail(api, "stale", 5)
	vm.Load(context.Background())

	assert.Equal(t, LoadFailed, vm.State())
	assert.ErrorIs(t, vm.Err(), gateway.ErrUnauthorized)

	// a later success clears it
	api.getErr = nil
	api.claims = map[int64]models.Claim{5: storedClaim()}
	vm.Load(context.Background())
	assert.NoError(t, vm.Err())
}

func TestDetailErr_SetOnSubmitFailure(t *testing.T) {
	api := &fakeAPI{claims: map[int64]models.Claim{5: storedClaim()}, updateErr: gateway.ErrUnauthorized}
	vm := readyDetail(t, api)
	vm.BeginEdit()

	require.False(t, vm.Submit(context.Background()))
	assert.ErrorIs(t, vm.Err(), gateway.ErrUnauthorized)
}

func TestDetailEditCancel_DraftMatchesServer(t *testing.T) {
	api := &fakeAPI{claims: map[int64]models.Claim{5: storedClaim()}}
	vm := readyDetail(t, api)

	vm.BeginEdit()
	require.Equal(t, ModeEdit, vm.Mode())
	vm.SetField("accidentDescription", "changed my mind")
	vm.Cancel()

	assert.Equal(t, ModeView, vm.Mode())
	assert.Equal(t, draftFrom(vm.Claim()), vm.Draft())
	// no network traffic from edit/cancel
	assert.Empty(t, api.updates)
}

func TestDetailSubmit_InvalidDraftNeverReachesGateway(t *testing.T) {
	api := &fakeAPI{claims: map[int64]models.Claim{5: storedClaim()}}
	vm := readyDetail(t, api)

	vm.BeginEdit()
	vm.SetField("accidentDescription", "")
	require.False(t, vm.Submit(context.Background()))

	assert.Equal(t, ModeEdit, vm.Mode())
	assert.Contains(t, vm.Errors(), "accidentDescription")
	assert.Empty(t, api.updates)
}

func TestDetailSubmit_SuccessReconcilesFromResponse(t *testing.T) {
	updated := storedClaim()
	updated.Status = models.StatusInReview
	updated.PoliceReportNumber = nil
	api := &fakeAPI{claims: map[int64]models.Claim{5: storedClaim()}, updateResp: &updated}
	vm := readyDetail(t, api)

	vm.BeginEdit()
	vm.SetField("status", "IN_REVIEW")
	vm.SetField("policeReportNumber", "")
	require.True(t, vm.Submit(context.Background()))

	assert.Equal(t, ModeView, vm.Mode())
	// serverClaim replaced by the gateway response, not the local draft
	assert.Equal(t, models.StatusInReview, vm.Claim().Status)
	assert.Nil(t, vm.Claim().PoliceReportNumber)

	require.Len(t, api.updates, 1)
	patch := api.updates[0]
	assert.Equal(t, "IN_REVIEW", patch["status"])
	// empty sentinel serialized back to explicit null
	require.Contains(t, patch, "policeReportNumber")
	assert.Nil(t, patch["policeReportNumber"])
}

func TestDetailSubmit_FailureKeepsDraft(t *testing.T) {
	api := &fakeAPI{
		claims:    map[int64]models.Claim{5: storedClaim()},
		updateErr: &gateway.RejectionError{Status: 409, Detail: "transition not allowed"},
	}
	vm := readyDetail(t, api)

	vm.BeginEdit()
	vm.SetField("status", "PAID")
	vm.SetField("damageDescription", "bumper, tail light")
	require.False(t, vm.Submit(context.Background()))

	assert.Equal(t, ModeEdit, vm.Mode())
	assert.Equal(t, "transition not allowed", vm.SubmitError())
	// user input survives the failure
	assert.Equal(t, "PAID", vm.Field("status"))
	assert.Equal(t, "bumper, tail light", vm.Field("damageDescription"))
	// server copy untouched
	assert.Equal(t, models.StatusSubmitted, vm.Claim().Status)
}

func TestDetailClose_DropsStaleResponse(t *testing.T) {
	api := &fakeAPI{claims: map[int64]models.Claim{5: storedClaim()}}
	vm := readyDetail(t, api)

	vm.BeginEdit()
	vm.SetField("status", "IN_REVIEW")
	// the view navigates away while the update is in flight
	api.onUpdate = vm.Close
	assert.False(t, vm.Submit(context.Background()))
	// the resolved response must not land
	assert.Equal(t, models.StatusSubmitted, vm.Claim().Status)
	assert.Equal(t, ModeEdit, vm.Mode())
}
