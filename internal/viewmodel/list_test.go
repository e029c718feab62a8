package viewmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimpilot/internal/gateway"
	"claimpilot/internal/models"
)

func listFixture() []models.Claim {
	return []models.Claim{
		{ID: 1, ClaimNumber: "CLM-001", Status: models.StatusSubmitted, ClaimDate: "2024-01-01"},
		{ID: 2, ClaimNumber: "CLM-002", Status: models.StatusApproved, ClaimDate: "2024-03-01"},
		{ID: 3, ClaimNumber: "CLM-003", Status: models.StatusSubmitted, ClaimDate: "2024-02-01"},
	}
}

func readyList(t *testing.T, api *fakeAPI) *ClaimList {
	t.Helper()
	vm := NewClaimList(api, "tok")
	vm.Load(context.Background())
	require.Equal(t, LoadReady, vm.State())
	return vm
}

func TestListFilterAndSort(t *testing.T) {
	api := &fakeAPI{list: listFixture()}
	vm := readyList(t, api)

	vm.SetFilter("SUBMITTED")
	visible := vm.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "2024-02-01", visible[0].ClaimDate)
	assert.Equal(t, "2024-01-01", visible[1].ClaimDate)

	vm.SetFilter(FilterAll)
	assert.Len(t, vm.Visible(), 3)
}

func TestListSortIsStableOnEqualDates(t *testing.T) {
	api := &fakeAPI{list: []models.Claim{
		{ID: 1, ClaimNumber: "CLM-A", Status: models.StatusSubmitted, ClaimDate: "2024-05-01"},
		{ID: 2, ClaimNumber: "CLM-B", Status: models.StatusSubmitted, ClaimDate: "2024-05-01"},
		{ID: 3, ClaimNumber: "CLM-C", Status: models.StatusSubmitted, ClaimDate: "2024-05-01"},
	}}
	vm := readyList(t, api)

	visible := vm.Visible()
	require.Len(t, visible, 3)
	assert.Equal(t, []string{"CLM-A", "CLM-B", "CLM-C"},
		[]string{visible[0].ClaimNumber, visible[1].ClaimNumber, visible[2].ClaimNumber})
}

func TestListLoadFailure(t *testing.T) {
	api := &fakeAPI{getErr: &gateway.RejectionError{Status: 503, Detail: "maintenance"}}
	vm := NewClaimList(api, "tok")
	vm.Load(context.Background())
	assert.Equal(t, LoadFailed, vm.State())
	assert.Equal(t, "maintenance", vm.FailReason())
}

func TestListErr_ExposesGatewaySentinel(t *testing.T) {
	api := &fakeAPI{getErr: gateway.ErrUnauthorized}
	vm := NewClaimList(api, "stale")
	vm.Load(context.Background())
	assert.Equal(t, LoadFailed, vm.State())
	assert.ErrorIs(t, vm.Err(), gateway.ErrUnauthorized)
}

func TestListErr_SetOnRowFailure(t *testing.T) {
	api := &fakeAPI{list: listFixture(), updateErr: gateway.ErrUnauthorized}
	vm := readyList(t, api)
	require.NoError(t, vm.Err())

	vm.SetRowField(1, "status", "APPROVED")
	require.False(t, vm.SubmitRow(context.Background(), 1))
	assert.ErrorIs(t, vm.Err(), gateway.ErrUnauthorized)
}

func TestRowSeededFromStoredClaim(t *testing.T) {
	cost := 900.0
	api := &fakeAPI{list: []models.Claim{
		{ID: 1, Status: models.StatusInReview, ClaimDate: "2024-01-01", EstimatedRepairCost: &cost},
	}}
	vm := readyList(t, api)

	row := vm.Row(1)
	assert.Equal(t, "IN_REVIEW", row.Values["status"])
	assert.Equal(t, "900", row.Values["estimatedRepairCost"])
	assert.Equal(t, "", row.Values["finalSettlementAmount"])
}

func TestSubmitRow_ReplacesOnlyMatchingRow(t *testing.T) {
	updated := models.Claim{ID: 3, ClaimNumber: "CLM-003", Status: models.StatusApproved, ClaimDate: "2024-02-01"}
	api := &fakeAPI{list: listFixture(), claims: map[int64]models.Claim{3: {}}, updateResp: &updated}
	vm := readyList(t, api)

	vm.SetRowField(3, "status", "APPROVED")
	require.True(t, vm.SubmitRow(context.Background(), 3))

	vm.SetFilter(FilterAll)
	byID := map[int64]models.Claim{}
	for _, c := range vm.Visible() {
		byID[c.ID] = c
	}
	assert.Equal(t, models.StatusApproved, byID[3].Status)
	// other rows keep their original data
	assert.Equal(t, models.StatusSubmitted, byID[1].Status)
	assert.Equal(t, models.StatusApproved, byID[2].Status)
	assert.True(t, vm.Row(3).Updated)
}

func TestSubmitRow_InvalidNeverReachesGateway(t *testing.T) {
	api := &fakeAPI{list: listFixture()}
	vm := readyList(t, api)

	vm.SetRowField(1, "status", "NOT_A_STATUS")
	require.False(t, vm.SubmitRow(context.Background(), 1))
	assert.Contains(t, vm.Row(1).Errors, "status")
	assert.Empty(t, api.updates)
}

func TestSubmitRow_FailureKeepsDraftAndStoredRow(t *testing.T) {
	api := &fakeAPI{
		list:      listFixture(),
		updateErr: &gateway.RejectionError{Status: 409, Detail: "claim is closed"},
	}
	vm := readyList(t, api)

	vm.SetRowField(1, "status", "PAID")
	vm.SetRowField(1, "finalSettlementAmount", "4200")
	require.False(t, vm.SubmitRow(context.Background(), 1))

	row := vm.Row(1)
	assert.Equal(t, "claim is closed", row.Failure)
	assert.Equal(t, "PAID", row.Values["status"])
	assert.Equal(t, "4200", row.Values["finalSettlementAmount"])

	// stored row unchanged
	for _, c := range vm.Visible() {
		if c.ID == 1 {
			assert.Equal(t, models.StatusSubmitted, c.Status)
		}
	}
}

func TestRowFailureIsIndependentAcrossRows(t *testing.T) {
	api := &fakeAPI{
		list:      listFixture(),
		updateErr: &gateway.RejectionError{Status: 500, Detail: "boom"},
	}
	vm := readyList(t, api)

	vm.SetRowField(1, "status", "APPROVED")
	require.False(t, vm.SubmitRow(context.Background(), 1))

	assert.Empty(t, vm.Row(2).Failure)
	assert.Empty(t, vm.Row(3).Failure)
}

func TestAssignRow(t *testing.T) {
	api := &fakeAPI{list: listFixture(), claims: map[int64]models.Claim{
		2: {ID: 2, ClaimNumber: "CLM-002", Status: models.StatusApproved, ClaimDate: "2024-03-01"},
	}}
	vm := readyList(t, api)

	require.True(t, vm.AssignRow(context.Background(), 2, "42"))
	for _, c := range vm.Visible() {
		if c.ID == 2 {
			require.NotNil(t, c.Adjuster)
			assert.Equal(t, int64(42), c.Adjuster.ID)
		}
	}

	// sentinel clears the assignment
	require.True(t, vm.AssignRow(context.Background(), 2, "0"))
	for _, c := range vm.Visible() {
		if c.ID == 2 {
			assert.Nil(t, c.Adjuster)
		}
	}
}

func TestAssignRow_RejectsNonNumeric(t *testing.T) {
	api := &fakeAPI{list: listFixture()}
	vm := readyList(t, api)
	require.False(t, vm.AssignRow(context.Background(), 1, "bob"))
	assert.Contains(t, vm.Row(1).Errors, "adjusterId")
}
