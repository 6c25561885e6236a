package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/epeers/fundmanager/internal/fundapi"
	"github.com/epeers/fundmanager/internal/fundapi/fundapitest"
	"github.com/epeers/fundmanager/internal/models"
	"github.com/epeers/fundmanager/internal/services"
	"github.com/epeers/fundmanager/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func twoFunds() []models.Fund {
	return []models.Fund{
		{FundID: 1, FundName: "Alpha Equity", Category: models.CategoryEquity, RiskLevel: models.RiskHigh, AUM: ptr(1000), NAV: ptr(12.5)},
		{FundID: 2, FundName: "Beta Debt", Category: models.CategoryDebt, RiskLevel: models.RiskLow},
	}
}

func newManager(t *testing.T, funds ...models.Fund) (*services.FundManager, *fundapitest.Backend) {
	t.Helper()
	backend := fundapitest.NewBackend(funds...)
	t.Cleanup(backend.Close)
	return services.NewFundManager(fundapi.NewClient(backend.URL), state.NewStore()), backend
}

func TestFundManager_Refresh(t *testing.T) {
	m, backend := newManager(t, twoFunds()...)
	ctx := context.Background()

	m.Refresh(ctx)
	snap := m.Snapshot()
	require.Len(t, snap.Funds, 2)
	assert.Empty(t, snap.Status)

	backend.Fail(http.MethodGet, "/fundapi/all", http.StatusInternalServerError)
	m.Refresh(ctx)
	snap = m.Snapshot()
	assert.Len(t, snap.Funds, 2, "list is kept when the fetch fails")
	assert.Equal(t, services.MsgFetchFailed, snap.Status)
}

func TestFundManager_AddRejectedLocally(t *testing.T) {
	m, backend := newManager(t)
	ctx := context.Background()

	m.Add(ctx, models.Draft{FundID: "  ", FundName: "Alpha"})
	assert.Equal(t, "Please fill out the fundId field.", m.Snapshot().Status)

	m.Add(ctx, models.Draft{FundID: "3", FundName: " "})
	snap := m.Snapshot()
	assert.Equal(t, "Please fill out the fundName field.", snap.Status)
	assert.Equal(t, "3", snap.Form.FundID, "typed values stay in the form")

	m.Update(ctx, models.Draft{FundName: "Alpha"})
	assert.Equal(t, "Please fill out the fundId field.", m.Snapshot().Status)

	assert.Empty(t, backend.Requests(), "no backend call on validation failure")
}

func TestFundManager_AddSuccess(t *testing.T) {
	m, backend := newManager(t, twoFunds()...)
	ctx := context.Background()
	m.Refresh(ctx)

	m.Add(ctx, models.Draft{FundID: "3", FundName: "Gamma Hybrid", Category: "Hybrid", AUM: "12.5"})

	snap := m.Snapshot()
	assert.Equal(t, services.MsgAdded, snap.Status)
	assert.False(t, snap.EditMode)
	assert.Equal(t, models.Draft{}, snap.Form)
	assert.Equal(t, backend.Funds(), snap.Funds, "list is the backend's latest snapshot")
	assert.Equal(t, 2, backend.Count(http.MethodGet, "/fundapi/all"))

	reqs := backend.Requests()
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(reqs[1].Body), &sent))
	assert.Equal(t, 3.0, sent["fundId"])
	assert.Equal(t, 12.5, sent["aum"])
	assert.Equal(t, 0.0, sent["expenseRatio"])
	assert.Equal(t, 0.0, sent["nav"])
}

func TestFundManager_AddListsBackendSnapshot(t *testing.T) {
	m, backend := newManager(t, twoFunds()...)
	ctx := context.Background()

	// the backend's list may differ from "old list + new record"
	backend.SetFunds(models.Fund{FundID: 50, FundName: "Server Side"})
	m.Add(ctx, models.Draft{FundID: "3", FundName: "Gamma"})

	snap := m.Snapshot()
	require.Len(t, snap.Funds, 2)
	assert.Equal(t, int64(50), snap.Funds[0].FundID)
	assert.Equal(t, int64(3), snap.Funds[1].FundID)
}

func TestFundManager_AddFailureKeepsForm(t *testing.T) {
	m, backend := newManager(t, twoFunds()...)
	ctx := context.Background()

	m.Add(ctx, models.Draft{FundID: "1", FundName: "Duplicate"})

	snap := m.Snapshot()
	assert.Equal(t, services.MsgAddFailed, snap.Status)
	assert.Equal(t, "Duplicate", snap.Form.FundName)
	assert.Equal(t, 0, backend.Count(http.MethodGet, "/fundapi/all"))
}

func TestFundManager_AddSuccessWithStaleList(t *testing.T) {
	m, backend := newManager(t)
	ctx := context.Background()
	backend.Fail(http.MethodGet, "/fundapi/all", http.StatusBadGateway)

	m.Add(ctx, models.Draft{FundID: "3", FundName: "Gamma"})

	snap := m.Snapshot()
	assert.Equal(t, services.MsgAdded, snap.Status)
	assert.Empty(t, snap.Funds)
	assert.Equal(t, models.Draft{}, snap.Form)
}

func TestFundManager_EditUpdateCycle(t *testing.T) {
	m, backend := newManager(t, twoFunds()...)
	ctx := context.Background()
	m.Refresh(ctx)

	require.NoError(t, m.Edit(1))
	snap := m.Snapshot()
	assert.True(t, snap.EditMode)
	assert.Equal(t, "Editing fund with ID 1", snap.Status)
	assert.Equal(t, models.Draft{
		FundID:    "1",
		FundName:  "Alpha Equity",
		Category:  "Equity",
		RiskLevel: "High",
		AUM:       "1000",
		NAV:       "12.5",
	}, snap.Form)

	edited := snap.Form
	edited.FundID = "77" // ignored while editing
	edited.FundName = "Alpha Prime"
	m.Update(ctx, edited)

	snap = m.Snapshot()
	assert.Equal(t, services.MsgUpdated, snap.Status)
	assert.False(t, snap.EditMode)
	assert.Equal(t, models.Draft{}, snap.Form)
	assert.Equal(t, "Alpha Prime", snap.Funds[0].FundName)
	assert.Equal(t, int64(1), snap.Funds[0].FundID)
	assert.Equal(t, 1, backend.Count(http.MethodPut, "/fundapi/update"))
}

func TestFundManager_UpdateFailureStaysInEditMode(t *testing.T) {
	m, backend := newManager(t, twoFunds()...)
	ctx := context.Background()
	m.Refresh(ctx)
	require.NoError(t, m.Edit(2))

	backend.Fail(http.MethodPut, "/fundapi/update", http.StatusInternalServerError)
	m.Update(ctx, models.Draft{FundID: "2", FundName: "Beta Renamed"})

	snap := m.Snapshot()
	assert.Equal(t, services.MsgUpdateFailed, snap.Status)
	assert.True(t, snap.EditMode)
	assert.Equal(t, "Beta Renamed", snap.Form.FundName)
}

func TestFundManager_CancelResetsWithoutBackendCall(t *testing.T) {
	m, backend := newManager(t, twoFunds()...)
	m.Refresh(context.Background())
	before := len(backend.Requests())

	require.NoError(t, m.Edit(2))
	m.Cancel()

	snap := m.Snapshot()
	assert.False(t, snap.EditMode)
	assert.Equal(t, models.Draft{}, snap.Form)
	assert.Len(t, backend.Requests(), before)
}

func TestFundManager_EditUnknownFund(t *testing.T) {
	m, _ := newManager(t)
	assert.ErrorIs(t, m.Edit(9), services.ErrFundNotListed)
	assert.False(t, m.Snapshot().EditMode)
}

func TestFundManager_Delete(t *testing.T) {
	m, backend := newManager(t, twoFunds()...)
	ctx := context.Background()
	m.Refresh(ctx)

	m.Delete(ctx, 2)

	snap := m.Snapshot()
	assert.Equal(t, "Fund deleted successfully", snap.Status)
	require.Len(t, snap.Funds, 1)
	assert.Equal(t, int64(1), snap.Funds[0].FundID)
	assert.Equal(t, 1, backend.Count(http.MethodDelete, "/fundapi/delete/2"))
	assert.Equal(t, 2, backend.Count(http.MethodGet, "/fundapi/all"))
}

func TestFundManager_DeleteMessages(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"", services.MsgDeleted},
		{"   ", services.MsgDeleted},
		{`""`, services.MsgDeleted},
		{`"Fund removed"`, "Fund removed"},
		{`{"message":"portfolio deleted"}`, "portfolio deleted"},
		{`{"status":"ok"}`, `{"status":"ok"}`},
		{"Deleted fund 1", "Deleted fund 1"},
	}

	for _, tt := range tests {
		m, backend := newManager(t, twoFunds()...)
		backend.DeleteBody = tt.body

		m.Delete(context.Background(), 1)
		assert.Equal(t, tt.want, m.Snapshot().Status, "body %q", tt.body)
	}
}

func TestFundManager_DeleteFailure(t *testing.T) {
	m, backend := newManager(t, twoFunds()...)
	m.Delete(context.Background(), 99)

	assert.Equal(t, services.MsgDeleteFailed, m.Snapshot().Status)
	assert.Equal(t, 0, backend.Count(http.MethodGet, "/fundapi/all"))
}

func TestFundManager_Lookup(t *testing.T) {
	m, _ := newManager(t, twoFunds()...)
	ctx := context.Background()

	m.Lookup(ctx, "2")
	snap := m.Snapshot()
	require.NotNil(t, snap.Lookup)
	assert.Equal(t, "Beta Debt", snap.Lookup.Fund.FundName)
	assert.Equal(t, "2", snap.LookupID)
	assert.Empty(t, snap.Status)

	m.Lookup(ctx, "404")
	snap = m.Snapshot()
	assert.Nil(t, snap.Lookup)
	assert.Equal(t, services.MsgFundNotFound, snap.Status)

	m.Lookup(ctx, "")
	assert.Equal(t, services.MsgFundNotFound, m.Snapshot().Status)
}
