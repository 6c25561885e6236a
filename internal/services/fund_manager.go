package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/epeers/fundmanager/internal/models"
	"github.com/epeers/fundmanager/internal/state"
	log "github.com/sirupsen/logrus"
)

// Status messages shown after each gateway outcome
const (
	MsgFetchFailed  = "Failed to fetch funds."
	MsgAdded        = "Mutual fund added successfully."
	MsgAddFailed    = "Error adding fund."
	MsgUpdated      = "Mutual fund updated successfully."
	MsgUpdateFailed = "Error updating fund."
	MsgDeleted      = "Deleted successfully."
	MsgDeleteFailed = "Error deleting fund."
	MsgFundNotFound = "Fund not found."
)

var ErrFundNotListed = errors.New("fund is not in the current list")

// Gateway is the backend the manager talks to
type Gateway interface {
	ListFunds(ctx context.Context) ([]models.Fund, error)
	AddFund(ctx context.Context, payload models.FundPayload) error
	UpdateFund(ctx context.Context, payload models.FundPayload) error
	DeleteFund(ctx context.Context, id int64) ([]byte, error)
	GetFund(ctx context.Context, id string) (*models.Lookup, error)
}

// FundManager turns screen actions into backend calls and backend outcomes
// into store transitions. Backend failures never escape; each becomes a
// status message.
type FundManager struct {
	api   Gateway
	store *state.Store
}

// NewFundManager creates a new FundManager
func NewFundManager(api Gateway, store *state.Store) *FundManager {
	return &FundManager{
		api:   api,
		store: store,
	}
}

// Snapshot returns the current screen state
func (m *FundManager) Snapshot() models.ScreenState {
	return m.store.Snapshot()
}

// Refresh replaces the fund list with the backend's. On failure the list is
// left as it was.
func (m *FundManager) Refresh(ctx context.Context) {
	defer TrackTime("Refresh", time.Now())

	if err := m.reload(ctx); err != nil {
		m.store.SetStatus(MsgFetchFailed)
	}
}

// reload is the refresh that follows a mutation. A failure there leaves the
// mutation's own status message in place.
func (m *FundManager) reload(ctx context.Context) error {
	funds, err := m.api.ListFunds(ctx)
	if err != nil {
		log.Warnf("List funds failed: %v", err)
		return err
	}
	m.store.FundsLoaded(funds)
	return nil
}

// Add validates the draft and creates the fund. On success the list is
// refreshed and the form reset; on failure the typed values stay.
func (m *FundManager) Add(ctx context.Context, d models.Draft) {
	defer TrackTime("Add", time.Now())

	m.store.SetForm(d)
	if err := ValidateDraft(d); err != nil {
		m.store.SetStatus(err.Error())
		return
	}

	if err := m.api.AddFund(ctx, models.NewFundPayload(d)); err != nil {
		log.Warnf("Add fund %q failed: %v", d.FundID, err)
		m.store.SetStatus(MsgAddFailed)
		return
	}

	m.store.SetStatus(MsgAdded)
	_ = m.reload(ctx)
	m.store.ResetForm()
}

// Update validates the draft and replaces the fund keyed by its fundId. While
// editing, the fundId is the one of the record being edited.
func (m *FundManager) Update(ctx context.Context, d models.Draft) {
	defer TrackTime("Update", time.Now())

	m.store.SetForm(d)
	d, _ = m.store.Form()
	if err := ValidateDraft(d); err != nil {
		m.store.SetStatus(err.Error())
		return
	}

	if err := m.api.UpdateFund(ctx, models.NewFundPayload(d)); err != nil {
		log.Warnf("Update fund %q failed: %v", d.FundID, err)
		m.store.SetStatus(MsgUpdateFailed)
		return
	}

	m.store.SetStatus(MsgUpdated)
	_ = m.reload(ctx)
	m.store.ResetForm()
}

// Delete removes a fund, shows the backend's message, and refreshes the list
func (m *FundManager) Delete(ctx context.Context, id int64) {
	defer TrackTime("Delete", time.Now())

	body, err := m.api.DeleteFund(ctx, id)
	if err != nil {
		log.Warnf("Delete fund %d failed: %v", id, err)
		m.store.SetStatus(MsgDeleteFailed)
		return
	}

	m.store.SetStatus(deleteMessage(body))
	_ = m.reload(ctx)
}

// Lookup fetches one fund by the id as typed
func (m *FundManager) Lookup(ctx context.Context, id string) {
	defer TrackTime("Lookup", time.Now())

	m.store.SetLookupID(id)
	result, err := m.api.GetFund(ctx, id)
	if err != nil {
		log.Warnf("Get fund %q failed: %v", id, err)
		m.store.LookupMissed()
		m.store.SetStatus(MsgFundNotFound)
		return
	}

	m.store.LookupFound(result)
	m.store.ClearStatus()
}

// Edit loads a listed fund into the form and enters update mode
func (m *FundManager) Edit(id int64) error {
	f, ok := m.store.FindFund(id)
	if !ok {
		return ErrFundNotListed
	}
	m.store.BeginEdit(f)
	return nil
}

// Cancel leaves update mode without calling the backend
func (m *FundManager) Cancel() {
	m.store.ResetForm()
}

// deleteMessage picks the text to show after a delete. A JSON string is
// unquoted, a JSON object contributes its "message", anything else is shown
// as sent. Empty bodies fall back to MsgDeleted.
func deleteMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return MsgDeleted
	}

	var s string
	if err := json.Unmarshal([]byte(text), &s); err == nil {
		if s == "" {
			return MsgDeleted
		}
		return s
	}

	var obj struct {
		Message string `json:"message"`
	}
	if strings.HasPrefix(text, "{") && json.Unmarshal([]byte(text), &obj) == nil && obj.Message != "" {
		return obj.Message
	}

	return text
}
