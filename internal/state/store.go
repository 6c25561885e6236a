package state

import (
	"fmt"
	"sync"

	"github.com/epeers/fundmanager/internal/models"
)

// Store holds the fund screen state. It mirrors the backend's last answer and
// never patches the fund list locally. Every change goes through a named
// transition; concurrent transitions do not wait on each other beyond the
// lock, so the last one to land wins.
type Store struct {
	mu sync.RWMutex

	funds    []models.Fund
	form     models.Draft
	lookupID string
	lookup   *models.Lookup
	status   string
	editMode bool
}

// NewStore creates a store in create mode with an empty form
func NewStore() *Store {
	return &Store{funds: []models.Fund{}}
}

// FundsLoaded replaces the fund list with a fresh backend snapshot
func (s *Store) FundsLoaded(funds []models.Fund) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.funds = append([]models.Fund{}, funds...)
}

// SetStatus replaces the status message
func (s *Store) SetStatus(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = msg
}

// ClearStatus removes the status message
func (s *Store) ClearStatus() {
	s.SetStatus("")
}

// SetForm records the typed form values. While editing, the fundId of the
// record being edited is kept.
func (s *Store) SetForm(d models.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editMode {
		d.FundID = s.form.FundID
	}
	s.form = d
}

// ResetForm empties the form and returns to create mode
func (s *Store) ResetForm() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = models.Draft{}
	s.editMode = false
}

// BeginEdit loads a record into the form and enters update mode
func (s *Store) BeginEdit(f models.Fund) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = f.Draft()
	s.editMode = true
	s.status = fmt.Sprintf("Editing fund with ID %d", f.FundID)
}

// SetLookupID records the id typed into the lookup panel
func (s *Store) SetLookupID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookupID = id
}

// LookupFound stores a fetch-by-id result. A nil result leaves nothing to show.
func (s *Store) LookupFound(l *models.Lookup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookup = l
}

// LookupMissed clears the fetch-by-id result
func (s *Store) LookupMissed() {
	s.LookupFound(nil)
}

// FindFund returns the listed record with the given id
func (s *Store) FindFund(id int64) (models.Fund, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.funds {
		if f.FundID == id {
			return f, true
		}
	}
	return models.Fund{}, false
}

// Form returns the current draft and whether update mode is active
func (s *Store) Form() (models.Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.form, s.editMode
}

// Snapshot returns a copy of the whole state
func (s *Store) Snapshot() models.ScreenState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.ScreenState{
		Funds:    append([]models.Fund{}, s.funds...),
		Form:     s.form,
		LookupID: s.lookupID,
		Status:   s.status,
		EditMode: s.editMode,
	}
	if s.lookup != nil {
		l := *s.lookup
		snap.Lookup = &l
	}
	return snap
}
