package plans

import (
	"sync"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
)

// ResultSet holds the most recent search outcome with last-write-wins
// ordering. Searches that overlap in flight are sequenced at issuance time,
// a completion carrying a stale sequence is discarded so an older query can
// never overwrite a newer one's results.
type ResultSet struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
	filters SearchFilters
	plans   []models.HousePlan
}

// NewResultSet returns an empty result holder.
func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// Begin reserves the next sequence number for a search about to be issued.
func (s *ResultSet) Begin(filters SearchFilters) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.filters = filters
	return s.issued
}

// Apply installs the results for the given sequence. It reports false when a
// newer search already completed, in which case the results are dropped and
// the current state is untouched. Failed searches simply never call Apply,
// leaving the prior result set visible.
func (s *ResultSet) Apply(seq uint64, plans []models.HousePlan) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.plans = plans
	return true
}

// Current returns the latest applied results and the filters that produced
// the most recently issued search.
func (s *ResultSet) Current() ([]models.HousePlan, SearchFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HousePlan, len(s.plans))
	copy(out, s.plans)
	return out, s.filters
}
