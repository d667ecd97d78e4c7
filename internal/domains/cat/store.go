package cat

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds the last-fetched cat list plus the filter/loading/error state
// the UI reads. It is an explicit object owned by the container — never
// package globals — so tests can construct isolated instances.
//
// The original client was single-threaded; HTTP handlers are not, hence
// the lock.
type Store struct {
	mu      sync.RWMutex
	cats    []Cat
	filter  FilterStatus
	loading bool
	errMsg  string
}

func NewStore() *Store {
	return &Store{filter: FilterSemua}
}

// SetAll replaces the whole list (fetch result).
func (s *Store) SetAll(cats []Cat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cats = append([]Cat(nil), cats...)
}

// Prepend puts a freshly created cat at the head of the list.
func (s *Store) Prepend(c Cat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cats = append([]Cat{c}, s.cats...)
}

// Replace swaps the record with the same ID. No-op when absent.
func (s *Store) Replace(c Cat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cats {
		if s.cats[i].ID == c.ID {
			s.cats[i] = c
			return
		}
	}
}

// Remove drops the record with the given ID (soft delete succeeded).
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cats {
		if s.cats[i].ID == id {
			s.cats = append(s.cats[:i], s.cats[i+1:]...)
			return
		}
	}
}

// All returns a copy of the current list.
func (s *Store) All() []Cat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Cat(nil), s.cats...)
}

func (s *Store) SetFilter(f FilterStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

func (s *Store) Filter() FilterStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Filtered is the derived view over the list and the active filter.
// Every branch applies the active-only predicate; an unknown filter
// degrades to the active list, matching the original fallthrough.
func (s *Store) Filtered() []Cat {
	s.mu.RLock()
	filter := s.filter
	cats := append([]Cat(nil), s.cats...)
	s.mu.RUnlock()

	return FilterCats(cats, filter)
}

// FilterCats applies one filter branch to a list.
func FilterCats(cats []Cat, filter FilterStatus) []Cat {
	out := make([]Cat, 0, len(cats))
	for _, c := range cats {
		if !c.IsActive {
			continue
		}
		switch filter {
		case FilterSehat:
			if c.HealthStatus == HealthSehat {
				out = append(out, c)
			}
		case FilterSakit:
			if c.HealthStatus == HealthSakit {
				out = append(out, c)
			}
		case FilterButuhPerhatian:
			if c.HealthStatus == HealthKritis {
				out = append(out, c)
			}
		default: // semua
			out = append(out, c)
		}
	}
	return out
}

// SetLoading flips the loading flag the UI spinner reads.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError publishes a user-facing message. Repeated calls overwrite the
// previous message.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
