package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"prospector-api/internal/models"
)

const (
	setIDPrefix  = "set"
	leadIDPrefix = "lead"

	// maxIDAttempts bounds regeneration when a freshly generated id is already taken.
	maxIDAttempts = 8
)

var (
	// ErrNotFound is returned when no prospect set exists for an id.
	ErrNotFound = errors.New("repository: prospect set not found")
	// ErrIDExhausted is returned when no free id could be generated.
	ErrIDExhausted = errors.New("repository: could not allocate a unique id")
)

// MemoryStore keeps prospect sets in process memory. It is empty when created and only grows.
type MemoryStore struct {
	mu    sync.RWMutex
	sets  map[string]models.ProspectSet
	newID func(prefix string) string
	now   func() time.Time
}

// Option customises a MemoryStore.
type Option func(*MemoryStore)

// WithIDGenerator replaces the random id generator.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *MemoryStore) { s.newID = gen }
}

// WithClock replaces time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		sets:  make(map[string]models.ProspectSet),
		newID: GenerateID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSet assigns ids to the given leads, builds the prospect set and stores it
func (s *MemoryStore) CreateSet(ctx context.Context, service string, geo map[string]string, fields []models.LeadFields) (*models.ProspectSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repository: create prospect set: %w", err)
	}

	leads := make([]models.Lead, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		id, err := s.uniqueID(leadIDPrefix, func(id string) bool {
			_, dup := seen[id]
			return dup
		})
		if err != nil {
			return nil, err
		}
		seen[id] = struct{}{}

		leads = append(leads, models.Lead{
			ID:      id,
			Name:    f.Name,
			Address: f.Address,
			Phone:   copyString(f.Phone),
			Website: copyString(f.Website),
			Source:  f.Source,
		})
	}

	geoCopy := make(map[string]string, len(geo))
	for k, v := range geo {
		geoCopy[k] = v
	}

	set := models.ProspectSet{
		Service:   service,
		Geo:       geoCopy,
		CreatedAt: epochSeconds(s.now()),
		Leads:     leads,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID(setIDPrefix, func(id string) bool {
		_, taken := s.sets[id]
		return taken
	})
	if err != nil {
		return nil, err
	}

	set.ID = id
	s.sets[id] = set
	return cloneSet(set), nil
}

// GetByID looks up a prospect set by id
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*models.ProspectSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repository: get prospect set: %w", err)
	}

	s.mu.RLock()
	set, ok := s.sets[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return cloneSet(set), nil
}

// Count returns the number of stored prospect sets
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sets)
}

func epochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

func (s *MemoryStore) uniqueID(prefix string, taken func(string) bool) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		if id := s.newID(prefix); !taken(id) {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

// cloneSet hands out a copy so callers cannot mutate the stored record.
func cloneSet(set models.ProspectSet) *models.ProspectSet {
	out := set
	out.Geo = make(map[string]string, len(set.Geo))
	for k, v := range set.Geo {
		out.Geo[k] = v
	}
	out.Leads = make([]models.Lead, len(set.Leads))
	for i, lead := range set.Leads {
		lead.Phone = copyString(lead.Phone)
		lead.Website = copyString(lead.Website)
		out.Leads[i] = lead
	}
	return &out
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
