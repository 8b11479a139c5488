package calls

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("calls: not found")
	ErrValidation = errors.New("calls: phoneNumber is required")
)

// Store is the persistence contract for call records. The storage decision
// stays behind this interface so route logic never learns whether records
// are volatile.
type Store interface {
	List(ctx context.Context, q ListQuery) ([]Call, Pagination)
	Get(ctx context.Context, id string) (Call, error)
	Create(ctx context.Context, in CreateInput) (Call, error)
	Update(ctx context.Context, id string, in UpdateInput) (Call, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps records in process memory: a map keyed by id for O(1)
// lookup plus an insertion-ordered id index for stable pagination. Contents
// are lost on restart.
//
// Concurrent updates to the same id remain last-write-wins; the mutex only
// prevents torn map state, it is not a transaction boundary.
type MemoryStore struct {
	mu    sync.Mutex
	byID  map[string]Call
	order []string

	clock func() time.Time
	newID func() string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:  make(map[string]Call),
		clock: time.Now,
		newID: uuid.NewString,
	}
}

// SeedDemo inserts the single sample record the service starts with.
func (s *MemoryStore) SeedDemo() Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Call{
		ID:              s.newID(),
		PhoneNumber:     "+1234567890",
		DurationSeconds: 300,
		Status:          StatusCompleted,
		Transcript:      "Hello, this is a sample call transcript.",
		AISummary:       "Customer called about product inquiry.",
		Timestamp:       s.clock().UTC().Format(time.RFC3339),
	}
	s.byID[c.ID] = c
	s.order = append(s.order, c.ID)
	return c
}

func (s *MemoryStore) List(_ context.Context, q ListQuery) ([]Call, Pagination) {
	q = q.normalized()

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]Call, 0, len(s.order))
	for _, id := range s.order {
		c := s.byID[id]
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		filtered = append(filtered, c)
	}

	total := len(filtered)
	p := Pagination{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: (total + q.Limit - 1) / q.Limit,
	}

	start := (q.Page - 1) * q.Limit
	if start >= total {
		return []Call{}, p
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	out := make([]Call, end-start)
	copy(out, filtered[start:end])
	return out, p
}

func (s *MemoryStore) Get(_ context.Context, id string) (Call, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return Call{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) Create(_ context.Context, in CreateInput) (Call, error) {
	if in.PhoneNumber == "" {
		return Call{}, ErrValidation
	}
	if in.DurationSeconds < 0 {
		in.DurationSeconds = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := Call{
		ID:              s.newID(),
		PhoneNumber:     in.PhoneNumber,
		DurationSeconds: in.DurationSeconds,
		Status:          StatusInProgress,
		Transcript:      in.Transcript,
		AISummary:       "",
		Timestamp:       s.clock().UTC().Format(time.RFC3339),
	}
	s.byID[c.ID] = c
	s.order = append(s.order, c.ID)
	return c, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, in UpdateInput) (Call, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return Call{}, ErrNotFound
	}

	if in.PhoneNumber != nil {
		c.PhoneNumber = *in.PhoneNumber
	}
	if in.DurationSeconds != nil {
		c.DurationSeconds = *in.DurationSeconds
		if c.DurationSeconds < 0 {
			c.DurationSeconds = 0
		}
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.Transcript != nil {
		c.Transcript = *in.Transcript
	}
	if in.AISummary != nil {
		c.AISummary = *in.AISummary
	}
	c.UpdatedAt = s.clock().UTC().Format(time.RFC3339)

	s.byID[id] = c
	return c, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
