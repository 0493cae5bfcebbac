package progression

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// Mobiles are stored encoded so reads never alias stored state.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository. A nil clock selects the
// real clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string][]byte),
		clock: c,
	}
}

// Create stores a new mobile
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateMobile(input.Mobile); err != nil {
		return nil, err
	}

	m := input.Mobile

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[m.ID]; exists {
		return nil, errors.Newf(errors.CodeAlreadyExists, "mobile with ID %s already exists", m.ID)
	}

	now := r.clock.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal mobile")
	}
	r.store[m.ID] = data

	return &CreateOutput{Mobile: m}, nil
}

// Get retrieves a mobile by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMobileIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("mobile with ID %s not found", input.ID)
	}

	m, err := decodeMobile(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Mobile: m}, nil
}

// Update replaces an existing mobile
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateMobile(input.Mobile); err != nil {
		return nil, err
	}

	m := input.Mobile

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[m.ID]; !exists {
		return nil, errors.NotFoundf("mobile with ID %s not found", m.ID)
	}

	m.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal mobile")
	}
	r.store[m.ID] = data

	return &UpdateOutput{Mobile: m}, nil
}

// Delete removes a mobile by ID
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMobileIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("mobile with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns every stored mobile ordered by ID
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	encoded := make([][]byte, len(ids))
	for i, id := range ids {
		encoded[i] = r.store[id]
	}
	r.mu.RUnlock()

	out := &ListOutput{}
	for _, data := range encoded {
		m, err := decodeMobile(data)
		if err != nil {
			return nil, err
		}
		if matchesKind(m, input.Kind) {
			out.Mobiles = append(out.Mobiles, m)
		}
	}
	return out, nil
}
