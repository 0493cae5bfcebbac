// Package progression provides persistence for mobiles and their progression state
package progression

//go:generate mockgen -destination=mock/mock_repository.go -package=progressionmock github.com/KirkDiggler/rpg-progression/internal/repositories/progression Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

const (
	errMobileNil     = "mobile cannot be nil"
	errMobileIDEmpty = "mobile ID cannot be empty"
	errMobileState   = "mobile must carry skills and stats"
)

// Repository defines the interface for mobile persistence.
// Returned mobiles are copies; mutating them does not affect stored state
// until Update is called.
type Repository interface {
	// Create stores a new mobile
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a mobile with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a mobile by ID
	// Returns errors.NotFound if the mobile doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing mobile
	// Returns errors.NotFound if the mobile doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a mobile by ID
	// Returns errors.NotFound if the mobile doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored mobile ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a mobile
type CreateInput struct {
	Mobile *entities.Mobile
}

// CreateOutput defines the output for creating a mobile
type CreateOutput struct {
	Mobile *entities.Mobile
}

// GetInput defines the input for getting a mobile
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a mobile
type GetOutput struct {
	Mobile *entities.Mobile
}

// UpdateInput defines the input for updating a mobile
type UpdateInput struct {
	Mobile *entities.Mobile
}

// UpdateOutput defines the output for updating a mobile
type UpdateOutput struct {
	Mobile *entities.Mobile
}

// DeleteInput defines the input for deleting a mobile
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a mobile
type DeleteOutput struct{}

// ListInput defines the input for listing mobiles
type ListInput struct {
	// Kind, when set, restricts the listing to one kind of mobile
	Kind *entities.Kind
}

// ListOutput defines the output for listing mobiles
type ListOutput struct {
	Mobiles []*entities.Mobile
}

func validateMobile(m *entities.Mobile) error {
	switch {
	case m == nil:
		return errors.InvalidArgument(errMobileNil)
	case m.ID == "":
		return errors.InvalidArgument(errMobileIDEmpty)
	case m.Skills == nil || m.Stats == nil:
		return errors.InvalidArgument(errMobileState)
	}
	return nil
}

func matchesKind(m *entities.Mobile, kind *entities.Kind) bool {
	return kind == nil || m.Kind == *kind
}
