package usecase

import (
	"context"

	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
)

// PersonInput carries the writable fields of a person record
type PersonInput struct {
	Name    string
	Surname string
	Birth   string
	Points  int64
}

// PersonUseCase defines the person-related business operations consumed by
// the API layer
type PersonUseCase interface {
	// CreatePerson inserts a new person and places a protection window on it.
	// The returned person carries the ID assigned by the store.
	CreatePerson(ctx context.Context, input PersonInput) (*entity.Person, error)

	// GetPerson retrieves a person by ID; lock state never affects reads
	GetPerson(ctx context.Context, id uint64) (*entity.Person, error)

	// ListPersons returns all persons; an empty result is a normal outcome
	ListPersons(ctx context.Context) ([]*entity.Person, error)

	// UpdatePerson overwrites a person's fields.
	// Returns ErrPersonNotFound if the record doesn't exist and
	// ErrPersonLocked if its protection window hasn't expired.
	UpdatePerson(ctx context.Context, id uint64, input PersonInput) (*entity.Person, error)

	// DeletePerson removes a person.
	// Returns ErrPersonLocked if its protection window hasn't expired and
	// ErrPersonNotFound if the record doesn't exist.
	DeletePerson(ctx context.Context, id uint64) error
}
