package persistence

import (
	"context"

	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
)

// PersonRepository defines keyed CRUD over persisted person records.
// It is a dumb persistence layer: no locking concept lives here.
type PersonRepository interface {
	// Create inserts a new person and assigns its ID on success
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the database cannot be reached
	Create(ctx context.Context, person *entity.Person) error

	// GetByID retrieves a person by ID
	//
	// Possible errors:
	// - ErrPersonNotFound: if no person with the given ID exists
	// - ErrStoreUnavailable: if the database cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.Person, error)

	// List returns all persons; an empty slice is a normal outcome
	List(ctx context.Context) ([]*entity.Person, error)

	// Update overwrites name, surname, birth and points of an existing person
	//
	// Possible errors:
	// - ErrPersonNotFound: if no person with the given ID exists
	// - ErrStoreUnavailable: if the database cannot be reached
	Update(ctx context.Context, person *entity.Person) error

	// UpdatePoints writes only the points column for the given person.
	// Used by the maintenance sweep so each record commits independently.
	//
	// Possible errors:
	// - ErrPersonNotFound: if the person disappeared in the meantime
	// - ErrStoreUnavailable: if the database cannot be reached
	UpdatePoints(ctx context.Context, id uint64, points int64) error

	// Delete removes a person by ID
	//
	// Possible errors:
	// - ErrPersonNotFound: if no person with the given ID exists
	// - ErrStoreUnavailable: if the database cannot be reached
	Delete(ctx context.Context, id uint64) error
}
