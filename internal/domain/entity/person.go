package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
)

// Person represents a people record
type Person struct {
	ID        uint64    // Unique identifier, assigned by the store on creation
	Name      string    // Given name, non-empty
	Surname   string    // Family name, non-empty
	Birth     string    // Date-valued text; no format validation is enforced
	Points    int64     // Accumulated points, only ever incremented by the sweep
	CreatedAt time.Time // When the record was created
	UpdatedAt time.Time // When the record was last updated
}

// NewPerson creates a new person with the given fields. The ID stays zero
// until the repository assigns one on insert.
func NewPerson(name, surname, birth string, points int64, timeProvider coreport.TimeProvider) (*Person, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", errs.ErrInvalidPersonData)
	}
	if surname == "" {
		return nil, fmt.Errorf("%w: surname must not be empty", errs.ErrInvalidPersonData)
	}

	now := timeProvider.Now()
	return &Person{
		Name:      name,
		Surname:   surname,
		Birth:     birth,
		Points:    points,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyUpdate overwrites the mutable fields of the person
func (p *Person) ApplyUpdate(name, surname, birth string, points int64, timeProvider coreport.TimeProvider) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", errs.ErrInvalidPersonData)
	}
	if surname == "" {
		return fmt.Errorf("%w: surname must not be empty", errs.ErrInvalidPersonData)
	}

	p.Name = name
	p.Surname = surname
	p.Birth = birth
	p.Points = points
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// AddPoints increments the points balance by the given amount
func (p *Person) AddPoints(amount int64, timeProvider coreport.TimeProvider) {
	p.Points += amount
	p.UpdatedAt = timeProvider.Now()
}
