package person

import (
	"context"

	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
	"github.com/amirhossein-jamali/people-registry/internal/domain/port/usecase"
)

// CreatePerson inserts a new person and immediately places a protection
// window on the assigned id. Until the window expires the record cannot be
// updated or deleted, and the maintenance sweep grants it point bonuses.
func (u *PersonUseCase) CreatePerson(ctx context.Context, input usecase.PersonInput) (*entity.Person, error) {
	person, err := entity.NewPerson(input.Name, input.Surname, input.Birth, input.Points, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.personRepo.Create(ctx, person); err != nil {
		u.logger.Error("Failed to create person", map[string]any{
			"name":    input.Name,
			"surname": input.Surname,
			"error":   err.Error(),
		})
		return nil, err
	}

	// The record exists at this point. A registry failure still has to
	// surface as a hard error: without the lock entry the protection
	// window would silently not apply.
	if err := u.lockRegistry.Lock(ctx, person.ID); err != nil {
		u.logger.Error("Failed to lock newly created person", map[string]any{
			"personId": person.ID,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Person created", map[string]any{
		"personId": person.ID,
		"name":     person.Name,
		"surname":  person.Surname,
	})

	return person, nil
}
