package person

import (
	"context"

	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
)

// DeletePerson removes a person unless the record is still inside its
// protection window.
//
// The lock registry is consulted before the store, unlike UpdatePerson which
// checks existence first. The asymmetry is part of the observed contract and
// is kept as-is.
func (u *PersonUseCase) DeletePerson(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.ErrInvalidPersonID
	}

	locked, err := u.lockRegistry.IsLocked(ctx, id)
	if err != nil {
		u.logger.Error("Failed to check lock state", map[string]any{
			"personId": id,
			"error":    err.Error(),
		})
		return err
	}
	if locked {
		u.logger.Info("Delete rejected, person still locked", map[string]any{
			"personId": id,
		})
		return errs.NewLockError(id)
	}

	if _, err := u.personRepo.GetByID(ctx, id); err != nil {
		if errs.IsNotFoundError(err) {
			u.logger.Info("Nothing to delete", map[string]any{
				"personId": id,
			})
		}
		return err
	}

	if err := u.personRepo.Delete(ctx, id); err != nil {
		u.logger.Error("Failed to delete person", map[string]any{
			"personId": id,
			"error":    err.Error(),
		})
		return err
	}

	u.logger.Info("Person deleted", map[string]any{
		"personId": id,
	})

	return nil
}
