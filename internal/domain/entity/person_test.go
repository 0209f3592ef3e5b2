package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
	"github.com/amirhossein-jamali/people-registry/mocks/port/core"
)

func fixedTimeProvider() *core.MockTimeProvider {
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return tp
}

func TestNewPerson(t *testing.T) {
	tp := fixedTimeProvider()

	t.Run("should create a person with zero id and timestamps set", func(t *testing.T) {
		p, err := NewPerson("Ada", "Lovelace", "1815-12-10", 5, tp)

		assert.NoError(t, err)
		assert.Equal(t, uint64(0), p.ID)
		assert.Equal(t, "Ada", p.Name)
		assert.Equal(t, int64(5), p.Points)
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		p, err := NewPerson("", "Lovelace", "1815-12-10", 0, tp)

		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrInvalidPersonData)
	})

	t.Run("should reject an empty surname", func(t *testing.T) {
		p, err := NewPerson("Ada", "", "1815-12-10", 0, tp)

		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrInvalidPersonData)
	})

	t.Run("should not validate the birth format", func(t *testing.T) {
		p, err := NewPerson("Ada", "Lovelace", "sometime in 1815", 0, tp)

		assert.NoError(t, err)
		assert.Equal(t, "sometime in 1815", p.Birth)
	})
}

func TestPerson_ApplyUpdate(t *testing.T) {
	tp := fixedTimeProvider()

	p, err := NewPerson("Ada", "Lovelace", "1815-12-10", 5, tp)
	assert.NoError(t, err)

	t.Run("should overwrite all mutable fields", func(t *testing.T) {
		err := p.ApplyUpdate("Augusta", "King", "1815-12-10", 7, tp)

		assert.NoError(t, err)
		assert.Equal(t, "Augusta", p.Name)
		assert.Equal(t, "King", p.Surname)
		assert.Equal(t, int64(7), p.Points)
	})

	t.Run("should reject empty required fields", func(t *testing.T) {
		err := p.ApplyUpdate("", "King", "1815-12-10", 7, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidPersonData)
	})
}

func TestPerson_AddPoints(t *testing.T) {
	tp := fixedTimeProvider()

	p, err := NewPerson("Ada", "Lovelace", "1815-12-10", 10, tp)
	assert.NoError(t, err)

	p.AddPoints(9, tp)
	assert.Equal(t, int64(19), p.Points)

	p.AddPoints(1, tp)
	assert.Equal(t, int64(20), p.Points)
}
