package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/api/dto"
)

func TestMissingFields(t *testing.T) {
	name := "Ada"
	surname := "Lovelace"
	birth := "1815-12-10"
	id := uint64(1)
	points := int64(0)

	t.Run("should report nothing when all required fields are present", func(t *testing.T) {
		req := dto.PersonRequest{
			ID:      &id,
			Name:    &name,
			Surname: &surname,
			Birth:   &birth,
			Points:  &points,
		}
		assert.Empty(t, req.MissingFields("id", "name", "surname", "birth", "points"))
	})

	t.Run("should report each absent field by name", func(t *testing.T) {
		req := dto.PersonRequest{Name: &name}
		missing := req.MissingFields("id", "name", "surname", "birth", "points")
		assert.ElementsMatch(t, []string{"id", "surname", "birth", "points"}, missing)
	})

	t.Run("should distinguish a present zero value from an absent field", func(t *testing.T) {
		zero := int64(0)
		req := dto.PersonRequest{Points: &zero}
		assert.Empty(t, req.MissingFields("points"))
	})

	t.Run("should only check the fields asked for", func(t *testing.T) {
		req := dto.PersonRequest{ID: &id}
		assert.Empty(t, req.MissingFields("id"))
	})
}

func TestToInput(t *testing.T) {
	name := "Grace"
	points := int64(7)

	req := dto.PersonRequest{Name: &name, Points: &points}
	input := req.ToInput()

	assert.Equal(t, "Grace", input.Name)
	assert.Equal(t, int64(7), input.Points)
	assert.Empty(t, input.Surname)
	assert.Empty(t, input.Birth)
}
