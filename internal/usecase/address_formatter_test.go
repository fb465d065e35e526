package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/usecase"
)

func strPtr(s string) *string {
	return &s
}

func TestFormatAddress(t *testing.T) {
	t.Run("name equals house number and street", func(t *testing.T) {
		b := &domain.Building{
			ID:          "way/1",
			Name:        strPtr("123 Main St"),
			HouseNumber: strPtr("123"),
			Street:      strPtr("Main St"),
		}

		addr := usecase.FormatAddress(b)

		require.NotNil(t, addr.Line1)
		assert.Equal(t, "123 Main St", *addr.Line1)
		assert.Nil(t, addr.Line2)
	})

	t.Run("distinct name keeps street line", func(t *testing.T) {
		b := &domain.Building{
			ID:          "way/2",
			Name:        strPtr("Acme Tower"),
			HouseNumber: strPtr("1"),
			Street:      strPtr("Wall St"),
			City:        strPtr("New York"),
			State:       strPtr("NY"),
			PostalCode:  strPtr("10005"),
		}

		addr := usecase.FormatAddress(b)

		assert.Equal(t, "Acme Tower", *addr.Line1)
		require.NotNil(t, addr.Line2)
		assert.Equal(t, "1 Wall St", *addr.Line2)
		assert.Equal(t, "New York", *addr.City)
		assert.Equal(t, "NY", *addr.State)
		assert.Equal(t, "10005", *addr.Zip)
	})

	t.Run("street without house number has no stray separator", func(t *testing.T) {
		b := &domain.Building{ID: "way/3", Name: strPtr("Telehouse"), Street: strPtr("Hudson St")}

		addr := usecase.FormatAddress(b)

		require.NotNil(t, addr.Line2)
		assert.Equal(t, "Hudson St", *addr.Line2)
	})

	t.Run("house number only", func(t *testing.T) {
		b := &domain.Building{ID: "way/4", HouseNumber: strPtr("60")}

		addr := usecase.FormatAddress(b)

		assert.Nil(t, addr.Line1)
		require.NotNil(t, addr.Line2)
		assert.Equal(t, "60", *addr.Line2)
	})

	t.Run("no name and no street", func(t *testing.T) {
		addr := usecase.FormatAddress(&domain.Building{ID: "way/5", City: strPtr("New York")})

		assert.Nil(t, addr.Line1)
		assert.Nil(t, addr.Line2)
		assert.Equal(t, "New York", *addr.City)
		assert.Nil(t, addr.State)
		assert.Nil(t, addr.Zip)
	})

	t.Run("no name with street fills second line", func(t *testing.T) {
		b := &domain.Building{ID: "way/6", HouseNumber: strPtr("111"), Street: strPtr("8th Ave")}

		addr := usecase.FormatAddress(b)

		assert.Nil(t, addr.Line1)
		assert.Equal(t, "111 8th Ave", *addr.Line2)
		assert.Equal(t, "111 8th Ave<br />", addr.Render("<br />"))
	})
}
