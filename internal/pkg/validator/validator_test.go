package validator

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrier-hotel-map/internal/pkg/errors"
)

type sample struct {
	BuildingID string `json:"building_id" validate:"required,max=64"`
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(&sample{BuildingID: "way/42"}))

	err := Validate(&sample{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidRequest))

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "required", appErr.Details["BuildingID"])
}
