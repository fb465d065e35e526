package usecase_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/pkg/errors"
	"github.com/carrier-hotel-map/internal/scene"
	"github.com/carrier-hotel-map/internal/usecase"
)

// MockMapSurface is a mock of MapSurface and InfoPanels
type MockMapSurface struct {
	mock.Mock
}

func (m *MockMapSurface) SetFootprintStyle(buildingID string, style domain.FootprintStyle) {
	m.Called(buildingID, style)
}

func (m *MockMapSurface) ResetFootprintStyles() {
	m.Called()
}

func (m *MockMapSurface) AddOverlay(o domain.Overlay) {
	m.Called(o)
}

func (m *MockMapSurface) RemoveOverlay(key string) {
	m.Called(key)
}

func (m *MockMapSurface) PanTo(center domain.Point) {
	m.Called(center)
}

func (m *MockMapSurface) SetView(center domain.Point, zoom float64) {
	m.Called(center, zoom)
}

func (m *MockMapSurface) ShowAddress(addr domain.Address) {
	m.Called(addr)
}

func (m *MockMapSurface) ClearAddress() {
	m.Called()
}

func (m *MockMapSurface) ShowDistances(entries []domain.DistanceEntry) {
	m.Called(entries)
}

func (m *MockMapSurface) ClearDistances() {
	m.Called()
}

func newSceneController(t *testing.T) (*usecase.SelectionController, *scene.Scene) {
	t.Helper()
	style := usecase.DefaultMapStyle()
	sc := scene.New(scene.View{Center: style.StartCenter, Zoom: style.StartZoom})
	return usecase.NewSelectionController(newTestCatalog(t), sc, sc, style, zap.NewNop()), sc
}

func commandTypes(cmds []scene.Command) []scene.CommandType {
	types := make([]scene.CommandType, 0, len(cmds))
	for _, c := range cmds {
		types = append(types, c.Type)
	}
	return types
}

func TestSelectionController_Toggle(t *testing.T) {
	t.Run("select highlights exactly one footprint", func(t *testing.T) {
		c, sc := newSceneController(t)

		state, err := c.Toggle("A")
		require.NoError(t, err)
		assert.True(t, state.Is("A"))

		snap := sc.Snapshot()
		require.Len(t, snap.Styles, 1)
		assert.Equal(t, "#ff00ff", snap.Styles["A"].FillColor)
		require.NotNil(t, snap.Address)
		assert.Equal(t, "60 Hudson St", *snap.Address.Line1)
		require.Len(t, snap.Distances, 2)
		assert.Equal(t, "B", snap.Distances[0].ToID)
		assert.Equal(t, "C", snap.Distances[1].ToID)
		assert.Equal(t, domain.Point{Lat: 40.70, Lon: -74.00}, snap.View.Center)
	})

	t.Run("clear then apply ordering", func(t *testing.T) {
		c, sc := newSceneController(t)

		_, err := c.Toggle("A")
		require.NoError(t, err)

		assert.Equal(t, []scene.CommandType{
			scene.CmdResetStyles,
			scene.CmdClearAddress,
			scene.CmdClearDistances,
			scene.CmdSetStyle,
			scene.CmdShowAddress,
			scene.CmdShowDistances,
			scene.CmdPanTo,
		}, commandTypes(sc.Drain()))
	})

	t.Run("toggle twice restores derived state", func(t *testing.T) {
		c, sc := newSceneController(t)
		before := sc.Snapshot()

		_, err := c.Toggle("B")
		require.NoError(t, err)
		state, err := c.Toggle("B")
		require.NoError(t, err)

		after := sc.Snapshot()
		assert.False(t, state.IsSelected())
		assert.Equal(t, before.Styles, after.Styles)
		assert.Equal(t, before.Address, after.Address)
		assert.Equal(t, before.Distances, after.Distances)
		assert.Equal(t, before.Overlays, after.Overlays)
	})

	t.Run("switching selection moves highlight directly", func(t *testing.T) {
		c, sc := newSceneController(t)

		_, err := c.Toggle("A")
		require.NoError(t, err)
		state, err := c.Toggle("C")
		require.NoError(t, err)

		assert.True(t, state.Is("C"))
		snap := sc.Snapshot()
		require.Len(t, snap.Styles, 1)
		_, ok := snap.Styles["C"]
		assert.True(t, ok)
		assert.Equal(t, "111 8th Ave", *snap.Address.Line1)
		for _, d := range snap.Distances {
			assert.Equal(t, "C", d.FromID)
			assert.NotEqual(t, "C", d.ToID)
		}
	})

	t.Run("unknown id leaves state and surface untouched", func(t *testing.T) {
		surface := &MockMapSurface{}
		c := usecase.NewSelectionController(newTestCatalog(t), surface, surface, usecase.DefaultMapStyle(), zap.NewNop())

		state, err := c.Toggle("nope")

		assert.True(t, stderrors.Is(err, errors.ErrBuildingNotFound))
		assert.False(t, state.IsSelected())
		surface.AssertNotCalled(t, "ResetFootprintStyles")
		surface.AssertNotCalled(t, "ClearAddress")
		surface.AssertNotCalled(t, "ClearDistances")
	})

	t.Run("unknown id keeps existing selection", func(t *testing.T) {
		c, sc := newSceneController(t)
		_, err := c.Toggle("A")
		require.NoError(t, err)
		sc.Drain()

		state, err := c.Toggle("nope")

		assert.Error(t, err)
		assert.True(t, state.Is("A"))
		assert.Empty(t, sc.Drain())
	})
}

func TestSelectionController_WithMockSurface(t *testing.T) {
	surface := &MockMapSurface{}
	style := usecase.DefaultMapStyle()
	style.PanOnSelect = false
	c := usecase.NewSelectionController(newTestCatalog(t), surface, surface, style, zap.NewNop())

	surface.On("ResetFootprintStyles").Return().Once()
	surface.On("ClearAddress").Return().Once()
	surface.On("ClearDistances").Return().Once()
	surface.On("SetFootprintStyle", "B", style.Highlight()).Return().Once()
	surface.On("ShowAddress", mock.MatchedBy(func(a domain.Address) bool {
		return a.Line2 != nil && *a.Line2 == "1 Wall St"
	})).Return().Once()
	surface.On("ShowDistances", mock.MatchedBy(func(e []domain.DistanceEntry) bool {
		return len(e) == 2
	})).Return().Once()

	_, err := c.Toggle("B")

	require.NoError(t, err)
	surface.AssertExpectations(t)
	surface.AssertNotCalled(t, "PanTo", mock.Anything)
}

func TestSelectionController_Reset(t *testing.T) {
	c, sc := newSceneController(t)
	_, err := c.Toggle("A")
	require.NoError(t, err)

	c.Reset()

	assert.False(t, c.State().IsSelected())
	snap := sc.Snapshot()
	assert.Empty(t, snap.Styles)
	assert.Nil(t, snap.Address)
	assert.Empty(t, snap.Distances)
	assert.Equal(t, domain.Point{Lat: 40.723, Lon: -74.000}, snap.View.Center)
	assert.Equal(t, 14.35, snap.View.Zoom)

	// reset is unconditional
	c.Reset()
	assert.False(t, c.State().IsSelected())
}
