package usecase

import (
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/domain"
)

// SelectionController владеет состоянием выбора одной карты и синхронизирует с ним
// подсветку футпринтов, панель адреса и список расстояний.
// Не потокобезопасен: вызовы должны быть сериализованы владельцем.
type SelectionController struct {
	catalog *BuildingCatalog
	surface domain.MapSurface
	panels  domain.InfoPanels
	style   MapStyle
	logger  *zap.Logger

	state domain.SelectionState
}

func NewSelectionController(
	catalog *BuildingCatalog,
	surface domain.MapSurface,
	panels domain.InfoPanels,
	style MapStyle,
	logger *zap.Logger,
) *SelectionController {
	return &SelectionController{
		catalog: catalog,
		surface: surface,
		panels:  panels,
		style:   style,
		logger:  logger,
		state:   domain.Unselected(),
	}
}

// State - текущее состояние выбора
func (c *SelectionController) State() domain.SelectionState {
	return c.state
}

// Toggle обрабатывает клик по зданию: выбирает его, снимает выбор при повторном клике
// или переключает выбор на другое здание. Неизвестный id - ошибка вызывающего,
// состояние при этом не меняется.
func (c *SelectionController) Toggle(buildingID string) (domain.SelectionState, error) {
	b, err := c.catalog.MustGet(buildingID)
	if err != nil {
		c.logger.Error("Toggle of unknown building", zap.String("building_id", buildingID))
		return c.state, err
	}

	next := c.state.Next(buildingID)

	c.clear()

	if !next.IsSelected() {
		c.state = next
		c.logger.Debug("Building unselected", zap.String("building_id", buildingID))
		return c.state, nil
	}

	addr := FormatAddress(b)
	entries, err := c.catalog.DistanceEntries(buildingID)
	if err != nil {
		// id checked above, so the catalog cannot miss it
		c.state = domain.Unselected()
		return c.state, err
	}

	c.state = next
	c.surface.SetFootprintStyle(buildingID, c.style.Highlight())
	c.panels.ShowAddress(addr)
	c.panels.ShowDistances(entries)
	if c.style.PanOnSelect {
		c.surface.PanTo(b.Centroid)
	}

	c.logger.Debug("Building selected",
		zap.String("building_id", buildingID),
		zap.Int("distances", len(entries)))

	return c.state, nil
}

// Reset снимает выбор и возвращает карту к стартовому виду
func (c *SelectionController) Reset() {
	c.state = domain.Unselected()
	c.clear()
	c.surface.SetView(c.style.StartCenter, c.style.StartZoom)
}

func (c *SelectionController) clear() {
	c.surface.ResetFootprintStyles()
	c.panels.ClearAddress()
	c.panels.ClearDistances()
}
