package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/pkg/errors"
)

// Границы карты, до которых продлеваются рёбра bbox
const (
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// SelectionReader - источник текущего выбора для hover-оверлеев
type SelectionReader interface {
	State() domain.SelectionState
}

// overlaySet - набор оверлеев одного наведения
type overlaySet struct {
	owner string
	keys  []string
}

// HoverOverlayManager рисует временные оверлеи при наведении на футпринт
// или на строку списка расстояний. На каждой поверхности активен максимум один набор.
type HoverOverlayManager struct {
	catalog   *BuildingCatalog
	surface   domain.MapSurface
	selection SelectionReader
	style     MapStyle
	logger    *zap.Logger

	footprint *overlaySet
	distance  *overlaySet
}

func NewHoverOverlayManager(
	catalog *BuildingCatalog,
	surface domain.MapSurface,
	selection SelectionReader,
	style MapStyle,
	logger *zap.Logger,
) *HoverOverlayManager {
	return &HoverOverlayManager{
		catalog:   catalog,
		surface:   surface,
		selection: selection,
		style:     style,
		logger:    logger,
	}
}

// EnterFootprint рисует bbox здания и четыре направляющие, продолжающие его рёбра
// до краёв карты. Предыдущий набор футпринта, если он остался, снимается.
func (m *HoverOverlayManager) EnterFootprint(buildingID string) error {
	b, err := m.catalog.MustGet(buildingID)
	if err != nil {
		m.logger.Error("Hover of unknown building", zap.String("building_id", buildingID))
		return err
	}

	m.ClearFootprintOverlay()

	ne := b.BBox.NorthEast()
	sw := b.BBox.SouthWest()
	guide := []domain.Stroke{m.style.Guide}
	prefix := "footprint:" + buildingID

	overlays := []domain.Overlay{
		{
			Key:      prefix + ":bbox",
			Kind:     domain.OverlayRectangle,
			Points:   []domain.Point{sw, ne},
			Strokes:  guide,
			ToBack:   true,
			Building: buildingID,
		},
		{
			Key:      prefix + ":guide-east",
			Kind:     domain.OverlayLine,
			Points:   []domain.Point{{Lat: maxLatitude, Lon: ne.Lon}, {Lat: -maxLatitude, Lon: ne.Lon}},
			Strokes:  guide,
			Building: buildingID,
		},
		{
			Key:      prefix + ":guide-north",
			Kind:     domain.OverlayLine,
			Points:   []domain.Point{{Lat: ne.Lat, Lon: maxLongitude}, {Lat: ne.Lat, Lon: -maxLongitude}},
			Strokes:  guide,
			Building: buildingID,
		},
		{
			Key:      prefix + ":guide-west",
			Kind:     domain.OverlayLine,
			Points:   []domain.Point{{Lat: maxLatitude, Lon: sw.Lon}, {Lat: -maxLatitude, Lon: sw.Lon}},
			Strokes:  guide,
			Building: buildingID,
		},
		{
			Key:      prefix + ":guide-south",
			Kind:     domain.OverlayLine,
			Points:   []domain.Point{{Lat: sw.Lat, Lon: maxLongitude}, {Lat: sw.Lat, Lon: -maxLongitude}},
			Strokes:  guide,
			Building: buildingID,
		},
	}

	m.footprint = m.draw(buildingID, overlays)
	return nil
}

// LeaveFootprint снимает набор, только если он принадлежит этому зданию
func (m *HoverOverlayManager) LeaveFootprint(buildingID string) {
	if m.footprint == nil || m.footprint.owner != buildingID {
		return
	}
	m.ClearFootprintOverlay()
}

// ClearFootprintOverlay снимает активный набор футпринта, если он есть
func (m *HoverOverlayManager) ClearFootprintOverlay() {
	m.erase(m.footprint)
	m.footprint = nil
}

// EnterDistanceEntry соединяет выбранное здание с зданием строки списка:
// линия из двух штрихов, круг вокруг невыбранного здания и подпись с милями.
func (m *HoverOverlayManager) EnterDistanceEntry(fromID, toID string) error {
	if !m.selection.State().Is(fromID) {
		return errors.ErrNoSelection.WithDetails(map[string]interface{}{
			"from_id": fromID,
		})
	}
	if fromID == toID {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"to_id": "must differ from from_id",
		})
	}

	from, err := m.catalog.MustGet(fromID)
	if err != nil {
		return err
	}
	to, err := m.catalog.MustGet(toID)
	if err != nil {
		m.logger.Error("Hover of unknown distance entry", zap.String("to_id", toID))
		return err
	}

	m.ClearDistanceOverlay()

	meters := DistanceMeters(from.Centroid, to.Centroid)
	owner := distanceOwner(fromID, toID)
	prefix := "distance:" + owner

	overlays := []domain.Overlay{
		{
			Key:      prefix + ":link",
			Kind:     domain.OverlayLine,
			Points:   []domain.Point{from.Centroid, to.Centroid},
			Strokes:  []domain.Stroke{m.style.LinkOutline, m.style.LinkInner},
			Building: toID,
		},
		{
			Key:      prefix + ":proximity",
			Kind:     domain.OverlayCircle,
			Points:   []domain.Point{to.Centroid},
			Strokes:  []domain.Stroke{m.style.LinkInner},
			Radius:   m.style.ProximityRadius,
			Building: toID,
		},
		{
			Key:      prefix + ":label",
			Kind:     domain.OverlayLabel,
			Points:   []domain.Point{to.Centroid},
			Text:     FormatMiles(meters) + " mi",
			Building: toID,
		},
	}

	m.distance = m.draw(owner, overlays)
	return nil
}

// LeaveDistanceEntry снимает набор строки списка, если он принадлежит этой паре зданий
func (m *HoverOverlayManager) LeaveDistanceEntry(fromID, toID string) {
	if m.distance == nil || m.distance.owner != distanceOwner(fromID, toID) {
		return
	}
	m.ClearDistanceOverlay()
}

// ClearDistanceOverlay снимает активный набор списка расстояний, если он есть
func (m *HoverOverlayManager) ClearDistanceOverlay() {
	m.erase(m.distance)
	m.distance = nil
}

func (m *HoverOverlayManager) draw(owner string, overlays []domain.Overlay) *overlaySet {
	set := &overlaySet{owner: owner, keys: make([]string, 0, len(overlays))}
	for _, o := range overlays {
		m.surface.AddOverlay(o)
		set.keys = append(set.keys, o.Key)
	}
	return set
}

func (m *HoverOverlayManager) erase(set *overlaySet) {
	if set == nil {
		return
	}
	for _, key := range set.keys {
		m.surface.RemoveOverlay(key)
	}
}

func distanceOwner(fromID, toID string) string {
	return fmt.Sprintf("%s>%s", fromID, toID)
}
