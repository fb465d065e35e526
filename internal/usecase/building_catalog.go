package usecase

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/domain/repository"
	"github.com/carrier-hotel-map/internal/pkg/errors"
)

// BuildingCatalog - неизменяемый набор зданий, загруженный один раз при старте.
// Сохраняет порядок источника и индексирует здания по id.
type BuildingCatalog struct {
	buildings []*domain.Building
	byID      map[string]*domain.Building
}

// NewBuildingCatalog проверяет уникальность id. В strict режиме дубликат - ошибка,
// иначе побеждает первое вхождение, а остальные логируются и отбрасываются.
func NewBuildingCatalog(buildings []*domain.Building, strict bool, logger *zap.Logger) (*BuildingCatalog, error) {
	c := &BuildingCatalog{
		buildings: make([]*domain.Building, 0, len(buildings)),
		byID:      make(map[string]*domain.Building, len(buildings)),
	}

	for i, b := range buildings {
		if _, dup := c.byID[b.ID]; dup {
			if strict {
				return nil, errors.ErrDuplicateBuildingID.WithDetails(map[string]interface{}{
					"building_id": b.ID,
					"index":       i,
				})
			}
			logger.Warn("Duplicate building id, keeping first occurrence",
				zap.String("building_id", b.ID),
				zap.Int("index", i))
			continue
		}
		c.byID[b.ID] = b
		c.buildings = append(c.buildings, b)
	}

	return c, nil
}

// LoadBuildingCatalog загружает здания из репозитория и строит каталог
func LoadBuildingCatalog(
	ctx context.Context,
	repo repository.BuildingRepository,
	strict bool,
	logger *zap.Logger,
) (*BuildingCatalog, error) {
	buildings, err := repo.LoadAll(ctx)
	if err != nil {
		logger.Error("Failed to load buildings", zap.String("source", repo.Source()), zap.Error(err))
		return nil, fmt.Errorf("load buildings from %s: %w", repo.Source(), err)
	}

	catalog, err := NewBuildingCatalog(buildings, strict, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Building catalog loaded",
		zap.String("source", repo.Source()),
		zap.Int("buildings", catalog.Len()))

	return catalog, nil
}

// Get возвращает здание по id
func (c *BuildingCatalog) Get(id string) (*domain.Building, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// MustGet возвращает здание или ErrBuildingNotFound
func (c *BuildingCatalog) MustGet(id string) (*domain.Building, error) {
	b, ok := c.byID[id]
	if !ok {
		return nil, errors.ErrBuildingNotFound.WithDetails(map[string]interface{}{
			"building_id": id,
		})
	}
	return b, nil
}

// All возвращает здания в порядке источника. Срез нельзя менять.
func (c *BuildingCatalog) All() []*domain.Building {
	return c.buildings
}

func (c *BuildingCatalog) Len() int {
	return len(c.buildings)
}

// DistanceEntries - список расстояний от здания id для панели: адрес назначения и мили
func (c *BuildingCatalog) DistanceEntries(id string) ([]domain.DistanceEntry, error) {
	records, err := DistancesFrom(id, c.buildings)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.DistanceEntry, 0, len(records))
	for _, r := range records {
		to := c.byID[r.ToID]
		entries = append(entries, domain.DistanceEntry{
			FromID:         r.FromID,
			ToID:           r.ToID,
			Address:        FormatAddress(to),
			DistanceMeters: r.DistanceMeters,
			DistanceMiles:  FormatMiles(r.DistanceMeters),
		})
	}
	return entries, nil
}

// Bounds - объединение рамок всех зданий; нулевая рамка для пустого каталога
func (c *BuildingCatalog) Bounds() domain.BoundingBox {
	if len(c.buildings) == 0 {
		return domain.BoundingBox{}
	}

	bound := toOrbBound(c.buildings[0].BBox)
	for _, b := range c.buildings[1:] {
		bound = bound.Union(toOrbBound(b.BBox))
	}

	return domain.BoundingBox{
		MinLat: bound.Min.Lat(),
		MinLon: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLon: bound.Max.Lon(),
	}
}

func toOrbBound(b domain.BoundingBox) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
}
