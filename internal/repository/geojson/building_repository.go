// Package geojson загружает здания из GeoJSON FeatureCollection с OSM-атрибутами
// (osm_id, name, addr:housenumber, addr:street, addr:city, addr:state, addr:postcode).
package geojson

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
	orbgeojson "github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/domain/repository"
	pkgerrors "github.com/carrier-hotel-map/internal/pkg/errors"
	"github.com/carrier-hotel-map/internal/pkg/utils"
)

// длина geohash: ~150 м по широте, хватает чтобы различать соседние здания
const geohashPrecision = 7

type buildingRepository struct {
	path   string
	logger *zap.Logger
}

// NewBuildingRepository создает репозиторий, читающий GeoJSON файл
func NewBuildingRepository(path string, logger *zap.Logger) repository.BuildingRepository {
	return &buildingRepository{
		path:   path,
		logger: logger,
	}
}

func (r *buildingRepository) Source() string {
	return "geojson:" + r.path
}

func (r *buildingRepository) LoadAll(ctx context.Context) ([]*domain.Building, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error("Failed to read geojson dataset", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", pkgerrors.ErrDatasetError, err)
	}

	buildings, err := ParseBuildings(data)
	if err != nil {
		r.logger.Error("Failed to parse geojson dataset", zap.String("path", r.path), zap.Error(err))
		return nil, err
	}

	r.logger.Info("GeoJSON dataset loaded",
		zap.String("path", r.path),
		zap.Int("buildings", len(buildings)))

	return buildings, nil
}

// ParseBuildings разбирает FeatureCollection. Фича без геометрии или без id - ошибка данных,
// в ошибке указывается индекс фичи.
func ParseBuildings(data []byte) ([]*domain.Building, error) {
	fc, err := orbgeojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pkgerrors.ErrDatasetError, err)
	}

	buildings := make([]*domain.Building, 0, len(fc.Features))
	for i, f := range fc.Features {
		b, err := featureToBuilding(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		buildings = append(buildings, b)
	}
	return buildings, nil
}

func featureToBuilding(f *orbgeojson.Feature) (*domain.Building, error) {
	if f.Geometry == nil {
		return nil, fmt.Errorf("%w: missing geometry", pkgerrors.ErrDatasetError)
	}

	id := featureID(f)
	if id == "" {
		return nil, fmt.Errorf("%w: missing osm_id", pkgerrors.ErrDatasetError)
	}

	bound := f.Geometry.Bound()
	if !utils.ValidateCoordinates(bound.Min.Lat(), bound.Min.Lon()) ||
		!utils.ValidateCoordinates(bound.Max.Lat(), bound.Max.Lon()) {
		return nil, fmt.Errorf("%w: %s bounds %v", pkgerrors.ErrInvalidCoordinates, id, bound)
	}
	bbox := boundToBBox(bound)
	center := bbox.Center()

	return &domain.Building{
		ID:          id,
		Name:        property(f, "name"),
		HouseNumber: property(f, "addr:housenumber"),
		Street:      property(f, "addr:street"),
		City:        property(f, "addr:city"),
		State:       property(f, "addr:state"),
		PostalCode:  property(f, "addr:postcode"),
		Centroid:    center,
		BBox:        bbox,
		Geohash:     geohash.EncodeWithPrecision(center.Lat, center.Lon, geohashPrecision),
	}, nil
}

// featureID берёт osm_id из свойств, а если его нет - id фичи
func featureID(f *orbgeojson.Feature) string {
	if v, ok := f.Properties["osm_id"]; ok && v != nil {
		return stringify(v)
	}
	if f.ID != nil {
		return stringify(f.ID)
	}
	return ""
}

func property(f *orbgeojson.Feature, key string) *string {
	v, ok := f.Properties[key]
	if !ok || v == nil {
		return nil
	}
	return domain.OptionalString(stringify(v))
}

// stringify приводит значение свойства к строке; числа из JSON приходят как float64
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}

// orb хранит точки как [lon, lat]
func boundToBBox(b orb.Bound) domain.BoundingBox {
	return domain.BoundingBox{
		MinLat: b.Min.Lat(),
		MinLon: b.Min.Lon(),
		MaxLat: b.Max.Lat(),
		MaxLon: b.Max.Lon(),
	}
}
