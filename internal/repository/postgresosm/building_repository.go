package postgresosm

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mmcloughlin/geohash"
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/domain/repository"
	pkgerrors "github.com/carrier-hotel-map/internal/pkg/errors"
)

// buildingSelect - здания дата-центров и телеком-узлов из planet_osm_polygon.
// bbox берётся из ST_Envelope в 4326, адрес - из hstore tags.
var buildingSelect = fmt.Sprintf(`
	WITH candidates AS (
		SELECT
			osm_id,
			name,
			tags,
			ST_Envelope(ST_Transform(way, %d)) AS env
		FROM %s
		WHERE building IS NOT NULL
		  AND (
			building = ANY($1)
			OR tags->'telecom' = ANY($1)
			OR tags->'building:use' = ANY($1)
		  )
	)
	SELECT
		osm_id,
		COALESCE(name, '') AS name,
		COALESCE(tags->'addr:housenumber', '') AS house_number,
		COALESCE(tags->'addr:street', '') AS street,
		COALESCE(tags->'addr:city', '') AS city,
		COALESCE(tags->'addr:state', '') AS state,
		COALESCE(tags->'addr:postcode', '') AS postcode,
		ST_YMin(env) AS min_lat,
		ST_XMin(env) AS min_lon,
		ST_YMax(env) AS max_lat,
		ST_XMax(env) AS max_lon
	FROM candidates
	ORDER BY osm_id
	LIMIT %d
`, SRID4326, planetPolygonTable, LimitBuildings)

type buildingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
	tags   []string
}

type buildingRow struct {
	OSMID       int64   `db:"osm_id"`
	Name        string  `db:"name"`
	HouseNumber string  `db:"house_number"`
	Street      string  `db:"street"`
	City        string  `db:"city"`
	State       string  `db:"state"`
	Postcode    string  `db:"postcode"`
	MinLat      float64 `db:"min_lat"`
	MinLon      float64 `db:"min_lon"`
	MaxLat      float64 `db:"max_lat"`
	MaxLon      float64 `db:"max_lon"`
}

func (r buildingRow) toDomain() *domain.Building {
	bbox := domain.BoundingBox{
		MinLat: r.MinLat,
		MinLon: r.MinLon,
		MaxLat: r.MaxLat,
		MaxLon: r.MaxLon,
	}
	center := bbox.Center()

	return &domain.Building{
		ID:          formatOSMID(r.OSMID),
		Name:        domain.OptionalString(r.Name),
		HouseNumber: domain.OptionalString(r.HouseNumber),
		Street:      domain.OptionalString(r.Street),
		City:        domain.OptionalString(r.City),
		State:       domain.OptionalString(r.State),
		PostalCode:  domain.OptionalString(r.Postcode),
		Centroid:    center,
		BBox:        bbox,
		Geohash:     geohash.EncodeWithPrecision(center.Lat, center.Lon, GeohashPrecision),
	}
}

// NewBuildingRepository создает репозиторий зданий для OSM базы данных.
// tags - значения building / telecom / building:use, по которым отбираются здания.
func NewBuildingRepository(db *DB, tags []string) repository.BuildingRepository {
	return &buildingRepository{
		db:     db.DB,
		logger: db.logger,
		tags:   tags,
	}
}

func (r *buildingRepository) Source() string {
	return "osm:" + planetPolygonTable
}

func (r *buildingRepository) LoadAll(ctx context.Context) ([]*domain.Building, error) {
	var rows []buildingRow
	if err := r.db.SelectContext(ctx, &rows, buildingSelect, pq.Array(r.tags)); err != nil {
		r.logger.Error("failed to load osm buildings", zap.Strings("tags", r.tags), zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}

	buildings := make([]*domain.Building, 0, len(rows))
	for _, row := range rows {
		buildings = append(buildings, row.toDomain())
	}

	r.logger.Info("OSM buildings loaded", zap.Int("buildings", len(buildings)))
	return buildings, nil
}
