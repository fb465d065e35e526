package postgresosm

const (
	SRID4326 = 4326

	LimitBuildings = 10000

	// GeohashPrecision - длина geohash здания (~150 м)
	GeohashPrecision = 7
)

const (
	planetPolygonTable = "planet_osm_polygon"
)
