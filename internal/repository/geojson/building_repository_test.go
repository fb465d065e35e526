package geojson

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pkgerrors "github.com/carrier-hotel-map/internal/pkg/errors"
)

const sampleCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "osm_id": 264768896,
        "name": "60 Hudson Street",
        "addr:housenumber": "60",
        "addr:street": "Hudson Street",
        "addr:city": "New York",
        "addr:state": "NY",
        "addr:postcode": "10013"
      },
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-74.0090, 40.7170], [-74.0080, 40.7170], [-74.0080, 40.7180], [-74.0090, 40.7180], [-74.0090, 40.7170]]]
      }
    },
    {
      "type": "Feature",
      "id": "way/42",
      "properties": {
        "name": "Telx",
        "addr:street": "  ",
        "addr:city": null
      },
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [[[[-74.0040, 40.7400], [-74.0020, 40.7400], [-74.0020, 40.7420], [-74.0040, 40.7400]]]]
      }
    }
  ]
}`

func TestParseBuildings(t *testing.T) {
	buildings, err := ParseBuildings([]byte(sampleCollection))
	require.NoError(t, err)
	require.Len(t, buildings, 2)

	hudson := buildings[0]
	assert.Equal(t, "264768896", hudson.ID)
	assert.Equal(t, "60 Hudson Street", *hudson.Name)
	assert.Equal(t, "60", *hudson.HouseNumber)
	assert.Equal(t, "10013", *hudson.PostalCode)
	assert.InDelta(t, 40.7175, hudson.Centroid.Lat, 1e-9)
	assert.InDelta(t, -74.0085, hudson.Centroid.Lon, 1e-9)
	assert.InDelta(t, 40.7170, hudson.BBox.MinLat, 1e-9)
	assert.InDelta(t, -74.0080, hudson.BBox.MaxLon, 1e-9)
	assert.Len(t, hudson.Geohash, 7)
	assert.Equal(t, "dr5reuk", hudson.Geohash)

	telx := buildings[1]
	assert.Equal(t, "way/42", telx.ID)
	assert.Nil(t, telx.Street, "blank attribute must be absent")
	assert.Nil(t, telx.City)
	assert.Nil(t, telx.HouseNumber)
	assert.InDelta(t, 40.7410, telx.Centroid.Lat, 1e-9)
}

func TestParseBuildings_Errors(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseBuildings([]byte(`{"type":`))
		assert.True(t, stderrors.Is(err, pkgerrors.ErrDatasetError))
	})

	t.Run("feature without id", func(t *testing.T) {
		data := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"x"},"geometry":{"type":"Point","coordinates":[1,2]}}]}`
		_, err := ParseBuildings([]byte(data))
		assert.True(t, stderrors.Is(err, pkgerrors.ErrDatasetError))
		assert.Contains(t, err.Error(), "feature 0")
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		data := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"osm_id":"way/7"},"geometry":{"type":"Point","coordinates":[-74.0,95.0]}}]}`
		_, err := ParseBuildings([]byte(data))
		assert.True(t, stderrors.Is(err, pkgerrors.ErrInvalidCoordinates))
		assert.Contains(t, err.Error(), "feature 0")
	})
}

func TestBuildingRepository_LoadAll(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "buildings.geojson")
	require.NoError(t, os.WriteFile(path, []byte(sampleCollection), 0o600))

	repo := NewBuildingRepository(path, zap.NewNop())
	assert.Equal(t, "geojson:"+path, repo.Source())

	buildings, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, buildings, 2)

	missing := NewBuildingRepository(filepath.Join(dir, "missing.geojson"), zap.NewNop())
	_, err = missing.LoadAll(ctx)
	assert.True(t, stderrors.Is(err, pkgerrors.ErrDatasetError))
}

func TestBuildingRepository_BundledDataset(t *testing.T) {
	repo := NewBuildingRepository(filepath.Join("..", "..", "..", "data", "datacenters_carrier_hotels.geojson"), zap.NewNop())

	buildings, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, buildings, 6)

	seen := make(map[string]bool, len(buildings))
	for _, b := range buildings {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
		assert.Len(t, b.Geohash, 7)
	}

	assert.Equal(t, "60 Hudson Street", *buildings[0].Name)
	assert.Nil(t, buildings[5].Street)
}
