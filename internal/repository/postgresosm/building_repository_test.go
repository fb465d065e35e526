package postgresosm

import (
	"context"
	"strings"
	"testing"
)

func TestBuildingRepository_LoadAll(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)
	skipIfNoOSMData(t, db)

	repo := NewBuildingRepository(db, []string{"data_center", "datacenter", "telecom"})
	ctx := context.Background()

	buildings, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("Failed to load buildings: %v", err)
	}
	if len(buildings) == 0 {
		t.Skip("No data center buildings in test database")
	}

	seen := make(map[string]struct{}, len(buildings))
	for _, b := range buildings {
		if !strings.HasPrefix(b.ID, "way/") && !strings.HasPrefix(b.ID, "relation/") {
			t.Errorf("Unexpected building id %q", b.ID)
		}
		if _, dup := seen[b.ID]; dup {
			t.Errorf("Duplicate building id %q", b.ID)
		}
		seen[b.ID] = struct{}{}

		assertValidCoordinates(t, b.Centroid.Lat, b.Centroid.Lon)
		assertInRange(t, b.Centroid.Lat, b.BBox.MinLat, b.BBox.MaxLat, "centroid latitude")
		assertInRange(t, b.Centroid.Lon, b.BBox.MinLon, b.BBox.MaxLon, "centroid longitude")
		assertNotEmpty(t, b.Geohash, "geohash")
	}
}

func TestBuildingRepository_NoMatchingTags(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)
	skipIfNoOSMData(t, db)

	repo := NewBuildingRepository(db, []string{"no-such-building-tag"})

	buildings, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to load buildings: %v", err)
	}
	if len(buildings) != 0 {
		t.Errorf("Expected no buildings, got %d", len(buildings))
	}
}
