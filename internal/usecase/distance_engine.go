package usecase

import (
	"math"
	"strconv"

	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/pkg/errors"
	"github.com/carrier-hotel-map/internal/pkg/utils"
)

const milesPerKilometer = 0.6214

// DistanceMeters - расстояние по большому кругу между центроидами, в метрах
func DistanceMeters(a, b domain.Point) float64 {
	return utils.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
}

// DistancesFrom строит записи расстояний от selectedID до всех остальных зданий
// в порядке входного списка. Если selectedID нет среди зданий - ErrBuildingNotFound.
func DistancesFrom(selectedID string, buildings []*domain.Building) ([]domain.DistanceRecord, error) {
	var from *domain.Building
	for _, b := range buildings {
		if b.ID == selectedID {
			from = b
			break
		}
	}
	if from == nil {
		return nil, errors.ErrBuildingNotFound.WithDetails(map[string]interface{}{
			"building_id": selectedID,
		})
	}

	records := make([]domain.DistanceRecord, 0, len(buildings)-1)
	for _, b := range buildings {
		if b.ID == selectedID {
			continue
		}
		records = append(records, domain.DistanceRecord{
			FromID:         selectedID,
			ToID:           b.ID,
			DistanceMeters: DistanceMeters(from.Centroid, b.Centroid),
		})
	}
	return records, nil
}

// MetersToMiles переводит метры в мили с округлением до сотых. Только для показа.
func MetersToMiles(m float64) float64 {
	return math.Round((m/1000)*milesPerKilometer*100) / 100
}

// FormatMiles - мили с двумя знаками после запятой, например "1.00"
func FormatMiles(m float64) string {
	return strconv.FormatFloat(MetersToMiles(m), 'f', 2, 64)
}
