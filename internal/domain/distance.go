package domain

// DistanceRecord - расстояние от выбранного здания до другого здания
type DistanceRecord struct {
	FromID         string  `json:"from_id"`
	ToID           string  `json:"to_id"`
	DistanceMeters float64 `json:"distance_meters"`
}

// DistanceEntry - строка списка расстояний: адрес здания-назначения и дистанция в милях для показа
type DistanceEntry struct {
	FromID         string  `json:"from_id"`
	ToID           string  `json:"to_id"`
	Address        Address `json:"address"`
	DistanceMeters float64 `json:"distance_meters"`
	DistanceMiles  string  `json:"distance_miles"`
}
