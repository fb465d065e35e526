package domain

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// Center - центр bbox, используется как центроид здания
func (b BoundingBox) Center() Point {
	return Point{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// NorthEast - северо-восточный угол
func (b BoundingBox) NorthEast() Point {
	return Point{Lat: b.MaxLat, Lon: b.MaxLon}
}

// SouthWest - юго-западный угол
func (b BoundingBox) SouthWest() Point {
	return Point{Lat: b.MinLat, Lon: b.MinLon}
}
