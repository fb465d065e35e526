package repository

import (
	"context"

	"github.com/carrier-hotel-map/internal/domain"
)

// BuildingRepository - источник зданий (geojson файл, OSM база и т.п.)
type BuildingRepository interface {
	// LoadAll возвращает все здания в порядке источника
	LoadAll(ctx context.Context) ([]*domain.Building, error)

	// Source - имя источника, используется в ключах кеша и логах
	Source() string
}
