package dto

import (
	"time"

	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/scene"
)

// SelectionDTO - состояние выбора для клиента
type SelectionDTO struct {
	Selected   bool   `json:"selected"`
	BuildingID string `json:"building_id,omitempty"`
}

func NewSelectionDTO(s domain.SelectionState) SelectionDTO {
	id, ok := s.BuildingID()
	return SelectionDTO{Selected: ok, BuildingID: id}
}

// GestureResponse - результат жеста: команды в порядке применения и итоговая сцена
type GestureResponse struct {
	SessionID string          `json:"session_id"`
	Selection SelectionDTO    `json:"selection"`
	Commands  []scene.Command `json:"commands"`
	Scene     scene.Snapshot  `json:"scene"`
}

// BuildingDTO - здание в списке
type BuildingDTO struct {
	ID       string             `json:"id"`
	Name     *string            `json:"name"`
	Centroid domain.Point       `json:"centroid"`
	BBox     domain.BoundingBox `json:"bbox"`
	Geohash  string             `json:"geohash"`
	Address  domain.Address     `json:"address"`
}

// BuildingListResponse - список зданий
type BuildingListResponse struct {
	Buildings []BuildingDTO `json:"buildings"`
	Total     int           `json:"total"`
}

// AddressResponse - адрес здания
type AddressResponse struct {
	BuildingID string         `json:"building_id"`
	Address    domain.Address `json:"address"`
	HTML       string         `json:"html"`
}

// DistancesResponse - расстояния от здания до всех остальных
type DistancesResponse struct {
	FromID    string                 `json:"from_id"`
	Distances []domain.DistanceEntry `json:"distances"`
}

func ConvertBuilding(b *domain.Building, addr domain.Address) BuildingDTO {
	return BuildingDTO{
		ID:       b.ID,
		Name:     b.Name,
		Centroid: b.Centroid,
		BBox:     b.BBox,
		Geohash:  b.Geohash,
		Address:  addr,
	}
}

// StatsResponse - статистика набора зданий и сессий
type StatsResponse struct {
	DatasetSource  string             `json:"dataset_source"`
	LoadedAt       time.Time          `json:"loaded_at"`
	Buildings      int                `json:"buildings"`
	Named          int                `json:"named"`
	WithAddress    int                `json:"with_address"`
	Anonymous      int                `json:"anonymous"`
	ActiveSessions int                `json:"active_sessions"`
	Bounds         domain.BoundingBox `json:"bounds"`
}
