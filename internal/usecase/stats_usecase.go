package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/usecase/dto"
)

// StatsUseCase собирает статистику по загруженному набору и открытым сессиям
type StatsUseCase struct {
	catalog  *BuildingCatalog
	sessions *MapSessionUseCase
	source   string
	loadedAt time.Time
	logger   *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	catalog *BuildingCatalog,
	sessions *MapSessionUseCase,
	source string,
	loadedAt time.Time,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		catalog:  catalog,
		sessions: sessions,
		source:   source,
		loadedAt: loadedAt,
		logger:   logger,
	}
}

// GetStatistics возвращает статистику набора зданий
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{
		DatasetSource:  uc.source,
		LoadedAt:       uc.loadedAt,
		Buildings:      uc.catalog.Len(),
		ActiveSessions: uc.sessions.Count(),
		Bounds:         uc.catalog.Bounds(),
	}

	for _, b := range uc.catalog.All() {
		if b.Name != nil {
			stats.Named++
		}
		if !FormatAddress(b).IsEmpty() {
			stats.WithAddress++
		}
		if b.Name == nil && b.HouseNumber == nil && b.Street == nil {
			stats.Anonymous++
		}
	}

	uc.logger.Debug("Statistics computed",
		zap.Int("buildings", stats.Buildings),
		zap.Int("sessions", stats.ActiveSessions))

	return stats, nil
}
