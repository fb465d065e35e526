package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/scene"
	"github.com/carrier-hotel-map/internal/usecase/dto"
)

// BuildingUseCase - чтение каталога без состояния сессии
type BuildingUseCase struct {
	catalog *BuildingCatalog
	logger  *zap.Logger
}

func NewBuildingUseCase(catalog *BuildingCatalog, logger *zap.Logger) *BuildingUseCase {
	return &BuildingUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// List - здания в порядке источника с пагинацией
func (uc *BuildingUseCase) List(ctx context.Context, req dto.BuildingListRequest) (*dto.BuildingListResponse, error) {
	all := uc.catalog.All()

	if req.Limit == 0 {
		req.Limit = len(all)
	}
	start := min(req.Offset, len(all))
	end := min(start+req.Limit, len(all))

	result := make([]dto.BuildingDTO, 0, end-start)
	for _, b := range all[start:end] {
		result = append(result, dto.ConvertBuilding(b, FormatAddress(b)))
	}

	return &dto.BuildingListResponse{
		Buildings: result,
		Total:     len(all),
	}, nil
}

// GetAddress - отформатированный адрес здания
func (uc *BuildingUseCase) GetAddress(ctx context.Context, buildingID string) (*dto.AddressResponse, error) {
	b, err := uc.catalog.MustGet(buildingID)
	if err != nil {
		return nil, err
	}

	addr := FormatAddress(b)
	return &dto.AddressResponse{
		BuildingID: b.ID,
		Address:    addr,
		HTML:       scene.RenderAddressHTML(addr),
	}, nil
}

// GetDistances - расстояния от здания до всех остальных
func (uc *BuildingUseCase) GetDistances(ctx context.Context, buildingID string) (*dto.DistancesResponse, error) {
	entries, err := uc.catalog.DistanceEntries(buildingID)
	if err != nil {
		uc.logger.Warn("Distances requested for unknown building", zap.String("building_id", buildingID))
		return nil, err
	}

	return &dto.DistancesResponse{
		FromID:    buildingID,
		Distances: entries,
	}, nil
}
