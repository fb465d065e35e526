package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/pkg/errors"
	"github.com/carrier-hotel-map/internal/pkg/utils"
	"github.com/carrier-hotel-map/internal/pkg/validator"
	"github.com/carrier-hotel-map/internal/usecase"
	"github.com/carrier-hotel-map/internal/usecase/dto"
)

// BuildingHandler - обработчик запросов к набору зданий
type BuildingHandler struct {
	buildingUC *usecase.BuildingUseCase
	logger     *zap.Logger
}

// NewBuildingHandler - создание нового BuildingHandler
func NewBuildingHandler(buildingUC *usecase.BuildingUseCase, logger *zap.Logger) *BuildingHandler {
	return &BuildingHandler{
		buildingUC: buildingUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Список зданий
// @Description Возвращает здания в порядке набора данных вместе с отформатированным адресом и geohash
// @Tags Buildings
// @Produce json
// @Param offset query int false "Смещение" default(0)
// @Param limit query int false "Максимальное количество зданий (по умолчанию все)"
// @Success 200 {object} utils.SuccessResponse{data=dto.BuildingListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/buildings [get]
func (h *BuildingHandler) List(c *fiber.Ctx) error {
	var req dto.BuildingListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"query": err.Error(),
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.buildingUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetAddress godoc
// @Summary Адрес здания
// @Description Адрес без дублирования названия и строки "дом улица", а также готовый HTML для панели
// @Tags Buildings
// @Produce json
// @Param id path string true "Идентификатор здания (например way/123)"
// @Success 200 {object} utils.SuccessResponse{data=dto.AddressResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/buildings/{id}/address [get]
func (h *BuildingHandler) GetAddress(c *fiber.Ctx) error {
	buildingID, err := buildingIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.buildingUC.GetAddress(c.Context(), buildingID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetDistances godoc
// @Summary Расстояния от здания
// @Description Расстояния по большому кругу до всех остальных зданий в порядке набора данных
// @Tags Buildings
// @Produce json
// @Param id path string true "Идентификатор здания"
// @Success 200 {object} utils.SuccessResponse{data=dto.DistancesResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/buildings/{id}/distances [get]
func (h *BuildingHandler) GetDistances(c *fiber.Ctx) error {
	buildingID, err := buildingIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.buildingUC.GetDistances(c.Context(), buildingID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Distances),
	})
}
