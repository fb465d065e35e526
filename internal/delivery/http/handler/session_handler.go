package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/pkg/utils"
	"github.com/carrier-hotel-map/internal/pkg/validator"
	"github.com/carrier-hotel-map/internal/usecase"
	"github.com/carrier-hotel-map/internal/usecase/dto"
)

// SessionHandler - обработчик жестов на карте. Каждый ответ содержит команды
// отрисовки в порядке применения и итоговую сцену сессии.
type SessionHandler struct {
	sessionUC *usecase.MapSessionUseCase
	logger    *zap.Logger
}

// NewSessionHandler - создание нового SessionHandler
func NewSessionHandler(sessionUC *usecase.MapSessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Создание сессии карты
// @Description Открывает новую независимую карту: ничего не выбрано, стартовый вид
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.GestureResponse}
// @Router /api/v1/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	result, err := h.sessionUC.Create(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, &utils.Meta{
		SessionID: result.SessionID,
	})
}

// Get godoc
// @Summary Текущая сцена сессии
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.GestureResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	result, err := h.sessionUC.Get(c.Context(), sessionIDParam(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result)
}

// Delete godoc
// @Summary Закрытие сессии
// @Tags Sessions
// @Param id path string true "ID сессии"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	if err := h.sessionUC.Delete(c.Context(), sessionIDParam(c)); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Toggle godoc
// @Summary Клик по футпринту
// @Description Выбирает здание или снимает выбор при повторном клике по тому же зданию
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.ToggleRequest true "Здание"
// @Success 200 {object} utils.SuccessResponse{data=dto.GestureResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/toggle [post]
func (h *SessionHandler) Toggle(c *fiber.Ctx) error {
	var req dto.ToggleRequest
	if err := h.bind(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sessionUC.Toggle(c.Context(), sessionIDParam(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result)
}

// Reset godoc
// @Summary Сброс вида
// @Description Снимает выбор, очищает панели и возвращает стартовый вид
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.GestureResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/reset [post]
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	result, err := h.sessionUC.Reset(c.Context(), sessionIDParam(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result)
}

// EnterFootprint godoc
// @Summary Наведение на футпринт
// @Description Рисует рамку здания и четыре направляющие до краёв карты
// @Tags Hover
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.FootprintHoverRequest true "Здание"
// @Success 200 {object} utils.SuccessResponse{data=dto.GestureResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/hover/footprint/enter [post]
func (h *SessionHandler) EnterFootprint(c *fiber.Ctx) error {
	var req dto.FootprintHoverRequest
	if err := h.bind(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sessionUC.EnterFootprint(c.Context(), sessionIDParam(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result)
}

// LeaveFootprint godoc
// @Summary Уход с футпринта
// @Tags Hover
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.FootprintHoverRequest true "Здание"
// @Success 200 {object} utils.SuccessResponse{data=dto.GestureResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/hover/footprint/leave [post]
func (h *SessionHandler) LeaveFootprint(c *fiber.Ctx) error {
	var req dto.FootprintHoverRequest
	if err := h.bind(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sessionUC.LeaveFootprint(c.Context(), sessionIDParam(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result)
}

// EnterDistanceEntry godoc
// @Summary Наведение на строку расстояния
// @Description Рисует линию между зданиями, круг вокруг цели и подпись в милях. Требует, чтобы from_id было выбрано.
// @Tags Hover
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.DistanceHoverRequest true "Пара зданий"
// @Success 200 {object} utils.SuccessResponse{data=dto.GestureResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/hover/distance/enter [post]
func (h *SessionHandler) EnterDistanceEntry(c *fiber.Ctx) error {
	var req dto.DistanceHoverRequest
	if err := h.bind(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sessionUC.EnterDistanceEntry(c.Context(), sessionIDParam(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result)
}

// LeaveDistanceEntry godoc
// @Summary Уход со строки расстояния
// @Tags Hover
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.DistanceHoverRequest true "Пара зданий"
// @Success 200 {object} utils.SuccessResponse{data=dto.GestureResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/hover/distance/leave [post]
func (h *SessionHandler) LeaveDistanceEntry(c *fiber.Ctx) error {
	var req dto.DistanceHoverRequest
	if err := h.bind(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sessionUC.LeaveDistanceEntry(c.Context(), sessionIDParam(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.send(c, result)
}

func (h *SessionHandler) bind(c *fiber.Ctx, req interface{}) error {
	if err := parseBody(c, req); err != nil {
		return err
	}
	return validator.Validate(req)
}

func (h *SessionHandler) send(c *fiber.Ctx, result *dto.GestureResponse) error {
	return utils.SendSuccess(c, result, &utils.Meta{
		SessionID: result.SessionID,
		Total:     len(result.Commands),
	})
}
