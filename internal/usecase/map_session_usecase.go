package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/pkg/errors"
	"github.com/carrier-hotel-map/internal/scene"
	"github.com/carrier-hotel-map/internal/usecase/dto"
)

// mapSession - одна независимая карта: своя сцена, выбор и hover-оверлеи.
// Жесты одной сессии выполняются строго по очереди.
type mapSession struct {
	id         string
	mu         sync.Mutex
	scene      *scene.Scene
	selection  *SelectionController
	hover      *HoverOverlayManager
	createdAt  time.Time
	lastActive time.Time
}

// MapSessionUseCase управляет сессиями карты
type MapSessionUseCase struct {
	catalog *BuildingCatalog
	style   MapStyle
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*mapSession
}

func NewMapSessionUseCase(catalog *BuildingCatalog, style MapStyle, logger *zap.Logger) *MapSessionUseCase {
	return &MapSessionUseCase{
		catalog:  catalog,
		style:    style,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*mapSession),
	}
}

// Create открывает новую сессию карты со стартовым видом
func (uc *MapSessionUseCase) Create(ctx context.Context) (*dto.GestureResponse, error) {
	sc := scene.New(scene.View{Center: uc.style.StartCenter, Zoom: uc.style.StartZoom})
	selection := NewSelectionController(uc.catalog, sc, sc, uc.style, uc.logger)

	now := uc.now()
	s := &mapSession{
		id:         uuid.NewString(),
		scene:      sc,
		selection:  selection,
		hover:      NewHoverOverlayManager(uc.catalog, sc, selection, uc.style, uc.logger),
		createdAt:  now,
		lastActive: now,
	}

	// the client starts from a blank map
	sc.SetView(uc.style.StartCenter, uc.style.StartZoom)

	uc.mu.Lock()
	uc.sessions[s.id] = s
	uc.mu.Unlock()

	uc.logger.Info("Map session created", zap.String("session_id", s.id))

	return uc.respond(s), nil
}

// Get возвращает текущее состояние сессии без изменения
func (uc *MapSessionUseCase) Get(ctx context.Context, sessionID string) (*dto.GestureResponse, error) {
	return uc.gesture(sessionID, func(s *mapSession) error { return nil })
}

// Delete закрывает сессию
func (uc *MapSessionUseCase) Delete(ctx context.Context, sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.sessions[sessionID]; !ok {
		return sessionNotFound(sessionID)
	}
	delete(uc.sessions, sessionID)

	uc.logger.Info("Map session closed", zap.String("session_id", sessionID))
	return nil
}

// Toggle - клик по футпринту. Оверлей списка расстояний снимается до смены выбора:
// после перестроения списка его leave уже не придёт.
func (uc *MapSessionUseCase) Toggle(ctx context.Context, sessionID string, req dto.ToggleRequest) (*dto.GestureResponse, error) {
	return uc.gesture(sessionID, func(s *mapSession) error {
		if _, ok := uc.catalog.Get(req.BuildingID); ok {
			s.hover.ClearDistanceOverlay()
		}
		_, err := s.selection.Toggle(req.BuildingID)
		return err
	})
}

// Reset - возврат к стартовому виду
func (uc *MapSessionUseCase) Reset(ctx context.Context, sessionID string) (*dto.GestureResponse, error) {
	return uc.gesture(sessionID, func(s *mapSession) error {
		s.hover.ClearDistanceOverlay()
		s.selection.Reset()
		return nil
	})
}

// EnterFootprint - наведение на футпринт
func (uc *MapSessionUseCase) EnterFootprint(ctx context.Context, sessionID string, req dto.FootprintHoverRequest) (*dto.GestureResponse, error) {
	return uc.gesture(sessionID, func(s *mapSession) error {
		return s.hover.EnterFootprint(req.BuildingID)
	})
}

// LeaveFootprint - уход курсора с футпринта
func (uc *MapSessionUseCase) LeaveFootprint(ctx context.Context, sessionID string, req dto.FootprintHoverRequest) (*dto.GestureResponse, error) {
	return uc.gesture(sessionID, func(s *mapSession) error {
		s.hover.LeaveFootprint(req.BuildingID)
		return nil
	})
}

// EnterDistanceEntry - наведение на строку списка расстояний
func (uc *MapSessionUseCase) EnterDistanceEntry(ctx context.Context, sessionID string, req dto.DistanceHoverRequest) (*dto.GestureResponse, error) {
	return uc.gesture(sessionID, func(s *mapSession) error {
		return s.hover.EnterDistanceEntry(req.FromID, req.ToID)
	})
}

// LeaveDistanceEntry - уход курсора со строки списка расстояний
func (uc *MapSessionUseCase) LeaveDistanceEntry(ctx context.Context, sessionID string, req dto.DistanceHoverRequest) (*dto.GestureResponse, error) {
	return uc.gesture(sessionID, func(s *mapSession) error {
		s.hover.LeaveDistanceEntry(req.FromID, req.ToID)
		return nil
	})
}

// EvictIdle закрывает сессии, неактивные дольше maxIdle. Возвращает число закрытых.
func (uc *MapSessionUseCase) EvictIdle(ctx context.Context, maxIdle time.Duration) int {
	cutoff := uc.now().Add(-maxIdle)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	evicted := 0
	for id, s := range uc.sessions {
		s.mu.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mu.Unlock()

		if idle {
			delete(uc.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		uc.logger.Info("Idle map sessions evicted",
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(uc.sessions)))
	}
	return evicted
}

// Count - число открытых сессий
func (uc *MapSessionUseCase) Count() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.sessions)
}

func (uc *MapSessionUseCase) gesture(sessionID string, apply func(s *mapSession) error) (*dto.GestureResponse, error) {
	uc.mu.RLock()
	s, ok := uc.sessions[sessionID]
	uc.mu.RUnlock()
	if !ok {
		return nil, sessionNotFound(sessionID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = uc.now()
	if err := apply(s); err != nil {
		// failed gestures must not leak half-applied commands into the next response
		s.scene.Drain()
		uc.logger.Warn("Map gesture rejected",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, err
	}

	return uc.respond(s), nil
}

func (uc *MapSessionUseCase) respond(s *mapSession) *dto.GestureResponse {
	return &dto.GestureResponse{
		SessionID: s.id,
		Selection: dto.NewSelectionDTO(s.selection.State()),
		Commands:  s.scene.Drain(),
		Scene:     s.scene.Snapshot(),
	}
}

func sessionNotFound(sessionID string) error {
	return errors.ErrSessionNotFound.WithDetails(map[string]interface{}{
		"session_id": sessionID,
	})
}
