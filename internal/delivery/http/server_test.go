package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/carrier-hotel-map/internal/config"
	httpDelivery "github.com/carrier-hotel-map/internal/delivery/http"
	"github.com/carrier-hotel-map/internal/delivery/http/handler"
	"github.com/carrier-hotel-map/internal/domain"
	"github.com/carrier-hotel-map/internal/usecase"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type gesture struct {
	SessionID string `json:"session_id"`
	Selection struct {
		Selected   bool   `json:"selected"`
		BuildingID string `json:"building_id"`
	} `json:"selection"`
	Commands []struct {
		Type string `json:"type"`
	} `json:"commands"`
}

func strPtr(s string) *string { return &s }

func building(id string, name, house, street *string, lat, lon float64) *domain.Building {
	return &domain.Building{
		ID:          id,
		Name:        name,
		HouseNumber: house,
		Street:      street,
		Centroid:    domain.Point{Lat: lat, Lon: lon},
		BBox: domain.BoundingBox{
			MinLat: lat - 0.001, MinLon: lon - 0.001,
			MaxLat: lat + 0.001, MaxLon: lon + 0.001,
		},
	}
}

func newTestServer(t *testing.T) *httpDelivery.Server {
	t.Helper()
	log := zap.NewNop()

	catalog, err := usecase.NewBuildingCatalog([]*domain.Building{
		building("way/1", strPtr("60 Hudson St"), nil, nil, 40.70, -74.00),
		building("way/2", strPtr("Acme <Tower>"), strPtr("1"), strPtr("Wall St"), 40.71, -74.00),
		building("way/3", strPtr("111 8th Ave"), strPtr("111"), strPtr("8th Ave"), 40.72, -74.00),
	}, true, log)
	require.NoError(t, err)

	sessionUC := usecase.NewMapSessionUseCase(catalog, usecase.DefaultMapStyle(), log)
	buildingUC := usecase.NewBuildingUseCase(catalog, log)
	statsUC := usecase.NewStatsUseCase(catalog, sessionUC, "geojson:test", time.Now(), log)

	cfg := &config.Config{Server: config.ServerConfig{CORSOrigins: "*"}}
	return httpDelivery.NewServer(cfg, log,
		handler.NewBuildingHandler(buildingUC, log),
		handler.NewSessionHandler(sessionUC, log),
		handler.NewStatsHandler(statsUC, log),
	)
}

func do(t *testing.T, s *httpDelivery.Server, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func decodeGesture(t *testing.T, env envelope) gesture {
	t.Helper()
	var g gesture
	require.NoError(t, json.Unmarshal(env.Data, &g))
	return g
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Buildings(t *testing.T) {
	s := newTestServer(t)

	t.Run("list", func(t *testing.T) {
		status, env := do(t, s, http.MethodGet, "/api/v1/buildings?limit=2", nil)
		require.Equal(t, http.StatusOK, status)

		var list struct {
			Buildings []struct {
				ID string `json:"id"`
			} `json:"buildings"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, 3, list.Total)
		require.Len(t, list.Buildings, 2)
		assert.Equal(t, "way/1", list.Buildings[0].ID)
	})

	t.Run("invalid limit", func(t *testing.T) {
		status, env := do(t, s, http.MethodGet, "/api/v1/buildings?limit=5000", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	})

	t.Run("address with escaped id", func(t *testing.T) {
		status, env := do(t, s, http.MethodGet, "/api/v1/buildings/way%2F2/address", nil)
		require.Equal(t, http.StatusOK, status)

		var addr struct {
			BuildingID string `json:"building_id"`
			HTML       string `json:"html"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &addr))
		assert.Equal(t, "way/2", addr.BuildingID)
		assert.Equal(t, "Acme &lt;Tower&gt;<br />1 Wall St<br />", addr.HTML)
	})

	t.Run("distances", func(t *testing.T) {
		status, env := do(t, s, http.MethodGet, "/api/v1/buildings/way%2F1/distances", nil)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 2, env.Meta["total"])
	})

	t.Run("unknown building", func(t *testing.T) {
		status, env := do(t, s, http.MethodGet, "/api/v1/buildings/nope/address", nil)
		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "BUILDING_NOT_FOUND", env.Error.Code)
	})
}

func TestServer_SessionFlow(t *testing.T) {
	s := newTestServer(t)

	status, env := do(t, s, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, status)
	created := decodeGesture(t, env)
	require.NotEmpty(t, created.SessionID)
	base := "/api/v1/sessions/" + created.SessionID

	t.Run("toggle selects", func(t *testing.T) {
		status, env := do(t, s, http.MethodPost, base+"/toggle", map[string]string{"building_id": "way/1"})
		require.Equal(t, http.StatusOK, status)
		g := decodeGesture(t, env)
		assert.True(t, g.Selection.Selected)
		assert.Equal(t, "way/1", g.Selection.BuildingID)
		assert.NotEmpty(t, g.Commands)
	})

	t.Run("distance hover from selected building", func(t *testing.T) {
		status, _ := do(t, s, http.MethodPost, base+"/hover/distance/enter",
			map[string]string{"from_id": "way/1", "to_id": "way/2"})
		assert.Equal(t, http.StatusOK, status)

		status, _ = do(t, s, http.MethodPost, base+"/hover/distance/leave",
			map[string]string{"from_id": "way/1", "to_id": "way/2"})
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("distance hover from unselected building", func(t *testing.T) {
		status, env := do(t, s, http.MethodPost, base+"/hover/distance/enter",
			map[string]string{"from_id": "way/2", "to_id": "way/3"})
		assert.Equal(t, http.StatusConflict, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NO_SELECTION", env.Error.Code)
	})

	t.Run("distance hover to itself", func(t *testing.T) {
		status, _ := do(t, s, http.MethodPost, base+"/hover/distance/enter",
			map[string]string{"from_id": "way/1", "to_id": "way/1"})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("footprint hover", func(t *testing.T) {
		status, _ := do(t, s, http.MethodPost, base+"/hover/footprint/enter", map[string]string{"building_id": "way/3"})
		assert.Equal(t, http.StatusOK, status)

		status, _ = do(t, s, http.MethodPost, base+"/hover/footprint/leave", map[string]string{"building_id": "way/3"})
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("toggle without building id", func(t *testing.T) {
		status, env := do(t, s, http.MethodPost, base+"/toggle", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "required", env.Error.Details["BuildingID"])
	})

	t.Run("reset", func(t *testing.T) {
		status, env := do(t, s, http.MethodPost, base+"/reset", nil)
		require.Equal(t, http.StatusOK, status)
		assert.False(t, decodeGesture(t, env).Selection.Selected)
	})

	t.Run("stats counts the session", func(t *testing.T) {
		status, env := do(t, s, http.MethodGet, "/api/v1/stats", nil)
		require.Equal(t, http.StatusOK, status)

		var stats struct {
			Buildings      int `json:"buildings"`
			ActiveSessions int `json:"active_sessions"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &stats))
		assert.Equal(t, 3, stats.Buildings)
		assert.Equal(t, 1, stats.ActiveSessions)
	})

	t.Run("delete", func(t *testing.T) {
		status, _ := do(t, s, http.MethodDelete, base, nil)
		assert.Equal(t, http.StatusNoContent, status)

		status, env := do(t, s, http.MethodGet, base, nil)
		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "SESSION_NOT_FOUND", env.Error.Code)
	})
}
