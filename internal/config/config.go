package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	OSMDB   DatabaseConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Log     LogConfig
	Session SessionConfig
	Map     MapConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

const (
	DatasetSourceGeoJSON = "geojson"
	DatasetSourceOSM     = "osm"
)

// DatasetConfig - откуда загружаются здания
type DatasetConfig struct {
	Source    string // geojson | osm
	Path      string
	StrictIDs bool
	// теги building/telecom, по которым отбираются полигоны в planet_osm_polygon
	OSMBuildingTags []string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	DatasetCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// MapConfig - стили футпринтов и оверлеев, стартовый вид карты
type MapConfig struct {
	FillColor          string
	HighlightFillColor string
	OutlineColor       string
	OutlineWeight      float64
	FillOpacity        float64
	GuideColor         string
	GuideWeight        float64
	LinkOutlineColor   string
	LinkOutlineWeight  float64
	LinkInnerColor     string
	LinkInnerWeight    float64
	ProximityRadius    float64 // meters
	StartLat           float64
	StartLon           float64
	StartZoom          float64
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env опционален, в контейнере всё приходит из окружения
		if !errors.Is(err, fs.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			CORSOrigins: viper.GetString("API_CORS_ORIGINS"),
		},
		Dataset: DatasetConfig{
			Source:          viper.GetString("DATASET_SOURCE"),
			Path:            viper.GetString("DATASET_PATH"),
			StrictIDs:       !viper.IsSet("DATASET_STRICT_IDS") || viper.GetBool("DATASET_STRICT_IDS"),
			OSMBuildingTags: parseList(viper.GetString("DATASET_OSM_TAGS")),
		},
		OSMDB: DatabaseConfig{
			Host:            viper.GetString("OSM_DB_HOST"),
			Port:            viper.GetInt("OSM_DB_PORT"),
			User:            viper.GetString("OSM_DB_USER"),
			Password:        viper.GetString("OSM_DB_PASSWORD"),
			DBName:          viper.GetString("OSM_DB_NAME"),
			SSLMode:         viper.GetString("OSM_DB_SSLMODE"),
			MaxConns:        viper.GetInt("OSM_DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("OSM_DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("OSM_DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("OSM_DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DatasetCacheTTL: time.Duration(viper.GetInt("DATASET_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Session: SessionConfig{
			IdleTTL:       time.Duration(viper.GetInt("SESSION_IDLE_TTL")) * time.Second,
			SweepInterval: time.Duration(viper.GetInt("SESSION_SWEEP_INTERVAL")) * time.Second,
		},
		Map: MapConfig{
			FillColor:          viper.GetString("MAP_FILL_COLOR"),
			HighlightFillColor: viper.GetString("MAP_HIGHLIGHT_FILL_COLOR"),
			OutlineColor:       viper.GetString("MAP_OUTLINE_COLOR"),
			OutlineWeight:      viper.GetFloat64("MAP_OUTLINE_WEIGHT"),
			FillOpacity:        viper.GetFloat64("MAP_FILL_OPACITY"),
			GuideColor:         viper.GetString("MAP_GUIDE_COLOR"),
			GuideWeight:        viper.GetFloat64("MAP_GUIDE_WEIGHT"),
			LinkOutlineColor:   viper.GetString("MAP_LINK_OUTLINE_COLOR"),
			LinkOutlineWeight:  viper.GetFloat64("MAP_LINK_OUTLINE_WEIGHT"),
			LinkInnerColor:     viper.GetString("MAP_LINK_INNER_COLOR"),
			LinkInnerWeight:    viper.GetFloat64("MAP_LINK_INNER_WEIGHT"),
			ProximityRadius:    viper.GetFloat64("MAP_PROXIMITY_RADIUS"),
			StartLat:           viper.GetFloat64("MAP_START_LAT"),
			StartLon:           viper.GetFloat64("MAP_START_LON"),
			StartZoom:          viper.GetFloat64("MAP_START_ZOOM"),
		},
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Set default values if not provided
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.CORSOrigins == "" {
		c.Server.CORSOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Dataset.Source == "" {
		c.Dataset.Source = DatasetSourceGeoJSON
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = "data/datacenters_carrier_hotels.geojson"
	}
	if len(c.Dataset.OSMBuildingTags) == 0 {
		c.Dataset.OSMBuildingTags = []string{"data_center", "datacenter", "telecom"}
	}
	if c.OSMDB.SSLMode == "" {
		c.OSMDB.SSLMode = "disable"
	}
	if c.OSMDB.MaxConns == 0 {
		c.OSMDB.MaxConns = 5
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Cache.DatasetCacheTTL == 0 {
		c.Cache.DatasetCacheTTL = 24 * time.Hour
	}
	if c.Session.IdleTTL == 0 {
		c.Session.IdleTTL = 30 * time.Minute
	}
	if c.Session.SweepInterval == 0 {
		c.Session.SweepInterval = time.Minute
	}
	c.Map.applyDefaults()
}

func (m *MapConfig) applyDefaults() {
	if m.FillColor == "" {
		m.FillColor = "#faa627"
	}
	if m.HighlightFillColor == "" {
		m.HighlightFillColor = "#ff00ff"
	}
	if m.OutlineColor == "" {
		m.OutlineColor = "#000000"
	}
	if m.OutlineWeight == 0 {
		m.OutlineWeight = 2.5
	}
	if m.FillOpacity == 0 {
		m.FillOpacity = 1
	}
	if m.GuideColor == "" {
		m.GuideColor = "#444444"
	}
	if m.GuideWeight == 0 {
		m.GuideWeight = 1
	}
	if m.LinkOutlineColor == "" {
		m.LinkOutlineColor = "#000000"
	}
	if m.LinkOutlineWeight == 0 {
		m.LinkOutlineWeight = 6
	}
	if m.LinkInnerColor == "" {
		m.LinkInnerColor = "#ff00ff"
	}
	if m.LinkInnerWeight == 0 {
		m.LinkInnerWeight = 3
	}
	if m.ProximityRadius == 0 {
		m.ProximityRadius = 100
	}
	if m.StartLat == 0 && m.StartLon == 0 {
		m.StartLat = 40.723
		m.StartLon = -74.000
	}
	if m.StartZoom == 0 {
		m.StartZoom = 14.35
	}
}

// Validate проверяет значения, которые нельзя молча заменить дефолтами
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceGeoJSON, DatasetSourceOSM:
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.Dataset.Source)
	}
	if c.Map.ProximityRadius < 0 {
		return fmt.Errorf("MAP_PROXIMITY_RADIUS must be positive")
	}
	return nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
