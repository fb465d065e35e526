package usecase

import (
	"github.com/carrier-hotel-map/internal/config"
	"github.com/carrier-hotel-map/internal/domain"
)

// MapStyle - стили футпринтов и оверлеев, стартовый вид карты
type MapStyle struct {
	Footprint          domain.FootprintStyle
	HighlightFillColor string
	Guide              domain.Stroke
	LinkOutline        domain.Stroke
	LinkInner          domain.Stroke
	ProximityRadius    float64 // meters
	StartCenter        domain.Point
	StartZoom          float64
	PanOnSelect        bool
}

// DefaultMapStyle - стили исходной карты
func DefaultMapStyle() MapStyle {
	return MapStyle{
		Footprint: domain.FootprintStyle{
			Color:       "#000000",
			Weight:      2.5,
			FillColor:   "#faa627",
			FillOpacity: 1,
		},
		HighlightFillColor: "#ff00ff",
		Guide:              domain.Stroke{Color: "#444444", Weight: 1},
		LinkOutline:        domain.Stroke{Color: "#000000", Weight: 6},
		LinkInner:          domain.Stroke{Color: "#ff00ff", Weight: 3},
		ProximityRadius:    100,
		StartCenter:        domain.Point{Lat: 40.723, Lon: -74.000},
		StartZoom:          14.35,
		PanOnSelect:        true,
	}
}

// Highlight - стиль выбранного здания
func (s MapStyle) Highlight() domain.FootprintStyle {
	h := s.Footprint
	h.FillColor = s.HighlightFillColor
	return h
}

// MapStyleFromConfig - стили из MAP_* переменных; дефолты заполнены в config
func MapStyleFromConfig(cfg *config.MapConfig) MapStyle {
	return MapStyle{
		Footprint: domain.FootprintStyle{
			Color:       cfg.OutlineColor,
			Weight:      cfg.OutlineWeight,
			FillColor:   cfg.FillColor,
			FillOpacity: cfg.FillOpacity,
		},
		HighlightFillColor: cfg.HighlightFillColor,
		Guide:              domain.Stroke{Color: cfg.GuideColor, Weight: cfg.GuideWeight},
		LinkOutline:        domain.Stroke{Color: cfg.LinkOutlineColor, Weight: cfg.LinkOutlineWeight},
		LinkInner:          domain.Stroke{Color: cfg.LinkInnerColor, Weight: cfg.LinkInnerWeight},
		ProximityRadius:    cfg.ProximityRadius,
		StartCenter:        domain.Point{Lat: cfg.StartLat, Lon: cfg.StartLon},
		StartZoom:          cfg.StartZoom,
		PanOnSelect:        true,
	}
}
