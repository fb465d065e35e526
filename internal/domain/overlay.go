package domain

// OverlayKind - тип временного графического объекта на карте
type OverlayKind string

const (
	OverlayRectangle OverlayKind = "rectangle"
	OverlayLine      OverlayKind = "line"
	OverlayCircle    OverlayKind = "circle"
	OverlayLabel     OverlayKind = "label"
)

// Stroke - один штрих линии или контура
type Stroke struct {
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
}

// Overlay - оверлей, добавляемый при наведении. Key уникален и используется для удаления.
type Overlay struct {
	Key    string      `json:"key"`
	Kind   OverlayKind `json:"kind"`
	Points []Point     `json:"points,omitempty"`
	// Strokes рисуются по порядку, первый - нижний
	Strokes  []Stroke `json:"strokes,omitempty"`
	Radius   float64  `json:"radius,omitempty"` // meters
	Text     string   `json:"text,omitempty"`
	ToBack   bool     `json:"to_back,omitempty"`
	Building string   `json:"building_id,omitempty"`
}

// FootprintStyle - стиль полигона здания
type FootprintStyle struct {
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	FillColor   string  `json:"fill_color"`
	FillOpacity float64 `json:"fill_opacity"`
}
