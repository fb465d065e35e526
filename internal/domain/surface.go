package domain

// MapSurface - то, что умеет рисовать карта. Реализуется адаптером рендера.
type MapSurface interface {
	// SetFootprintStyle меняет стиль одного футпринта
	SetFootprintStyle(buildingID string, style FootprintStyle)

	// ResetFootprintStyles возвращает всем футпринтам стиль по умолчанию
	ResetFootprintStyles()

	// AddOverlay добавляет оверлей
	AddOverlay(o Overlay)

	// RemoveOverlay удаляет оверлей по ключу; удаление отсутствующего ключа - no-op
	RemoveOverlay(key string)

	// PanTo центрирует карту на точке без смены зума
	PanTo(center Point)

	// SetView выставляет центр и зум
	SetView(center Point, zoom float64)
}

// InfoPanels - панели адреса и списка расстояний
type InfoPanels interface {
	ShowAddress(addr Address)
	ClearAddress()
	ShowDistances(entries []DistanceEntry)
	ClearDistances()
}
