package domain

import "strings"

// Building - здание дата-центра или carrier hotel.
// Адресные поля опциональны: nil означает, что атрибут отсутствует.
type Building struct {
	ID          string      `json:"id"`
	Name        *string     `json:"name,omitempty"`
	HouseNumber *string     `json:"house_number,omitempty"`
	Street      *string     `json:"street,omitempty"`
	City        *string     `json:"city,omitempty"`
	State       *string     `json:"state,omitempty"`
	PostalCode  *string     `json:"postal_code,omitempty"`
	Centroid    Point       `json:"centroid"`
	BBox        BoundingBox `json:"bbox"`
	Geohash     string      `json:"geohash,omitempty"`
}

// OptionalString нормализует значение атрибута: пустая строка и пробелы считаются отсутствием
func OptionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// StringValue возвращает значение или пустую строку для отсутствующего атрибута
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
