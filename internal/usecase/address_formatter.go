package usecase

import (
	"strings"

	"github.com/carrier-hotel-map/internal/domain"
)

// FormatAddress строит адрес здания из сырых атрибутов.
// Если name совпадает с "номер дома + улица", вторая строка не дублируется.
func FormatAddress(b *domain.Building) domain.Address {
	name := b.Name

	parts := make([]string, 0, 2)
	if b.HouseNumber != nil {
		parts = append(parts, *b.HouseNumber)
	}
	if b.Street != nil {
		parts = append(parts, *b.Street)
	}
	houseStreet := strings.TrimSpace(strings.Join(parts, " "))

	addr := domain.Address{
		Line1: name,
		City:  b.City,
		State: b.State,
		Zip:   b.PostalCode,
	}

	// absent name compares as empty
	if domain.StringValue(name) == houseStreet {
		return addr
	}
	if houseStreet != "" {
		addr.Line2 = &houseStreet
	}
	return addr
}
