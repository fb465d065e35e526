package domain

import "strings"

// Address - форматированный почтовый адрес здания. Не хранится, пересчитывается на каждый запрос.
type Address struct {
	Line1 *string `json:"line1"`
	Line2 *string `json:"line2"`
	City  *string `json:"city"`
	State *string `json:"state"`
	Zip   *string `json:"zip"`
}

// Render собирает адрес для панели: line1, line2 и city заканчиваются переносом,
// state - пробелом, zip идёт последним. Отсутствующие поля пропускаются.
func (a Address) Render(lineBreak string) string {
	var sb strings.Builder
	for _, line := range []*string{a.Line1, a.Line2, a.City} {
		if line != nil {
			sb.WriteString(*line)
			sb.WriteString(lineBreak)
		}
	}
	if a.State != nil {
		sb.WriteString(*a.State)
		sb.WriteString(" ")
	}
	if a.Zip != nil {
		sb.WriteString(*a.Zip)
	}
	return sb.String()
}

// IsEmpty - true, если ни одного поля нет
func (a Address) IsEmpty() bool {
	return a.Line1 == nil && a.Line2 == nil && a.City == nil && a.State == nil && a.Zip == nil
}
