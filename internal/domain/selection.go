package domain

// SelectionState - выбранное здание карты: либо ничего, либо ровно одно здание
type SelectionState struct {
	buildingID string
	selected   bool
}

// Unselected - состояние без выбранного здания
func Unselected() SelectionState {
	return SelectionState{}
}

// Selected - состояние с выбранным зданием id
func Selected(id string) SelectionState {
	return SelectionState{buildingID: id, selected: true}
}

// IsSelected сообщает, выбрано ли какое-либо здание
func (s SelectionState) IsSelected() bool {
	return s.selected
}

// BuildingID возвращает id выбранного здания
func (s SelectionState) BuildingID() (string, bool) {
	return s.buildingID, s.selected
}

// Is - выбрано ли именно здание id
func (s SelectionState) Is(id string) bool {
	return s.selected && s.buildingID == id
}

// Next применяет клик по зданию id: повторный клик снимает выбор, клик по другому зданию переключает
func (s SelectionState) Next(id string) SelectionState {
	if s.Is(id) {
		return Unselected()
	}
	return Selected(id)
}

func (s SelectionState) String() string {
	if !s.selected {
		return "unselected"
	}
	return "selected(" + s.buildingID + ")"
}
