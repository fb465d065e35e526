// Package scene - адаптер рендера: принимает команды от контроллеров карты,
// хранит текущее состояние карты и журнал команд для клиента.
package scene

import (
	"html"

	"github.com/carrier-hotel-map/internal/domain"
)

// CommandType - тип команды для клиентской карты
type CommandType string

const (
	CmdSetStyle       CommandType = "set_style"
	CmdResetStyles    CommandType = "reset_styles"
	CmdAddOverlay     CommandType = "add_overlay"
	CmdRemoveOverlay  CommandType = "remove_overlay"
	CmdPanTo          CommandType = "pan_to"
	CmdSetView        CommandType = "set_view"
	CmdShowAddress    CommandType = "show_address"
	CmdClearAddress   CommandType = "clear_address"
	CmdShowDistances  CommandType = "show_distances"
	CmdClearDistances CommandType = "clear_distances"
)

// Command - одна команда рендера, клиент применяет их строго по порядку
type Command struct {
	Type       CommandType            `json:"type"`
	BuildingID string                 `json:"building_id,omitempty"`
	Style      *domain.FootprintStyle `json:"style,omitempty"`
	Overlay    *domain.Overlay        `json:"overlay,omitempty"`
	Key        string                 `json:"key,omitempty"`
	Center     *domain.Point          `json:"center,omitempty"`
	Zoom       float64                `json:"zoom,omitempty"`
	Address    *domain.Address        `json:"address,omitempty"`
	HTML       string                 `json:"html,omitempty"`
	Distances  []domain.DistanceEntry `json:"distances,omitempty"`
}

// View - центр и зум карты
type View struct {
	Center domain.Point `json:"center"`
	Zoom   float64      `json:"zoom"`
}

// Snapshot - состояние карты на момент запроса
type Snapshot struct {
	View        View                             `json:"view"`
	Styles      map[string]domain.FootprintStyle `json:"styles"`
	Overlays    []domain.Overlay                 `json:"overlays"`
	Address     *domain.Address                  `json:"address"`
	AddressHTML string                           `json:"address_html,omitempty"`
	Distances   []domain.DistanceEntry           `json:"distances"`
}

// Scene реализует domain.MapSurface и domain.InfoPanels.
// Не потокобезопасна.
type Scene struct {
	view      View
	styles    map[string]domain.FootprintStyle
	overlays  map[string]domain.Overlay
	order     []string
	address   *domain.Address
	distances []domain.DistanceEntry

	pending []Command
}

var (
	_ domain.MapSurface = (*Scene)(nil)
	_ domain.InfoPanels = (*Scene)(nil)
)

// New создаёт пустую сцену со стартовым видом
func New(start View) *Scene {
	return &Scene{
		view:     start,
		styles:   make(map[string]domain.FootprintStyle),
		overlays: make(map[string]domain.Overlay),
	}
}

func (s *Scene) SetFootprintStyle(buildingID string, style domain.FootprintStyle) {
	s.styles[buildingID] = style
	s.record(Command{Type: CmdSetStyle, BuildingID: buildingID, Style: &style})
}

func (s *Scene) ResetFootprintStyles() {
	s.styles = make(map[string]domain.FootprintStyle)
	s.record(Command{Type: CmdResetStyles})
}

func (s *Scene) AddOverlay(o domain.Overlay) {
	if _, exists := s.overlays[o.Key]; !exists {
		s.order = append(s.order, o.Key)
	}
	s.overlays[o.Key] = o
	s.record(Command{Type: CmdAddOverlay, Overlay: &o})
}

// RemoveOverlay ничего не делает для отсутствующего ключа
func (s *Scene) RemoveOverlay(key string) {
	if _, exists := s.overlays[key]; !exists {
		return
	}
	delete(s.overlays, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.record(Command{Type: CmdRemoveOverlay, Key: key})
}

func (s *Scene) PanTo(center domain.Point) {
	s.view.Center = center
	s.record(Command{Type: CmdPanTo, Center: &center})
}

func (s *Scene) SetView(center domain.Point, zoom float64) {
	s.view = View{Center: center, Zoom: zoom}
	s.record(Command{Type: CmdSetView, Center: &center, Zoom: zoom})
}

func (s *Scene) ShowAddress(addr domain.Address) {
	s.address = &addr
	s.record(Command{Type: CmdShowAddress, Address: &addr, HTML: RenderAddressHTML(addr)})
}

func (s *Scene) ClearAddress() {
	s.address = nil
	s.record(Command{Type: CmdClearAddress})
}

func (s *Scene) ShowDistances(entries []domain.DistanceEntry) {
	s.distances = append([]domain.DistanceEntry(nil), entries...)
	s.record(Command{Type: CmdShowDistances, Distances: s.distances})
}

func (s *Scene) ClearDistances() {
	s.distances = nil
	s.record(Command{Type: CmdClearDistances})
}

// Drain возвращает накопленные команды и очищает журнал
func (s *Scene) Drain() []Command {
	cmds := s.pending
	s.pending = nil
	if cmds == nil {
		return []Command{}
	}
	return cmds
}

// OverlayCount - число активных оверлеев
func (s *Scene) OverlayCount() int {
	return len(s.order)
}

// HasOverlay сообщает, нарисован ли оверлей с ключом key
func (s *Scene) HasOverlay(key string) bool {
	_, ok := s.overlays[key]
	return ok
}

// Snapshot копирует текущее состояние
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		View:      s.view,
		Styles:    make(map[string]domain.FootprintStyle, len(s.styles)),
		Overlays:  make([]domain.Overlay, 0, len(s.order)),
		Distances: append([]domain.DistanceEntry{}, s.distances...),
	}
	for id, st := range s.styles {
		snap.Styles[id] = st
	}
	for _, key := range s.order {
		snap.Overlays = append(snap.Overlays, s.overlays[key])
	}
	if s.address != nil {
		addr := *s.address
		snap.Address = &addr
		snap.AddressHTML = RenderAddressHTML(addr)
	}
	return snap
}

func (s *Scene) record(cmd Command) {
	s.pending = append(s.pending, cmd)
}

// RenderAddressHTML - адрес для панели, поля экранируются
func RenderAddressHTML(addr domain.Address) string {
	escaped := domain.Address{
		Line1: escape(addr.Line1),
		Line2: escape(addr.Line2),
		City:  escape(addr.City),
		State: escape(addr.State),
		Zip:   escape(addr.Zip),
	}
	return escaped.Render("<br />")
}

func escape(s *string) *string {
	if s == nil {
		return nil
	}
	v := html.EscapeString(*s)
	return &v
}
