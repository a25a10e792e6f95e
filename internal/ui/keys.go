package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/holocron/internal/labels"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit          key.Binding
	ForceQuit     key.Binding
	Help          key.Binding
	CycleTheme    key.Binding
	CycleLanguage key.Binding

	// Collection
	Search    key.Binding
	Open      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Reload    key.Binding
	Clear     key.Binding
	Up        key.Binding
	Down      key.Binding

	// Detail
	Back       key.Binding
	Edit       key.Binding
	Save       key.Binding
	Cancel     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Confirm    key.Binding
	BlurSearch key.Binding
}

// newKeyMap returns the key bindings with help text from h.
func newKeyMap(h labels.Set) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", h.Keys.Quit),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", h.Keys.Quit),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", h.Keys.Help),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", h.Keys.CycleTheme),
		),
		CycleLanguage: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", h.Keys.CycleLanguage),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", h.Keys.Search),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", h.Keys.Open),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", h.Keys.NextPage),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", h.Keys.PrevPage),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g", "<"),
			key.WithHelp("g", h.Keys.FirstPage),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G", ">"),
			key.WithHelp("G", h.Keys.LastPage),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", h.Keys.Reload),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", h.Keys.ClearSearch),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", h.Keys.Up),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", h.Keys.Down),
		),

		Back: key.NewBinding(
			key.WithKeys("b", "backspace", "esc"),
			key.WithHelp("b/esc", h.Keys.Back),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", h.Edit),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", h.Save),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", h.Cancel),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", h.Keys.NextField),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", h.Keys.PrevField),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", h.Keys.Confirm),
		),
		BlurSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", h.Keys.LeaveSearch),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.NextPage, k.PrevPage, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Search, k.Clear},
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage, k.Reload},
		{k.Edit, k.Save, k.Cancel, k.NextField, k.Back},
		{k.CycleTheme, k.CycleLanguage, k.Help, k.Quit},
	}
}

// detailHelp is the short help shown under the detail view.
type detailHelp struct {
	keys    keyMap
	editing bool
}

func (d detailHelp) ShortHelp() []key.Binding {
	if d.editing {
		return []key.Binding{d.keys.NextField, d.keys.PrevField, d.keys.Save, d.keys.Cancel}
	}
	return []key.Binding{d.keys.Edit, d.keys.Reload, d.keys.Back, d.keys.Help, d.keys.Quit}
}

func (d detailHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}
