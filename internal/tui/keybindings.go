package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/tudu/internal/tui/components"
)

// KeyMap holds the list view key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Mark   key.Binding
	Delete key.Binding
	Add    key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Mark: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "mark"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Mark, k.Delete, k.Add},
		{k.Help, k.Quit},
	}
}

// HelpSections converts the key map into help dialog sections.
func (k KeyMap) HelpSections() []components.HelpDialogSection {
	titles := []string{"Navigation", "Tasks", "General"}

	full := k.FullHelp()
	sections := make([]components.HelpDialogSection, 0, len(full))
	for i, group := range full {
		section := components.HelpDialogSection{Title: titles[i]}
		for _, b := range group {
			h := b.Help()
			section.Entries = append(section.Entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
		}
		sections = append(sections, section)
	}

	section := components.HelpDialogSection{Title: "Add popup"}
	section.Entries = append(section.Entries,
		components.HelpEntry{Key: "enter", Desc: "add the typed task"},
		components.HelpEntry{Key: "esc", Desc: "cancel"},
	)

	return append(sections, section)
}
