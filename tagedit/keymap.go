package tagedit

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the component key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right           key.Binding
	ShiftLeft, ShiftRight key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding

	// NextZone and PrevZone cycle focus between surface, palette and chips.
	NextZone, PrevZone key.Binding
	// Escape returns focus to the surface.
	Escape key.Binding

	// Accept inserts the selected palette tag or removes the selected chip.
	Accept key.Binding
	// InsertSelected inserts the selected palette tag at the caret while the
	// surface has focus.
	InsertSelected key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),

		NextZone: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next zone")),
		PrevZone: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev zone")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to text")),

		Accept:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "insert/remove tag")),
		InsertSelected: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "insert tag at caret")),
	}
}

func (km KeyMap) isZero() bool {
	return reflect.DeepEqual(km, KeyMap{})
}
