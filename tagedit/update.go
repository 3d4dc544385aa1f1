package tagedit

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagline/content"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	km := m.cfg.KeyMap

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if m.zone != FocusSurface {
			m.setZone(FocusSurface)
		}
		m.editPending(m.state.PendingEdit().InsertText(string(msg.Runes)))
		return m, nil
	}

	switch {
	case key.Matches(msg, km.NextZone):
		m.cycleZone(1)
		return m, nil
	case key.Matches(msg, km.PrevZone):
		m.cycleZone(-1)
		return m, nil
	case key.Matches(msg, km.Escape):
		m.setZone(FocusSurface)
		return m, nil
	}

	switch m.zone {
	case FocusPalette:
		m.updatePaletteKey(msg)
	case FocusChips:
		m.updateChipsKey(msg)
	default:
		m.updateSurfaceKey(msg)
	}
	return m, nil
}

func (m *Model) updatePaletteKey(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	n := len(m.state.Palette())
	switch {
	case key.Matches(msg, km.Left):
		m.paletteSel = clampInt(m.paletteSel-1, 0, maxInt(n-1, 0))
	case key.Matches(msg, km.Right):
		m.paletteSel = clampInt(m.paletteSel+1, 0, maxInt(n-1, 0))
	case key.Matches(msg, km.Home):
		m.paletteSel = 0
	case key.Matches(msg, km.End):
		m.paletteSel = maxInt(n-1, 0)
	case key.Matches(msg, km.Accept):
		if name, ok := m.PaletteSelected(); ok {
			m.insertTag(name, content.OutsideSurface)
		}
	}
}

func (m *Model) updateChipsKey(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	n := len(m.state.Chips())
	if n == 0 {
		m.setZone(FocusSurface)
		return
	}
	switch {
	case key.Matches(msg, km.Left):
		m.chipSel = clampInt(m.chipSel-1, 0, n-1)
	case key.Matches(msg, km.Right):
		m.chipSel = clampInt(m.chipSel+1, 0, n-1)
	case key.Matches(msg, km.Home):
		m.chipSel = 0
	case key.Matches(msg, km.End):
		m.chipSel = n - 1
	case key.Matches(msg, km.Accept), key.Matches(msg, km.Delete), key.Matches(msg, km.Backspace):
		if chip, ok := m.SelectedChip(); ok {
			m.dispatch(content.RemoveTag{Chip: chip.Chip})
		}
		if len(m.state.Chips()) == 0 {
			m.setZone(FocusSurface)
		}
	}
}

func (m *Model) updateSurfaceKey(msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	edit := m.state.PendingEdit()

	switch {
	case key.Matches(msg, km.Left):
		m.editPending(edit.Move(content.Move{Unit: content.MoveGrapheme, Dir: content.DirLeft}))
	case key.Matches(msg, km.Right):
		m.editPending(edit.Move(content.Move{Unit: content.MoveGrapheme, Dir: content.DirRight}))
	case key.Matches(msg, km.ShiftLeft):
		m.editPending(edit.Move(content.Move{Unit: content.MoveGrapheme, Dir: content.DirLeft, Extend: true}))
	case key.Matches(msg, km.ShiftRight):
		m.editPending(edit.Move(content.Move{Unit: content.MoveGrapheme, Dir: content.DirRight, Extend: true}))
	case key.Matches(msg, km.WordLeft):
		m.editPending(edit.Move(content.Move{Unit: content.MoveWord, Dir: content.DirLeft}))
	case key.Matches(msg, km.WordRight):
		m.editPending(edit.Move(content.Move{Unit: content.MoveWord, Dir: content.DirRight}))
	case key.Matches(msg, km.Home):
		m.editPending(edit.Move(content.Move{Unit: content.MoveLine, Dir: content.DirHome}))
	case key.Matches(msg, km.End):
		m.editPending(edit.Move(content.Move{Unit: content.MoveLine, Dir: content.DirEnd}))

	case key.Matches(msg, km.Backspace):
		m.editPending(edit.DeleteBackward())
	case key.Matches(msg, km.Delete):
		m.editPending(edit.DeleteForward())

	case key.Matches(msg, km.InsertSelected), key.Matches(msg, km.Accept):
		if name, ok := m.PaletteSelected(); ok {
			m.insertTag(name, m.state.Caret())
		}

	default:
		if msg.Type == tea.KeySpace {
			m.editPending(edit.InsertText(" "))
			return
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.editPending(edit.InsertText(string(msg.Runes)))
		}
	}
}

func (m *Model) editPending(edit content.PendingEdit) {
	if edit.Text == m.state.Pending() && edit.Caret == m.state.Caret() {
		return
	}
	m.dispatch(edit.Command())
}
