package tagedit

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagline/content"
)

// updateMouse handles left clicks. Coordinates are relative to the top-left
// cell of View().
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	r, ok := m.computeLayout().hit(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch r.kind {
	case regionPalette:
		m.paletteSel = r.index
		// A palette click does not move the caret: insert where it is, or at
		// the end when the surface is not focused.
		m.insertTag(r.name, m.caretForInsert())

	case regionChipRemove:
		m.dispatch(content.RemoveTag{Chip: r.chip})
		if m.zone == FocusChips && len(m.state.Chips()) == 0 {
			m.setZone(FocusSurface)
		}

	case regionChip:
		m.chipSel = r.index
		m.setZone(FocusChips)

	case regionPending:
		m.setZone(FocusSurface)
		caret := content.CaretAt(r.col)
		if msg.Shift {
			caret.Anchor = m.state.Caret().Anchor
		}
		m.dispatch(content.SetCaret{Caret: caret})

	case regionSurface:
		m.setZone(FocusSurface)
	}
	return m, nil
}
