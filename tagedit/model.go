package tagedit

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagline/content"
)

// FocusZone is the part of the component that receives keys.
type FocusZone uint8

const (
	FocusSurface FocusZone = iota
	FocusPalette
	FocusChips
)

func (z FocusZone) String() string {
	switch z {
	case FocusSurface:
		return "surface"
	case FocusPalette:
		return "palette"
	case FocusChips:
		return "chips"
	default:
		return "unknown"
	}
}

// Model is the TaggedEditor Bubble Tea component.
type Model struct {
	cfg   Config
	state content.State

	focused bool
	zone    FocusZone

	paletteSel int
	chipSel    int

	width int
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	m := Model{
		cfg: cfg,
		state: content.New(cfg.Tags, content.Options{
			Return:    cfg.Return,
			NewChipID: cfg.NewChipID,
		}),
		focused: true,
		zone:    FocusSurface,
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// State returns the current content snapshot.
func (m Model) State() content.State { return m.state }

func (m Model) Zone() FocusZone { return m.zone }

func (m Model) Focused() bool { return m.focused }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

// SetWidth sets the total width the component may use. Zero disables
// wrapping.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	return m
}

func (m Model) Width() int { return m.width }

// PaletteSelected returns the palette entry under the palette cursor.
func (m Model) PaletteSelected() (string, bool) {
	palette := m.state.Palette()
	if len(palette) == 0 {
		return "", false
	}
	return palette[clampInt(m.paletteSel, 0, len(palette)-1)], true
}

// SelectedChip returns the chip under the chip cursor.
func (m Model) SelectedChip() (content.Segment, bool) {
	chips := m.state.Chips()
	if len(chips) == 0 {
		return content.Segment{}, false
	}
	return chips[clampInt(m.chipSel, 0, len(chips)-1)], true
}

// SetZone moves keyboard focus to z. Leaving the surface marks the caret as
// outside of it; entering the surface puts the caret at the end.
func (m Model) SetZone(z FocusZone) Model {
	m.setZone(z)
	return m
}

// InsertTag inserts name at the current caret, or at the end of content when
// the component is blurred or the surface does not have focus. A selection
// is replaced only while the surface has focus.
func (m Model) InsertTag(name string) Model {
	m.insertTag(name, m.caretForInsert())
	return m
}

// RemoveTag removes the chip identified by id.
func (m Model) RemoveTag(id content.ChipID) Model {
	m.dispatch(content.RemoveTag{Chip: id})
	return m
}

// RemoveTagNamed removes the first chip named name.
func (m Model) RemoveTagNamed(name string) Model {
	m.dispatch(content.RemoveTagNamed{Name: name})
	return m
}

// SetPendingText replaces the uncommitted text and puts the caret at its end.
func (m Model) SetPendingText(text string) Model {
	edit := content.PendingEdit{Text: text, Caret: content.OutsideSurface}.Move(content.Move{Unit: content.MoveLine, Dir: content.DirEnd})
	if m.zone != FocusSurface {
		edit.Caret = content.OutsideSurface
	}
	m.dispatch(edit.Command())
	return m
}

// Apply runs cmd through the configured mutation mode and reports whether
// the local state changed.
func (m Model) Apply(cmd content.Command) (Model, bool) {
	before := m.state.Version()
	m.dispatch(cmd)
	return m, m.state.Version() != before
}

func (m *Model) insertTag(name string, caret content.Caret) {
	before := m.state.Version()
	m.dispatch(content.InsertTag{Name: name, Caret: caret})
	if m.state.Version() != before {
		// The caret now sits right after the new chip.
		m.zone = FocusSurface
	}
}

func (m *Model) caretForInsert() content.Caret {
	if !m.focused || m.zone != FocusSurface {
		return content.OutsideSurface
	}
	return m.state.Caret()
}

func (m *Model) setZone(z FocusZone) {
	switch z {
	case FocusSurface, FocusPalette, FocusChips:
	default:
		return
	}
	if z == FocusChips && len(m.state.Chips()) == 0 {
		z = FocusSurface
	}
	if z == m.zone {
		return
	}
	prev := m.zone
	m.zone = z

	switch {
	case z == FocusSurface:
		end := m.state.PendingEdit().Move(content.Move{Unit: content.MoveLine, Dir: content.DirEnd})
		m.dispatch(content.SetCaret{Caret: end.Caret})
	case prev == FocusSurface:
		m.dispatch(content.SetCaret{Caret: content.OutsideSurface})
	}
}

func (m *Model) cycleZone(delta int) {
	order := []FocusZone{FocusSurface, FocusPalette}
	if len(m.state.Chips()) > 0 {
		order = append(order, FocusChips)
	}
	idx := 0
	for i, z := range order {
		if z == m.zone {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.setZone(order[idx])
}

func (m *Model) clampSelections() {
	if n := len(m.state.Palette()); n > 0 {
		m.paletteSel = clampInt(m.paletteSel, 0, n-1)
	} else {
		m.paletteSel = 0
	}
	if n := len(m.state.Chips()); n > 0 {
		m.chipSel = clampInt(m.chipSel, 0, n-1)
	} else {
		m.chipSel = 0
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
