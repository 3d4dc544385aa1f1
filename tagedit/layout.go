package tagedit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/tagline/content"
	"github.com/iw2rmb/tagline/internal/grapheme"
)

type regionKind uint8

const (
	regionPalette regionKind = iota
	regionChip
	regionChipRemove
	regionPending
	regionSurface
)

// hitRegion is a clickable area in view coordinates: row y, cells [x0, x1).
type hitRegion struct {
	kind   regionKind
	y      int
	x0, x1 int

	index int // palette or chip index
	name  string
	chip  content.ChipID
	col   int // pending-text column
}

func (r hitRegion) contains(x, y int) bool {
	return y == r.y && x >= r.x0 && x < r.x1
}

// unit is an atomic piece of layout that is never split across rows.
type unit struct {
	text  string
	width int
	hits  []hitRegion // x relative to the unit start
}

type viewLayout struct {
	paletteLines []string
	surfaceLines []string
	surfaceStyle lipgloss.Style
	regions      []hitRegion
}

func (l viewLayout) hit(x, y int) (hitRegion, bool) {
	for _, r := range l.regions {
		if r.contains(x, y) {
			return r, true
		}
	}
	return hitRegion{}, false
}

// flow places units left to right, wrapping before a unit that would cross
// width. A width <= 0 disables wrapping.
func flow(units []unit, width int) (lines []string, regions []hitRegion) {
	var sb strings.Builder
	x, y := 0, 0
	for _, u := range units {
		if width > 0 && x > 0 && x+u.width > width {
			lines = append(lines, sb.String())
			sb.Reset()
			x = 0
			y++
		}
		sb.WriteString(u.text)
		for _, h := range u.hits {
			h.y = y
			h.x0 += x
			h.x1 += x
			regions = append(regions, h)
		}
		x += u.width
	}
	lines = append(lines, sb.String())
	return lines, regions
}

func gapUnit() unit { return unit{text: " ", width: 1} }

func (m *Model) computeLayout() viewLayout {
	st := m.cfg.Style

	paletteLines, paletteRegions := flow(m.paletteUnits(), m.width)

	surface := st.Surface
	if m.focused && m.zone == FocusSurface {
		surface = st.SurfaceFocused
	}
	inner := 0
	if m.width > 0 {
		inner = maxInt(m.width-surface.GetHorizontalFrameSize(), 1)
		surface = surface.Width(maxInt(m.width-surface.GetHorizontalMargins()-surface.GetHorizontalBorderSize(), 1))
	}
	surfaceLines, surfaceRegions := flow(m.surfaceUnits(inner), inner)

	top := len(paletteLines)
	innerTop := top + surface.GetMarginTop() + surface.GetBorderTopSize() + surface.GetPaddingTop()
	innerLeft := surface.GetMarginLeft() + surface.GetBorderLeftSize() + surface.GetPaddingLeft()

	regions := make([]hitRegion, 0, len(paletteRegions)+len(surfaceRegions)+1)
	regions = append(regions, paletteRegions...)
	for _, r := range surfaceRegions {
		r.y += innerTop
		r.x0 += innerLeft
		r.x1 += innerLeft
		regions = append(regions, r)
	}

	boxHeight := len(surfaceLines) + surface.GetVerticalFrameSize()
	boxWidth := m.width
	if boxWidth <= 0 {
		boxWidth = surface.GetHorizontalFrameSize() + maxLineWidth(surfaceLines)
	}
	for y := top; y < top+boxHeight; y++ {
		regions = append(regions, hitRegion{kind: regionSurface, y: y, x0: 0, x1: boxWidth})
	}

	return viewLayout{
		paletteLines: paletteLines,
		surfaceLines: surfaceLines,
		surfaceStyle: surface,
		regions:      regions,
	}
}

func (m *Model) paletteUnits() []unit {
	st := m.cfg.Style
	palette := m.state.Palette()
	if len(palette) == 0 {
		text := st.PaletteEmpty.Render("no tags available")
		return []unit{{text: text, width: lipgloss.Width(text)}}
	}

	units := make([]unit, 0, 2*len(palette))
	for i, name := range palette {
		if i > 0 {
			units = append(units, gapUnit())
		}
		style := st.PaletteButton
		if m.focused && m.zone == FocusPalette && i == m.paletteSel {
			style = st.PaletteButtonSelected
		}
		text := style.Render(name)
		w := lipgloss.Width(text)
		units = append(units, unit{
			text:  text,
			width: w,
			hits:  []hitRegion{{kind: regionPalette, x0: 0, x1: w, index: i, name: name}},
		})
	}
	return units
}

// surfaceUnits lays out content for a surface maxWidth cells wide (0 means
// unbounded).
func (m *Model) surfaceUnits(maxWidth int) []unit {
	st := m.cfg.Style
	showCursor := m.focused && m.zone == FocusSurface

	var units []unit
	items := 0
	chipIdx := 0
	for _, seg := range m.state.Segments() {
		switch {
		case seg.IsTag():
			if items > 0 {
				units = append(units, gapUnit())
			}
			selected := m.focused && m.zone == FocusChips && chipIdx == m.chipSel
			units = append(units, m.chipUnit(seg, chipIdx, selected, maxWidth))
			chipIdx++
			items++
		case seg.Value != "":
			if items > 0 {
				units = append(units, gapUnit())
			}
			for _, g := range grapheme.Split(seg.Value) {
				units = append(units, unit{text: st.Text.Render(g), width: grapheme.Width(g)})
			}
			items++
		}
	}

	edit := m.state.PendingEdit()
	clusters := grapheme.Split(edit.Text)
	if items > 0 && (len(clusters) > 0 || showCursor) {
		units = append(units, gapUnit())
	}

	selStart, selEnd, hasSel := edit.Caret.Selection()
	for i, g := range clusters {
		style := st.Text
		switch {
		case showCursor && i == edit.Caret.Col:
			style = st.Cursor.Inherit(st.Text)
		case showCursor && hasSel && i >= selStart && i < selEnd:
			style = st.Selection.Inherit(st.Text)
		}
		w := grapheme.Width(g)
		units = append(units, unit{
			text:  style.Render(g),
			width: w,
			hits:  []hitRegion{{kind: regionPending, x0: 0, x1: w, col: i}},
		})
	}
	if showCursor && edit.Caret.Col >= len(clusters) {
		units = append(units, unit{
			text:  st.Cursor.Inherit(st.Text).Render(" "),
			width: 1,
			hits:  []hitRegion{{kind: regionPending, x0: 0, x1: 1, col: len(clusters)}},
		})
	}

	if len(units) == 0 && m.cfg.Placeholder != "" {
		text := st.Placeholder.Render(m.cfg.Placeholder)
		units = append(units, unit{text: text, width: lipgloss.Width(text)})
	}
	return units
}

// chipUnit renders one chip. Labels are ellipsized so the chip, remove
// control included, fits in maxWidth cells and is never split by wrapping.
func (m *Model) chipUnit(seg content.Segment, idx int, selected bool, maxWidth int) unit {
	st := m.cfg.Style
	chip := st.Chip
	if selected {
		chip = st.ChipSelected
	}
	remove := st.ChipRemove.Inherit(chip).Render("(x)") + chip.Render(" ")
	rw := lipgloss.Width(remove)

	label := seg.Value
	if maxWidth > 0 {
		chrome := lipgloss.Width(chip.Render("  ")) + rw
		if chrome+runewidth.StringWidth(label) > maxWidth {
			label = runewidth.Truncate(label, maxInt(maxWidth-chrome, 1), "…")
		}
	}
	body := chip.Render(" " + label + " ")
	bw := lipgloss.Width(body)
	return unit{
		text:  body + remove,
		width: bw + rw,
		hits: []hitRegion{
			{kind: regionChip, x0: 0, x1: bw, index: idx, name: seg.Value, chip: seg.Chip},
			{kind: regionChipRemove, x0: bw, x1: bw + rw, index: idx, name: seg.Value, chip: seg.Chip},
		},
	}
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = maxInt(w, lipgloss.Width(l))
	}
	return w
}
