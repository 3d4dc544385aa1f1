package tagedit

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Style controls rendering of the palette and the editable surface.
type Style struct {
	PaletteButton         lipgloss.Style
	PaletteButtonSelected lipgloss.Style
	PaletteEmpty          lipgloss.Style

	// Surface frames the editable region. Its border, margin and padding are
	// taken into account for mouse hit testing.
	Surface        lipgloss.Style
	SurfaceFocused lipgloss.Style

	Text        lipgloss.Style
	Cursor      lipgloss.Style
	Selection   lipgloss.Style
	Placeholder lipgloss.Style

	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	ChipRemove   lipgloss.Style
}

func DefaultStyle() Style {
	return DefaultStyleWithRenderer(lipgloss.DefaultRenderer())
}

// DefaultStyleWithRenderer builds the default style on r.
func DefaultStyleWithRenderer(r *lipgloss.Renderer) Style {
	surface := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
	return Style{
		PaletteButton:         r.NewStyle().Foreground(lipgloss.Color("111")).Background(lipgloss.Color("24")).Padding(0, 1),
		PaletteButtonSelected: r.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Padding(0, 1).Bold(true),
		PaletteEmpty:          r.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),

		Surface:        surface,
		SurfaceFocused: surface.BorderForeground(lipgloss.Color("33")),

		Text:        r.NewStyle(),
		Cursor:      r.NewStyle().Reverse(true),
		Selection:   r.NewStyle().Background(lipgloss.Color("237")),
		Placeholder: r.NewStyle().Foreground(lipgloss.Color("240")),

		Chip:         r.NewStyle().Foreground(lipgloss.Color("189")).Background(lipgloss.Color("27")),
		ChipSelected: r.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Bold(true),
		ChipRemove:   r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (s Style) isZero() bool {
	return reflect.DeepEqual(s, Style{})
}
