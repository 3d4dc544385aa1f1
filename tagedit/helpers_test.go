package tagedit

import (
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/tagline/content"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// plainStyle has no padding or frames so views are easy to assert on.
func plainStyle() Style {
	r := asciiRenderer()
	return Style{
		PaletteButton:         r.NewStyle(),
		PaletteButtonSelected: r.NewStyle().Underline(true),
		PaletteEmpty:          r.NewStyle(),
		Surface:               r.NewStyle(),
		SurfaceFocused:        r.NewStyle(),
		Text:                  r.NewStyle(),
		Cursor:                r.NewStyle().Reverse(true),
		Selection:             r.NewStyle(),
		Placeholder:           r.NewStyle(),
		Chip:                  r.NewStyle(),
		ChipSelected:          r.NewStyle().Bold(true),
		ChipRemove:            r.NewStyle(),
	}
}

func seqChipIDs() func() content.ChipID {
	n := 0
	return func() content.ChipID {
		n++
		return content.ChipID(fmt.Sprintf("chip-%d", n))
	}
}

func newTestModel(tags ...string) Model {
	return New(Config{
		Tags:      tags,
		NewChipID: seqChipIDs(),
		Style:     plainStyle(),
	})
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func typeText(m Model, s string) Model {
	for _, r := range s {
		if r == ' ' {
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func viewLines(m Model) []string {
	lines := strings.Split(stripANSI(m.View()), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func findRegion(t *testing.T, m Model, kind regionKind, name string) hitRegion {
	t.Helper()
	for _, r := range m.computeLayout().regions {
		if r.kind == kind && r.name == name {
			return r
		}
	}
	t.Fatalf("no region of kind %d named %q", kind, name)
	return hitRegion{}
}

func click(m Model, x, y int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return m
}

func assertSegments(t *testing.T, got, want []content.Segment) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments:\n got: %+v\nwant: %+v", got, want)
	}
}

func assertStrings(t *testing.T, what string, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %q, want %q", what, got, want)
	}
}
