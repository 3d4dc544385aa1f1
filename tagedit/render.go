package tagedit

import "strings"

// View renders the palette followed by the framed editable surface.
func (m Model) View() string {
	l := m.computeLayout()
	var sb strings.Builder
	sb.WriteString(strings.Join(l.paletteLines, "\n"))
	sb.WriteByte('\n')
	sb.WriteString(l.surfaceStyle.Render(strings.Join(l.surfaceLines, "\n")))
	return sb.String()
}
