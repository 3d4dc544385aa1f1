package content

import "github.com/iw2rmb/tagline/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome
	DirEnd
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and extends the selection
}

// Move repositions the caret inside the pending text.
func (e PendingEdit) Move(m Move) PendingEdit {
	e = e.normalize()
	clusters := grapheme.Split(e.Text)

	col := e.Caret.Col
	if !m.Extend && m.Unit == MoveGrapheme {
		// Collapsing a selection lands on the edge in the move direction.
		if start, end, ok := e.Caret.Selection(); ok {
			switch m.Dir {
			case DirLeft:
				e.Caret = CaretAt(start)
				return e
			case DirRight:
				e.Caret = CaretAt(end)
				return e
			}
		}
	}

	switch m.Unit {
	case MoveGrapheme:
		switch m.Dir {
		case DirLeft:
			col--
		case DirRight:
			col++
		case DirHome:
			col = 0
		case DirEnd:
			col = len(clusters)
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			col = prevWordBoundary(clusters, col)
		case DirRight:
			col = nextWordBoundary(clusters, col)
		case DirHome:
			col = 0
		case DirEnd:
			col = len(clusters)
		}
	case MoveLine:
		switch m.Dir {
		case DirLeft, DirHome:
			col = 0
		case DirRight, DirEnd:
			col = len(clusters)
		}
	}
	col = clampInt(col, 0, len(clusters))

	next := CaretAt(col)
	if m.Extend {
		next.Anchor = e.Caret.Anchor
	}
	e.Caret = next
	return e
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
func prevWordBoundary(line []string, col int) int {
	col = clampInt(col, 0, len(line))
	i := col
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	col = clampInt(col, 0, len(line))
	i := col
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
