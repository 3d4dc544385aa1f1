package content

import "github.com/iw2rmb/tagline/internal/grapheme"

// PendingEdit is a working copy of the pending text and its caret.
//
// Its methods are pure; Command turns the result into an UpdatePendingText.
type PendingEdit struct {
	Text  string
	Caret Caret
}

// PendingEdit returns the current pending text and caret for editing.
func (s State) PendingEdit() PendingEdit {
	return PendingEdit{Text: s.pending, Caret: s.caret}.normalize()
}

func (e PendingEdit) Command() UpdatePendingText {
	return UpdatePendingText{Text: e.Text, Caret: e.Caret}
}

func (e PendingEdit) normalize() PendingEdit {
	n := grapheme.Count(e.Text)
	if !e.Caret.InSurface {
		e.Caret = CaretAt(n)
	}
	e.Caret = clampCaret(e.Caret, n)
	return e
}

// InsertText inserts s at the caret, or replaces the selection.
func (e PendingEdit) InsertText(s string) PendingEdit {
	e = e.normalize()
	s = sanitizeSingleLine(s)
	start, end, _ := e.Caret.Selection()
	if s == "" && start == end {
		return e
	}
	text, col := grapheme.Splice(e.Text, start, end, s)
	return PendingEdit{Text: text, Caret: CaretAt(col)}
}

// DeleteBackward applies backspace semantics.
func (e PendingEdit) DeleteBackward() PendingEdit {
	e = e.normalize()
	if start, end, ok := e.Caret.Selection(); ok {
		text, col := grapheme.Splice(e.Text, start, end, "")
		return PendingEdit{Text: text, Caret: CaretAt(col)}
	}
	if e.Caret.Col == 0 {
		return e
	}
	text, col := grapheme.Splice(e.Text, e.Caret.Col-1, e.Caret.Col, "")
	return PendingEdit{Text: text, Caret: CaretAt(col)}
}

// DeleteForward applies delete-key semantics.
func (e PendingEdit) DeleteForward() PendingEdit {
	e = e.normalize()
	if start, end, ok := e.Caret.Selection(); ok {
		text, col := grapheme.Splice(e.Text, start, end, "")
		return PendingEdit{Text: text, Caret: CaretAt(col)}
	}
	if e.Caret.Col >= grapheme.Count(e.Text) {
		return e
	}
	text, col := grapheme.Splice(e.Text, e.Caret.Col, e.Caret.Col+1, "")
	return PendingEdit{Text: text, Caret: CaretAt(col)}
}

// Selected returns the selected text, if any.
func (e PendingEdit) Selected() string {
	e = e.normalize()
	start, end, ok := e.Caret.Selection()
	if !ok {
		return ""
	}
	return grapheme.Join(grapheme.Split(e.Text)[start:end])
}
