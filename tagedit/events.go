package tagedit

import "github.com/iw2rmb/tagline/content"

// ChangeEvent is delivered to Config.OnChange after an effective command.
type ChangeEvent struct {
	Version  uint64
	Segments []content.Segment
	Palette  []string
	Pending  string
	Caret    content.Caret

	Change content.Change

	// Text is the flattened transcript (see content.State.PlainText).
	Text string
}

func buildChangeEvent(s content.State, ch content.Change) ChangeEvent {
	return ChangeEvent{
		Version:  s.Version(),
		Segments: s.Segments(),
		Palette:  s.Palette(),
		Pending:  s.Pending(),
		Caret:    s.Caret(),
		Change:   ch,
		Text:     s.PlainText(),
	}
}
