package content

import (
	"strings"

	"github.com/iw2rmb/tagline/internal/grapheme"
)

// Command is one of the closed set of state transitions:
// InsertTag, RemoveTag, RemoveTagNamed, UpdatePendingText and SetCaret.
type Command interface {
	Kind() CommandKind
	isCommand()
}

// InsertTag commits the pending text and appends a chip for Name.
//
// The whole pending text (minus any selection) becomes one text segment
// ahead of the chip, so a caret in the middle of the text still puts the
// chip after all of it: "hello| world" renders as "hello world [Name]".
//
// Names not currently in the palette are rejected.
type InsertTag struct {
	Name  string
	Caret Caret
}

// RemoveTag drops the chip identified by Chip and returns its name to the
// palette. The text segment committed before the chip stays in place.
type RemoveTag struct {
	Chip ChipID
}

// RemoveTagNamed removes the first chip whose name equals Name.
type RemoveTagNamed struct {
	Name string
}

// UpdatePendingText replaces the uncommitted text and caret.
type UpdatePendingText struct {
	Text  string
	Caret Caret
}

// SetCaret moves the caret without touching content.
type SetCaret struct {
	Caret Caret
}

func (InsertTag) Kind() CommandKind         { return CommandInsertTag }
func (RemoveTag) Kind() CommandKind         { return CommandRemoveTag }
func (RemoveTagNamed) Kind() CommandKind    { return CommandRemoveTag }
func (UpdatePendingText) Kind() CommandKind { return CommandUpdatePendingText }
func (SetCaret) Kind() CommandKind          { return CommandSetCaret }

func (InsertTag) isCommand()         {}
func (RemoveTag) isCommand()         {}
func (RemoveTagNamed) isCommand()    {}
func (UpdatePendingText) isCommand() {}
func (SetCaret) isCommand()          {}

// Apply folds cmd into s. ok is false when cmd had no effect, in which case
// next equals s and change is zero.
func (s State) Apply(cmd Command) (next State, change Change, ok bool) {
	switch c := cmd.(type) {
	case InsertTag:
		return s.insertTag(c)
	case RemoveTag:
		return s.removeTag(c.Chip)
	case RemoveTagNamed:
		return s.removeTag(s.firstChipNamed(c.Name))
	case UpdatePendingText:
		return s.updatePending(c)
	case SetCaret:
		return s.setCaret(c.Caret)
	default:
		return s, Change{}, false
	}
}

func (s State) insertTag(c InsertTag) (State, Change, bool) {
	if c.Name == "" || !s.InPalette(c.Name) {
		return s, Change{}, false
	}

	cb := s.beginChange(CommandInsertTag)

	pending := s.pending
	n := grapheme.Count(pending)
	caret := c.Caret
	if !caret.InSurface {
		caret = CaretAt(n)
	}
	caret = clampCaret(caret, n)
	if start, end, ok := caret.Selection(); ok {
		pending, _ = grapheme.Splice(pending, start, end, "")
	}

	text := TextSegment(strings.TrimSpace(pending))
	tag := TagSegment(s.opt.NewChipID(), c.Name)

	next := s
	next.segments = make([]Segment, 0, len(s.segments)+2)
	next.segments = append(next.segments, s.segments...)
	next.segments = append(next.segments, text, tag)
	next.palette = without(s.palette, c.Name)
	next.pending = ""
	next.caret = CaretAt(0)
	next.version++

	cb.added = []Segment{text, tag}
	return next, cb.commit(next), true
}

func (s State) removeTag(id ChipID) (State, Change, bool) {
	i := s.chipIndex(id)
	if i < 0 {
		return s, Change{}, false
	}

	cb := s.beginChange(CommandRemoveTag)
	removed := s.segments[i]

	next := s
	next.segments = make([]Segment, 0, len(s.segments)-1)
	next.segments = append(next.segments, s.segments[:i]...)
	next.segments = append(next.segments, s.segments[i+1:]...)
	next.palette = s.returnToPalette(removed.Value)
	next.version++

	cb.removed = []Segment{removed}
	return next, cb.commit(next), true
}

func (s State) returnToPalette(name string) []string {
	if s.InPalette(name) {
		return s.Palette()
	}
	if s.opt.Return == ReturnSeedOrder {
		if rank := indexOf(s.seed, name); rank >= 0 {
			out := make([]string, 0, len(s.palette)+1)
			placed := false
			for _, p := range s.palette {
				if !placed {
					if r := indexOf(s.seed, p); r < 0 || r > rank {
						out = append(out, name)
						placed = true
					}
				}
				out = append(out, p)
			}
			if !placed {
				out = append(out, name)
			}
			return out
		}
	}
	out := make([]string, 0, len(s.palette)+1)
	out = append(out, s.palette...)
	return append(out, name)
}

func (s State) updatePending(c UpdatePendingText) (State, Change, bool) {
	text := sanitizeSingleLine(c.Text)
	caret := clampCaret(c.Caret, grapheme.Count(text))
	if text == s.pending && caret == s.caret {
		return s, Change{}, false
	}

	cb := s.beginChange(CommandUpdatePendingText)
	next := s
	next.pending = text
	next.caret = caret
	next.version++
	return next, cb.commit(next), true
}

func (s State) setCaret(c Caret) (State, Change, bool) {
	c = clampCaret(c, grapheme.Count(s.pending))
	if !c.InSurface {
		c = OutsideSurface
	}
	if c == s.caret {
		return s, Change{}, false
	}

	cb := s.beginChange(CommandSetCaret)
	next := s
	next.caret = c
	next.version++
	return next, cb.commit(next), true
}

func (s State) firstChipNamed(name string) ChipID {
	for _, seg := range s.segments {
		if seg.IsTag() && seg.Value == name {
			return seg.Chip
		}
	}
	return ""
}

func without(list []string, v string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

func sanitizeSingleLine(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}
