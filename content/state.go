package content

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iw2rmb/tagline/internal/grapheme"
)

// ReturnPolicy decides where a removed tag re-enters the palette.
type ReturnPolicy uint8

const (
	// ReturnAppend appends the tag at the end of the palette.
	ReturnAppend ReturnPolicy = iota
	// ReturnSeedOrder puts the tag back at its position in the seed list.
	ReturnSeedOrder
)

type Options struct {
	Return ReturnPolicy

	// NewChipID generates identifiers for inserted chips.
	// Default: random UUIDs.
	NewChipID func() ChipID
}

// State is an immutable snapshot of the editor content.
type State struct {
	segments []Segment
	palette  []string
	seed     []string
	pending  string
	caret    Caret
	version  uint64

	opt Options
}

// New returns the initial state for the given seed tags.
//
// Blank names are dropped and duplicates keep their first position, so every
// tag name is offered at most once.
func New(seed []string, opt Options) State {
	if opt.NewChipID == nil {
		opt.NewChipID = newUUIDChipID
	}
	opt.Return = normalizeReturnPolicy(opt.Return)

	palette := make([]string, 0, len(seed))
	seen := make(map[string]struct{}, len(seed))
	for _, name := range seed {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		palette = append(palette, name)
	}

	return State{
		palette: palette,
		seed:    append([]string(nil), palette...),
		caret:   CaretAt(0),
		opt:     opt,
	}
}

func newUUIDChipID() ChipID { return ChipID(uuid.NewString()) }

func normalizeReturnPolicy(p ReturnPolicy) ReturnPolicy {
	switch p {
	case ReturnAppend, ReturnSeedOrder:
		return p
	default:
		return ReturnAppend
	}
}

func (s State) Segments() []Segment { return append([]Segment(nil), s.segments...) }

func (s State) Palette() []string { return append([]string(nil), s.palette...) }

func (s State) Pending() string { return s.pending }

func (s State) Caret() Caret { return s.caret }

func (s State) Version() uint64 { return s.version }

func (s State) ReturnPolicy() ReturnPolicy { return s.opt.Return }

// InPalette reports whether name is currently available for insertion.
func (s State) InPalette(name string) bool {
	return indexOf(s.palette, name) >= 0
}

// Chip returns the tag segment carrying id.
func (s State) Chip(id ChipID) (Segment, bool) {
	if i := s.chipIndex(id); i >= 0 {
		return s.segments[i], true
	}
	return Segment{}, false
}

// Chips returns the tag segments in content order.
func (s State) Chips() []Segment {
	var out []Segment
	for _, seg := range s.segments {
		if seg.IsTag() {
			out = append(out, seg)
		}
	}
	return out
}

// Tags returns inserted tag names in content order.
func (s State) Tags() []string {
	var out []string
	for _, seg := range s.segments {
		if seg.IsTag() {
			out = append(out, seg.Value)
		}
	}
	return out
}

// PlainText flattens the transcript: non-empty text segments and "#name"
// tokens joined by single spaces, followed by the trimmed pending text.
func (s State) PlainText() string {
	parts := make([]string, 0, len(s.segments)+1)
	for _, seg := range s.segments {
		switch {
		case seg.IsTag():
			parts = append(parts, "#"+seg.Value)
		case seg.Value != "":
			parts = append(parts, seg.Value)
		}
	}
	if p := strings.TrimSpace(s.pending); p != "" {
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

// Validate checks the model invariants.
func (s State) Validate() error {
	chips := make(map[ChipID]struct{})
	inContent := make(map[string]struct{})
	for i, seg := range s.segments {
		if !seg.IsTag() {
			if seg.Chip != "" {
				return fmt.Errorf("segment %d: text segment carries chip id %q", i, seg.Chip)
			}
			continue
		}
		if seg.Chip == "" {
			return fmt.Errorf("segment %d: tag %q has no chip id", i, seg.Value)
		}
		if _, dup := chips[seg.Chip]; dup {
			return fmt.Errorf("segment %d: duplicate chip id %q", i, seg.Chip)
		}
		chips[seg.Chip] = struct{}{}
		inContent[seg.Value] = struct{}{}
	}

	inPalette := make(map[string]struct{}, len(s.palette))
	for _, name := range s.palette {
		if _, dup := inPalette[name]; dup {
			return fmt.Errorf("palette: duplicate tag %q", name)
		}
		inPalette[name] = struct{}{}
		if _, both := inContent[name]; both {
			return fmt.Errorf("palette: tag %q is also inserted", name)
		}
	}

	n := grapheme.Count(s.pending)
	if s.caret.Col < 0 || s.caret.Col > n || s.caret.Anchor < 0 || s.caret.Anchor > n {
		return fmt.Errorf("caret %+v outside pending text of length %d", s.caret, n)
	}
	return nil
}

func (s State) chipIndex(id ChipID) int {
	if id == "" {
		return -1
	}
	for i, seg := range s.segments {
		if seg.IsTag() && seg.Chip == id {
			return i
		}
	}
	return -1
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
