package content

// SegmentKind distinguishes the two segment variants.
type SegmentKind uint8

const (
	SegmentText SegmentKind = iota
	SegmentTag
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentText:
		return "text"
	case SegmentTag:
		return "tag"
	default:
		return "unknown"
	}
}

// ChipID identifies one inserted tag instance.
type ChipID string

// Segment is one entry of the content sequence.
//
// Chip is set for tag segments only.
type Segment struct {
	Kind  SegmentKind
	Value string
	Chip  ChipID
}

func TextSegment(value string) Segment {
	return Segment{Kind: SegmentText, Value: value}
}

func TagSegment(chip ChipID, name string) Segment {
	return Segment{Kind: SegmentTag, Value: name, Chip: chip}
}

func (s Segment) IsTag() bool { return s.Kind == SegmentTag }

// Caret is the host surface's caret/selection expressed against the pending
// text. Anchor == Col means no selection.
//
// InSurface is false when focus or selection sits outside the editable
// surface; operations then fall back to the end of content.
type Caret struct {
	InSurface bool
	Anchor    int
	Col       int
}

// CaretAt returns a collapsed in-surface caret at col.
func CaretAt(col int) Caret {
	return Caret{InSurface: true, Anchor: col, Col: col}
}

// OutsideSurface is the caret reported when the surface is not focused.
var OutsideSurface = Caret{}

// Selection returns the normalized selected range [start, end).
func (c Caret) Selection() (start, end int, ok bool) {
	start, end = c.Anchor, c.Col
	if end < start {
		start, end = end, start
	}
	if start == end {
		return start, end, false
	}
	return start, end, true
}

func clampCaret(c Caret, n int) Caret {
	c.Anchor = clampInt(c.Anchor, 0, n)
	c.Col = clampInt(c.Col, 0, n)
	return c
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
