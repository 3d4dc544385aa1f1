package content

// CommandKind identifies the command that produced a Change.
type CommandKind uint8

const (
	CommandInsertTag CommandKind = iota
	CommandRemoveTag
	CommandUpdatePendingText
	CommandSetCaret
)

func (k CommandKind) String() string {
	switch k {
	case CommandInsertTag:
		return "insert-tag"
	case CommandRemoveTag:
		return "remove-tag"
	case CommandUpdatePendingText:
		return "update-pending-text"
	case CommandSetCaret:
		return "set-caret"
	default:
		return "unknown"
	}
}

// Change is the normalized, versioned payload of one effective command.
type Change struct {
	Kind          CommandKind
	VersionBefore uint64
	VersionAfter  uint64

	CaretBefore Caret
	CaretAfter  Caret

	PendingBefore string
	PendingAfter  string

	// Added and Removed list segments appended to or dropped from the
	// content sequence.
	Added   []Segment
	Removed []Segment

	PaletteBefore []string
	PaletteAfter  []string
}

type changeBuilder struct {
	kind          CommandKind
	versionBefore uint64
	caretBefore   Caret
	pendingBefore string
	paletteBefore []string
	added         []Segment
	removed       []Segment
}

func (s State) beginChange(kind CommandKind) changeBuilder {
	return changeBuilder{
		kind:          kind,
		versionBefore: s.version,
		caretBefore:   s.caret,
		pendingBefore: s.pending,
		paletteBefore: s.Palette(),
	}
}

func (cb changeBuilder) commit(next State) Change {
	return Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  next.version,
		CaretBefore:   cb.caretBefore,
		CaretAfter:    next.caret,
		PendingBefore: cb.pendingBefore,
		PendingAfter:  next.pending,
		Added:         append([]Segment(nil), cb.added...),
		Removed:       append([]Segment(nil), cb.removed...),
		PaletteBefore: cb.paletteBefore,
		PaletteAfter:  next.Palette(),
	}
}
