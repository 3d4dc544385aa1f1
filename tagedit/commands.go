package tagedit

import "github.com/iw2rmb/tagline/content"

// MutationMode controls whether input handling applies commands to the
// local state, emits them to the host, or both.
type MutationMode uint8

const (
	// MutateInEditor applies commands locally and never calls OnCommand.
	MutateInEditor MutationMode = iota
	// EmitCommandsOnly calls OnCommand and does not apply commands locally.
	EmitCommandsOnly
	// EmitCommandsAndMutate calls OnCommand and applies commands locally
	// when the host decision allows it.
	EmitCommandsAndMutate
)

// EditorState captures content-local state before a batch is executed.
type EditorState struct {
	Version uint64
	Caret   content.Caret
	Focus   FocusZone
}

// CommandBatch groups commands produced from one input event.
type CommandBatch struct {
	Before   EditorState
	Commands []content.Command
}

// CommandDecision controls whether the model applies a batch locally.
// It is used in EmitCommandsAndMutate mode.
type CommandDecision struct {
	ApplyLocally bool
}

func normalizeMutationMode(mode MutationMode) MutationMode {
	switch mode {
	case MutateInEditor, EmitCommandsOnly, EmitCommandsAndMutate:
		return mode
	default:
		return MutateInEditor
	}
}

// dispatch routes one batch through the configured mutation mode.
func (m *Model) dispatch(cmds ...content.Command) {
	if len(cmds) == 0 {
		return
	}

	apply := true
	switch m.cfg.MutationMode {
	case EmitCommandsOnly:
		apply = false
		m.emit(cmds)
	case EmitCommandsAndMutate:
		apply = m.emit(cmds).ApplyLocally
	}
	if !apply {
		return
	}

	for _, cmd := range cmds {
		m.applyLocal(cmd)
	}
}

func (m *Model) emit(cmds []content.Command) CommandDecision {
	if m.cfg.OnCommand == nil {
		return CommandDecision{ApplyLocally: true}
	}
	return m.cfg.OnCommand(CommandBatch{
		Before: EditorState{
			Version: m.state.Version(),
			Caret:   m.state.Caret(),
			Focus:   m.zone,
		},
		Commands: append([]content.Command(nil), cmds...),
	})
}

func (m *Model) applyLocal(cmd content.Command) bool {
	next, change, ok := m.state.Apply(cmd)
	if !ok {
		m.logRejected(cmd)
		return false
	}
	m.state = next
	m.clampSelections()
	m.logApplied(change)
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.state, change))
	}
	return true
}
