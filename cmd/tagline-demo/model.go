package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"go.uber.org/zap"

	"github.com/iw2rmb/tagline/internal/config"
	"github.com/iw2rmb/tagline/tagedit"
)

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

type model struct {
	editor     tagedit.Model
	width      int
	fixedWidth int
	height     int

	showTranscript bool
	events         *eventLog
}

// eventLog is shared by value copies of model; OnChange appends to it.
type eventLog struct {
	count int
	last  tagedit.ChangeEvent
}

func newModel(cfg config.Config, log *zap.Logger) model {
	events := &eventLog{}
	editor := tagedit.New(tagedit.Config{
		Tags:        cfg.Tags,
		Return:      cfg.ReturnPolicy(),
		Placeholder: cfg.Placeholder,
		Logger:      log.Named("tagedit"),
		OnChange: func(ev tagedit.ChangeEvent) {
			events.count++
			events.last = ev
		},
	})
	if cfg.Width > 0 {
		editor = editor.SetWidth(cfg.Width)
	}
	return model{editor: editor, fixedWidth: cfg.Width, events: events}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w := msg.Width
		if m.fixedWidth > 0 && m.fixedWidth < w {
			w = m.fixedWidth
		}
		m.editor = m.editor.SetWidth(w)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		case "ctrl+o":
			m.showTranscript = !m.showTranscript
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	base := m.editor.View() + "\n" + helpStyle.Render(m.helpLine())
	if !m.showTranscript {
		return base
	}
	return overlay.Composite(m.transcriptPanel(), base, overlay.Center, overlay.Center, 0, 0)
}

func (m model) helpLine() string {
	return fmt.Sprintf("[%s] tab: zones  enter/ctrl+t: insert  ctrl+o: transcript  ctrl+q: quit  (%d changes)",
		m.editor.Zone(), m.events.count)
}

func (m model) transcriptPanel() string {
	state := m.editor.State()
	text := state.PlainText()
	if text == "" {
		text = "(empty)"
	}
	lines := []string{
		"Transcript",
		"",
		text,
		"",
		fmt.Sprintf("segments: %d  tags: %s", len(state.Segments()), strings.Join(state.Tags(), ", ")),
		fmt.Sprintf("palette:  %s", strings.Join(state.Palette(), ", ")),
		fmt.Sprintf("version:  %d", state.Version()),
	}
	w := m.width / 2
	if w < 30 {
		w = 30
	}
	return panelStyle.Width(w).Render(strings.Join(lines, "\n"))
}
