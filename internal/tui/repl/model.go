// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model of the interactive calculator REPL
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package repl

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/lanpy/internal/calc"
	lplog "github.com/msto63/lanpy/pkg/core/log"
	"github.com/msto63/lanpy/pkg/core/version"
)

// Model is the main Bubbletea model for the REPL
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	running bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Transcript
	entries []Entry
	history []string
	histPos int

	interp *calc.Interpreter
	out    *bytes.Buffer
}

// New creates a REPL model with a fresh interpreter
func New(logger *lplog.Logger) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(Prompt)
	ti.Placeholder = `let x = 1; print x + 1;`
	ti.CharLimit = 4000
	ti.Focus()

	out := &bytes.Buffer{}

	return Model{
		input:  ti,
		interp: calc.New(out).WithEcho(true).WithLogger(logger),
		out:    out,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line == "" || m.running {
				return m, nil
			}
			m.input.Reset()
			m.history = append(m.history, line)
			m.histPos = len(m.history)

			if line == ":quit" || line == ":q" {
				return m, tea.Quit
			}
			m.running = true
			return m, m.evaluate(line)

		case tea.KeyCtrlL:
			m.entries = nil
			m.updateViewportContent()
			return m, nil

		case tea.KeyUp:
			if m.histPos > 0 {
				m.histPos--
				m.input.SetValue(m.history[m.histPos])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.histPos < len(m.history)-1 {
				m.histPos++
				m.input.SetValue(m.history[m.histPos])
				m.input.CursorEnd()
			} else {
				m.histPos = len(m.history)
				m.input.Reset()
			}
			return m, nil

		case tea.KeyPgUp:
			m.viewport.ViewUp()
			return m, nil

		case tea.KeyPgDown:
			m.viewport.ViewDown()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel
		footerHeight := 4 // Input + help
		viewportHeight := max(msg.Height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(Prompt) - 2
		m.updateViewportContent()

	case evalResultMsg:
		m.running = false
		m.entries = append(m.entries, msg.entry)
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// evaluate runs a line against the interpreter. Only one evaluation is in
// flight at a time, so the interpreter is never used concurrently.
func (m Model) evaluate(line string) tea.Cmd {
	interp := m.interp
	out := m.out

	return func() tea.Msg {
		out.Reset()
		entry := Entry{Input: line}

		switch {
		case line == ":reset":
			interp.Reset()
			entry.Output = "Variablen zurückgesetzt"
		case line == ":vars":
			entry.Output = formatVariables(interp.Variables())
		case strings.HasPrefix(line, ":tokens"):
			tokens, err := interp.Tokenize(strings.TrimSpace(strings.TrimPrefix(line, ":tokens")))
			if err != nil {
				entry.Err = err
			} else {
				entry.Output = RenderTokens(tokens)
			}
		default:
			entry.Err = interp.Run(line)
			entry.Output = strings.TrimRight(out.String(), "\n")
		}

		return evalResultMsg{entry: entry}
	}
}

func formatVariables(vars map[string]any) string {
	if len(vars) == 0 {
		return "(keine Variablen)"
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		value := vars[name]
		if s, ok := value.(string); ok {
			value = fmt.Sprintf("%q", s)
		} else {
			value = calc.FormatValue(value)
		}
		lines = append(lines, fmt.Sprintf("%s = %v", name, value))
	}
	return strings.Join(lines, "\n")
}

// Entries returns the transcript
func (m Model) Entries() []Entry {
	return m.entries
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade REPL..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(TranscriptPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render("v"+version.Version),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderHelpBar() string {
	hints := []string{
		RenderKeyHint("enter", "ausführen"),
		RenderKeyHint("↑/↓", "Verlauf"),
		RenderKeyHint(":vars", "Variablen"),
		RenderKeyHint(":tokens", "Tokens"),
		RenderKeyHint(":reset", "zurücksetzen"),
		RenderKeyHint("ctrl+l", "leeren"),
		RenderKeyHint("esc", "beenden"),
	}
	return strings.Join(hints, "  ")
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for i, entry := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(PromptStyle.Render(Prompt))
		b.WriteString(InputStyle.Render(entry.Input))
		if entry.Output != "" {
			b.WriteString("\n")
			b.WriteString(OutputStyle.Render(entry.Output))
		}
		if entry.Err != nil {
			b.WriteString("\n")
			b.WriteString(RenderError(entry.Err))
		}
	}
	m.viewport.SetContent(b.String())
}

// Run starts the REPL on the terminal
func Run(logger *lplog.Logger) error {
	_, err := tea.NewProgram(New(logger), tea.WithAltScreen()).Run()
	return err
}
