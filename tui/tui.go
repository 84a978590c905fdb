// Package tui is a local terminal front end for an editor.Editor built on bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/burntcarrot/treapad/editor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Backspace key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Newline   key.Binding
	Tab       key.Binding
	Quit      key.Binding
}

var defaultKeyMap = keyMap{
	Left:      key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
	Right:     key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
	Backspace: key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "delete")),
	Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
	Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
	Newline:   key.NewBinding(key.WithKeys("enter")),
	Tab:       key.NewBinding(key.WithKeys("tab")),
	Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

var (
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model wrapping an editor.
type Model struct {
	editor   *editor.Editor
	keys     keyMap
	Quitting bool
}

// New returns a model driving e.
func New(e *editor.Editor) Model {
	return Model{editor: e, keys: defaultKeyMap}
}

// Run starts a bubbletea program over e and blocks until the user quits.
func Run(e *editor.Editor) error {
	p := tea.NewProgram(New(e), tea.WithAltScreen())
	return p.Start()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Left):
		m.editor.ShiftLeft()
	case key.Matches(keyMsg, m.keys.Right):
		m.editor.ShiftRight()
	case key.Matches(keyMsg, m.keys.Backspace):
		m.editor.Backspace()
	case key.Matches(keyMsg, m.keys.Undo):
		m.editor.Undo()
	case key.Matches(keyMsg, m.keys.Redo):
		m.editor.Redo()
	case key.Matches(keyMsg, m.keys.Newline):
		m.editor.Type('\n')
	case key.Matches(keyMsg, m.keys.Tab):
		for i := 0; i < 4; i++ {
			m.editor.Type(' ')
		}
	case keyMsg.Type == tea.KeySpace:
		m.editor.Type(' ')
	case keyMsg.Type == tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			m.editor.Type(r)
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return "\n  See you later!\n\n"
	}

	var b strings.Builder
	b.WriteString(renderText([]rune(m.editor.GetText()), m.editor.Cursor()))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) status() string {
	return fmt.Sprintf("cursor %d · version %d/%d · %s undo · %s redo · %s quit",
		m.editor.Cursor(), m.editor.Version(), m.editor.Versions()-1,
		m.keys.Undo.Help().Key, m.keys.Redo.Help().Key, m.keys.Quit.Help().Key)
}

// renderText draws text with the cell under the cursor highlighted.
func renderText(text []rune, cursor int) string {
	var b strings.Builder
	for i, r := range text {
		if i != cursor {
			b.WriteRune(r)
			continue
		}
		if r == '\n' {
			b.WriteString(cursorStyle.Render(" "))
			b.WriteRune(r)
			continue
		}
		b.WriteString(cursorStyle.Render(string(r)))
	}
	if cursor >= len(text) {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}
