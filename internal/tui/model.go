// Package tui drives a playground session from the terminal: the story's
// element tree with its reflected state, a cursor over the elements with an
// id, and a log of the component events each key produced.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vango-dev/elements/internal/playground"
	"github.com/vango-dev/elements/pkg/dom"
)

const logHeight = 8

// Model is the bubbletea model of the terminal playground.
type Model struct {
	session *playground.Session
	targets []string
	cursor  int
	log     []string
	events  viewport.Model
	err     string
	width   int
}

// NewModel creates a model over session.
func NewModel(session *playground.Session) Model {
	m := Model{
		session: session,
		events:  viewport.New(80, logHeight),
	}
	m.refreshTargets()
	return m
}

// Run starts the terminal playground and blocks until the user quits.
func Run(session *playground.Session) error {
	_, err := tea.NewProgram(NewModel(session), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Selected returns the id of the element under the cursor.
func (m Model) Selected() string {
	if len(m.targets) == 0 {
		return ""
	}
	return m.targets[m.cursor]
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.events.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Next):
		m.move(1)
		return m, nil
	case key.Matches(msg, keys.Prev):
		m.move(-1)
		return m, nil
	case key.Matches(msg, keys.Click):
		return m.apply(playground.Action{Type: playground.ActionClick, Target: m.Selected()}), nil
	case key.Matches(msg, keys.Finish):
		return m.apply(playground.Action{Type: playground.ActionFinish}), nil
	case key.Matches(msg, keys.Restart):
		m = m.apply(playground.Action{Type: playground.ActionRestart})
		m.refreshTargets()
		return m, nil
	}
	if k, ok := domKeys[msg.String()]; ok {
		return m.apply(playground.Action{Type: playground.ActionPress, Target: m.Selected(), Key: k}), nil
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if n := len(m.targets); n > 0 {
		m.cursor = (m.cursor + delta + n) % n
	}
}

func (m Model) apply(a playground.Action) Model {
	if a.Type != playground.ActionRestart && a.Type != playground.ActionFinish && a.Target == "" {
		return m
	}
	f, err := m.session.Apply(context.Background(), a)
	if err != nil {
		m.err = err.Error()
		return m
	}
	m.err = ""
	for _, ev := range f.Events {
		m.log = append(m.log, fmt.Sprintf("%s #%s %+v", ev.Type, ev.Target, ev.Detail))
	}
	m.events.SetContent(logText(m.log))
	m.events.GotoBottom()
	if f.Focused != "" {
		m.selectID(f.Focused)
	}
	return m
}

func (m *Model) selectID(id string) {
	for i, t := range m.targets {
		if t == id {
			m.cursor = i
			return
		}
	}
}

// refreshTargets collects the ids of the story's light-tree elements in
// document order.
func (m *Model) refreshTargets() {
	m.targets = nil
	doc := m.session.Document()
	doc.Body().Walk(func(e *dom.Element) bool {
		if !e.IsText() && e.ID() != "" {
			m.targets = append(m.targets, e.ID())
		}
		return true
	})
	if m.cursor >= len(m.targets) {
		m.cursor = 0
	}
}
