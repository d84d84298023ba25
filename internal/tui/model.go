// Package tui implements the interactive checklist.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daytrack/internal/score"
	"daytrack/internal/tracker"
)

// RefreshMsg asks the model to re-read tracker state, e.g. after another
// process wrote to the database.
type RefreshMsg struct{}

// updatedMsg carries the tracker state after an operation.
type updatedMsg struct {
	snap tracker.Snapshot
	err  error
}

// tickMsg fires every poll interval.
type tickMsg time.Time

// Model is the bubbletea model for the checklist.
type Model struct {
	ctx      context.Context
	trk      *tracker.Tracker
	view     *Renderer
	interval time.Duration

	snap   tracker.Snapshot
	cursor int
	err    error

	input  textinput.Model
	adding bool

	styles Styles
}

// New creates a model driving trk. It installs its own view on trk.
func New(ctx context.Context, trk *tracker.Tracker, interval time.Duration) Model {
	if interval <= 0 {
		interval = tracker.DefaultPollInterval
	}

	r := &Renderer{}
	trk.SetView(r)

	in := textinput.New()
	in.Placeholder = "New task..."
	in.CharLimit = 200
	in.Width = 40

	return Model{
		ctx:      ctx,
		trk:      trk,
		view:     r,
		interval: interval,
		input:    in,
		styles:   DefaultStyles(),
	}
}

// Init loads the current state and starts the rollover poll.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), m.scheduleTick())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updatedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.snap = msg.snap
		}
		m.clampCursor()
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.tick(time.Time(msg)), m.scheduleTick())

	case RefreshMsg:
		return m, m.refresh()

	case tea.KeyMsg:
		if m.adding {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Tasks)-1 {
			m.cursor++
		}
	case " ", "x", "enter":
		if m.cursor < len(m.snap.Tasks) {
			return m, m.toggle(m.cursor, !m.snap.Tasks[m.cursor].Checked)
		}
	case "a":
		m.adding = true
		return m, m.input.Focus()
	case "r":
		return m, m.refresh()
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case "enter":
		text := m.input.Value()
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, m.add(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Tasks) {
		m.cursor = len(m.snap.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) updated(err error) tea.Msg {
	return updatedMsg{snap: m.view.Latest(), err: err}
}

func (m Model) toggle(index int, checked bool) tea.Cmd {
	return func() tea.Msg {
		return m.updated(m.trk.OnToggle(m.ctx, index, checked))
	}
}

func (m Model) add(text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.trk.OnAdd(m.ctx, text)
		return m.updated(err)
	}
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		return m.updated(m.trk.Refresh(m.ctx))
	}
}

func (m Model) tick(now time.Time) tea.Cmd {
	return func() tea.Msg {
		_, err := m.trk.Tick(m.ctx, now)
		return m.updated(err)
	}
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the checklist.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("daytrack  " + m.trk.Now().Format(score.DateLayout)))
	b.WriteString("\n")

	if len(m.snap.Tasks) == 0 {
		b.WriteString("  no tasks\n")
	}
	for i, t := range m.snap.Tasks {
		cursor := "  "
		if i == m.cursor && !m.adding {
			cursor = m.styles.Cursor.Render("> ")
		}
		line := "[ ] " + t.Text
		style := m.styles.Task
		if t.Checked {
			line = "[x] " + t.Text
			style = m.styles.Checked
		}
		b.WriteString(cursor + style.Render(line) + "\n")
	}

	b.WriteString(m.styles.Score.Render(fmt.Sprintf("today %d   week %d", m.snap.Today, m.snap.Weekly)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
		b.WriteString(m.styles.Footer.Render("enter save • esc cancel"))
	} else {
		b.WriteString(m.styles.Footer.Render("space toggle • a add • r refresh • q quit"))
	}
	b.WriteString("\n")
	return b.String()
}
