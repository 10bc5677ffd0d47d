package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CheckStatus is the lifecycle of one file in a directory check.
type CheckStatus uint8

const (
	StatusQueued CheckStatus = iota
	StatusParsing
	StatusOK
	StatusFailed
)

// CheckEvent reports one file's status change.
type CheckEvent struct {
	Path        string
	Status      CheckStatus
	Diagnostics int
}

type checkModel struct {
	title   string
	events  <-chan CheckEvent
	spinner spinner.Model
	prog    progress.Model
	items   []checkItem
	index   map[string]int
	width   int
	done    bool
}

type checkItem struct {
	path        string
	status      CheckStatus
	diagnostics int
}

type checkEventMsg CheckEvent
type checkDoneMsg struct{}

// NewCheckModel returns a Bubble Tea model rendering the progress of a
// directory check. The channel closing ends the program.
func NewCheckModel(title string, files []string, events <-chan CheckEvent) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]checkItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, checkItem{path: file})
		index[file] = i
	}
	return &checkModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *checkModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkEventMsg:
		cmd := m.applyEvent(CheckEvent(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case checkDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		model, cmd := m.prog.Update(msg)
		m.prog = model.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m *checkModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	header := m.title
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := m.width - 16
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, item := range m.items {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styleCheckStatus(item.status).Render(fmt.Sprintf("%10s", statusText(item))),
			truncate(item.path, nameWidth)))
	}

	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *checkModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return checkDoneMsg{}
		}
		return checkEventMsg(ev)
	}
}

func (m *checkModel) applyEvent(ev CheckEvent) tea.Cmd {
	idx, ok := m.index[ev.Path]
	if !ok {
		return nil
	}
	m.items[idx].status = ev.Status
	m.items[idx].diagnostics = ev.Diagnostics

	finished := 0
	for _, item := range m.items {
		if item.status == StatusOK || item.status == StatusFailed {
			finished++
		}
	}
	return m.prog.SetPercent(float64(finished) / float64(len(m.items)))
}

func statusText(item checkItem) string {
	switch item.status {
	case StatusParsing:
		return "parsing"
	case StatusOK:
		return "ok"
	case StatusFailed:
		return fmt.Sprintf("%d errors", item.diagnostics)
	default:
		return "queued"
	}
}

func styleCheckStatus(status CheckStatus) lipgloss.Style {
	switch status {
	case StatusOK:
		return okStyle
	case StatusFailed:
		return errStyle
	case StatusParsing:
		return kindStyle
	default:
		return spanStyle
	}
}
