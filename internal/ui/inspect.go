// Package ui holds the interactive terminal surfaces: the syntax tree
// inspector and the directory check progress view.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"garnet/internal/ast"
	"garnet/internal/diagfmt"
	"garnet/internal/driver"
)

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	spanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	sourceStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type treeLine struct {
	node  ast.Node
	depth int
}

type inspectModel struct {
	result *driver.ParseResult
	lines  []treeLine

	cursor int
	top    int
	width  int
	height int
}

// NewInspectModel builds the tree inspector over one parse result.
func NewInspectModel(result *driver.ParseResult) tea.Model {
	m := &inspectModel{result: result, width: 80, height: 24}
	flattenTree(result.Tree, 0, &m.lines)
	return m
}

func flattenTree(n ast.Node, depth int, out *[]treeLine) {
	if n == nil {
		return
	}
	*out = append(*out, treeLine{node: n, depth: depth})
	for _, child := range n.ChildNodes() {
		flattenTree(child, depth+1, out)
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup", "b":
			m.move(-m.treeHeight())
		case "pgdown", "f", " ":
			m.move(m.treeHeight())
		case "g", "home":
			m.cursor = 0
			m.top = 0
		case "G", "end":
			m.move(len(m.lines))
		}
		return m, nil
	}
	return m, nil
}

func (m *inspectModel) move(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.lines) {
		m.cursor = len(m.lines) - 1
	}
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if h := m.treeHeight(); m.cursor >= m.top+h {
		m.top = m.cursor - h + 1
	}
}

// treeHeight is the line budget for the tree pane: everything except
// the header, the source pane, and the footer.
func (m *inspectModel) treeHeight() int {
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	return h
}

func (m *inspectModel) View() string {
	if len(m.lines) == 0 {
		return "empty tree\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("garnet inspect: %s", m.result.File.Path)))
	b.WriteString("\n\n")

	end := m.top + m.treeHeight()
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for i := m.top; i < end; i++ {
		b.WriteString(m.renderLine(i))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.renderSource())
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *inspectModel) renderLine(i int) string {
	line := m.lines[i]
	sp := line.node.Span()
	label := fmt.Sprintf("%s%s", strings.Repeat("  ", line.depth), line.node.Kind().String())
	span := fmt.Sprintf(" [%d,%d)", sp.Start, sp.End)
	text := truncate(label+span, m.width-2)
	if i == m.cursor {
		return selectedStyle.Render(text)
	}
	cut := len(label)
	if cut > len(text) {
		cut = len(text)
	}
	return kindStyle.Render(text[:cut]) + spanStyle.Render(text[cut:])
}

// renderSource shows the first line the selected node's span touches,
// clipped to the terminal width.
func (m *inspectModel) renderSource() string {
	sp := m.lines[m.cursor].node.Span()
	start, _ := m.result.FileSet.Resolve(sp)
	line := strings.TrimRight(m.result.File.GetLine(start.Line), "\n")
	header := fmt.Sprintf("%d:%d", start.Line, start.Col)
	content := truncate(line, m.width-6)
	if content == "" {
		content = " "
	}
	return sourceStyle.Width(m.width - 4).Render(header + " | " + content)
}

func (m *inspectModel) renderFooter() string {
	var status string
	if m.result.Success() {
		status = okStyle.Render("no errors")
	} else {
		status = errStyle.Render(fmt.Sprintf("%d diagnostics", m.result.Bag.Len()))
	}
	sel := m.lines[m.cursor].node
	extra := strings.TrimSpace(scalarInfo(sel))
	if extra != "" {
		extra = "  " + extra
	}
	return fmt.Sprintf("%d/%d  %s%s  (q quits)", m.cursor+1, len(m.lines), status, extra)
}

func scalarInfo(n ast.Node) string {
	line := diagfmt.Summary(n)
	if i := strings.IndexByte(line, ')'); i >= 0 && i+1 < len(line) {
		return line[i+1:]
	}
	return ""
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
