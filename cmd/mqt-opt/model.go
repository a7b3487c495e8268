package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TeWas/mqt-core/ir"
	"github.com/TeWas/mqt-core/qasm"
)

// Model represents the TUI application state: the pristine input program on
// the left, the rewritten program on the right, and a pass picker in
// between. Passes accumulate on the right side until the program is reset.
type Model struct {
	path     string
	source   *ir.Program
	current  *ir.Program
	menuIdx  int
	before   viewport.Model
	after    viewport.Model
	width    int
	height   int
	status   string
	statusOk bool
}

func initialModel(path string, p *ir.Program) Model {
	m := Model{
		path:     path,
		source:   p,
		current:  p.Clone(),
		before:   viewport.New(40, 20),
		after:    viewport.New(40, 20),
		status:   summarize(p),
		statusOk: true,
	}
	m.before.SetContent(qasm.Write(m.source))
	m.after.SetContent(qasm.Write(m.current))
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		paneWidth := max((m.width-40)/2, 20)
		paneHeight := max(m.height-6, 5)
		m.before.Width = paneWidth
		m.before.Height = paneHeight
		m.after.Width = paneWidth
		m.after.Height = paneHeight

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.menuIdx > 0 {
				m.menuIdx--
			}
		case "down", "j":
			if m.menuIdx < len(passMenu)-1 {
				m.menuIdx++
			}
		case "enter", " ":
			m.applySelected()
		case "r":
			m.current = m.source.Clone()
			m.after.SetContent(qasm.Write(m.current))
			m.status = "reset to input"
			m.statusOk = true
		case "s":
			m.save()
		default:
			var cmd tea.Cmd
			m.after, cmd = m.after.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) applySelected() {
	item := passMenu[m.menuIdx]
	note, err := item.apply(m.current)
	switch {
	case err != nil:
		m.status = fmt.Sprintf("%s: %v", item.name, err)
		m.statusOk = false
	case note != "":
		m.status = fmt.Sprintf("%s: %s", item.name, note)
		m.statusOk = true
	default:
		m.status = fmt.Sprintf("%s: %s", item.name, summarize(m.current))
		m.statusOk = true
	}
	m.after.SetContent(qasm.Write(m.current))
}

func (m *Model) save() {
	out := strings.TrimSuffix(m.path, ".qasm") + ".opt.qasm"
	if err := os.WriteFile(out, []byte(qasm.Write(m.current)), 0o644); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		m.statusOk = false
		return
	}
	m.status = "saved to " + out
	m.statusOk = true
}

func (m Model) renderMenu() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Passes"))
	sb.WriteString("\n")
	for i, item := range passMenu {
		if i == m.menuIdx {
			sb.WriteString(menuSelectedStyle.Render("> " + item.name))
		} else {
			sb.WriteString(menuNormalStyle.Render("  " + item.name))
		}
		sb.WriteString("\n")
	}
	return menuBorderStyle.Render(sb.String())
}

func (m Model) View() string {
	before := paneStyle.Render(titleStyle.Render("Input") + "\n" + m.before.View())
	after := paneStyle.Render(titleStyle.Render("Rewritten") + "\n" + m.after.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, before, m.renderMenu(), after)

	status := statusOkStyle.Render(m.status)
	if !m.statusOk {
		status = statusErrStyle.Render(m.status)
	}
	help := dimStyle.Render("↑/↓ select · enter apply · r reset · s save · q quit")

	return panes + "\n" + status + "\n" + help
}
