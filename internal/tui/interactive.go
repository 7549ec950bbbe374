// Package tui provides the interactive terminal session: type variable
// assignments, see the inferred context and the winning law, or flip to
// the per-solver explain view.
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/physica/internal/dispatch"
	"github.com/san-kum/physica/internal/parse"
	"github.com/san-kum/physica/internal/regime"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type view int

const (
	viewInput view = iota
	viewExplain
)

type model struct {
	disp *dispatch.Dispatcher

	view    view
	editBuf string
	errMsg  string

	outcome  *dispatch.Outcome
	context  regime.Context
	verdicts []dispatch.Verdict

	width  int
	height int
}

// New builds the interactive model over a dispatcher.
func New(disp *dispatch.Dispatcher) tea.Model {
	return model{disp: disp, width: 80, height: 24}
}

// Run starts the interactive session and blocks until quit.
func Run(disp *dispatch.Dispatcher) error {
	_, err := tea.NewProgram(New(disp), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.view == viewExplain {
			m.view = viewInput
			return m, nil
		}
		return m, tea.Quit
	case "tab":
		if m.outcome != nil {
			if m.view == viewInput {
				m.view = viewExplain
			} else {
				m.view = viewInput
			}
		}
		return m, nil
	case "enter":
		m.solve()
		return m, nil
	case "backspace":
		if len(m.editBuf) > 0 {
			runes := []rune(m.editBuf)
			m.editBuf = string(runes[:len(runes)-1])
		}
		return m, nil
	case " ":
		m.editBuf += " "
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			m.editBuf += string(msg.Runes)
		}
		return m, nil
	}
}

func (m *model) solve() {
	m.errMsg = ""
	input := strings.TrimSpace(m.editBuf)
	if input == "" {
		return
	}
	store, err := parse.Assignments(input)
	if err != nil {
		m.errMsg = err.Error()
		m.outcome = nil
		return
	}
	ctx, verdicts := m.disp.Explain(store.Clone())
	out := m.disp.DispatchWith(store, ctx)
	m.outcome = &out
	m.context = ctx
	m.verdicts = verdicts
	m.view = viewInput
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("physica") + dim.Render("  ·  physics law dispatcher") + "\n\n")
	b.WriteString(white.Render("variables> ") + m.editBuf + yellow.Render("▌") + "\n")
	b.WriteString(dim.Render(`e.g. "Q=100, W=40" or "q1=1e-6, q2=-2e-6, x1=0, y1=0, x2=3, y2=4"`) + "\n\n")

	if m.errMsg != "" {
		b.WriteString(red.Render("✗ "+m.errMsg) + "\n")
	}

	switch m.view {
	case viewExplain:
		m.renderExplain(&b)
	default:
		m.renderOutcome(&b)
	}

	b.WriteString("\n" + dim.Render("enter solve · tab explain · esc quit"))
	return b.String()
}

func (m model) renderOutcome(b *strings.Builder) {
	if m.outcome == nil {
		return
	}
	out := m.outcome

	b.WriteString(dim.Render(fmt.Sprintf("context: %s / %s", m.context.Regime, m.context.Substance)) + "\n\n")

	switch out.Status {
	case dispatch.Solved:
		b.WriteString(green.Render("✓ solved") +
			white.Render(" by ") + magenta.Render(out.Solver) +
			dim.Render(" ("+out.Domain+")") + "\n\n")

		syms := out.Values.Names()
		sort.Strings(syms)
		for _, sym := range syms {
			val, _ := out.Values.Get(sym)
			b.WriteString(fmt.Sprintf("  %s = %s\n", cyan.Render(sym), white.Render(fmt.Sprintf("%g", val))))
		}
	case dispatch.NoMatch:
		b.WriteString(yellow.Render("∅ no matching law") + "\n")
		b.WriteString(dim.Render("  "+out.Reason) + "\n")
	case dispatch.Failed:
		b.WriteString(red.Render("✗ "+out.Solver+" failed") + "\n")
		b.WriteString(dim.Render("  "+out.Reason) + "\n")
	}
}

func (m model) renderExplain(b *strings.Builder) {
	b.WriteString(dim.Render(fmt.Sprintf("context: %s / %s", m.context.Regime, m.context.Substance)) + "\n\n")
	for _, v := range m.verdicts {
		mark := red.Render("✗")
		if v.Eligible() {
			mark = green.Render("✓")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", mark,
			white.Render(fmt.Sprintf("%-26s", v.Name)),
			dim.Render(fmt.Sprintf("p=%-3d ctx=%-5v names=%-5v values=%v",
				v.Priority, v.ContextOK, v.Structural, v.Validated))))
	}
}
