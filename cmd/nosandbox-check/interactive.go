package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	nosandbox "github.com/wippyai/wasm-nosandbox"
	"github.com/wippyai/wasm-nosandbox/conformance"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

type interactiveModel struct {
	err        error
	checker    *conformance.Checker
	opts       []conformance.Option
	intrinsics []nosandbox.Intrinsic
	inputs     []textinput.Model
	native     uint64
	reference  uint64
	selected   int
	focusIdx   int
	state      modelState
}

type modelState int

const (
	stateSelect modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(opts []conformance.Option) *interactiveModel {
	return &interactiveModel{
		opts:  opts,
		state: stateSelect,
	}
}

type loadedMsg struct {
	err     error
	checker *conformance.Checker
}

type evalResultMsg struct {
	err       error
	native    uint64
	reference uint64
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	checker, err := conformance.New(context.Background(), m.opts...)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{checker: checker}
}

func (m *interactiveModel) close() {
	if m.checker != nil {
		m.checker.Close(context.Background())
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.close()
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				m.close()
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.intrinsics)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelect:
				if len(m.intrinsics) == 0 {
					return m, nil
				}
				m.prepareInputs()
				m.state = stateInputArgs
				return m, textinput.Blink

			case stateInputArgs:
				return m, m.evaluate

			case stateShowResult:
				m.state = stateSelect
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelect
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelect
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.checker = msg.checker
		m.intrinsics = msg.checker.Intrinsics()

	case evalResultMsg:
		m.err = msg.err
		m.native = msg.native
		m.reference = msg.reference
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	in := m.intrinsics[m.selected]
	m.inputs = make([]textinput.Model, len(in.Params))
	for i, p := range in.Params {
		ti := textinput.New()
		ti.Placeholder = p.String()
		ti.Prompt = paramName(in, i) + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func paramName(in nosandbox.Intrinsic, i int) string {
	switch {
	case in.Class == nosandbox.ClassLoad || (in.Class == nosandbox.ClassStore && i == 0):
		return "offset"
	case in.Class == nosandbox.ClassStore:
		return "value"
	case in.Class == nosandbox.ClassBinary && i == 1:
		return "y"
	default:
		return "x"
	}
}

func (m *interactiveModel) evaluate() tea.Msg {
	in := m.intrinsics[m.selected]
	args := make([]uint64, len(m.inputs))
	for i, input := range m.inputs {
		t := in.Params[i]
		if paramName(in, i) == "offset" {
			t = nosandbox.I32
		}
		v, err := parseArg(input.Value(), t)
		if err != nil {
			return evalResultMsg{err: fmt.Errorf("%s: %w", paramName(in, i), err)}
		}
		args[i] = v
	}

	native, reference, err := m.checker.Evaluate(context.Background(), in.Name, args...)
	return evalResultMsg{err: err, native: native, reference: reference}
}

// parseArg accepts Go integer literals (decimal, 0x, 0b, 0o, negative), taken
// as bit patterns, and for float types decimal floats, inf and nan.
func parseArg(s string, t nosandbox.ValType) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u & t.Mask(), nil
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return uint64(i) & t.Mask(), nil
	}
	switch t {
	case nosandbox.F32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, err
		}
		return uint64(math.Float32bits(float32(f))), nil
	case nosandbox.F64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		return math.Float64bits(f), nil
	}
	return 0, fmt.Errorf("invalid %s operand %q", t, s)
}

func formatValue(v uint64, t nosandbox.ValType) string {
	switch t {
	case nosandbox.I32:
		return fmt.Sprintf("%#x (%d)", v, int32(v))
	case nosandbox.F32:
		return fmt.Sprintf("%#x (%g)", v, math.Float32frombits(uint32(v)))
	case nosandbox.F64:
		return fmt.Sprintf("%#x (%g)", v, math.Float64frombits(v))
	default:
		return fmt.Sprintf("%#x (%d)", v, int64(v))
	}
}

func resultType(in nosandbox.Intrinsic) nosandbox.ValType {
	if len(in.Results) > 0 {
		return in.Results[0]
	}
	return in.Params[len(in.Params)-1]
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return failStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.intrinsics) == 0 {
		return "Compiling reference module..."
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("no-sandbox evaluator"))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" %d bytes of linear memory", m.checker.MemorySize())))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		b.WriteString("Select an intrinsic:\n\n")
		for i, in := range m.intrinsics {
			line := in.Name + " " + typeStyle.Render(signature(in))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + in.Name))
				b.WriteString(" " + typeStyle.Render(signature(in)))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputArgs:
		in := m.intrinsics[m.selected]
		b.WriteString(fmt.Sprintf("Evaluating %s %s\n\n", in.Name, dimStyle.Render(in.Symbol)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("tab next field • enter evaluate • esc back"))

	case stateShowResult:
		in := m.intrinsics[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", in.Name))
		if m.err != nil {
			b.WriteString(failStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			t := resultType(in)
			b.WriteString("  native    " + formatValue(m.native, t) + "\n")
			b.WriteString("  reference " + formatValue(m.reference, t) + "\n\n")
			if m.native == m.reference {
				b.WriteString(okStyle.Render("match"))
			} else {
				b.WriteString(failStyle.Render("MISMATCH"))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(opts []conformance.Option) error {
	p := tea.NewProgram(newInteractiveModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
