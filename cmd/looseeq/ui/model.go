package ui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"looseeq/explain"
)

const (
	inputHeight = 3
	// border and padding around each pane, plus the button and footer rows
	chromeHeight = 2 + 2 + 1 + 1
)

// Options configures the model
type Options struct {
	Theme   Theme
	Verify  bool
	Version string
}

// Model is the bubbletea model of the terminal front end
type Model struct {
	input  textarea.Model
	output viewport.Model
	styles Styles

	verify  bool
	version string
	report  *explain.Report

	width  int
	height int
}

// New creates the model with an empty, focused input
func New(opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = `0, "1", [[]], Symbol("s"), new Date(0) ...`
	ta.ShowLineNumbers = false
	ta.SetHeight(inputHeight)
	ta.SetWidth(78)
	// Enter runs; alt+enter starts a new line
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))
	ta.Focus()

	vp := viewport.New(78, 10)
	vp.SetContent("")

	return Model{
		input:   ta,
		output:  vp,
		styles:  NewStyles(opts.Theme),
		verify:  opts.Verify,
		version: opts.Version,
	}
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// CanRun reports whether the Run button is enabled
func (m Model) CanRun() bool {
	return strings.TrimSpace(m.input.Value()) != ""
}

// Report returns the last report, if any input was run
func (m Model) Report() (explain.Report, bool) {
	if m.report == nil {
		return explain.Report{}, false
	}
	return *m.report, true
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter", "ctrl+r":
			m.run()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setSize(w, h int) {
	m.width = w
	m.height = h

	inner := max(w-4, 10)
	m.input.SetWidth(inner)
	m.output.Width = inner
	m.output.Height = max(h-inputHeight-2*chromeHeight, 3)
	if m.report != nil {
		m.output.SetContent(m.renderReport(*m.report))
	}
}

// run explains the current input. It does nothing while the Run button is
// disabled.
func (m *Model) run() {
	if !m.CanRun() {
		return
	}
	r := explain.Explain(m.input.Value(), explain.WithVerify(m.verify))
	m.report = &r
	m.output.SetContent(m.renderReport(r))
	m.output.GotoTop()
}

func (m Model) renderReport(r explain.Report) string {
	var sb strings.Builder
	if r.Failed() {
		sb.WriteString(m.styles.Header.Render(r.Header))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(r.Body))
		return sb.String()
	}

	sb.WriteString(m.styles.Header.Render(r.Header))
	for _, line := range strings.Split(r.Body, "\n") {
		sb.WriteString("\n")
		if strings.HasSuffix(line, "// not loosely equal") {
			sb.WriteString(m.styles.Mismatch.Render(line))
		} else {
			sb.WriteString(m.styles.Example.Render(line))
		}
	}
	return sb.String()
}

func (m Model) button() string {
	if m.CanRun() {
		return m.styles.Button.Render("Run")
	}
	return m.styles.ButtonDisabled.Render("Run")
}

// Footer identifies the runtime, the way the web page shows its user agent
func (m Model) Footer() string {
	return fmt.Sprintf("looseeq %s · %s %s/%s · enter: run · alt+enter: newline · esc: quit",
		m.version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// View renders the screen
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Input.Render(m.input.View()),
		m.button(),
		m.styles.Output.Render(m.output.View()),
		m.styles.Footer.Render(m.Footer()),
	)
}
