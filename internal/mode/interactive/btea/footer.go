// ABOUTME: FooterModel is a Bubble Tea leaf that renders a two-line status bar
// ABOUTME: Line 1: server, state and staged files with the pending marker; line 2: alert or key help

package btea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// alertLevel selects the alert colour.
type alertLevel int

const (
	alertInfo alertLevel = iota
	alertWarn
	alertError
)

// FooterModel renders the status bar.
type FooterModel struct {
	server  string
	state   string
	staged  []string
	dirty   bool
	alert   string
	level   alertLevel
	spinner spinner.Model
	help    help.Model
	keys    KeyMap
	width   int
}

// NewFooterModel creates an idle footer.
func NewFooterModel() FooterModel {
	return FooterModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
}

// Init returns nil; the spinner is ticked by the root model while busy.
func (m FooterModel) Init() tea.Cmd {
	return nil
}

// Update handles spinner ticks and window sizes.
func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// WithKeys returns a FooterModel whose help line shows keys.
func (m FooterModel) WithKeys(keys KeyMap) FooterModel {
	m.keys = keys
	return m
}

// WithServer returns a FooterModel showing the server URL.
func (m FooterModel) WithServer(url string) FooterModel {
	m.server = url
	return m
}

// WithState returns a FooterModel showing a busy label ("" means idle).
func (m FooterModel) WithState(state string) FooterModel {
	m.state = state
	return m
}

// WithStaged returns a FooterModel listing staged file names.
func (m FooterModel) WithStaged(names []string, dirty bool) FooterModel {
	m.staged = names
	m.dirty = dirty
	return m
}

// WithAlert returns a FooterModel showing msg on the second line.
func (m FooterModel) WithAlert(msg string, level alertLevel) FooterModel {
	m.alert = msg
	m.level = level
	return m
}

// ClearAlert removes the alert.
func (m FooterModel) ClearAlert() FooterModel {
	m.alert = ""
	return m
}

// Alert returns the current alert text.
func (m FooterModel) Alert() string {
	return m.alert
}

// SpinnerTick starts the spinner animation.
func (m FooterModel) SpinnerTick() tea.Cmd {
	return m.spinner.Tick
}

// View renders both lines.
func (m FooterModel) View() string {
	s := Styles()

	var parts []string
	if m.server != "" {
		parts = append(parts, s.Dim.Render(m.server))
	}
	if m.state != "" {
		parts = append(parts, m.spinner.View()+" "+s.Info.Render(m.state))
	}
	if len(m.staged) > 0 {
		files := fmt.Sprintf("files: %s", strings.Join(m.staged, ", "))
		if m.dirty {
			files += " " + s.Warning.Render("● pending upload")
		}
		parts = append(parts, files)
	} else if m.dirty {
		parts = append(parts, s.Warning.Render("● pending upload"))
	}
	line1 := strings.Join(parts, s.Border.Render(" │ "))
	if m.width > 0 {
		line1 = lipgloss.NewStyle().MaxWidth(m.width).Render(line1)
	}

	var line2 string
	switch {
	case m.alert == "":
		line2 = m.help.ShortHelpView(m.keys.ShortHelp())
	case m.level == alertError:
		line2 = s.Error.Render(m.alert)
	case m.level == alertWarn:
		line2 = s.Warning.Render(m.alert)
	default:
		line2 = s.Success.Render(m.alert)
	}
	return line1 + "\n" + line2
}
