package ui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

// Options configures a new Model
type Options struct {
	Unit     models.Unit
	Timeout  time.Duration // per lookup; zero uses openmeteo.DefaultTimeout
	Location string        // submitted on start when not empty
}

// Model represents the application's state
type Model struct {
	state  ViewState
	unit   models.Unit
	width  int
	height int

	// Lookup
	lookup    Lookuper
	timeout   time.Duration
	lastToken uint64 // token of the most recent submit

	// Components
	searchInput textinput.Model
	spinner     spinner.Model
	help        help.Model
	keys        keyMap
}

// NewModel creates a new application model
func NewModel(lookup Lookuper, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter location name (e.g. Paris)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorSpinner)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = openmeteo.DefaultTimeout
	}

	m := Model{
		state:       Idle{},
		unit:        opts.Unit,
		lookup:      lookup,
		timeout:     timeout,
		searchInput: ti,
		spinner:     s,
		help:        help.New(),
		keys:        newKeyMap(opts.Unit),
	}

	if query := strings.TrimSpace(opts.Location); query != "" {
		m.searchInput.SetValue(query)
		m.lastToken++
		m.state = Loading{Query: query, Token: m.lastToken}
	}

	return m
}

// State returns the current view state
func (m Model) State() ViewState {
	return m.state
}

// Unit returns the display unit
func (m Model) Unit() models.Unit {
	return m.unit
}

// SetReport replaces the view state with a successful result
func (m *Model) SetReport(report *models.Report) {
	m.state = Success{Report: *report}
}

// Init starts the cursor blink and any lookup requested at startup
func (m Model) Init() tea.Cmd {
	if loading, ok := m.state.(Loading); ok {
		return tea.Batch(
			textinput.Blink,
			m.spinner.Tick,
			lookupWeather(m.lookup, loading.Query, loading.Token, m.timeout),
		)
	}
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case lookupResultMsg:
		return m.handleLookupResult(msg), nil

	case spinner.TickMsg:
		// Let the tick chain die outside of Loading
		if _, ok := m.state.(Loading); !ok {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleUnit):
			m.unit = m.unit.Toggle()
			m.keys.setUnit(m.unit)
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// submit starts a lookup for the current input
func (m Model) submit() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		return m, nil
	}

	_, wasLoading := m.state.(Loading)

	m.lastToken++
	m.state = Loading{Query: query, Token: m.lastToken}

	cmds := []tea.Cmd{lookupWeather(m.lookup, query, m.lastToken, m.timeout)}
	if !wasLoading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// handleLookupResult applies a completed lookup if it belongs to the latest submit
func (m Model) handleLookupResult(msg lookupResultMsg) Model {
	loading, ok := m.state.(Loading)
	if !ok || loading.Token != msg.token {
		log.Printf("Discarding stale result for %q (token %d)", msg.query, msg.token)
		return m
	}

	if msg.err != nil {
		log.Printf("Lookup for %q failed: %v", msg.query, msg.err)
		m.state = Failed{Message: weather.FailureMessage}
		return m
	}

	m.state = Success{Report: *msg.report}
	return m
}

// View renders the UI
func (m Model) View() string {
	title := titleStyle.Render("☁ Weather Terminal")
	subtitle := mutedStyle.Render("Current conditions from Open-Meteo")

	searchBox := searchBoxStyle.Render(m.searchInput.View())

	var sections []string
	sections = append(sections, title)
	sections = append(sections, subtitle)
	sections = append(sections, "")
	sections = append(sections, searchBox)
	sections = append(sections, "")

	switch s := m.state.(type) {
	case Idle:
		sections = append(sections, mutedStyle.Render("Examples: Paris | Tokyo | New York"))
	case Loading:
		sections = append(sections, m.spinner.View()+" Loading...")
	case Failed:
		sections = append(sections, errorStyle.Render("✗ "+s.Message))
	case Success:
		sections = append(sections, RenderReport(&s.Report, m.unit))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
