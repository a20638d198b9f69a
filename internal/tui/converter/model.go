// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     converter
// Description: Bubbletea model for the interactive unit converter
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package converter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	mdwlog "github.com/msto63/unitcal/foundation/core/log"
	"github.com/msto63/unitcal/internal/present"
	"github.com/msto63/unitcal/pkg/units"
)

// maxHistory is the number of accepted conversions kept on screen
const maxHistory = 5

// field identifies the focused input
type field int

const (
	fieldValue field = iota
	fieldFrom
	fieldTo
	fieldCount
)

// Config configures the converter model
type Config struct {
	Table         *units.Table
	Formatter     *present.Formatter
	Logger        *mdwlog.Logger
	StartCategory units.Category
	StatusTimeout time.Duration
}

// Model is the Bubbletea model for the converter
type Model struct {
	// State
	width  int
	height int
	ready  bool
	focus  field
	err    error

	// Components
	input textinput.Model

	// Dependencies
	table     *units.Table
	formatter *present.Formatter
	logger    *mdwlog.Logger

	// Selection
	categories []units.Category
	catIdx     int
	unitList   []units.UnitDefinition
	fromIdx    int
	toIdx      int

	// Output
	result  string
	warning string
	history []string

	// Status line
	status        string
	statusID      int
	statusTimeout time.Duration
}

// New creates a new converter model
func New(cfg Config) Model {
	table := cfg.Table
	if table == nil {
		table = units.Builtin()
	}
	formatter := cfg.Formatter
	if formatter == nil {
		formatter, _ = present.New("de", 6)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}

	ti := textinput.New()
	ti.Placeholder = "Wert eingeben..."
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	m := Model{
		input:         ti,
		table:         table,
		formatter:     formatter,
		logger:        logger,
		categories:    table.Categories(),
		statusTimeout: cfg.StatusTimeout,
	}
	if m.statusTimeout <= 0 {
		m.statusTimeout = 3 * time.Second
	}

	for i, c := range m.categories {
		if c == cfg.StartCategory {
			m.catIdx = i
			break
		}
	}
	m.selectCategory(m.catIdx)

	return m
}

// Run starts the converter in the alternate screen
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case statusClearedMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == fieldValue {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case tea.KeyShiftTab:
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case tea.KeyCtrlS:
		m.swap()
		return m, m.setStatus("Einheiten getauscht")

	case tea.KeyEnter:
		return m, m.accept()
	}

	if m.focus == fieldValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.recompute()
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyUp:
		m.cycleUnit(-1)
	case tea.KeyDown:
		m.cycleUnit(1)
	case tea.KeyLeft:
		m.selectCategory((m.catIdx + len(m.categories) - 1) % len(m.categories))
	case tea.KeyRight:
		m.selectCategory((m.catIdx + 1) % len(m.categories))
	}
	return m, nil
}

func (m *Model) setFocus(f field) {
	m.focus = f
	if f == fieldValue {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// selectCategory switches the category and resets the unit selection to
// the base unit and the first other unit.
func (m *Model) selectCategory(idx int) {
	if len(m.categories) == 0 {
		return
	}
	m.catIdx = idx
	m.unitList = m.table.UnitsOf(m.categories[idx])
	m.fromIdx = 0
	m.toIdx = 0
	if len(m.unitList) > 1 {
		m.toIdx = 1
	}
	m.recompute()
}

func (m *Model) cycleUnit(delta int) {
	n := len(m.unitList)
	if n == 0 {
		return
	}
	switch m.focus {
	case fieldFrom:
		m.fromIdx = (m.fromIdx + delta + n) % n
	case fieldTo:
		m.toIdx = (m.toIdx + delta + n) % n
	}
	m.recompute()
}

// swap exchanges source and target unit and carries the current result
// over as the new input value.
func (m *Model) swap() {
	value, ok, _ := m.parseInput()
	m.fromIdx, m.toIdx = m.toIdx, m.fromIdx
	if ok {
		if converted, err := m.convert(value, m.toIdx, m.fromIdx); err == nil {
			m.input.SetValue(strconv.FormatFloat(converted, 'g', -1, 64))
		}
	}
	m.recompute()
}

func (m *Model) accept() tea.Cmd {
	if m.result == "" || m.err != nil {
		return m.setStatus("Nichts zu übernehmen")
	}
	entry := fmt.Sprintf("%s %s = %s", m.input.Value(), m.unitList[m.fromIdx].Symbol, m.result)
	m.history = append([]string{entry}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
	m.logger.Debug("conversion accepted", mdwlog.Fields{"entry": entry})
	return m.setStatus("Übernommen")
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusID++
	m.status = text
	id := m.statusID
	return tea.Tick(m.statusTimeout, func(time.Time) tea.Msg {
		return statusClearedMsg{id: id}
	})
}

// parseInput reads the value field. A comma is accepted as decimal separator.
func (m *Model) parseInput() (float64, bool, error) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, false, fmt.Errorf("ungültige Zahl: %q", raw)
	}
	return value, true, nil
}

func (m *Model) convert(value float64, from, to int) (float64, error) {
	category := m.categories[m.catIdx]
	return m.table.Convert(value, m.unitList[from].ID, m.unitList[to].ID, category)
}

func (m *Model) recompute() {
	m.result, m.warning, m.err = "", "", nil
	if len(m.unitList) == 0 {
		return
	}

	value, ok, err := m.parseInput()
	if err != nil {
		m.err = err
		return
	}
	if !ok {
		return
	}

	category := m.categories[m.catIdx]
	from := m.unitList[m.fromIdx]
	if rangeErr := m.table.CheckRange(category, from.ID, value); rangeErr != nil {
		m.warning = "unter dem absoluten Nullpunkt"
	}

	converted, err := m.convert(value, m.fromIdx, m.toIdx)
	if err != nil {
		m.err = err
		return
	}
	m.result = m.formatter.Quantity(units.Quantity{Value: converted, Unit: m.unitList[m.toIdx]})
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(PanelStyle.Render(m.renderForm()))
	b.WriteString("\n")

	if len(m.history) > 0 {
		b.WriteString("\n")
		for _, entry := range m.history {
			b.WriteString(HistoryStyle.Render("  " + entry))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		if i == m.catIdx {
			tabs = append(tabs, CategoryActiveStyle.Render(string(c)))
		} else {
			tabs = append(tabs, CategoryStyle.Render(string(c)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("unitcal · Umrechner"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m Model) renderForm() string {
	var b strings.Builder

	b.WriteString(LabelStyle.Render("Wert"))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("Von"))
	b.WriteString(m.renderUnit(fieldFrom, m.fromIdx))
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("Nach"))
	b.WriteString(m.renderUnit(fieldTo, m.toIdx))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Ergebnis"))
	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(m.err.Error()))
	case m.result != "":
		b.WriteString(ResultStyle.Render(m.result))
	default:
		b.WriteString(HistoryStyle.Render("-"))
	}
	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Hinweis: " + m.warning))
	}

	return b.String()
}

func (m Model) renderUnit(f field, idx int) string {
	if idx >= len(m.unitList) {
		return ""
	}
	text := m.formatter.Unit(m.unitList[idx])
	if m.focus == f {
		return FieldFocusedStyle.Render("▸ " + text)
	}
	return FieldStyle.Render("  " + text)
}

func (m Model) renderStatusBar() string {
	if m.status == "" {
		return ""
	}
	return WarningStyle.Render(m.status)
}

func (m Model) renderHelpBar() string {
	return HelpStyle.Render("Tab: Feld wechseln · ←/→: Kategorie · ↑/↓: Einheit · Strg+S: tauschen · Enter: übernehmen · Esc: beenden")
}
