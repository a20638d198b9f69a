package converter

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/unitcal/internal/present"
	"github.com/msto63/unitcal/pkg/units"
)

func newTestModel(t *testing.T, start units.Category) Model {
	t.Helper()
	f, err := present.New("en", 6)
	if err != nil {
		t.Fatalf("present.New() error = %v", err)
	}
	return New(Config{Table: units.Builtin(), Formatter: f, StartCategory: start})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_StartCategory(t *testing.T) {
	m := newTestModel(t, units.Temperature)

	if got := m.categories[m.catIdx]; got != units.Temperature {
		t.Errorf("category = %s, want temperature", got)
	}
	if m.unitList[m.fromIdx].ID != "celsius" || m.unitList[m.toIdx].ID != "fahrenheit" {
		t.Errorf("selection = %s -> %s, want celsius -> fahrenheit",
			m.unitList[m.fromIdx].ID, m.unitList[m.toIdx].ID)
	}
}

func TestNew_UnknownStartCategoryFallsBack(t *testing.T) {
	m := newTestModel(t, units.Category("unknown"))
	if got := m.categories[m.catIdx]; got != units.Length {
		t.Errorf("category = %s, want length", got)
	}
}

func TestUpdate_TypingConverts(t *testing.T) {
	m := newTestModel(t, units.Temperature)
	m = send(t, m, typeText("100"))

	if m.result != "212 °F" {
		t.Errorf("result = %q, want %q", m.result, "212 °F")
	}
	if !strings.Contains(m.View(), "212 °F") {
		t.Error("View() does not show the result")
	}
}

func TestUpdate_DecimalComma(t *testing.T) {
	m := newTestModel(t, units.Length)
	m = send(t, m, typeText("1,5"))

	if m.result != "0.0015 km" {
		t.Errorf("result = %q, want %q", m.result, "0.0015 km")
	}
}

func TestUpdate_InvalidNumber(t *testing.T) {
	m := newTestModel(t, units.Length)
	m = send(t, m, typeText("abc"))

	if m.err == nil {
		t.Fatal("expected error for invalid number")
	}
	if m.result != "" {
		t.Errorf("result = %q, want empty", m.result)
	}
}

func TestUpdate_BelowAbsoluteZeroWarns(t *testing.T) {
	m := newTestModel(t, units.Temperature)
	m = send(t, m, typeText("-300"))

	if m.warning == "" {
		t.Error("expected range warning")
	}
	if m.result == "" {
		t.Error("conversion should still produce a result")
	}
}

func TestUpdate_CycleUnitAndCategory(t *testing.T) {
	m := newTestModel(t, units.Length)
	m = send(t, m, typeText("1"))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown})
	if m.focus != fieldFrom {
		t.Fatalf("focus = %d, want fieldFrom", m.focus)
	}
	if m.unitList[m.fromIdx].ID != "km" {
		t.Errorf("from = %s, want km", m.unitList[m.fromIdx].ID)
	}
	if m.result != "1 km" {
		t.Errorf("result = %q, want %q", m.result, "1 km")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.unitList[m.fromIdx].ID; got != "nmi" {
		t.Errorf("from after wrap = %s, want nmi", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.categories[m.catIdx]; got != units.Mass {
		t.Errorf("category = %s, want mass", got)
	}
	if m.fromIdx != 0 || m.toIdx != 1 {
		t.Errorf("selection not reset: from=%d to=%d", m.fromIdx, m.toIdx)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.categories[m.catIdx]; got != units.Speed {
		t.Errorf("category after wrap = %s, want speed", got)
	}
}

func TestUpdate_ShiftTabWraps(t *testing.T) {
	m := newTestModel(t, units.Length)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldTo {
		t.Errorf("focus = %d, want fieldTo", m.focus)
	}
	if m.input.Focused() {
		t.Error("value input should be blurred")
	}
}

func TestUpdate_Swap(t *testing.T) {
	m := newTestModel(t, units.Temperature)
	m = send(t, m, typeText("100"), tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.unitList[m.fromIdx].ID != "fahrenheit" {
		t.Errorf("from = %s, want fahrenheit", m.unitList[m.fromIdx].ID)
	}
	if m.input.Value() != "212" {
		t.Errorf("input = %q, want %q", m.input.Value(), "212")
	}
	if m.result != "100 °C" {
		t.Errorf("result = %q, want %q", m.result, "100 °C")
	}
	if m.status == "" {
		t.Error("expected status after swap")
	}
}

func TestUpdate_AcceptAndStatusClear(t *testing.T) {
	m := newTestModel(t, units.Length)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if len(m.history) != 0 {
		t.Error("empty input must not be accepted")
	}
	if cmd == nil {
		t.Error("expected status timer")
	}

	m = send(t, m, typeText("2"), tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.history) != 1 || m.history[0] != "2 m = 0.002 km" {
		t.Fatalf("history = %v", m.history)
	}
	if m.status != "Übernommen" {
		t.Errorf("status = %q", m.status)
	}

	// a stale timer does not clear a newer status
	m = send(t, m, statusClearedMsg{id: m.statusID - 1})
	if m.status == "" {
		t.Error("stale timer cleared status")
	}
	m = send(t, m, statusClearedMsg{id: m.statusID})
	if m.status != "" {
		t.Errorf("status = %q, want cleared", m.status)
	}
}

func TestUpdate_HistoryLimit(t *testing.T) {
	m := newTestModel(t, units.Length)
	m = send(t, m, typeText("1"))
	for i := 0; i < maxHistory+3; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	if len(m.history) != maxHistory {
		t.Errorf("len(history) = %d, want %d", len(m.history), maxHistory)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t, units.Length)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, units.Length)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if !m.ready || m.width != 100 || m.height != 40 {
		t.Errorf("size not applied: ready=%v %dx%d", m.ready, m.width, m.height)
	}
}
