package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rustyeddy/sizer/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formTable = map[string]float64{"ES": 12.50, "NQ": 5.00}

func formSnapshot() risk.Snapshot {
	return risk.Snapshot{
		MaxContracts: "1",
		MaxLoss:      "2500",
		DailyLossCap: "500",
		ProfitTarget: "3000",
		TradesToBust: "10",
		StopTicks:    "12",
		Symbol:       "ES",
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestFormPrefillsFromSnapshot(t *testing.T) {
	m := New(formTable, formSnapshot())

	assert.Equal(t, "2500", m.inputs[fiMaxLoss].Value())
	assert.Equal(t, "ES", m.symbols[m.symIdx])
}

func TestEnterCalculates(t *testing.T) {
	m := New(formTable, formSnapshot())
	m = send(t, m, keyMsg("enter"))

	plan, errs, hasRun := m.sess.Last()
	require.True(t, hasRun)
	require.Empty(t, errs)
	assert.Equal(t, 1, plan.Contracts)
	assert.False(t, m.sess.Stale())
}

func TestTypingMarksResultStale(t *testing.T) {
	m := New(formTable, formSnapshot())
	m = send(t, m, keyMsg("enter"))
	require.False(t, m.sess.Stale())

	// Focus starts on profit target; type a digit.
	m = send(t, m, keyMsg("9"))
	assert.True(t, m.sess.Stale())

	m = send(t, m, keyMsg("enter"))
	assert.False(t, m.sess.Stale())
}

// focusRow tabs until the requested row has focus.
func focusRow(t *testing.T, m Model, row int) Model {
	t.Helper()
	for i := 0; i < numRows && m.focus != row; i++ {
		m = send(t, m, keyMsg("tab"))
	}
	require.Equal(t, row, m.focus)
	return m
}

func TestInstrumentCycling(t *testing.T) {
	m := New(formTable, formSnapshot())

	m = focusRow(t, m, rowInstrument)
	m = send(t, m, keyMsg("right"))

	assert.Equal(t, "NQ", m.symbols[m.symIdx])
	assert.Equal(t, "NQ", m.sess.Input().Symbol)
}

func TestConsistencyToggle(t *testing.T) {
	m := New(formTable, formSnapshot())

	m = focusRow(t, m, rowConsistency)
	m = send(t, m, keyMsg(" "))

	assert.True(t, m.consOn)
	assert.True(t, m.sess.Input().ConsistencyOn)
}

func TestViewShowsFieldErrors(t *testing.T) {
	s := formSnapshot()
	s.ProfitTarget = ""
	m := New(formTable, s)
	m = send(t, m, keyMsg("enter"))

	view := m.View()
	assert.Contains(t, view, "profit target is required")
}

func TestViewShowsStaleMarker(t *testing.T) {
	m := New(formTable, formSnapshot())
	m = send(t, m, keyMsg("enter"), keyMsg("9"))

	assert.Contains(t, m.View(), "stale")
}
