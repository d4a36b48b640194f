// Package tui is the interactive front end of the sizer: one form, one
// calculate action. It owns no arithmetic; every keystroke is folded
// into a risk.Snapshot and handed to the session, which tracks the
// stale flag for us.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rustyeddy/sizer/market"
	"github.com/rustyeddy/sizer/risk"
)

// Text-input rows, in focus order.
const (
	fiProfitTarget = iota
	fiMaxLoss
	fiDailyLossCap
	fiTradesToBust
	fiStopTicks
	fiMaxContracts
	fiCustomTick
	fiConsistencyPct
	numInputs
)

// Non-input rows follow the text inputs in the focus cycle.
const (
	rowInstrument = numInputs + iota
	rowConsistency
	numRows
)

var inputLabels = [numInputs]string{
	fiProfitTarget:   "Profit target ($)",
	fiMaxLoss:        "Max loss limit ($)",
	fiDailyLossCap:   "Daily loss cap ($)",
	fiTradesToBust:   "Trades to bust",
	fiStopTicks:      "Stop loss (ticks)",
	fiMaxContracts:   "Max contracts",
	fiCustomTick:     "Custom tick value ($)",
	fiConsistencyPct: "Consistency (%)",
}

// inputField maps a text-input row to the calculator's error key.
var inputField = [numInputs]string{
	fiProfitTarget:   risk.FieldProfitTarget,
	fiMaxLoss:        risk.FieldMaxLoss,
	fiDailyLossCap:   risk.FieldDailyLossCap,
	fiTradesToBust:   risk.FieldTradesToBust,
	fiStopTicks:      risk.FieldStopTicks,
	fiMaxContracts:   risk.FieldMaxContracts,
	fiCustomTick:     risk.FieldTickValue,
	fiConsistencyPct: "", // display only, never validated
}

// Model is the bubbletea model for the sizing form.
type Model struct {
	inputs  [numInputs]textinput.Model
	symbols []string // table symbols plus the custom marker
	symIdx  int
	consOn  bool
	focus   int

	sess     *risk.Session
	quitting bool
}

// New builds the form over a tick table, pre-filled from initial.
func New(table map[string]float64, initial risk.Snapshot) Model {
	m := Model{sess: risk.NewSession(table)}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = 12
		m.inputs[i] = ti
	}
	m.inputs[fiProfitTarget].SetValue(initial.ProfitTarget)
	m.inputs[fiMaxLoss].SetValue(initial.MaxLoss)
	m.inputs[fiDailyLossCap].SetValue(initial.DailyLossCap)
	m.inputs[fiTradesToBust].SetValue(initial.TradesToBust)
	m.inputs[fiStopTicks].SetValue(initial.StopTicks)
	m.inputs[fiMaxContracts].SetValue(initial.MaxContracts)
	m.inputs[fiCustomTick].SetValue(initial.CustomTickValue)
	m.inputs[fiConsistencyPct].SetValue(initial.ConsistencyPct)
	m.consOn = initial.ConsistencyOn

	m.symbols = make([]string, 0, len(table)+1)
	for sym := range table {
		m.symbols = append(m.symbols, sym)
	}
	sort.Strings(m.symbols)
	m.symbols = append(m.symbols, market.SymbolCustom)

	m.symIdx = 0
	for i, sym := range m.symbols {
		if sym == initial.Symbol {
			m.symIdx = i
			break
		}
	}

	m.inputs[fiProfitTarget].Focus()
	m.sess.Edit(m.snapshot())
	return m
}

// snapshot folds the widget state into the calculator's input record.
func (m *Model) snapshot() risk.Snapshot {
	return risk.Snapshot{
		ProfitTarget:    m.inputs[fiProfitTarget].Value(),
		MaxLoss:         m.inputs[fiMaxLoss].Value(),
		DailyLossCap:    m.inputs[fiDailyLossCap].Value(),
		TradesToBust:    m.inputs[fiTradesToBust].Value(),
		StopTicks:       m.inputs[fiStopTicks].Value(),
		MaxContracts:    m.inputs[fiMaxContracts].Value(),
		CustomTickValue: m.inputs[fiCustomTick].Value(),
		ConsistencyPct:  m.inputs[fiConsistencyPct].Value(),
		Symbol:          m.symbols[m.symIdx],
		ConsistencyOn:   m.consOn,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			m.sess.Calculate()
			return m, nil

		case "tab", "down":
			m.moveFocus(1)
			return m, nil

		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil

		case "left", "right":
			if m.focus == rowInstrument {
				d := 1
				if msg.String() == "left" {
					d = len(m.symbols) - 1
				}
				m.symIdx = (m.symIdx + d) % len(m.symbols)
				m.sess.Edit(m.snapshot())
				return m, nil
			}

		case " ":
			if m.focus == rowConsistency {
				m.consOn = !m.consOn
				m.sess.Edit(m.snapshot())
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.focus < numInputs {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.sess.Edit(m.snapshot())
	}
	return m, cmd
}

// visible reports whether a row is currently shown. Hidden rows are
// skipped by the focus cycle.
func (m *Model) visible(row int) bool {
	switch row {
	case fiCustomTick:
		return m.symbols[m.symIdx] == market.SymbolCustom
	case fiConsistencyPct:
		return m.consOn
	}
	return true
}

func (m *Model) moveFocus(dir int) {
	if m.focus < numInputs {
		m.inputs[m.focus].Blur()
	}
	for {
		m.focus = (m.focus + dir + numRows) % numRows
		if m.visible(m.focus) {
			break
		}
	}
	if m.focus < numInputs {
		m.inputs[m.focus].Focus()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Contract sizer") + "\n\n")

	_, errs, hasRun := m.sess.Last()

	for i := range m.inputs {
		if !m.visible(i) {
			continue
		}
		b.WriteString(m.renderLabel(i, inputLabels[i]))
		b.WriteString(m.inputs[i].View())
		if hasRun && inputField[i] != "" {
			if msg, bad := errs[inputField[i]]; bad {
				b.WriteString("  " + styleError.Render("✗ "+msg))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderLabel(rowInstrument, "Instrument"))
	b.WriteString(styleValue.Render(m.symbols[m.symIdx]) + styleMuted.Render("  ←/→"))
	if hasRun && m.symbols[m.symIdx] != market.SymbolCustom {
		if msg, bad := errs[risk.FieldTickValue]; bad {
			b.WriteString("  " + styleError.Render("✗ "+msg))
		}
	}
	b.WriteString("\n")

	b.WriteString(m.renderLabel(rowConsistency, "Consistency rule"))
	if m.consOn {
		b.WriteString(styleValue.Render("on"))
	} else {
		b.WriteString(styleMuted.Render("off"))
	}
	b.WriteString(styleMuted.Render("  space") + "\n\n")

	b.WriteString(m.renderResult())
	b.WriteString(styleMuted.Render("\ntab/↑↓ move · enter calculate · esc quit\n"))
	return b.String()
}

func (m Model) renderLabel(row int, label string) string {
	if row == m.focus {
		return styleFocus.Render("› ") + styleLabel.Render(label)
	}
	return "  " + styleLabel.Render(label)
}

func (m Model) renderResult() string {
	plan, errs, hasRun := m.sess.Last()
	if !hasRun {
		return styleMuted.Render("press enter to calculate\n")
	}

	if len(errs) > 0 {
		lines := make([]string, 0, len(errs)+1)
		lines = append(lines, styleError.Render(fmt.Sprintf("%d field(s) need attention", len(errs))))
		if m.sess.Stale() {
			lines = append(lines, styleWarn.Render("edited since last attempt"))
		}
		return strings.Join(lines, "\n") + "\n"
	}

	rows := []string{
		fmt.Sprintf("Contracts to trade     %s", styleValue.Render(fmt.Sprintf("%d", plan.Contracts))),
		fmt.Sprintf("Risk per trade         $%.2f  (%.1f ticks)", plan.RiskPerTrade, plan.RiskPerTradeTicks),
		fmt.Sprintf("Risk per contract      $%.2f", plan.RiskPerContract),
		fmt.Sprintf("Max trades per day     %d", plan.MaxTradesPerDay),
		fmt.Sprintf("Daily profit threshold $%.2f", plan.DailyProfitThreshold),
	}
	if plan.MaxDailyProfit > 0 {
		rows = append(rows, fmt.Sprintf("Max daily profit       $%.2f", plan.MaxDailyProfit))
	}
	if plan.BelowMinimum {
		rows = append(rows, styleWarn.Render("⚠ risk budget below one contract"))
	}

	out := styleResultBox.Render(strings.Join(rows, "\n")) + "\n"
	if m.sess.Stale() {
		out += styleWarn.Render("stale: inputs changed, press enter to recalculate") + "\n"
	}
	return out
}
