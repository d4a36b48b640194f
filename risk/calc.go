// Package risk sizes futures positions from account-risk constraints.
//
// The core is Calculate: a pure function from a raw input snapshot to
// either a Plan or a set of field-level errors. All inputs arrive as
// strings because they come straight off a form; empty, non-numeric and
// out-of-range values produce distinct messages.
package risk

import (
	"fmt"
	"math"
	"strconv"
)

// Field names, used as keys in FieldErrors.
const (
	FieldMaxContracts = "maxContracts"
	FieldMaxLoss      = "maxLoss"
	FieldDailyLossCap = "dailyLossCap"
	FieldProfitTarget = "profitTarget"
	FieldTradesToBust = "tradesToBust"
	FieldStopTicks    = "stopTicks"
	FieldTickValue    = "tickValue"
)

// SymbolCustom selects the snapshot's CustomTickValue instead of a
// table lookup. Matches market.SymbolCustom.
const SymbolCustom = "CUSTOM"

// Snapshot is one reading of the form: every numeric field raw, as typed.
type Snapshot struct {
	MaxContracts string // largest position the account may hold, whole contracts
	MaxLoss      string // total loss allowance, account currency
	DailyLossCap string // per-day loss allowance, account currency
	ProfitTarget string // overall profit target, account currency
	TradesToBust string // consecutive max-loss trades that exhaust MaxLoss
	StopTicks    string // stop distance in ticks

	Symbol          string // tick-table key, or SymbolCustom
	CustomTickValue string // used only when Symbol == SymbolCustom

	ConsistencyOn  bool   // prop-firm consistency rule toggle
	ConsistencyPct string // daily profit as % of ProfitTarget, display only
}

// FieldErrors maps a field name to one human-readable message.
// A non-empty set means no Plan was produced.
type FieldErrors map[string]string

func (e FieldErrors) add(field, msg string) { e[field] = msg }

// Plan is the computed sizing recommendation. All fields are derived in
// one shot; there is no partial update.
type Plan struct {
	TickValue            float64 // resolved currency per tick
	RiskPerTrade         float64 // MaxLoss / TradesToBust
	RiskPerContract      float64 // StopTicks * TickValue
	ContractsRaw         int     // floor(RiskPerTrade / RiskPerContract)
	Contracts            int     // min(ContractsRaw, floor(MaxContracts))
	RiskPerTradeTicks    float64 // RiskPerTrade / TickValue
	MaxTradesPerDay      int     // floor(DailyLossCap / RiskPerTrade)
	DailyProfitThreshold float64 // equal to DailyLossCap

	// BelowMinimum is set when the risk budget does not cover even one
	// contract. The plan is still produced; this is a warning, not an
	// error.
	BelowMinimum bool

	// MaxDailyProfit is the consistency-rule display value
	// (ProfitTarget * ConsistencyPct / 100). Zero when the rule is off
	// or its inputs don't parse; never validated.
	MaxDailyProfit float64
}

// parseNumber reports three distinct outcomes for a raw field: empty,
// not a finite number, or a value.
func parseNumber(raw string) (val float64, empty, ok bool) {
	if raw == "" {
		return 0, true, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, false
	}
	return v, false, true
}

// resolveTickValue picks the custom field or the table, in that order of
// precedence, based on the selected symbol.
func resolveTickValue(s Snapshot, table map[string]float64) (float64, string) {
	if s.Symbol == SymbolCustom {
		tv, _, ok := parseNumber(s.CustomTickValue)
		if !ok || tv <= 0 {
			return 0, "tick value must be a positive number"
		}
		return tv, ""
	}
	tv, found := table[s.Symbol]
	if !found {
		return 0, fmt.Sprintf("unknown instrument %q", s.Symbol)
	}
	if tv <= 0 {
		return 0, fmt.Sprintf("instrument %q has a non-positive tick value", s.Symbol)
	}
	return tv, ""
}

// Calculate validates a snapshot against the tick table and either
// produces a Plan or the complete set of field errors. It never does
// both: any error withholds the plan.
//
// Calling it twice with the same inputs yields the same outcome.
func Calculate(s Snapshot, table map[string]float64) (Plan, FieldErrors) {
	errs := FieldErrors{}

	profitTarget, empty, ok := parseNumber(s.ProfitTarget)
	switch {
	case empty:
		errs.add(FieldProfitTarget, "profit target is required")
	case !ok || profitTarget <= 0:
		errs.add(FieldProfitTarget, "profit target must be a positive number")
	}

	maxContracts, _, ok := parseNumber(s.MaxContracts)
	if !ok || maxContracts < 1 {
		errs.add(FieldMaxContracts, "max contract size must be a number of at least 1")
	}

	maxLoss, _, ok := parseNumber(s.MaxLoss)
	if !ok || maxLoss <= 0 {
		errs.add(FieldMaxLoss, "max loss limit must be a positive number")
	}

	tradesToBust, empty, ok := parseNumber(s.TradesToBust)
	switch {
	case empty:
		errs.add(FieldTradesToBust, "trades to bust is required")
	case !ok || tradesToBust < 1:
		errs.add(FieldTradesToBust, "trades to bust must be a number of at least 1")
	}

	stopTicks, _, ok := parseNumber(s.StopTicks)
	if !ok || stopTicks <= 0 {
		errs.add(FieldStopTicks, "stop loss must be a positive number of ticks")
	}

	tickValue, tvMsg := resolveTickValue(s, table)
	if tvMsg != "" {
		errs.add(FieldTickValue, tvMsg)
	}

	dailyLossCap, empty, ok := parseNumber(s.DailyLossCap)
	switch {
	case empty:
		// Framed as a recommendation, enforced as a hard failure: sizing
		// without a daily cap is not a plan.
		errs.add(FieldDailyLossCap, "enter a daily loss cap; a cap is strongly recommended")
	case !ok || dailyLossCap <= 0:
		errs.add(FieldDailyLossCap, "daily loss cap must be a positive number")
	}

	if len(errs) > 0 {
		return Plan{}, errs
	}

	riskPerTrade := maxLoss / tradesToBust
	riskPerContract := stopTicks * tickValue
	contractsRaw := int(math.Floor(riskPerTrade / riskPerContract))
	contracts := contractsRaw
	if limit := int(math.Floor(maxContracts)); contracts > limit {
		contracts = limit
	}

	// One losing trade must never exceed the whole daily allowance.
	// This check outranks every computed number.
	if riskPerTrade > dailyLossCap {
		errs.add(FieldDailyLossCap, fmt.Sprintf(
			"daily loss cap %.2f is below the %.2f risked per trade; raise the cap or risk less per trade",
			dailyLossCap, riskPerTrade))
		return Plan{}, errs
	}

	p := Plan{
		TickValue:            tickValue,
		RiskPerTrade:         riskPerTrade,
		RiskPerContract:      riskPerContract,
		ContractsRaw:         contractsRaw,
		Contracts:            contracts,
		RiskPerTradeTicks:    riskPerTrade / tickValue,
		MaxTradesPerDay:      int(math.Floor(dailyLossCap / riskPerTrade)),
		DailyProfitThreshold: dailyLossCap,
		BelowMinimum:         contractsRaw == 0,
	}

	if s.ConsistencyOn {
		if pct, _, ok := parseNumber(s.ConsistencyPct); ok && pct > 0 && profitTarget > 0 {
			p.MaxDailyProfit = profitTarget * (pct / 100)
		}
	}

	return p, nil
}
