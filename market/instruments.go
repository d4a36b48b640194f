// market/instruments.go
package market

import "sort"

// SymbolCustom selects a user-supplied tick value instead of the table.
const SymbolCustom = "CUSTOM"

type InstrumentMeta struct {
	Symbol      string
	Description string
	TickSize    float64 // minimum price increment, in price units
	TickValue   float64 // account currency per tick, per contract
}

// Instruments maps futures symbols to contract metadata. Tick values are
// the CME/CBOT/NYMEX/COMEX standard contract specs.
var Instruments = map[string]InstrumentMeta{
	// Equity index
	"ES":  {Symbol: "ES", Description: "E-mini S&P 500", TickSize: 0.25, TickValue: 12.50},
	"NQ":  {Symbol: "NQ", Description: "E-mini Nasdaq-100", TickSize: 0.25, TickValue: 5.00},
	"YM":  {Symbol: "YM", Description: "E-mini Dow", TickSize: 1.0, TickValue: 5.00},
	"RTY": {Symbol: "RTY", Description: "E-mini Russell 2000", TickSize: 0.10, TickValue: 5.00},
	"MES": {Symbol: "MES", Description: "Micro E-mini S&P 500", TickSize: 0.25, TickValue: 1.25},
	"MNQ": {Symbol: "MNQ", Description: "Micro E-mini Nasdaq-100", TickSize: 0.25, TickValue: 0.50},
	"MYM": {Symbol: "MYM", Description: "Micro E-mini Dow", TickSize: 1.0, TickValue: 0.50},
	"M2K": {Symbol: "M2K", Description: "Micro E-mini Russell 2000", TickSize: 0.10, TickValue: 0.50},

	// Currencies
	"6E": {Symbol: "6E", Description: "Euro FX", TickSize: 0.00005, TickValue: 6.25},
	"6J": {Symbol: "6J", Description: "Japanese Yen", TickSize: 0.0000005, TickValue: 6.25},
	"6B": {Symbol: "6B", Description: "British Pound", TickSize: 0.0001, TickValue: 6.25},
	"6A": {Symbol: "6A", Description: "Australian Dollar", TickSize: 0.0001, TickValue: 10.00},

	// Energy
	"CL":  {Symbol: "CL", Description: "Crude Oil", TickSize: 0.01, TickValue: 10.00},
	"MCL": {Symbol: "MCL", Description: "Micro Crude Oil", TickSize: 0.01, TickValue: 1.00},
	"NG":  {Symbol: "NG", Description: "Natural Gas", TickSize: 0.001, TickValue: 10.00},

	// Metals
	"GC":  {Symbol: "GC", Description: "Gold", TickSize: 0.10, TickValue: 10.00},
	"MGC": {Symbol: "MGC", Description: "Micro Gold", TickSize: 0.10, TickValue: 1.00},
	"SI":  {Symbol: "SI", Description: "Silver", TickSize: 0.005, TickValue: 25.00},
	"HG":  {Symbol: "HG", Description: "Copper", TickSize: 0.0005, TickValue: 12.50},

	// Rates
	"ZB": {Symbol: "ZB", Description: "30-Year T-Bond", TickSize: 0.03125, TickValue: 31.25},
	"ZN": {Symbol: "ZN", Description: "10-Year T-Note", TickSize: 0.015625, TickValue: 15.625},
	"ZF": {Symbol: "ZF", Description: "5-Year T-Note", TickSize: 0.0078125, TickValue: 7.8125},
	"ZT": {Symbol: "ZT", Description: "2-Year T-Note", TickSize: 0.00390625, TickValue: 7.8125},
}

// TickValue returns the per-tick contract value for a symbol.
func TickValue(symbol string) (float64, bool) {
	m, ok := Instruments[symbol]
	if !ok {
		return 0, false
	}
	return m.TickValue, true
}

// TickValues returns a symbol→tick-value view of the table, suitable for
// passing to risk.Calculate.
func TickValues() map[string]float64 {
	out := make(map[string]float64, len(Instruments))
	for sym, m := range Instruments {
		out[sym] = m.TickValue
	}
	return out
}

// Merge overlays tick-value overrides onto a copy of the table view.
// Unknown symbols are added; known symbols are replaced. Non-positive
// overrides are ignored.
func Merge(overrides map[string]float64) map[string]float64 {
	out := TickValues()
	for sym, tv := range overrides {
		if tv > 0 {
			out[sym] = tv
		}
	}
	return out
}

// Symbols returns the table's symbols in sorted order.
func Symbols() []string {
	syms := make([]string, 0, len(Instruments))
	for sym := range Instruments {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
