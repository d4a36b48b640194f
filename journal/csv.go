// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	plans *csv.Writer
	pf    *os.File
}

var csvHeader = []string{
	"plan_id", "time", "symbol",
	"max_contracts", "max_loss", "daily_loss_cap", "profit_target", "trades_to_bust", "stop_ticks",
	"tick_value", "risk_per_trade", "risk_per_contract", "contracts", "contracts_raw",
	"risk_per_trade_ticks", "max_trades_per_day", "daily_profit_threshold", "below_minimum", "max_daily_profit",
}

// NewCSV appends to an existing plans file, writing the header only
// when the file is new or empty.
func NewCSV(plansPath string) (*CSVJournal, error) {
	pf, err := os.OpenFile(plansPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	st, err := pf.Stat()
	if err != nil {
		pf.Close()
		return nil, err
	}

	pw := csv.NewWriter(pf)
	if st.Size() == 0 {
		if err := pw.Write(csvHeader); err != nil {
			pf.Close()
			return nil, err
		}
		pw.Flush()
		if err := pw.Error(); err != nil {
			pf.Close()
			return nil, err
		}
	}

	return &CSVJournal{plans: pw, pf: pf}, nil
}

func (j *CSVJournal) RecordPlan(r PlanRecord) error {
	j.plans.Write([]string{
		r.PlanID,
		r.Time.Format(time.RFC3339),
		r.Symbol,
		r.Input.MaxContracts,
		r.Input.MaxLoss,
		r.Input.DailyLossCap,
		r.Input.ProfitTarget,
		r.Input.TradesToBust,
		r.Input.StopTicks,
		f(r.Plan.TickValue),
		f(r.Plan.RiskPerTrade),
		f(r.Plan.RiskPerContract),
		strconv.Itoa(r.Plan.Contracts),
		strconv.Itoa(r.Plan.ContractsRaw),
		f(r.Plan.RiskPerTradeTicks),
		strconv.Itoa(r.Plan.MaxTradesPerDay),
		f(r.Plan.DailyProfitThreshold),
		strconv.FormatBool(r.Plan.BelowMinimum),
		f(r.Plan.MaxDailyProfit),
	})
	j.plans.Flush()
	return j.plans.Error()
}

func (j *CSVJournal) Close() error {
	j.plans.Flush()
	if err := j.plans.Error(); err != nil {
		j.pf.Close()
		return err
	}
	return j.pf.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
