package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordPlan(r PlanRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO plans
		(plan_id, time, symbol,
		 max_contracts, max_loss, daily_loss_cap, profit_target, trades_to_bust, stop_ticks,
		 tick_value, risk_per_trade, risk_per_contract, contracts, contracts_raw,
		 risk_per_trade_ticks, max_trades_per_day, daily_profit_threshold, below_minimum, max_daily_profit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.PlanID, r.Time, r.Symbol,
		r.Input.MaxContracts, r.Input.MaxLoss, r.Input.DailyLossCap,
		r.Input.ProfitTarget, r.Input.TradesToBust, r.Input.StopTicks,
		r.Plan.TickValue, r.Plan.RiskPerTrade, r.Plan.RiskPerContract,
		r.Plan.Contracts, r.Plan.ContractsRaw, r.Plan.RiskPerTradeTicks,
		r.Plan.MaxTradesPerDay, r.Plan.DailyProfitThreshold,
		r.Plan.BelowMinimum, r.Plan.MaxDailyProfit,
	)
	return err
}

// ListPlans returns saved plans for a symbol, newest first. An empty
// symbol returns everything.
func (j *SQLiteJournal) ListPlans(symbol string) ([]PlanRecord, error) {
	q := `SELECT plan_id, time, symbol,
		max_contracts, max_loss, daily_loss_cap, profit_target, trades_to_bust, stop_ticks,
		tick_value, risk_per_trade, risk_per_contract, contracts, contracts_raw,
		risk_per_trade_ticks, max_trades_per_day, daily_profit_threshold, below_minimum, max_daily_profit
		FROM plans`
	args := []any{}
	if symbol != "" {
		q += ` WHERE symbol = ?`
		args = append(args, symbol)
	}
	q += ` ORDER BY plan_id DESC`

	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlanRecord
	for rows.Next() {
		var r PlanRecord
		if err := rows.Scan(
			&r.PlanID, &r.Time, &r.Symbol,
			&r.Input.MaxContracts, &r.Input.MaxLoss, &r.Input.DailyLossCap,
			&r.Input.ProfitTarget, &r.Input.TradesToBust, &r.Input.StopTicks,
			&r.Plan.TickValue, &r.Plan.RiskPerTrade, &r.Plan.RiskPerContract,
			&r.Plan.Contracts, &r.Plan.ContractsRaw, &r.Plan.RiskPerTradeTicks,
			&r.Plan.MaxTradesPerDay, &r.Plan.DailyProfitThreshold,
			&r.Plan.BelowMinimum, &r.Plan.MaxDailyProfit,
		); err != nil {
			return nil, err
		}
		r.Input.Symbol = r.Symbol
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
