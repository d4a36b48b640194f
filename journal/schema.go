// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS plans (
	plan_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	max_contracts TEXT NOT NULL,
	max_loss TEXT NOT NULL,
	daily_loss_cap TEXT NOT NULL,
	profit_target TEXT NOT NULL,
	trades_to_bust TEXT NOT NULL,
	stop_ticks TEXT NOT NULL,
	tick_value REAL NOT NULL,
	risk_per_trade REAL NOT NULL,
	risk_per_contract REAL NOT NULL,
	contracts INTEGER NOT NULL,
	contracts_raw INTEGER NOT NULL,
	risk_per_trade_ticks REAL NOT NULL,
	max_trades_per_day INTEGER NOT NULL,
	daily_profit_threshold REAL NOT NULL,
	below_minimum INTEGER NOT NULL,
	max_daily_profit REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_plans_symbol ON plans(symbol);
`
