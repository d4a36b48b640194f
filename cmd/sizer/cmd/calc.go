package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rustyeddy/sizer/config"
	"github.com/rustyeddy/sizer/journal"
	"github.com/rustyeddy/sizer/risk"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a sizing plan from flags",
	Long: `Run one calculation and print the plan, or every field error.

Fields left blank are treated as missing, exactly as an empty form
field would be. A config file can pre-fill any field; flags given on
the command line win.

Examples:
  sizer calc --max-loss 2500 --trades-to-bust 10 --stop-ticks 12 \
             --symbol ES --max-contracts 1 --daily-loss-cap 500 \
             --profit-target 3000
  sizer calc --config sizer.yaml --stop-ticks 16
  sizer calc --config sizer.yaml --journal plans.db`,
	RunE: runCalc,
}

var (
	calcConfigPath  string
	calcJournalPath string
	calcSnapshot    risk.Snapshot
)

func init() {
	rootCmd.AddCommand(calcCmd)

	fl := calcCmd.Flags()
	fl.StringVar(&calcSnapshot.ProfitTarget, "profit-target", "", "overall profit target ($)")
	fl.StringVar(&calcSnapshot.MaxLoss, "max-loss", "", "total loss allowance ($)")
	fl.StringVar(&calcSnapshot.DailyLossCap, "daily-loss-cap", "", "per-day loss allowance ($)")
	fl.StringVar(&calcSnapshot.TradesToBust, "trades-to-bust", "", "losing trades that exhaust the allowance")
	fl.StringVar(&calcSnapshot.StopTicks, "stop-ticks", "", "stop distance in ticks")
	fl.StringVar(&calcSnapshot.MaxContracts, "max-contracts", "", "largest allowed position, whole contracts")
	fl.StringVar(&calcSnapshot.Symbol, "symbol", "", "instrument symbol, or CUSTOM")
	fl.StringVar(&calcSnapshot.CustomTickValue, "tick-value", "", "tick value for the CUSTOM symbol ($)")
	fl.StringVar(&calcSnapshot.ConsistencyPct, "consistency-pct", "", "consistency rule percentage (display only)")
	fl.StringVarP(&calcConfigPath, "config", "c", "", "config file with defaults and instrument overrides")
	fl.StringVarP(&calcJournalPath, "journal", "j", "", "record the plan (.db/.sqlite for SQLite, else CSV)")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if calcConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(calcConfigPath)
		if err != nil {
			return err
		}
		logger.Debug().Str("path", calcConfigPath).Msg("config loaded")
	}

	in := mergeSnapshot(cfg.Snapshot(), calcSnapshot, cmd)
	table := cfg.TickTable()

	plan, errs := risk.Calculate(in, table)
	if len(errs) > 0 {
		printFieldErrors(errs)
		return fmt.Errorf("%d field(s) invalid", len(errs))
	}

	printPlan(in, plan)

	if path := journalPath(cfg); path != "" {
		if err := recordPlan(path, in, plan); err != nil {
			return fmt.Errorf("journal plan: %w", err)
		}
	}
	return nil
}

// mergeSnapshot lays explicitly-set flags over the config defaults.
func mergeSnapshot(base, flags risk.Snapshot, cmd *cobra.Command) risk.Snapshot {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("profit-target", &base.ProfitTarget, flags.ProfitTarget)
	set("max-loss", &base.MaxLoss, flags.MaxLoss)
	set("daily-loss-cap", &base.DailyLossCap, flags.DailyLossCap)
	set("trades-to-bust", &base.TradesToBust, flags.TradesToBust)
	set("stop-ticks", &base.StopTicks, flags.StopTicks)
	set("max-contracts", &base.MaxContracts, flags.MaxContracts)
	set("symbol", &base.Symbol, flags.Symbol)
	set("tick-value", &base.CustomTickValue, flags.CustomTickValue)
	set("consistency-pct", &base.ConsistencyPct, flags.ConsistencyPct)
	if cmd.Flags().Changed("consistency-pct") {
		base.ConsistencyOn = flags.ConsistencyPct != ""
	}
	return base
}

func printFieldErrors(errs risk.FieldErrors) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	fmt.Println("✗ cannot size the position:")
	for _, field := range fields {
		fmt.Printf("  %-14s %s\n", field, errs[field])
	}
}

func printPlan(in risk.Snapshot, plan risk.Plan) {
	fmt.Printf("✓ %s @ $%.4g/tick\n\n", in.Symbol, plan.TickValue)
	fmt.Printf("  Contracts to trade      %d\n", plan.Contracts)
	fmt.Printf("  Risk per trade          $%.2f (%.1f ticks)\n", plan.RiskPerTrade, plan.RiskPerTradeTicks)
	fmt.Printf("  Risk per contract       $%.2f\n", plan.RiskPerContract)
	fmt.Printf("  Max trades per day      %d\n", plan.MaxTradesPerDay)
	fmt.Printf("  Daily profit threshold  $%.2f\n", plan.DailyProfitThreshold)
	if plan.MaxDailyProfit > 0 {
		fmt.Printf("  Max daily profit        $%.2f\n", plan.MaxDailyProfit)
	}
	if plan.BelowMinimum {
		fmt.Println("\n  ⚠ risk budget does not cover one contract; widen the loss allowance or tighten the stop")
	}
}

// journalPath resolves where to record the plan: the --journal flag
// wins, otherwise the config's journal settings.
func journalPath(cfg *config.Config) string {
	if calcJournalPath != "" {
		return calcJournalPath
	}
	switch cfg.Journal.Type {
	case "csv":
		return cfg.Journal.PlansFile
	case "sqlite":
		return cfg.Journal.DBPath
	}
	return ""
}

func recordPlan(path string, in risk.Snapshot, plan risk.Plan) error {
	var (
		j   journal.Journal
		err error
	)
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		j, err = journal.NewSQLite(path)
	} else {
		j, err = journal.NewCSV(path)
	}
	if err != nil {
		return err
	}
	defer j.Close()

	rec := journal.NewRecord(in, plan)
	if err := j.RecordPlan(rec); err != nil {
		return err
	}
	logger.Debug().Str("plan_id", rec.PlanID).Str("path", path).Msg("plan recorded")
	fmt.Printf("\n✓ Plan %s saved to %s\n", rec.PlanID, path)
	return nil
}
