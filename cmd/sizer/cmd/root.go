package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sizer",
	Short: "A futures contract-sizing calculator for risk-constrained accounts",
	Long: `Sizer converts account-risk constraints into a recommended number of
futures contracts to trade.

Give it your total loss allowance, how many losing trades it should
survive, your stop distance in ticks and the instrument, and it answers
with contracts to trade, risk per trade and per contract, and how many
trades a daily loss cap allows.

It provides:
  - A one-shot calculation from flags (sizer calc)
  - An interactive terminal form (sizer form)
  - The built-in instrument tick table (sizer instruments)
  - Plan journaling to CSV or SQLite
  - YAML/JSON configuration for defaults and custom instruments`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
