package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rustyeddy/sizer/market"
	"github.com/spf13/cobra"
)

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "Print the built-in instrument tick table",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tDESCRIPTION\tTICK SIZE\tTICK VALUE")
		for _, sym := range market.Symbols() {
			m := market.Instruments[sym]
			fmt.Fprintf(w, "%s\t%s\t%g\t$%g\n", m.Symbol, m.Description, m.TickSize, m.TickValue)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(instrumentsCmd)
}
