package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/popopmc/foostats/internal/report"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Parse the configured sources and show the lifetime leaderboard",
	Args:  cobra.NoArgs,
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	engine, rep, err := loadEngine()
	if err != nil {
		return err
	}

	report.PrintLoadReport(os.Stdout, rep)
	report.PrintPlayerTable(os.Stdout, engine.PlayerStats(cfg.Display.MinGames), "")
	return nil
}
