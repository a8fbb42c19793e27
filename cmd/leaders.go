package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/popopmc/foostats/internal/report"
)

var (
	leadersCategory string
	leadersMinGames int
	leadersMonthly  bool
	leadersMonth    string
)

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Top-5 players for a category",
	Long:  "Show the top 5 players for one of: winrate, wins, losses, plusminus.",
	Args:  cobra.NoArgs,
	RunE:  runLeaders,
}

func init() {
	leadersCmd.Flags().StringVar(&leadersCategory, "category", "winrate",
		"leaderboard category (winrate|wins|losses|plusminus)")
	leadersCmd.Flags().IntVar(&leadersMinGames, "min-games", 1, "minimum games played")
	leadersCmd.Flags().BoolVar(&leadersMonthly, "monthly", false, "only games from the current month")
	leadersCmd.Flags().StringVar(&leadersMonth, "month", "", "explicit month (YYYY-MM), recomputed on demand")
}

func runLeaders(cmd *cobra.Command, args []string) error {
	window, err := windowFlag(leadersMonthly, leadersMonth)
	if err != nil {
		return err
	}

	engine, _, err := loadEngine()
	if err != nil {
		return err
	}

	rows := engine.LeadersByCategory(leadersCategory, window, minGamesOr(cmd, leadersMinGames))
	if rows == nil {
		return fmt.Errorf("unknown category %q (want winrate, wins, losses or plusminus)", leadersCategory)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No players match the filter.")
		return nil
	}
	report.PrintPlayerTable(os.Stdout, rows, "")
	return nil
}
