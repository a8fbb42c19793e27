package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/popopmc/foostats/internal/report"
)

var (
	playersMinGames int
	playersMonthly  bool
	playersMonth    string
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Player leaderboard sorted by win rate",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func init() {
	playersCmd.Flags().IntVar(&playersMinGames, "min-games", 1, "minimum games played")
	playersCmd.Flags().BoolVar(&playersMonthly, "monthly", false, "only games from the current month")
	playersCmd.Flags().StringVar(&playersMonth, "month", "", "explicit month (YYYY-MM), recomputed on demand")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	window, err := windowFlag(playersMonthly, playersMonth)
	if err != nil {
		return err
	}

	engine, _, err := loadEngine()
	if err != nil {
		return err
	}

	rows := engine.PlayersFor(window, minGamesOr(cmd, playersMinGames))
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No players match the filter.")
		return nil
	}
	report.PrintPlayerTable(os.Stdout, rows, "")
	return nil
}
