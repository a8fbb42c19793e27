package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/popopmc/foostats/internal/report"
)

var (
	matchupsMinGames int
	matchupsMonthly  bool
	matchupsMonth    string
	matchupsAgainst  string
)

var matchupsCmd = &cobra.Command{
	Use:   "matchups <player>",
	Short: "Opponent statistics for a player",
	Long: `Print a player's record against every opponent they have faced.
Matchups are directional: A's record against B is tracked separately from
B's record against A. Use --against for a single opponent lookup.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatchups,
}

func init() {
	matchupsCmd.Flags().IntVar(&matchupsMinGames, "min-games", 1, "minimum games against the opponent")
	matchupsCmd.Flags().BoolVar(&matchupsMonthly, "monthly", false, "only games from the current month")
	matchupsCmd.Flags().StringVar(&matchupsMonth, "month", "", "explicit month (YYYY-MM), recomputed on demand")
	matchupsCmd.Flags().StringVar(&matchupsAgainst, "against", "", "specific opponent to look up")
}

func runMatchups(cmd *cobra.Command, args []string) error {
	player := args[0]
	window, err := windowFlag(matchupsMonthly, matchupsMonth)
	if err != nil {
		return err
	}

	engine, _, err := loadEngine()
	if err != nil {
		return err
	}
	minGames := minGamesOr(cmd, matchupsMinGames)

	if matchupsAgainst != "" {
		m := engine.OpponentWinRate(player, matchupsAgainst, minGames, window)
		if m == nil {
			fmt.Fprintf(os.Stdout, "No games recorded for %s against %s.\n", player, matchupsAgainst)
			return nil
		}
		fmt.Fprintf(os.Stdout, "\n%s vs %s: %d-%d in %d games (%.1f%%)\n\n",
			player, m.Opponent, m.Wins, m.Losses, m.Games, m.WinRate)
		return nil
	}

	rows := engine.OpponentStats(player, minGames, window)
	if len(rows) == 0 {
		fmt.Fprintf(os.Stdout, "No matchups recorded for %s.\n", player)
		return nil
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].WinRate != rows[j].WinRate {
			return rows[i].WinRate > rows[j].WinRate
		}
		return rows[i].Games > rows[j].Games
	})
	report.PrintMatchupTable(os.Stdout, rows)
	return nil
}
