package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/popopmc/foostats/internal/report"
)

var (
	duosMinGames int
	duosMonthly  bool
	duosMonth    string
	duosPlayer   string
	duosWith     string
)

var duosCmd = &cobra.Command{
	Use:   "duos",
	Short: "Teammate-pair statistics",
	Long: `Without flags, print the full teammate-pair leaderboard.
With --player, print that player's duo records; add --with to look up a
single specific pair.`,
	Args: cobra.NoArgs,
	RunE: runDuos,
}

func init() {
	duosCmd.Flags().IntVar(&duosMinGames, "min-games", 1, "minimum games played together")
	duosCmd.Flags().BoolVar(&duosMonthly, "monthly", false, "only games from the current month")
	duosCmd.Flags().StringVar(&duosMonth, "month", "", "explicit month (YYYY-MM), recomputed on demand")
	duosCmd.Flags().StringVar(&duosPlayer, "player", "", "show duos for this player")
	duosCmd.Flags().StringVar(&duosWith, "with", "", "specific teammate to look up (requires --player)")
}

func runDuos(cmd *cobra.Command, args []string) error {
	window, err := windowFlag(duosMonthly, duosMonth)
	if err != nil {
		return err
	}
	if duosWith != "" && duosPlayer == "" {
		return fmt.Errorf("--with requires --player")
	}

	engine, _, err := loadEngine()
	if err != nil {
		return err
	}
	minGames := minGamesOr(cmd, duosMinGames)

	if duosWith != "" {
		duo := engine.DuoWinRate(duosPlayer, duosWith, minGames, window)
		if duo == nil {
			fmt.Fprintf(os.Stdout, "No games recorded for %s & %s.\n", duosPlayer, duosWith)
			return nil
		}
		fmt.Fprintf(os.Stdout, "\n%s & %s: %d-%d in %d games (%.1f%%)\n\n",
			duosPlayer, duo.Teammate, duo.Wins, duo.Losses, duo.Games, duo.WinRate)
		return nil
	}

	if duosPlayer != "" {
		duos := engine.DuoStats(duosPlayer, minGames, window)
		if len(duos) == 0 {
			fmt.Fprintf(os.Stdout, "No duos recorded for %s.\n", duosPlayer)
			return nil
		}
		sort.Slice(duos, func(i, j int) bool {
			if duos[i].WinRate != duos[j].WinRate {
				return duos[i].WinRate > duos[j].WinRate
			}
			return duos[i].Games > duos[j].Games
		})
		report.PrintDuoTable(os.Stdout, duos)
		return nil
	}

	if duosMonth != "" || duosMonthly {
		return fmt.Errorf("monthly pair leaderboards need --player; the full pair table is lifetime only")
	}
	pairs := engine.TeammateStats(minGames)
	if len(pairs) == 0 {
		fmt.Fprintln(os.Stdout, "No pairs match the filter.")
		return nil
	}
	report.PrintPairTable(os.Stdout, pairs)
	return nil
}
