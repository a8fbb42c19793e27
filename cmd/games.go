package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/popopmc/foostats/internal/report"
)

var (
	gamesLimit  int
	gamesOffset int
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Show the game log, newest first",
	RunE:  runGames,
}

func init() {
	gamesCmd.Flags().IntVar(&gamesLimit, "limit", 0, "maximum games to show (0 uses the configured default)")
	gamesCmd.Flags().IntVar(&gamesOffset, "offset", 0, "games to skip from the top of the log")
}

func runGames(cmd *cobra.Command, args []string) error {
	engine, _, err := loadEngine()
	if err != nil {
		return err
	}

	games := engine.AllGames()
	if gamesOffset < 0 {
		gamesOffset = 0
	}
	if gamesOffset >= len(games) {
		fmt.Println("No games in that range.")
		return nil
	}
	games = games[gamesOffset:]

	limit := gamesLimit
	if !cmd.Flags().Changed("limit") {
		limit = cfg.Display.GameLimit
	}
	if limit > 0 && limit < len(games) {
		games = games[:limit]
	}

	report.PrintGameLog(os.Stdout, games)
	fmt.Printf("Showing %d of %d games.\n", len(games), engine.GameCount())
	return nil
}
