package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/popopmc/foostats/internal/report"
)

var (
	profileMonth  string
	profileMinDuo int
)

var profileCmd = &cobra.Command{
	Use:   "profile <player>",
	Short: "Full profile for one player",
	Long: `Print a player's record, role split, accolades, and their best and
worst teammates and opponents. With --month the record is recomputed from
that month's games only.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileMonth, "month", "", "explicit month (YYYY-MM), recomputed on demand")
	profileCmd.Flags().IntVar(&profileMinDuo, "min-games", 2, "minimum games for duo/matchup listings")
}

func runProfile(cmd *cobra.Command, args []string) error {
	name := args[0]
	window, err := windowFlag(false, profileMonth)
	if err != nil {
		return err
	}

	engine, _, err := loadEngine()
	if err != nil {
		return err
	}

	profile := engine.PlayerProfile(name, window)
	if profile == nil {
		return fmt.Errorf("no player named %q", name)
	}

	accolades := loadAccolades()[strings.ToLower(name)]
	report.PrintProfile(os.Stdout, profile, accolades)

	minGames := profileMinDuo
	if top := engine.TopDuos(name, minGames, window); len(top) > 0 {
		fmt.Fprintln(os.Stdout, "Best duos:")
		report.PrintDuoTable(os.Stdout, top)
	}
	if bottom := engine.BottomDuos(name, minGames, window); len(bottom) > 0 {
		fmt.Fprintln(os.Stdout, "\nWorst duos:")
		report.PrintDuoTable(os.Stdout, bottom)
	}
	if top := engine.TopOpponents(name, minGames, window); len(top) > 0 {
		fmt.Fprintln(os.Stdout, "\nBeats most:")
		report.PrintMatchupTable(os.Stdout, top)
	}
	if bottom := engine.BottomOpponents(name, minGames, window); len(bottom) > 0 {
		fmt.Fprintln(os.Stdout, "\nStruggles against:")
		report.PrintMatchupTable(os.Stdout, bottom)
	}
	return nil
}
