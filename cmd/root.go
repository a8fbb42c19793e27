package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/popopmc/foostats/internal/config"
	"github.com/popopmc/foostats/internal/logging"
	"github.com/popopmc/foostats/internal/model"
	"github.com/popopmc/foostats/internal/parser"
	"github.com/popopmc/foostats/internal/stats"
)

var (
	cfg           *config.Config
	dataFiles     []string
	accoladesPath string
	debug         bool
)

var rootCmd = &cobra.Command{
	Use:   "foostats",
	Short: "Foosball match-result stats tool",
	Long:  "Parse match-result CSV files and compute player, duo, and matchup statistics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if debug || cfg.Display.Debug {
			logging.SetDebug()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&dataFiles, "data", nil,
		"score CSV files, parsed in order (overrides config)")
	rootCmd.PersistentFlags().StringVar(&accoladesPath, "accolades", "",
		"tournament accolades CSV (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(duosCmd)
	rootCmd.AddCommand(matchupsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(exportCmd)
}

func sources() []string {
	if len(dataFiles) > 0 {
		return dataFiles
	}
	return cfg.Data.Sources
}

func accoladesFile() string {
	if accoladesPath != "" {
		return accoladesPath
	}
	return cfg.Data.Accolades
}

// loadEngine reads every configured source, parses them with duplicate
// suppression carried across files, and rebuilds all aggregates. The load is
// a full rebuild each time; nothing persists between invocations.
func loadEngine() (*stats.Engine, model.LoadReport, error) {
	log := logging.Logger()
	paths := sources()
	if len(paths) == 0 {
		return nil, model.LoadReport{}, fmt.Errorf("no data sources configured: use --data or set [data] sources in the config file")
	}

	p := parser.New()
	var total model.LoadReport
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, total, fmt.Errorf("read source: %w", err)
		}
		rep, err := p.Parse(string(data), i > 0)
		if err != nil {
			return nil, total, fmt.Errorf("parse %s: %w", path, err)
		}
		log.Debug().Str("source", path).
			Int("added", rep.GamesAdded).
			Int("dropped", rep.RowsDropped).
			Int("duplicates", rep.DuplicatesSkipped).
			Msg("source parsed")
		total.GamesAdded += rep.GamesAdded
		total.RowsDropped += rep.RowsDropped
		total.DuplicatesSkipped += rep.DuplicatesSkipped
	}

	engine := stats.New()
	engine.Rebuild(p.Games(), time.Now())
	log.Info().
		Int("games", engine.GameCount()).
		Int("dropped", total.RowsDropped).
		Int("duplicates", total.DuplicatesSkipped).
		Msg("aggregates rebuilt")
	return engine, total, nil
}

// loadAccolades parses the accolades CSV if one is configured. Any problem
// degrades to "no accolades".
func loadAccolades() map[string][]model.Accolade {
	path := accoladesFile()
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log := logging.Logger()
		log.Warn().Str("path", path).Err(err).Msg("accolades unavailable")
		return nil
	}
	return parser.ParseAccolades(string(data))
}

// windowFlag builds the query window from the shared --monthly/--month flags.
// --month takes a YYYY-MM value and forces the on-demand recompute path.
func windowFlag(monthly bool, month string) (stats.Window, error) {
	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return stats.Window{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", month, err)
		}
		return stats.ForMonth(t.Year(), t.Month()), nil
	}
	if monthly {
		return stats.ThisMonth(), nil
	}
	return stats.Lifetime(), nil
}

// minGamesOr returns the flag value, or the config default when the flag was
// not set on the command line.
func minGamesOr(cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("min-games") {
		return flagValue
	}
	return cfg.Display.MinGames
}
