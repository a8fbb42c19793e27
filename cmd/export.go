package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/popopmc/foostats/internal/logging"
	"github.com/popopmc/foostats/internal/model"
	"github.com/popopmc/foostats/internal/stats"
	"github.com/popopmc/foostats/internal/storage"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the computed stats to a SQLite snapshot file",
	Long: `Recompute everything from the data files and write the lifetime
aggregates to a SQLite file. The snapshot is a one-way artifact for other
tools to read; nothing in this program loads stats back from it.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "foostats.db", "output SQLite file")
}

func runExport(cmd *cobra.Command, args []string) error {
	engine, _, err := loadEngine()
	if err != nil {
		return err
	}
	if engine.GameCount() == 0 {
		return fmt.Errorf("nothing to export: no games loaded")
	}

	window := stats.Lifetime()
	snap := storage.Snapshot{
		GeneratedAt: time.Now(),
		Players:     engine.PlayerStats(1),
		Duos:        engine.TeammateStats(1),
		Matchups:    map[string][]model.MatchupRow{},
		Games:       engine.AllGames(),
	}
	for _, name := range engine.AllPlayerNames() {
		if rows := engine.OpponentStats(name, 1, window); len(rows) > 0 {
			snap.Matchups[name] = rows
		}
	}

	db, err := storage.Open(exportOut)
	if err != nil {
		return fmt.Errorf("open %s: %w", exportOut, err)
	}
	defer db.Close()

	if err := db.WriteSnapshot(snap); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	players, duos, matchups, games, err := db.Counts()
	if err != nil {
		return fmt.Errorf("verify snapshot: %w", err)
	}
	log := logging.Logger()
	log.Info().
		Int("players", players).
		Int("duos", duos).
		Int("matchups", matchups).
		Int("games", games).
		Str("file", exportOut).
		Msg("snapshot written")
	fmt.Printf("Exported %d players, %d duos, %d matchups, %d games to %s\n",
		players, duos, matchups, games, exportOut)
	return nil
}
