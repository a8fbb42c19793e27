package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/popopmc/foostats/internal/model"
)

// Snapshot is everything one export writes.
type Snapshot struct {
	GeneratedAt time.Time
	Players     []model.PlayerRow
	Duos        []model.PairRow
	Matchups    map[string][]model.MatchupRow // keyed by subject player name
	Games       []model.Game
}

// WriteSnapshot replaces the stored snapshot in one transaction. Existing
// rows are cleared first so the file always reflects exactly one load.
func (db *DB) WriteSnapshot(s Snapshot) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"snapshot_meta", "players", "duos", "matchups", "games"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	_, err = tx.Exec(
		"INSERT INTO snapshot_meta(id, generated_at, game_count) VALUES (1, ?, ?)",
		s.GeneratedAt.Format(time.RFC3339), len(s.Games),
	)
	if err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}

	pStmt, err := tx.Prepare(`
		INSERT INTO players(name, games, wins, losses, ties, win_rate, goals_for, goals_against, plus_minus)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer pStmt.Close()
	for _, r := range s.Players {
		if _, err := pStmt.Exec(r.Name, r.Games, r.Wins, r.Losses, r.Ties,
			r.WinRate, r.GoalsFor, r.GoalsAgainst, r.PlusMinus); err != nil {
			return fmt.Errorf("insert player %q: %w", r.Name, err)
		}
	}

	dStmt, err := tx.Prepare(`
		INSERT INTO duos(pair, games, wins, losses, win_rate)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer dStmt.Close()
	for _, r := range s.Duos {
		if _, err := dStmt.Exec(r.Pair, r.Games, r.Wins, r.Losses, r.WinRate); err != nil {
			return fmt.Errorf("insert duo %q: %w", r.Pair, err)
		}
	}

	mStmt, err := tx.Prepare(`
		INSERT INTO matchups(player, opponent, games, wins, losses, win_rate)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer mStmt.Close()
	for player, rows := range s.Matchups {
		for _, r := range rows {
			if _, err := mStmt.Exec(player, r.Opponent, r.Games, r.Wins, r.Losses, r.WinRate); err != nil {
				return fmt.Errorf("insert matchup %s vs %s: %w", player, r.Opponent, err)
			}
		}
	}

	gStmt, err := tx.Prepare(`
		INSERT INTO games(played_at, team1, team1_score, team2, team2_score)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer gStmt.Close()
	for i := range s.Games {
		g := &s.Games[i]
		if _, err := gStmt.Exec(g.Timestamp,
			strings.Join(g.Team1.Players, ", "), g.Team1.Score,
			strings.Join(g.Team2.Players, ", "), g.Team2.Score); err != nil {
			return fmt.Errorf("insert game %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Counts reports row counts per snapshot table, for post-export verification.
func (db *DB) Counts() (players, duos, matchups, games int, err error) {
	for _, q := range []struct {
		table string
		dst   *int
	}{
		{"players", &players},
		{"duos", &duos},
		{"matchups", &matchups},
		{"games", &games},
	} {
		if err = db.conn.QueryRow("SELECT COUNT(1) FROM " + q.table).Scan(q.dst); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("count %s: %w", q.table, err)
		}
	}
	return players, duos, matchups, games, nil
}

// TopPlayers reads back the stored leaderboard ordered by win rate.
func (db *DB) TopPlayers(limit int) ([]model.PlayerRow, error) {
	rows, err := db.conn.Query(`
		SELECT name, games, wins, losses, ties, win_rate, goals_for, goals_against, plus_minus
		FROM players ORDER BY win_rate DESC, games DESC, name ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PlayerRow
	for rows.Next() {
		var r model.PlayerRow
		if err := rows.Scan(&r.Name, &r.Games, &r.Wins, &r.Losses, &r.Ties,
			&r.WinRate, &r.GoalsFor, &r.GoalsAgainst, &r.PlusMinus); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
