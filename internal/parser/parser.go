// Package parser turns raw delimited score sheets into validated Game records.
// It is deliberately permissive: malformed rows are dropped, unparseable
// scores coerce to zero, and exact duplicate games are suppressed (negative
// scores are invalid and drop the row). Only a completely empty
// source is treated as an error, since that points at the I/O layer rather
// than at data quality.
package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/popopmc/foostats/internal/model"
)

// Parser accumulates games across one or more sources and owns the duplicate
// suppression set. A Parse call with appendMode=false starts a fresh session;
// with appendMode=true both the game collection and the seen-set survive, so
// merging a second monthly file keeps the dedup guarantees from the first.
type Parser struct {
	games []model.Game
	seen  map[string]struct{}
}

func New() *Parser {
	return &Parser{seen: make(map[string]struct{})}
}

// Games returns the accepted games in source order.
func (p *Parser) Games() []model.Game {
	return p.games
}

// Parse ingests one CSV source. Line 0 is a header and is discarded. Expected
// columns: timestamp, three team-1 players, team-1 score, three team-2
// players, team-2 score. Rows with fewer than 9 fields, without at least one
// player per side, or with a negative score are dropped silently and counted
// in the report. Unparseable scores coerce to 0 and keep the row.
func (p *Parser) Parse(text string, appendMode bool) (model.LoadReport, error) {
	var report model.LoadReport

	if strings.TrimSpace(text) == "" {
		// The one fatal condition: no input at all. Nothing has been
		// mutated yet, so prior state is intact.
		return report, fmt.Errorf("empty source text")
	}

	if !appendMode {
		p.games = nil
		p.seen = make(map[string]struct{})
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := 1; i < len(lines); i++ {
		fields := ParseLine(lines[i])
		if len(fields) < 9 {
			report.RowsDropped++
			continue
		}

		score1, ok1 := parseScore(fields[4])
		score2, ok2 := parseScore(fields[8])
		if !ok1 || !ok2 {
			report.RowsDropped++
			continue
		}

		game := model.Game{
			Timestamp: fields[0],
			Team1: model.TeamResult{
				Players: playerNames(fields[1:4]),
				Score:   score1,
			},
			Team2: model.TeamResult{
				Players: playerNames(fields[5:8]),
				Score:   score2,
			},
		}
		if len(game.Team1.Players) == 0 || len(game.Team2.Players) == 0 {
			report.RowsDropped++
			continue
		}

		// Order-invariant signatures in both team orders, so the same game
		// re-entered with teams swapped or players shuffled still dedups.
		key1, key2 := signatures(&game)
		if _, dup := p.seen[key1]; dup {
			report.DuplicatesSkipped++
			continue
		}
		if _, dup := p.seen[key2]; dup {
			report.DuplicatesSkipped++
			continue
		}
		p.seen[key1] = struct{}{}
		p.seen[key2] = struct{}{}
		p.games = append(p.games, game)
		report.GamesAdded++
	}

	return report, nil
}

// ParseLine splits a CSV line into trimmed fields. A double-quote toggles
// quoted mode; commas inside quotes are literal. Escaped quotes ("") are not
// supported; the source sheets never produce them.
func ParseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// playerNames trims the raw player slots and drops the empty ones, preserving
// order (slot 0 is the keeper).
func playerNames(raw []string) []string {
	var players []string
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name != "" {
			players = append(players, name)
		}
	}
	return players
}

// parseScore reads a score field. Unparseable text coerces to 0 and keeps
// the row; a value that does parse but is negative fails validation, and the
// caller drops the row.
func parseScore(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, true
	}
	if n < 0 {
		return 0, false
	}
	return n, true
}

// signatures builds the two dedup keys for a game: direct team order and
// swapped team order, with player names sorted within each side.
func signatures(g *model.Game) (string, string) {
	t1 := sortedNames(g.Team1.Players)
	t2 := sortedNames(g.Team2.Players)
	direct := fmt.Sprintf("%s|%s|%d|%s|%d", g.Timestamp, t1, g.Team1.Score, t2, g.Team2.Score)
	swapped := fmt.Sprintf("%s|%s|%d|%s|%d", g.Timestamp, t2, g.Team2.Score, t1, g.Team1.Score)
	return direct, swapped
}

func sortedNames(players []string) string {
	names := make([]string, len(players))
	copy(names, players)
	sort.Strings(names)
	return strings.Join(names, ",")
}
