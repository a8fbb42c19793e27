package model

import "math"

// ---- Raw records emitted by the parser ----

// TeamResult is one side of a game: the players that played it and the goals
// they scored. Player order is meaningful: index 0 is the keeper, the rest
// are strikers.
type TeamResult struct {
	Players []string
	Score   int
}

// Game is a single recorded match result. Instances are created by the parser
// and never mutated afterwards.
type Game struct {
	// Timestamp is the raw date-time string from the source row, kept for
	// display. When it does not parse into a date the game matches no month
	// and sorts last in the newest-first game log.
	Timestamp string
	Team1     TeamResult
	Team2     TeamResult
}

func (g *Game) Team1Won() bool { return g.Team1.Score > g.Team2.Score }
func (g *Game) Team2Won() bool { return g.Team2.Score > g.Team1.Score }
func (g *Game) Tie() bool      { return g.Team1.Score == g.Team2.Score }

// LoadReport carries parse diagnostics back to the caller. Dropped rows and
// suppressed duplicates are data-quality noise, not errors; the counts exist
// for observability only.
type LoadReport struct {
	GamesAdded        int
	RowsDropped       int
	DuplicatesSkipped int
}

// Accolade is one tournament award won by a player. Tournament is the column
// index in the accolades file (column 0 being the award name).
type Accolade struct {
	Award      string
	Tournament int
}

// ---- Accumulators owned by the aggregation engine ----

// PlayerTotals accumulates one player's lifetime (or monthly) record.
type PlayerTotals struct {
	Wins, Losses, Ties     int
	GoalsFor, GoalsAgainst int
	PlusMinus              int
	GamesAsKeeper          int
	GamesAsStriker         int
}

func (p *PlayerTotals) Games() int { return p.Wins + p.Losses + p.Ties }

func (p *PlayerTotals) WinRate() float64 { return winPct(p.Wins, p.Games()) }

// PairTotals accumulates an unordered teammate pair. Games counts every game
// the pair played together, ties included.
type PairTotals struct {
	Wins, Losses, Games int
}

func (p *PairTotals) WinRate() float64 { return winPct(p.Wins, p.Games) }

// MatchupTotals accumulates a directed (player, opponent) record. The original
// casing of both names is retained for display; the map key is lowercased.
type MatchupTotals struct {
	Player, Opponent    string
	Wins, Losses, Games int
}

func (m *MatchupTotals) WinRate() float64 { return winPct(m.Wins, m.Games) }

// ---- Query result rows (what the presentation layer sees) ----

// PlayerRow is one row of a player leaderboard.
type PlayerRow struct {
	Name         string
	Wins         int
	Losses       int
	Ties         int
	Games        int
	WinRate      float64 // 0–100, one decimal
	GoalsFor     int
	GoalsAgainst int
	PlusMinus    int
}

// PairRow is one row of the teammate-pair leaderboard, keyed by the joined
// pair label (e.g. "Alice & Bob").
type PairRow struct {
	Pair    string
	Wins    int
	Losses  int
	Games   int
	WinRate float64
}

// DuoRow is a teammate record seen from one player's side.
type DuoRow struct {
	Teammate string
	Wins     int
	Losses   int
	Games    int
	WinRate  float64
}

// MatchupRow is a directed opponent record seen from one player's side.
type MatchupRow struct {
	Opponent string
	Wins     int
	Losses   int
	Games    int
	WinRate  float64
}

// PlayerProfile is the full per-player view, including role attribution.
type PlayerProfile struct {
	Name           string
	Wins           int
	Losses         int
	Ties           int
	Games          int
	WinRate        float64
	GoalsFor       int
	GoalsAgainst   int
	PlusMinus      int
	GamesAsKeeper  int
	GamesAsStriker int
}

// winPct returns wins/games scaled to 0–100, rounded to one decimal.
// Zero games reports 0, not NaN.
func winPct(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(games)*1000) / 10
}
