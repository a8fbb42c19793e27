package stats

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/popopmc/foostats/internal/model"
)

const leaderboardSize = 5

// PlayerStats maps the lifetime player totals to leaderboard rows, filtered
// to games >= minGames, sorted by win rate descending with games played as
// tie-break.
func (e *Engine) PlayerStats(minGames int) []model.PlayerRow {
	rows := playerRows(e.players, minGames)
	sortByWinRate(rows)
	return rows
}

// MonthlyPlayerStats is PlayerStats over the rolling this-month maps.
func (e *Engine) MonthlyPlayerStats(minGames int) []model.PlayerRow {
	rows := playerRows(e.monthlyPlayers, minGames)
	sortByWinRate(rows)
	return rows
}

// TeammateStats returns the unordered-pair leaderboard over the lifetime
// maps, same filter and ordering as PlayerStats.
func (e *Engine) TeammateStats(minGames int) []model.PairRow {
	rows := make([]model.PairRow, 0, len(e.pairs))
	for key, p := range e.pairs {
		if p.Games < minGames {
			continue
		}
		rows = append(rows, model.PairRow{
			Pair:    key,
			Wins:    p.Wins,
			Losses:  p.Losses,
			Games:   p.Games,
			WinRate: p.WinRate(),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].WinRate != rows[j].WinRate {
			return rows[i].WinRate > rows[j].WinRate
		}
		if rows[i].Games != rows[j].Games {
			return rows[i].Games > rows[j].Games
		}
		return rows[i].Pair < rows[j].Pair
	})
	return rows
}

// PlusMinusLeaders re-sorts the win-rate-ordered player list by plus/minus.
// The final key fully decides the order; the win-rate sort only settles
// equal plus/minus values.
func (e *Engine) PlusMinusLeaders(minGames int) []model.PlayerRow {
	rows := e.PlayerStats(minGames)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PlusMinus > rows[j].PlusMinus
	})
	return rows
}

// PlayersFor returns the win-rate-sorted player leaderboard for any window.
// Explicit months recompute from the game collection.
func (e *Engine) PlayersFor(w Window, minGames int) []model.PlayerRow {
	switch {
	case w.explicit():
		rows := playerRows(e.playersForMonth(w.year, w.month), minGames)
		sortByWinRate(rows)
		return rows
	case w.monthly:
		return e.MonthlyPlayerStats(minGames)
	default:
		return e.PlayerStats(minGames)
	}
}

// LeadersByCategory returns the top 5 players for a category: "winrate",
// "wins", "losses" or "plusminus". Unknown categories yield an empty slice.
func (e *Engine) LeadersByCategory(category string, w Window, minGames int) []model.PlayerRow {
	rows := e.PlayersFor(w, minGames)

	switch category {
	case "winrate":
		// rows are already win-rate sorted.
	case "wins":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Wins > rows[j].Wins })
	case "losses":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Losses > rows[j].Losses })
	case "plusminus":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].PlusMinus > rows[j].PlusMinus })
	default:
		return nil
	}

	if len(rows) > leaderboardSize {
		rows = rows[:leaderboardSize]
	}
	return rows
}

// PlayerProfile looks up one player by case-insensitive name. With an
// explicit month window it ignores the precomputed maps and recomputes from
// the game collection; otherwise it reads the lifetime map. Returns nil when
// no such player exists.
func (e *Engine) PlayerProfile(name string, w Window) *model.PlayerProfile {
	if w.explicit() {
		return e.profileForMonth(name, w.year, w.month)
	}

	lower := strings.ToLower(name)
	for stored, p := range e.players {
		if strings.ToLower(stored) != lower {
			continue
		}
		return &model.PlayerProfile{
			Name:           stored,
			Wins:           p.Wins,
			Losses:         p.Losses,
			Ties:           p.Ties,
			Games:          p.Games(),
			WinRate:        p.WinRate(),
			GoalsFor:       p.GoalsFor,
			GoalsAgainst:   p.GoalsAgainst,
			PlusMinus:      p.PlusMinus,
			GamesAsKeeper:  p.GamesAsKeeper,
			GamesAsStriker: p.GamesAsStriker,
		}
	}
	return nil
}

// profileForMonth rebuilds a single player's record from the games of one
// explicit month. Ties are not tracked on this path.
func (e *Engine) profileForMonth(name string, year int, month time.Month) *model.PlayerProfile {
	lower := strings.ToLower(name)
	profile := &model.PlayerProfile{Name: name}
	found := false

	for i := range e.games {
		g := &e.games[i]
		if !matchesMonth(g.Timestamp, year, month) {
			continue
		}
		idx, side, other := playerSide(g, lower)
		if idx < 0 {
			continue
		}
		found = true
		if side.Score > other.Score {
			profile.Wins++
		} else if side.Score < other.Score {
			profile.Losses++
		}
		profile.GoalsFor += side.Score
		profile.GoalsAgainst += other.Score
		if idx == 0 {
			profile.GamesAsKeeper++
		} else {
			profile.GamesAsStriker++
		}
	}
	if !found {
		return nil
	}
	profile.Games = profile.Wins + profile.Losses
	profile.PlusMinus = profile.GoalsFor - profile.GoalsAgainst
	if profile.Games > 0 {
		profile.WinRate = oneDecimal(float64(profile.Wins) / float64(profile.Games) * 100)
	}
	return profile
}

// playerSide locates a lowercased player name within a game. Returns the
// player's index on their side plus (side, other), or idx -1 when absent.
func playerSide(g *model.Game, lower string) (int, model.TeamResult, model.TeamResult) {
	if idx := indexOfName(g.Team1.Players, lower); idx >= 0 {
		return idx, g.Team1, g.Team2
	}
	if idx := indexOfName(g.Team2.Players, lower); idx >= 0 {
		return idx, g.Team2, g.Team1
	}
	return -1, model.TeamResult{}, model.TeamResult{}
}

func indexOfName(players []string, lower string) int {
	for i, p := range players {
		if strings.ToLower(p) == lower {
			return i
		}
	}
	return -1
}

// DuoStats returns every teammate record involving the named player, filtered
// to games >= minGames. An explicit month window recomputes a transient pair
// map from the game collection.
func (e *Engine) DuoStats(name string, minGames int, w Window) []model.DuoRow {
	var pairs map[string]*model.PairTotals
	switch {
	case w.explicit():
		pairs = e.pairsForMonth(w.year, w.month)
	case w.monthly:
		pairs = e.monthlyPairs
	default:
		pairs = e.pairs
	}

	lower := strings.ToLower(name)
	var duos []model.DuoRow
	for key, p := range pairs {
		a, b, ok := splitPairKey(key)
		if !ok {
			continue
		}
		var teammate string
		switch lower {
		case strings.ToLower(a):
			teammate = b
		case strings.ToLower(b):
			teammate = a
		default:
			continue
		}
		if p.Games < minGames {
			continue
		}
		duos = append(duos, model.DuoRow{
			Teammate: teammate,
			Wins:     p.Wins,
			Losses:   p.Losses,
			Games:    p.Games,
			WinRate:  p.WinRate(),
		})
	}
	return duos
}

// TopDuos returns the player's 5 best teammates by win rate; ties go to the
// pair with more games.
func (e *Engine) TopDuos(name string, minGames int, w Window) []model.DuoRow {
	duos := e.DuoStats(name, minGames, w)
	sort.Slice(duos, func(i, j int) bool {
		if duos[i].WinRate != duos[j].WinRate {
			return duos[i].WinRate > duos[j].WinRate
		}
		if duos[i].Games != duos[j].Games {
			return duos[i].Games > duos[j].Games
		}
		return duos[i].Teammate < duos[j].Teammate
	})
	return capRows(duos)
}

// BottomDuos returns the player's 5 worst teammates by win rate; more games
// still wins the tie.
func (e *Engine) BottomDuos(name string, minGames int, w Window) []model.DuoRow {
	duos := e.DuoStats(name, minGames, w)
	sort.Slice(duos, func(i, j int) bool {
		if duos[i].WinRate != duos[j].WinRate {
			return duos[i].WinRate < duos[j].WinRate
		}
		if duos[i].Games != duos[j].Games {
			return duos[i].Games > duos[j].Games
		}
		return duos[i].Teammate < duos[j].Teammate
	})
	return capRows(duos)
}

// DuoWinRate looks up the record for one specific pair. Returns nil when the
// pair is unknown or under the minimum. The pair key is commutative, so
// DuoWinRate(a, b, ...) and DuoWinRate(b, a, ...) read the same record.
func (e *Engine) DuoWinRate(player, teammate string, minGames int, w Window) *model.DuoRow {
	if w.explicit() {
		lower := strings.ToLower(teammate)
		for _, duo := range e.DuoStats(player, minGames, w) {
			if strings.ToLower(duo.Teammate) == lower {
				d := duo
				return &d
			}
		}
		return nil
	}

	pairs := e.pairs
	if w.monthly {
		pairs = e.monthlyPairs
	}
	p, ok := pairs[pairKey(player, teammate)]
	if !ok || p.Games < minGames {
		return nil
	}
	a, b, _ := splitPairKey(pairKey(player, teammate))
	other := a
	if strings.EqualFold(a, player) {
		other = b
	}
	return &model.DuoRow{
		Teammate: other,
		Wins:     p.Wins,
		Losses:   p.Losses,
		Games:    p.Games,
		WinRate:  p.WinRate(),
	}
}

// OpponentStats returns every directed matchup record where the named player
// is the subject, filtered to games >= minGames.
func (e *Engine) OpponentStats(name string, minGames int, w Window) []model.MatchupRow {
	var matchups map[string]*model.MatchupTotals
	switch {
	case w.explicit():
		matchups = e.matchupsForMonth(w.year, w.month)
	case w.monthly:
		matchups = e.monthlyMatchups
	default:
		matchups = e.matchups
	}

	lower := strings.ToLower(name)
	var rows []model.MatchupRow
	for _, s := range matchups {
		if strings.ToLower(s.Player) != lower || s.Games < minGames {
			continue
		}
		rows = append(rows, model.MatchupRow{
			Opponent: s.Opponent,
			Wins:     s.Wins,
			Losses:   s.Losses,
			Games:    s.Games,
			WinRate:  s.WinRate(),
		})
	}
	return rows
}

// TopOpponents returns the 5 opponents the player beats most often.
func (e *Engine) TopOpponents(name string, minGames int, w Window) []model.MatchupRow {
	rows := e.OpponentStats(name, minGames, w)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].WinRate != rows[j].WinRate {
			return rows[i].WinRate > rows[j].WinRate
		}
		if rows[i].Games != rows[j].Games {
			return rows[i].Games > rows[j].Games
		}
		return rows[i].Opponent < rows[j].Opponent
	})
	return capMatchups(rows)
}

// BottomOpponents returns the 5 opponents the player loses to most often.
func (e *Engine) BottomOpponents(name string, minGames int, w Window) []model.MatchupRow {
	rows := e.OpponentStats(name, minGames, w)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].WinRate != rows[j].WinRate {
			return rows[i].WinRate < rows[j].WinRate
		}
		if rows[i].Games != rows[j].Games {
			return rows[i].Games > rows[j].Games
		}
		return rows[i].Opponent < rows[j].Opponent
	})
	return capMatchups(rows)
}

// OpponentWinRate looks up one directed matchup. A-vs-B and B-vs-A are
// independent records and may disagree. Returns nil when unknown or under
// the minimum.
func (e *Engine) OpponentWinRate(player, opponent string, minGames int, w Window) *model.MatchupRow {
	if w.explicit() {
		lower := strings.ToLower(opponent)
		for _, row := range e.OpponentStats(player, minGames, w) {
			if strings.ToLower(row.Opponent) == lower {
				r := row
				return &r
			}
		}
		return nil
	}

	matchups := e.matchups
	if w.monthly {
		matchups = e.monthlyMatchups
	}
	s, ok := matchups[matchupKey(player, opponent)]
	if !ok || s.Games < minGames {
		return nil
	}
	return &model.MatchupRow{
		Opponent: s.Opponent,
		Wins:     s.Wins,
		Losses:   s.Losses,
		Games:    s.Games,
		WinRate:  s.WinRate(),
	}
}

// AllGames returns a copy of the game collection sorted newest first.
func (e *Engine) AllGames() []model.Game {
	games := make([]model.Game, len(e.games))
	copy(games, e.games)
	sortGamesNewestFirst(games)
	return games
}

// AllPlayerNames returns every distinct lifetime player name, sorted.
func (e *Engine) AllPlayerNames() []string {
	names := make([]string, 0, len(e.players))
	for name := range e.players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GameCount reports the size of the current game collection.
func (e *Engine) GameCount() int { return len(e.games) }

// ---- On-demand month recomputation ----

// playersForMonth rebuilds a transient player map from one explicit month.
func (e *Engine) playersForMonth(year int, month time.Month) map[string]*model.PlayerTotals {
	m := make(map[string]*model.PlayerTotals)
	for i := range e.games {
		g := &e.games[i]
		if !matchesMonth(g.Timestamp, year, month) {
			continue
		}
		for idx, player := range g.Team1.Players {
			updatePlayer(m, player, g.Team1Won(), g.Team2Won(), g.Team1.Score, g.Team2.Score, idx == 0)
		}
		for idx, player := range g.Team2.Players {
			updatePlayer(m, player, g.Team2Won(), g.Team1Won(), g.Team2.Score, g.Team1.Score, idx == 0)
		}
	}
	return m
}

// pairsForMonth rebuilds a transient teammate-pair map from one explicit
// month, visiting each unordered pair exactly once per game.
func (e *Engine) pairsForMonth(year int, month time.Month) map[string]*model.PairTotals {
	m := make(map[string]*model.PairTotals)
	for i := range e.games {
		g := &e.games[i]
		if !matchesMonth(g.Timestamp, year, month) {
			continue
		}
		foldSidePairs(m, g.Team1.Players, g.Team1Won(), g.Team2Won())
		foldSidePairs(m, g.Team2.Players, g.Team2Won(), g.Team1Won())
	}
	return m
}

func foldSidePairs(m map[string]*model.PairTotals, players []string, won, lost bool) {
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			updatePair(m, players[i], players[j], won, lost)
		}
	}
}

// matchupsForMonth rebuilds a transient directed-matchup map from one
// explicit month; both directions are recorded for every cross-team pairing.
func (e *Engine) matchupsForMonth(year int, month time.Month) map[string]*model.MatchupTotals {
	m := make(map[string]*model.MatchupTotals)
	for i := range e.games {
		g := &e.games[i]
		if !matchesMonth(g.Timestamp, year, month) {
			continue
		}
		for _, player := range g.Team1.Players {
			for _, opponent := range g.Team2.Players {
				updateMatchup(m, player, opponent, g.Team1Won(), g.Team2Won())
			}
		}
		for _, player := range g.Team2.Players {
			for _, opponent := range g.Team1.Players {
				updateMatchup(m, player, opponent, g.Team2Won(), g.Team1Won())
			}
		}
	}
	return m
}

// ---- Row building and ordering helpers ----

func playerRows(m map[string]*model.PlayerTotals, minGames int) []model.PlayerRow {
	rows := make([]model.PlayerRow, 0, len(m))
	for name, p := range m {
		if p.Games() < minGames {
			continue
		}
		rows = append(rows, model.PlayerRow{
			Name:         name,
			Wins:         p.Wins,
			Losses:       p.Losses,
			Ties:         p.Ties,
			Games:        p.Games(),
			WinRate:      p.WinRate(),
			GoalsFor:     p.GoalsFor,
			GoalsAgainst: p.GoalsAgainst,
			PlusMinus:    p.PlusMinus,
		})
	}
	return rows
}

// sortByWinRate orders rows by win rate descending, then games played, then
// name for a deterministic final order.
func sortByWinRate(rows []model.PlayerRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].WinRate != rows[j].WinRate {
			return rows[i].WinRate > rows[j].WinRate
		}
		if rows[i].Games != rows[j].Games {
			return rows[i].Games > rows[j].Games
		}
		return rows[i].Name < rows[j].Name
	})
}

func splitPairKey(key string) (a, b string, ok bool) {
	parts := strings.SplitN(key, " & ", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func capRows(rows []model.DuoRow) []model.DuoRow {
	if len(rows) > leaderboardSize {
		return rows[:leaderboardSize]
	}
	return rows
}

func capMatchups(rows []model.MatchupRow) []model.MatchupRow {
	if len(rows) > leaderboardSize {
		return rows[:leaderboardSize]
	}
	return rows
}

func oneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
