// Package stats is the aggregation engine: it consumes the parsed game
// collection and rebuilds per-player, per-teammate-pair and per-opponent-pair
// aggregates, both lifetime and for the calendar month of an injected
// reference time. All query methods are read-only and tolerate an empty
// engine.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/popopmc/foostats/internal/model"
)

// Engine owns every stat map and is their sole mutator. Construct one with
// New and pass it around explicitly; there is no package-level instance.
// Rebuild fully replaces engine state; there is no incremental update path.
type Engine struct {
	games []model.Game

	players  map[string]*model.PlayerTotals
	pairs    map[string]*model.PairTotals
	matchups map[string]*model.MatchupTotals

	// Rolling maps covering only games in the calendar month of the `now`
	// passed to Rebuild. Arbitrary past months are recomputed on demand from
	// the game collection instead (see queries.go).
	monthlyPlayers  map[string]*model.PlayerTotals
	monthlyPairs    map[string]*model.PairTotals
	monthlyMatchups map[string]*model.MatchupTotals
}

func New() *Engine {
	e := &Engine{}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.players = make(map[string]*model.PlayerTotals)
	e.pairs = make(map[string]*model.PairTotals)
	e.matchups = make(map[string]*model.MatchupTotals)
	e.monthlyPlayers = make(map[string]*model.PlayerTotals)
	e.monthlyPairs = make(map[string]*model.PairTotals)
	e.monthlyMatchups = make(map[string]*model.MatchupTotals)
}

// Rebuild clears every map and reaggregates from the given game collection.
// now is the reference time for the rolling "this month" maps; injecting it
// keeps month-boundary behavior deterministic and testable.
func (e *Engine) Rebuild(games []model.Game, now time.Time) {
	e.games = games
	e.reset()

	for i := range games {
		g := &games[i]
		team1Won := g.Team1Won()
		team2Won := g.Team2Won()
		thisMonth := matchesMonth(g.Timestamp, now.Year(), now.Month())

		e.applySide(g.Team1, g.Team2, team1Won, team2Won, thisMonth)
		e.applySide(g.Team2, g.Team1, team2Won, team1Won, thisMonth)
	}
}

// applySide folds one team's view of a game into the maps: per-player totals,
// teammate pairs within the side, and directed matchups against the other
// side. won/lost are from this side's perspective; neither set means a tie.
func (e *Engine) applySide(side, other model.TeamResult, won, lost, thisMonth bool) {
	for i, player := range side.Players {
		keeper := i == 0

		updatePlayer(e.players, player, won, lost, side.Score, other.Score, keeper)
		if thisMonth {
			updatePlayer(e.monthlyPlayers, player, won, lost, side.Score, other.Score, keeper)
		}

		for _, teammate := range side.Players {
			if teammate == player {
				continue
			}
			// Each unordered pair would otherwise be visited twice per game,
			// once from each member. Only the alphabetically first member
			// commits the update. Two same-named players on one team break
			// this rule; that input is undefined.
			if first, _ := orderPair(player, teammate); player != first {
				continue
			}
			updatePair(e.pairs, player, teammate, won, lost)
			if thisMonth {
				updatePair(e.monthlyPairs, player, teammate, won, lost)
			}
		}

		for _, opponent := range other.Players {
			updateMatchup(e.matchups, player, opponent, won, lost)
			if thisMonth {
				updateMatchup(e.monthlyMatchups, player, opponent, won, lost)
			}
		}
	}
}

func updatePlayer(m map[string]*model.PlayerTotals, name string, won, lost bool, goalsFor, goalsAgainst int, keeper bool) {
	p := m[name]
	if p == nil {
		p = &model.PlayerTotals{}
		m[name] = p
	}
	switch {
	case won:
		p.Wins++
	case lost:
		p.Losses++
	default:
		p.Ties++
	}
	p.GoalsFor += goalsFor
	p.GoalsAgainst += goalsAgainst
	p.PlusMinus = p.GoalsFor - p.GoalsAgainst
	if keeper {
		p.GamesAsKeeper++
	} else {
		p.GamesAsStriker++
	}
}

func updatePair(m map[string]*model.PairTotals, a, b string, won, lost bool) {
	key := pairKey(a, b)
	p := m[key]
	if p == nil {
		p = &model.PairTotals{}
		m[key] = p
	}
	p.Games++
	if won {
		p.Wins++
	}
	if lost {
		p.Losses++
	}
}

func updateMatchup(m map[string]*model.MatchupTotals, player, opponent string, won, lost bool) {
	key := matchupKey(player, opponent)
	s := m[key]
	if s == nil {
		s = &model.MatchupTotals{Player: player, Opponent: opponent}
		m[key] = s
	}
	s.Games++
	if won {
		s.Wins++
	}
	if lost {
		s.Losses++
	}
}

// pairKey joins two names after sorting, e.g. "Alice & Bob". Commutative:
// pairKey(a, b) == pairKey(b, a).
func pairKey(a, b string) string {
	first, second := orderPair(a, b)
	return first + " & " + second
}

func orderPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// matchupKey is directional: stats for A-vs-B live apart from B-vs-A.
func matchupKey(player, opponent string) string {
	return strings.ToLower(player) + "|" + strings.ToLower(opponent)
}

// timestampLayouts are tried in order when parsing a game's timestamp.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// parseWhen parses a raw timestamp string. Unparseable input yields the zero
// time: such games match no month and sort last in the newest-first log.
func parseWhen(ts string) time.Time {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}

// matchesMonth reports whether the timestamp falls in the given calendar
// month. The zero time (unparseable timestamp) matches nothing.
func matchesMonth(ts string, year int, month time.Month) bool {
	t := parseWhen(ts)
	if t.IsZero() {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// Window selects which horizon a query reads: the lifetime maps, the rolling
// this-month maps, or an on-demand recomputation for an explicit past month.
type Window struct {
	monthly bool
	year    int
	month   time.Month
}

// Lifetime selects the all-time precomputed maps.
func Lifetime() Window { return Window{} }

// ThisMonth selects the rolling maps built for the month of Rebuild's `now`.
func ThisMonth() Window { return Window{monthly: true} }

// ForMonth selects an explicit calendar month. Queries re-scan the full game
// collection for it instead of trusting the rolling maps.
func ForMonth(year int, month time.Month) Window {
	return Window{monthly: true, year: year, month: month}
}

// explicit reports whether the window names a specific month, forcing the
// on-demand recompute path.
func (w Window) explicit() bool { return w.monthly && w.year != 0 }

// sortGamesNewestFirst orders games by parsed timestamp descending. Games
// with unparseable timestamps (zero time) end up last.
func sortGamesNewestFirst(games []model.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		return parseWhen(games[i].Timestamp).After(parseWhen(games[j].Timestamp))
	})
}
