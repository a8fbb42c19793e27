package model

import "testing"

func TestGameOutcome(t *testing.T) {
	win := Game{Team1: TeamResult{Score: 5}, Team2: TeamResult{Score: 3}}
	if !win.Team1Won() || win.Team2Won() || win.Tie() {
		t.Error("5-3: expected a team 1 win")
	}
	tie := Game{Team1: TeamResult{Score: 2}, Team2: TeamResult{Score: 2}}
	if !tie.Tie() || tie.Team1Won() || tie.Team2Won() {
		t.Error("2-2: expected a tie")
	}
}

func TestPlayerTotalsWinRate(t *testing.T) {
	cases := []struct {
		name string
		p    PlayerTotals
		want float64
	}{
		{"no games", PlayerTotals{}, 0},
		{"all wins", PlayerTotals{Wins: 4}, 100.0},
		{"ties in denominator", PlayerTotals{Wins: 1, Ties: 1}, 50.0},
		{"one third", PlayerTotals{Wins: 1, Losses: 2}, 33.3},
		{"two thirds", PlayerTotals{Wins: 2, Losses: 1}, 66.7},
	}
	for _, c := range cases {
		if got := c.p.WinRate(); got != c.want {
			t.Errorf("%s: want %.1f, got %.1f", c.name, c.want, got)
		}
	}
}

func TestPairAndMatchupWinRate(t *testing.T) {
	pair := PairTotals{Wins: 3, Losses: 1, Games: 5}
	if pair.WinRate() != 60.0 {
		t.Errorf("pair win rate over all games incl. ties: want 60.0, got %.1f", pair.WinRate())
	}
	m := MatchupTotals{Wins: 0, Losses: 0, Games: 0}
	if m.WinRate() != 0 {
		t.Errorf("zero-game matchup: want 0, got %.1f", m.WinRate())
	}
}
