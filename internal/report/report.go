// Package report renders query results as tables for the CLI.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/popopmc/foostats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintPlayerTable prints a player leaderboard.
// If focusName is non-empty, that player's row is marked with ">".
func PrintPlayerTable(w io.Writer, rows []model.PlayerRow, focusName string) {
	table := newTable(w)
	table.Header(" ", "NAME", "GP", "W", "L", "T", "WIN%", "GF", "GA", "+/-")

	for _, r := range rows {
		marker := " "
		if focusName != "" && strings.EqualFold(r.Name, focusName) {
			marker = ">"
		}
		table.Append(
			marker,
			r.Name,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Ties),
			fmt.Sprintf("%.1f%%", r.WinRate),
			strconv.Itoa(r.GoalsFor),
			strconv.Itoa(r.GoalsAgainst),
			fmt.Sprintf("%+d", r.PlusMinus),
		)
	}
	table.Render()
}

// PrintPairTable prints the teammate-pair leaderboard.
func PrintPairTable(w io.Writer, rows []model.PairRow) {
	table := newTable(w)
	table.Header("PAIR", "GP", "W", "L", "WIN%")

	for _, r := range rows {
		table.Append(
			r.Pair,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			fmt.Sprintf("%.1f%%", r.WinRate),
		)
	}
	table.Render()
}

// PrintDuoTable prints teammate records from one player's perspective.
func PrintDuoTable(w io.Writer, rows []model.DuoRow) {
	table := newTable(w)
	table.Header("TEAMMATE", "GP", "W", "L", "WIN%")

	for _, r := range rows {
		table.Append(
			r.Teammate,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			fmt.Sprintf("%.1f%%", r.WinRate),
		)
	}
	table.Render()
}

// PrintMatchupTable prints directed opponent records for one player.
func PrintMatchupTable(w io.Writer, rows []model.MatchupRow) {
	table := newTable(w)
	table.Header("OPPONENT", "GP", "W", "L", "WIN%")

	for _, r := range rows {
		table.Append(
			r.Opponent,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			fmt.Sprintf("%.1f%%", r.WinRate),
		)
	}
	table.Render()
}

// PrintProfile prints one player's full record with optional accolades.
func PrintProfile(w io.Writer, p *model.PlayerProfile, accolades []model.Accolade) {
	fmt.Fprintf(w, "\n=== %s ===\n\n", p.Name)
	fmt.Fprintf(w, "  Games        : %d (%d as keeper, %d as striker)\n",
		p.Games, p.GamesAsKeeper, p.GamesAsStriker)
	fmt.Fprintf(w, "  Record       : %d-%d-%d (W-L-T)\n", p.Wins, p.Losses, p.Ties)
	fmt.Fprintf(w, "  Win rate     : %.1f%%\n", p.WinRate)
	fmt.Fprintf(w, "  Goals        : %d for, %d against (%+d)\n",
		p.GoalsFor, p.GoalsAgainst, p.PlusMinus)

	if len(accolades) > 0 {
		fmt.Fprintf(w, "  Accolades    :\n")
		for _, a := range accolades {
			fmt.Fprintf(w, "    - %s (tournament %d)\n", a.Award, a.Tournament)
		}
	}
	fmt.Fprintln(w)
}

// PrintGameLog prints games newest-first. The winning side's score is marked.
func PrintGameLog(w io.Writer, games []model.Game) {
	table := newTable(w)
	table.Header("DATE", "TEAM 1", "SCORE", "TEAM 2")

	for i := range games {
		g := &games[i]
		score := fmt.Sprintf("%d - %d", g.Team1.Score, g.Team2.Score)
		switch {
		case g.Team1Won():
			score = fmt.Sprintf("< %d - %d", g.Team1.Score, g.Team2.Score)
		case g.Team2Won():
			score = fmt.Sprintf("%d - %d >", g.Team1.Score, g.Team2.Score)
		}
		table.Append(
			g.Timestamp,
			strings.Join(g.Team1.Players, ", "),
			score,
			strings.Join(g.Team2.Players, ", "),
		)
	}
	table.Render()
}

// PrintLoadReport prints parse diagnostics after a load.
func PrintLoadReport(w io.Writer, r model.LoadReport) {
	fmt.Fprintf(w, "\nLoaded %d games (%d rows dropped, %d duplicates skipped)\n\n",
		r.GamesAdded, r.RowsDropped, r.DuplicatesSkipped)
}
