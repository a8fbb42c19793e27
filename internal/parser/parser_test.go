package parser

import (
	"strings"
	"testing"
)

const header = "Timestamp,T1P1,T1P2,T1P3,T1Score,T2P1,T2P2,T2P3,T2Score"

// sheet joins a header and rows into one CSV source.
func sheet(rows ...string) string {
	return header + "\n" + strings.Join(rows, "\n")
}

// ---- line splitting ----

func TestParseLine_Plain(t *testing.T) {
	fields := ParseLine("2024-01-05,Alice, Bob ,,5")
	want := []string{"2024-01-05", "Alice", "Bob", "", "5"}
	if len(fields) != len(want) {
		t.Fatalf("field count: want %d, got %d (%v)", len(want), len(fields), fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d: want %q, got %q", i, want[i], fields[i])
		}
	}
}

func TestParseLine_QuotedComma(t *testing.T) {
	fields := ParseLine(`"Smith, John",5`)
	if len(fields) != 2 {
		t.Fatalf("field count: want 2, got %d (%v)", len(fields), fields)
	}
	if fields[0] != "Smith, John" {
		t.Errorf("quoted field: want %q, got %q", "Smith, John", fields[0])
	}
	if fields[1] != "5" {
		t.Errorf("second field: want %q, got %q", "5", fields[1])
	}
}

// ---- row validation ----

func TestParse_SkipsHeader(t *testing.T) {
	p := New()
	report, err := p.Parse(sheet("2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,3"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.GamesAdded != 1 {
		t.Errorf("GamesAdded: want 1, got %d", report.GamesAdded)
	}
	if len(p.Games()) != 1 {
		t.Fatalf("games: want 1, got %d", len(p.Games()))
	}
	g := p.Games()[0]
	if g.Team1.Score != 5 || g.Team2.Score != 3 {
		t.Errorf("scores: want 5-3, got %d-%d", g.Team1.Score, g.Team2.Score)
	}
	if len(g.Team1.Players) != 2 || g.Team1.Players[0] != "Alice" {
		t.Errorf("team1 players: got %v", g.Team1.Players)
	}
}

func TestParse_DropsShortRows(t *testing.T) {
	p := New()
	report, err := p.Parse(sheet(
		"2024-01-05,Alice,Bob,,5", // too few fields
		"2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,3",
	), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.RowsDropped != 1 {
		t.Errorf("RowsDropped: want 1, got %d", report.RowsDropped)
	}
	if report.GamesAdded != 1 {
		t.Errorf("GamesAdded: want 1, got %d", report.GamesAdded)
	}
}

func TestParse_DropsEmptyTeam(t *testing.T) {
	p := New()
	report, err := p.Parse(sheet("2024-01-05T10:00:00,,,,5,Carol,Dave,,3"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.RowsDropped != 1 {
		t.Errorf("RowsDropped: want 1, got %d", report.RowsDropped)
	}
	if report.GamesAdded != 0 {
		t.Errorf("GamesAdded: want 0, got %d", report.GamesAdded)
	}
}

func TestParse_CoercesUnparseableScores(t *testing.T) {
	p := New()
	_, err := p.Parse(sheet("2024-01-05T10:00:00,Alice,Bob,,abc,Carol,Dave,,3"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := p.Games()[0]
	if g.Team1.Score != 0 || g.Team2.Score != 3 {
		t.Errorf("coerced scores: want 0-3, got %d-%d", g.Team1.Score, g.Team2.Score)
	}
}

func TestParse_DropsNegativeScores(t *testing.T) {
	p := New()
	report, err := p.Parse(sheet(
		"2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,-2",
		"2024-01-06T10:00:00,Alice,Bob,,-1,Carol,Dave,,3",
	), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.GamesAdded != 0 {
		t.Errorf("GamesAdded: want 0, got %d", report.GamesAdded)
	}
	if report.RowsDropped != 2 {
		t.Errorf("RowsDropped: want 2, got %d", report.RowsDropped)
	}
	if len(p.Games()) != 0 {
		t.Errorf("negative-score rows must not be stored, got %v", p.Games())
	}
}

func TestParse_EmptyInputIsError(t *testing.T) {
	p := New()
	if _, err := p.Parse("   \n  ", false); err == nil {
		t.Fatal("expected error for empty input")
	}
}

// ---- duplicate suppression ----

func TestParse_DedupExactRepeat(t *testing.T) {
	row := "2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,3"
	p := New()
	report, err := p.Parse(sheet(row, row), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.GamesAdded != 1 {
		t.Errorf("GamesAdded: want 1, got %d", report.GamesAdded)
	}
	if report.DuplicatesSkipped != 1 {
		t.Errorf("DuplicatesSkipped: want 1, got %d", report.DuplicatesSkipped)
	}
}

func TestParse_DedupTeamsSwapped(t *testing.T) {
	p := New()
	report, err := p.Parse(sheet(
		"2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,3",
		"2024-01-05T10:00:00,Carol,Dave,,3,Alice,Bob,,5",
	), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.GamesAdded != 1 {
		t.Errorf("GamesAdded: want 1, got %d", report.GamesAdded)
	}
	if report.DuplicatesSkipped != 1 {
		t.Errorf("DuplicatesSkipped: want 1, got %d", report.DuplicatesSkipped)
	}
}

func TestParse_DedupPlayersShuffled(t *testing.T) {
	p := New()
	report, err := p.Parse(sheet(
		"2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,3",
		"2024-01-05T10:00:00,Bob,Alice,,5,Dave,Carol,,3",
	), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.GamesAdded != 1 {
		t.Errorf("GamesAdded: want 1, got %d", report.GamesAdded)
	}
}

func TestParse_SameTeamsDifferentScoreIsNewGame(t *testing.T) {
	p := New()
	report, err := p.Parse(sheet(
		"2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,3",
		"2024-01-05T10:00:00,Alice,Bob,,4,Carol,Dave,,3",
	), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.GamesAdded != 2 {
		t.Errorf("GamesAdded: want 2, got %d", report.GamesAdded)
	}
}

// ---- append mode ----

func TestParse_AppendKeepsDedupAcrossSources(t *testing.T) {
	row := "2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,3"
	p := New()
	if _, err := p.Parse(sheet(row), false); err != nil {
		t.Fatalf("first parse: %v", err)
	}
	report, err := p.Parse(sheet(row, "2024-02-01T10:00:00,Alice,Carol,,2,Bob,Dave,,2"), true)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if report.DuplicatesSkipped != 1 {
		t.Errorf("DuplicatesSkipped: want 1, got %d", report.DuplicatesSkipped)
	}
	if report.GamesAdded != 1 {
		t.Errorf("GamesAdded: want 1, got %d", report.GamesAdded)
	}
	if len(p.Games()) != 2 {
		t.Errorf("total games: want 2, got %d", len(p.Games()))
	}
}

func TestParse_ReplaceResetsState(t *testing.T) {
	row := "2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,3"
	p := New()
	if _, err := p.Parse(sheet(row), false); err != nil {
		t.Fatalf("first parse: %v", err)
	}
	report, err := p.Parse(sheet(row), false)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if report.GamesAdded != 1 {
		t.Errorf("GamesAdded after reset: want 1, got %d", report.GamesAdded)
	}
	if len(p.Games()) != 1 {
		t.Errorf("games after reset: want 1, got %d", len(p.Games()))
	}
}

func TestParse_EmptyInputLeavesPriorStateIntact(t *testing.T) {
	p := New()
	if _, err := p.Parse(sheet("2024-01-05T10:00:00,Alice,Bob,,5,Carol,Dave,,3"), false); err != nil {
		t.Fatalf("first parse: %v", err)
	}
	if _, err := p.Parse("", true); err == nil {
		t.Fatal("expected error for empty input")
	}
	if len(p.Games()) != 1 {
		t.Errorf("games after failed append: want 1, got %d", len(p.Games()))
	}
}
