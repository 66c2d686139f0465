package padel

import (
	"fmt"
	"math"
	"strings"
)

// Winner identifies the outcome of a game. The string values match the
// winner column of the games_view database view.
type Winner string

const (
	WinnerTeam1 Winner = "team1"
	WinnerTeam2 Winner = "team2"
	WinnerTie   Winner = "tie"
)

// SetsWon derives the per-team sets-won tally from the stored set scores.
// A set counts for whichever team scored strictly higher; a set with equal
// or missing scores counts for neither team.
func (g Game) SetsWon() (team1, team2 int) {
	sets := [3][2]*int{
		{g.Team1Set1, g.Team2Set1},
		{g.Team1Set2, g.Team2Set2},
		{g.Team1Set3, g.Team2Set3},
	}
	for _, set := range sets {
		if set[0] == nil || set[1] == nil {
			continue
		}
		switch {
		case *set[0] > *set[1]:
			team1++
		case *set[0] < *set[1]:
			team2++
		}
	}
	return team1, team2
}

// Result derives the winner: the team with strictly more sets won, or a tie.
func (g Game) Result() Winner {
	team1, team2 := g.SetsWon()
	switch {
	case team1 > team2:
		return WinnerTeam1
	case team2 > team1:
		return WinnerTeam2
	default:
		return WinnerTie
	}
}

// ScoresText renders the per-set scores for display, e.g. "6-4 3-6 6-2".
// Sets without both scores are omitted.
func (g Game) ScoresText() string {
	sets := [3][2]*int{
		{g.Team1Set1, g.Team2Set1},
		{g.Team1Set2, g.Team2Set2},
		{g.Team1Set3, g.Team2Set3},
	}
	var parts []string
	for _, set := range sets {
		if set[0] == nil || set[1] == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d-%d", *set[0], *set[1]))
	}
	return strings.Join(parts, " ")
}

// WinRate returns the win percentage rounded to the nearest integer, or 0
// when no games were played.
func WinRate(wins, gamesPlayed int) int {
	if gamesPlayed == 0 {
		return 0
	}
	return int(math.Round(100 * float64(wins) / float64(gamesPlayed)))
}

// DisplayName formats a player for game listings: the first-name initial
// with a dot, followed by the last name ("M. Rossi"). Players without a
// first name render as the bare last name.
func DisplayName(firstName *string, lastName string) string {
	if firstName == nil || *firstName == "" {
		return lastName
	}
	initial := strings.ToUpper(string([]rune(*firstName)[0]))
	return initial + ". " + lastName
}
