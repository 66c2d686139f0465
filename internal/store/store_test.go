package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"padel-games/internal/database"
	"padel-games/internal/padel"
	"padel-games/internal/store"
)

// setupTestStore creates a temporary in-memory SQLite database for testing.
func setupTestStore(t *testing.T) (store.Store, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return store.New(db), teardown
}

func ptr[T any](v T) *T {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedPlayer inserts a player and returns its id.
func seedPlayer(t *testing.T, s store.Store, userID, lastName string, firstName *string) int64 {
	t.Helper()

	player := padel.Player{FirstName: firstName, LastName: lastName, UserID: userID}
	require.NoError(t, s.CreatePlayer(&player))
	return player.ID
}

// seedRoster inserts four players for a doubles game.
func seedRoster(t *testing.T, s store.Store, userID string) [4]int64 {
	t.Helper()

	return [4]int64{
		seedPlayer(t, s, userID, "Rossi", ptr("Marco")),
		seedPlayer(t, s, userID, "Bianchi", ptr("Luca")),
		seedPlayer(t, s, userID, "Verdi", ptr("Giulia")),
		seedPlayer(t, s, userID, "Esposito", ptr("Sara")),
	}
}

// seedGame inserts a game with the given per-set scores. Scores are pairs of
// (team1, team2) per set; missing pairs stay null.
func seedGame(t *testing.T, s store.Store, userID string, playedAt time.Time, players [4]int64, sets ...[2]int) *padel.Game {
	t.Helper()

	game := padel.Game{
		PlayedAt:      playedAt,
		Team1PlayerDx: players[0],
		Team1PlayerSx: players[1],
		Team2PlayerDx: players[2],
		Team2PlayerSx: players[3],
		UserID:        userID,
	}
	if len(sets) > 0 {
		game.Team1Set1, game.Team2Set1 = ptr(sets[0][0]), ptr(sets[0][1])
	}
	if len(sets) > 1 {
		game.Team1Set2, game.Team2Set2 = ptr(sets[1][0]), ptr(sets[1][1])
	}
	if len(sets) > 2 {
		game.Team1Set3, game.Team2Set3 = ptr(sets[2][0]), ptr(sets[2][1])
	}
	require.NoError(t, s.CreateGame(&game))
	return &game
}
