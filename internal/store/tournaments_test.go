package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padel-games/internal/padel"
	"padel-games/internal/store"
)

func seedTournament(t *testing.T, s store.Store, userID, name string, start time.Time) *padel.Tournament {
	t.Helper()

	tournament := padel.Tournament{Name: name, StartDate: start, UserID: userID}
	require.NoError(t, s.CreateTournament(&tournament))
	return &tournament
}

func TestCreateAndGetTournament(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	tournament := padel.Tournament{
		Name:      "Torneo di Primavera",
		StartDate: date(2024, time.March, 1),
		EndDate:   ptr(date(2024, time.March, 3)),
		UserID:    "user-1",
	}
	require.NoError(t, s.CreateTournament(&tournament))

	got, err := s.GetTournament("user-1", tournament.ID)
	require.NoError(t, err)
	assert.Equal(t, "Torneo di Primavera", got.Name)
	require.NotNil(t, got.EndDate)
	assert.True(t, got.EndDate.Equal(date(2024, time.March, 3)))
}

func TestGetTournamentOtherUser(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	tournament := seedTournament(t, s, "user-1", "Open", date(2024, time.March, 1))

	_, err := s.GetTournament("user-2", tournament.ID)
	assert.ErrorIs(t, err, store.ErrTournamentNotFound)
}

func TestListTournamentsOrdering(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	seedTournament(t, s, "user-1", "Winter Cup", date(2024, time.January, 5))
	seedTournament(t, s, "user-1", "Spring Open", date(2024, time.March, 1))
	seedTournament(t, s, "user-2", "Other", date(2024, time.June, 1))

	tournaments, err := s.ListTournaments("user-1")
	require.NoError(t, err)
	require.Len(t, tournaments, 2)

	// most recent start date first
	assert.Equal(t, "Spring Open", tournaments[0].Name)
	assert.Equal(t, "Winter Cup", tournaments[1].Name)
}

func TestUpdateTournament(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	tournament := seedTournament(t, s, "user-1", "Open", date(2024, time.March, 1))

	tournament.Name = "Spring Open"
	tournament.EndDate = ptr(date(2024, time.March, 10))
	require.NoError(t, s.UpdateTournament(tournament))

	got, err := s.GetTournament("user-1", tournament.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring Open", got.Name)
	require.NotNil(t, got.EndDate)
}

func TestDeleteTournament(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	tournament := seedTournament(t, s, "user-1", "Open", date(2024, time.March, 1))
	require.NoError(t, s.DeleteTournament("user-1", tournament.ID))

	_, err := s.GetTournament("user-1", tournament.ID)
	assert.ErrorIs(t, err, store.ErrTournamentNotFound)

	exists, err := s.TournamentExists("user-1", tournament.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteTournamentWithGamesRefused(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	roster := seedRoster(t, s, "user-1")
	tournament := seedTournament(t, s, "user-1", "Open", date(2024, time.March, 1))

	game := seedGame(t, s, "user-1", date(2024, time.March, 2), roster, [2]int{6, 4})
	game.TournamentID = &tournament.ID
	require.NoError(t, s.UpdateGame(game))

	assert.ErrorIs(t, s.DeleteTournament("user-1", tournament.ID), store.ErrTournamentHasGames)

	// still there
	_, err := s.GetTournament("user-1", tournament.ID)
	require.NoError(t, err)

	// once the game is gone the tournament can be deleted
	require.NoError(t, s.DeleteGame("user-1", game.ID))
	require.NoError(t, s.DeleteTournament("user-1", tournament.ID))
}

func TestTournamentExists(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	tournament := seedTournament(t, s, "user-1", "Open", date(2024, time.March, 1))

	exists, err := s.TournamentExists("user-1", tournament.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.TournamentExists("user-2", tournament.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = s.TournamentExists("user-1", 999)
	require.NoError(t, err)
	assert.False(t, exists)
}
