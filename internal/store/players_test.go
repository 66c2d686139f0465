package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padel-games/internal/padel"
	"padel-games/internal/store"
)

func TestCreateAndGetPlayer(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	player := padel.Player{
		FirstName:   ptr("Marco"),
		LastName:    "Rossi",
		YearOfBirth: ptr("1990"),
		Nickname:    ptr("Il Muro"),
		UserID:      "user-1",
	}
	require.NoError(t, s.CreatePlayer(&player))
	assert.NotZero(t, player.ID)
	assert.False(t, player.CreatedAt.IsZero())

	got, err := s.GetPlayer("user-1", player.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rossi", got.LastName)
	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Marco", *got.FirstName)
	require.NotNil(t, got.Nickname)
	assert.Equal(t, "Il Muro", *got.Nickname)
	assert.Nil(t, got.DeletedAt)
}

func TestGetPlayerNotFound(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	_, err := s.GetPlayer("user-1", 42)
	assert.ErrorIs(t, err, store.ErrPlayerNotFound)
}

func TestGetPlayerOtherUser(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	id := seedPlayer(t, s, "user-1", "Rossi", nil)

	_, err := s.GetPlayer("user-2", id)
	assert.ErrorIs(t, err, store.ErrPlayerNotFound)
}

func TestListPlayersOrderingAndScoping(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	seedPlayer(t, s, "user-1", "Verdi", ptr("Giulia"))
	seedPlayer(t, s, "user-1", "Bianchi", ptr("Anna"))
	seedPlayer(t, s, "user-1", "Bianchi", ptr("Luca"))
	seedPlayer(t, s, "user-2", "Aiello", nil)

	players, err := s.ListPlayers("user-1")
	require.NoError(t, err)
	require.Len(t, players, 2+1)
	assert.Equal(t, "Bianchi", players[0].LastName)
	assert.Equal(t, "Anna", *players[0].FirstName)
	assert.Equal(t, "Bianchi", players[1].LastName)
	assert.Equal(t, "Luca", *players[1].FirstName)
	assert.Equal(t, "Verdi", players[2].LastName)
}

func TestUpdatePlayer(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	id := seedPlayer(t, s, "user-1", "Rossi", ptr("Marco"))

	updated := padel.Player{
		ID:       id,
		LastName: "Rossi",
		Nickname: ptr("Smash"),
		UserID:   "user-1",
	}
	require.NoError(t, s.UpdatePlayer(&updated))

	got, err := s.GetPlayer("user-1", id)
	require.NoError(t, err)
	assert.Nil(t, got.FirstName)
	require.NotNil(t, got.Nickname)
	assert.Equal(t, "Smash", *got.Nickname)
}

func TestUpdatePlayerOtherUser(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	id := seedPlayer(t, s, "user-1", "Rossi", nil)

	err := s.UpdatePlayer(&padel.Player{ID: id, LastName: "Hacked", UserID: "user-2"})
	assert.ErrorIs(t, err, store.ErrPlayerNotFound)

	got, err := s.GetPlayer("user-1", id)
	require.NoError(t, err)
	assert.Equal(t, "Rossi", got.LastName)
}

func TestDeletePlayerSoftDeletes(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	id := seedPlayer(t, s, "user-1", "Rossi", nil)
	require.NoError(t, s.DeletePlayer("user-1", id))

	_, err := s.GetPlayer("user-1", id)
	assert.ErrorIs(t, err, store.ErrPlayerNotFound)

	players, err := s.ListPlayers("user-1")
	require.NoError(t, err)
	assert.Empty(t, players)

	// deleting twice is a not-found, not a no-op
	assert.ErrorIs(t, s.DeletePlayer("user-1", id), store.ErrPlayerNotFound)
}

func TestDeletePlayerOtherUser(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	id := seedPlayer(t, s, "user-1", "Rossi", nil)
	assert.ErrorIs(t, s.DeletePlayer("user-2", id), store.ErrPlayerNotFound)
}

func TestCountOwnedPlayers(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	a := seedPlayer(t, s, "user-1", "Rossi", nil)
	b := seedPlayer(t, s, "user-1", "Bianchi", nil)
	foreign := seedPlayer(t, s, "user-2", "Verdi", nil)

	n, err := s.CountOwnedPlayers("user-1", []int64{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// foreign and unknown ids do not count
	n, err = s.CountOwnedPlayers("user-1", []int64{a, foreign, 999})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// duplicates collapse to a single owned player
	n, err = s.CountOwnedPlayers("user-1", []int64{a, a, a, a})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// soft-deleted players are no longer owned
	require.NoError(t, s.DeletePlayer("user-1", b))
	n, err = s.CountOwnedPlayers("user-1", []int64{a, b})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
