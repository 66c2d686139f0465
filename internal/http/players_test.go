package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padel-games/internal/padel"
)

func TestCreatePlayer(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	rr := doRequest(t, srv, http.MethodPost, "/players", testUser, map[string]any{
		"firstName":   "Marco",
		"lastName":    "Rossi",
		"yearOfBirth": "1990",
		"nickname":    "Il Muro",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var player padel.Player
	decodeBody(t, rr, &player)
	assert.NotZero(t, player.ID)
	assert.Equal(t, "Rossi", player.LastName)
	require.NotNil(t, player.FirstName)
	assert.Equal(t, "Marco", *player.FirstName)
	assert.Equal(t, testUser, player.UserID)
}

func TestCreatePlayerMissingLastName(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	for name, body := range map[string]map[string]any{
		"absent": {"firstName": "Marco"},
		"blank":  {"lastName": "   "},
	} {
		rr := doRequest(t, srv, http.MethodPost, "/players", testUser, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, name)
		assert.Equal(t, "missing required fields", errorMessage(t, rr))
	}
}

func TestGetPlayer(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	id := createTestPlayer(t, srv, testUser, "Rossi", "Marco")

	rr := doRequest(t, srv, http.MethodGet, fmt.Sprintf("/players/%d", id), testUser, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var player padel.Player
	decodeBody(t, rr, &player)
	assert.Equal(t, id, player.ID)
	assert.Equal(t, "Rossi", player.LastName)
}

func TestGetPlayerNotVisibleAcrossUsers(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	id := createTestPlayer(t, srv, testUser, "Rossi", "Marco")

	rr := doRequest(t, srv, http.MethodGet, fmt.Sprintf("/players/%d", id), otherUser, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "player not found", errorMessage(t, rr))
}

func TestGetPlayerBadID(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	rr := doRequest(t, srv, http.MethodGet, "/players/abc", testUser, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListPlayers(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	createTestPlayer(t, srv, testUser, "Verdi", "Giulia")
	createTestPlayer(t, srv, testUser, "Bianchi", "Luca")
	createTestPlayer(t, srv, otherUser, "Aiello", "")

	rr := doRequest(t, srv, http.MethodGet, "/players", testUser, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var players []padel.Player
	decodeBody(t, rr, &players)
	require.Len(t, players, 2)
	assert.Equal(t, "Bianchi", players[0].LastName)
	assert.Equal(t, "Verdi", players[1].LastName)
}

func TestUpdatePlayer(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	id := createTestPlayer(t, srv, testUser, "Rossi", "Marco")

	rr := doRequest(t, srv, http.MethodPut, fmt.Sprintf("/players/%d", id), testUser, map[string]any{
		"lastName": "Rossi",
		"nickname": "Smash",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var player padel.Player
	decodeBody(t, rr, &player)
	assert.Nil(t, player.FirstName)
	require.NotNil(t, player.Nickname)
	assert.Equal(t, "Smash", *player.Nickname)
}

func TestUpdatePlayerNotOwned(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	id := createTestPlayer(t, srv, testUser, "Rossi", "Marco")

	rr := doRequest(t, srv, http.MethodPut, fmt.Sprintf("/players/%d", id), otherUser, map[string]any{
		"lastName": "Hacked",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePlayer(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	id := createTestPlayer(t, srv, testUser, "Rossi", "Marco")

	rr := doRequest(t, srv, http.MethodDelete, fmt.Sprintf("/players/%d", id), testUser, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]bool
	decodeBody(t, rr, &body)
	assert.True(t, body["success"])

	rr = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/players/%d", id), testUser, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePlayerReferencedByGame(t *testing.T) {
	srv, _, teardown := newTestServer(t)
	defer teardown()

	players := createTestRoster(t, srv, testUser)
	rr := doRequest(t, srv, http.MethodPost, "/games", testUser, gameBody(players))
	require.Equal(t, http.StatusCreated, rr.Code)

	// deleting a participant is allowed; the game keeps its name
	rr = doRequest(t, srv, http.MethodDelete, fmt.Sprintf("/players/%d", players[0]), testUser, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, srv, http.MethodGet, "/games", testUser, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var games []padel.GameDetail
	decodeBody(t, rr, &games)
	require.Len(t, games, 1)
	assert.Equal(t, "M. Rossi", games[0].Team1PlayerDxName)
}
