package store

import "errors"

// Sentinel errors returned by the store and mapped to HTTP statuses by the
// transport layer.
var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrGameNotFound       = errors.New("game not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	// Tournament deletion is guarded: it fails while non-deleted games still
	// reference the tournament. Players carry no such guard.
	ErrTournamentHasGames = errors.New("cannot delete tournament with associated games")
)
