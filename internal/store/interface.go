package store

import "padel-games/internal/padel"

// Store defines the interface for all persistent padel data. Every method is
// scoped to a single owning user; no call can observe another user's rows.
type Store interface {
	ListPlayers(userID string) ([]padel.Player, error)
	CreatePlayer(player *padel.Player) error
	GetPlayer(userID string, id int64) (*padel.Player, error)
	UpdatePlayer(player *padel.Player) error
	DeletePlayer(userID string, id int64) error
	CountOwnedPlayers(userID string, ids []int64) (int, error)

	ListGames(userID string) ([]padel.GameDetail, error)
	GetGameDetail(userID string, id int64) (*padel.GameDetail, error)
	CreateGame(game *padel.Game) error
	GetGame(userID string, id int64) (*padel.Game, error)
	UpdateGame(game *padel.Game) error
	DeleteGame(userID string, id int64) error

	ListTournaments(userID string) ([]padel.Tournament, error)
	CreateTournament(tournament *padel.Tournament) error
	GetTournament(userID string, id int64) (*padel.Tournament, error)
	UpdateTournament(tournament *padel.Tournament) error
	DeleteTournament(userID string, id int64) error
	TournamentExists(userID string, id int64) (bool, error)

	TotalGames(userID string, playerID int64) (int, error)
	TotalWins(userID string, playerID int64) (int, error)
	TotalGamesBetween(userID string, playerID, opponentID int64) (int, error)
	TotalWinsAgainst(userID string, playerID, opponentID int64) (int, error)
}
