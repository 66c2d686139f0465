package store

import (
	"fmt"

	"padel-games/internal/padel"
)

// Aggregation queries run against games_view, which materializes the
// per-game sets-won tallies and the winner. Every count is scoped to the
// caller's non-deleted games.

// TotalGames counts the games in which the player occupied any of the four
// slots.
func (s *store) TotalGames(userID string, playerID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM games_view
		WHERE user_id = ? AND deleted_at IS NULL
		  AND (team1_player_dx = ? OR team1_player_sx = ? OR team2_player_dx = ? OR team2_player_sx = ?)
	`, userID, playerID, playerID, playerID, playerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("total games: %w", err)
	}
	return count, nil
}

// TotalWins counts the games the player's team won.
func (s *store) TotalWins(userID string, playerID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM games_view
		WHERE user_id = ? AND deleted_at IS NULL
		  AND ((winner = ? AND (team1_player_dx = ? OR team1_player_sx = ?))
		    OR (winner = ? AND (team2_player_dx = ? OR team2_player_sx = ?)))
	`, userID,
		padel.WinnerTeam1, playerID, playerID,
		padel.WinnerTeam2, playerID, playerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("total wins: %w", err)
	}
	return count, nil
}

// TotalGamesBetween counts the games where the player and the opponent were
// on opposite teams, in either direction.
func (s *store) TotalGamesBetween(userID string, playerID, opponentID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM games_view
		WHERE user_id = ? AND deleted_at IS NULL
		  AND (((team1_player_dx = ? OR team1_player_sx = ?) AND (team2_player_dx = ? OR team2_player_sx = ?))
		    OR ((team2_player_dx = ? OR team2_player_sx = ?) AND (team1_player_dx = ? OR team1_player_sx = ?)))
	`, userID,
		playerID, playerID, opponentID, opponentID,
		playerID, playerID, opponentID, opponentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("total games between: %w", err)
	}
	return count, nil
}

// TotalWinsAgainst counts the games in which the player's team beat a team
// featuring the opponent.
func (s *store) TotalWinsAgainst(userID string, playerID, opponentID int64) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM games_view
		WHERE user_id = ? AND deleted_at IS NULL
		  AND ((winner = ? AND (team1_player_dx = ? OR team1_player_sx = ?) AND (team2_player_dx = ? OR team2_player_sx = ?))
		    OR (winner = ? AND (team2_player_dx = ? OR team2_player_sx = ?) AND (team1_player_dx = ? OR team1_player_sx = ?)))
	`, userID,
		padel.WinnerTeam1, playerID, playerID, opponentID, opponentID,
		padel.WinnerTeam2, playerID, playerID, opponentID, opponentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("total wins against: %w", err)
	}
	return count, nil
}
