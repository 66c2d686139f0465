package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"padel-games/internal/padel"
)

// ListPlayers returns the caller's non-deleted players ordered by last name,
// then first name.
func (s *store) ListPlayers(userID string) ([]padel.Player, error) {
	rows, err := s.db.Query(`
		SELECT id, first_name, last_name, year_of_birth, nickname, user_id, created_at, updated_at
		FROM players
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY last_name ASC, first_name ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := []padel.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

// CreatePlayer inserts a new player row and fills in the generated id and
// timestamps.
func (s *store) CreatePlayer(player *padel.Player) error {
	now := time.Now().UTC()
	player.CreatedAt = now
	player.UpdatedAt = now

	res, err := s.db.Exec(`
		INSERT INTO players (first_name, last_name, year_of_birth, nickname, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, player.FirstName, player.LastName, player.YearOfBirth, player.Nickname, player.UserID, player.CreatedAt, player.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	player.ID, err = res.LastInsertId()
	return err
}

// GetPlayer returns a non-deleted player owned by the caller.
func (s *store) GetPlayer(userID string, id int64) (*padel.Player, error) {
	row := s.db.QueryRow(`
		SELECT id, first_name, last_name, year_of_birth, nickname, user_id, created_at, updated_at
		FROM players
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, id, userID)

	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// UpdatePlayer updates the mutable fields of the caller's player.
func (s *store) UpdatePlayer(player *padel.Player) error {
	player.UpdatedAt = time.Now().UTC()

	res, err := s.db.Exec(`
		UPDATE players
		SET first_name = ?, last_name = ?, year_of_birth = ?, nickname = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, player.FirstName, player.LastName, player.YearOfBirth, player.Nickname, player.UpdatedAt, player.ID, player.UserID)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return checkAffectedRows(res, ErrPlayerNotFound)
}

// DeletePlayer soft-deletes a player. The row is retained so historical
// games keep resolving its name; games referencing it are left untouched.
func (s *store) DeletePlayer(userID string, id int64) error {
	now := time.Now().UTC()
	res, err := s.db.Exec(`
		UPDATE players
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, now, now, id, userID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return checkAffectedRows(res, ErrPlayerNotFound)
}

// CountOwnedPlayers counts how many of the given ids resolve to distinct
// non-deleted players owned by the caller.
func (s *store) CountOwnedPlayers(userID string, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]any, 0, len(ids)+1)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, userID)

	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(DISTINCT id)
		FROM players
		WHERE id IN (`+placeholders+`) AND user_id = ? AND deleted_at IS NULL
	`, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count owned players: %w", err)
	}
	return count, nil
}

// scanPlayer is a helper to scan a single player row.
func scanPlayer(scanner interface{ Scan(...any) error }) (*padel.Player, error) {
	var (
		player                           padel.Player
		firstName, yearOfBirth, nickname sql.NullString
	)
	err := scanner.Scan(
		&player.ID, &firstName, &player.LastName, &yearOfBirth, &nickname,
		&player.UserID, &player.CreatedAt, &player.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	player.FirstName = strPtr(firstName)
	player.YearOfBirth = strPtr(yearOfBirth)
	player.Nickname = strPtr(nickname)
	return &player, nil
}
