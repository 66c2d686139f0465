package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"padel-games/internal/padel"
)

// ListTournaments returns the caller's non-deleted tournaments, most recent
// start date first.
func (s *store) ListTournaments(userID string) ([]padel.Tournament, error) {
	rows, err := s.db.Query(`
		SELECT id, name, start_date, end_date, user_id, created_at, updated_at
		FROM tournaments
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY start_date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := []padel.Tournament{}
	for rows.Next() {
		tournament, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, *tournament)
	}
	return tournaments, rows.Err()
}

// CreateTournament inserts a new tournament row and fills in the generated
// id and timestamps.
func (s *store) CreateTournament(tournament *padel.Tournament) error {
	now := time.Now().UTC()
	tournament.CreatedAt = now
	tournament.UpdatedAt = now

	res, err := s.db.Exec(`
		INSERT INTO tournaments (name, start_date, end_date, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, tournament.Name, tournament.StartDate, tournament.EndDate, tournament.UserID, tournament.CreatedAt, tournament.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}
	tournament.ID, err = res.LastInsertId()
	return err
}

// GetTournament returns a non-deleted tournament owned by the caller.
func (s *store) GetTournament(userID string, id int64) (*padel.Tournament, error) {
	row := s.db.QueryRow(`
		SELECT id, name, start_date, end_date, user_id, created_at, updated_at
		FROM tournaments
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, id, userID)

	tournament, err := scanTournament(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return tournament, nil
}

// UpdateTournament updates the mutable fields of the caller's tournament.
func (s *store) UpdateTournament(tournament *padel.Tournament) error {
	tournament.UpdatedAt = time.Now().UTC()

	res, err := s.db.Exec(`
		UPDATE tournaments
		SET name = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, tournament.Name, tournament.StartDate, tournament.EndDate, tournament.UpdatedAt, tournament.ID, tournament.UserID)
	if err != nil {
		return fmt.Errorf("update tournament: %w", err)
	}
	return checkAffectedRows(res, ErrTournamentNotFound)
}

// DeleteTournament soft-deletes a tournament, unless at least one
// non-deleted game still references it.
func (s *store) DeleteTournament(userID string, id int64) error {
	var referencing int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM games
		WHERE tournament_id = ? AND user_id = ? AND deleted_at IS NULL
	`, id, userID).Scan(&referencing)
	if err != nil {
		return fmt.Errorf("count referencing games: %w", err)
	}
	if referencing > 0 {
		return ErrTournamentHasGames
	}

	now := time.Now().UTC()
	res, err := s.db.Exec(`
		UPDATE tournaments
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, now, now, id, userID)
	if err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	return checkAffectedRows(res, ErrTournamentNotFound)
}

// TournamentExists reports whether a non-deleted tournament with the given
// id is owned by the caller.
func (s *store) TournamentExists(userID string, id int64) (bool, error) {
	var exists int
	err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM tournaments
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, id, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check tournament: %w", err)
	}
	return exists > 0, nil
}

func scanTournament(scanner interface{ Scan(...any) error }) (*padel.Tournament, error) {
	var (
		tournament padel.Tournament
		endDate    sql.NullTime
	)
	err := scanner.Scan(
		&tournament.ID, &tournament.Name, &tournament.StartDate, &endDate,
		&tournament.UserID, &tournament.CreatedAt, &tournament.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	tournament.EndDate = timePtr(endDate)
	return &tournament, nil
}
