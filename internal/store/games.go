package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"padel-games/internal/padel"
)

const gameColumns = `id, played_at, team1_player_dx, team1_player_sx, team2_player_dx, team2_player_sx,
		team1_set1_score, team2_set1_score, team1_set2_score, team2_set2_score, team1_set3_score, team2_set3_score,
		tournament_id, user_id, created_at, updated_at`

// ListGames returns the caller's non-deleted games, most recent first, each
// enriched with the four participants' display names, the tournament name
// and the derived score summary. Player names are resolved by direct id
// lookup so that soft-deleted players still render on historical games.
func (s *store) ListGames(userID string) ([]padel.GameDetail, error) {
	rows, err := s.db.Query(`
		SELECT g.id, g.played_at, g.team1_player_dx, g.team1_player_sx, g.team2_player_dx, g.team2_player_sx,
		       g.team1_set1_score, g.team2_set1_score, g.team1_set2_score, g.team2_set2_score, g.team1_set3_score, g.team2_set3_score,
		       g.tournament_id, g.user_id, g.created_at, g.updated_at,
		       p1.first_name, p1.last_name,
		       p2.first_name, p2.last_name,
		       p3.first_name, p3.last_name,
		       p4.first_name, p4.last_name,
		       t.name
		FROM games g
		LEFT JOIN players p1 ON p1.id = g.team1_player_dx AND p1.user_id = g.user_id
		LEFT JOIN players p2 ON p2.id = g.team1_player_sx AND p2.user_id = g.user_id
		LEFT JOIN players p3 ON p3.id = g.team2_player_dx AND p3.user_id = g.user_id
		LEFT JOIN players p4 ON p4.id = g.team2_player_sx AND p4.user_id = g.user_id
		LEFT JOIN tournaments t ON t.id = g.tournament_id AND t.user_id = g.user_id
		WHERE g.user_id = ? AND g.deleted_at IS NULL
		ORDER BY g.played_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := []padel.GameDetail{}
	for rows.Next() {
		detail, err := scanGameDetail(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *detail)
	}
	return games, rows.Err()
}

// GetGameDetail returns a single game with the same enrichment as ListGames.
func (s *store) GetGameDetail(userID string, id int64) (*padel.GameDetail, error) {
	row := s.db.QueryRow(`
		SELECT g.id, g.played_at, g.team1_player_dx, g.team1_player_sx, g.team2_player_dx, g.team2_player_sx,
		       g.team1_set1_score, g.team2_set1_score, g.team1_set2_score, g.team2_set2_score, g.team1_set3_score, g.team2_set3_score,
		       g.tournament_id, g.user_id, g.created_at, g.updated_at,
		       p1.first_name, p1.last_name,
		       p2.first_name, p2.last_name,
		       p3.first_name, p3.last_name,
		       p4.first_name, p4.last_name,
		       t.name
		FROM games g
		LEFT JOIN players p1 ON p1.id = g.team1_player_dx AND p1.user_id = g.user_id
		LEFT JOIN players p2 ON p2.id = g.team1_player_sx AND p2.user_id = g.user_id
		LEFT JOIN players p3 ON p3.id = g.team2_player_dx AND p3.user_id = g.user_id
		LEFT JOIN players p4 ON p4.id = g.team2_player_sx AND p4.user_id = g.user_id
		LEFT JOIN tournaments t ON t.id = g.tournament_id AND t.user_id = g.user_id
		WHERE g.id = ? AND g.user_id = ? AND g.deleted_at IS NULL
	`, id, userID)

	detail, err := scanGameDetail(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return detail, nil
}

// CreateGame inserts a new game row and fills in the generated id and
// timestamps. Player and tournament ownership is validated by the caller.
func (s *store) CreateGame(game *padel.Game) error {
	now := time.Now().UTC()
	game.CreatedAt = now
	game.UpdatedAt = now

	res, err := s.db.Exec(`
		INSERT INTO games (played_at, team1_player_dx, team1_player_sx, team2_player_dx, team2_player_sx,
			team1_set1_score, team2_set1_score, team1_set2_score, team2_set2_score, team1_set3_score, team2_set3_score,
			tournament_id, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, game.PlayedAt, game.Team1PlayerDx, game.Team1PlayerSx, game.Team2PlayerDx, game.Team2PlayerSx,
		game.Team1Set1, game.Team2Set1, game.Team1Set2, game.Team2Set2, game.Team1Set3, game.Team2Set3,
		game.TournamentID, game.UserID, game.CreatedAt, game.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	game.ID, err = res.LastInsertId()
	return err
}

// GetGame returns a non-deleted game owned by the caller.
func (s *store) GetGame(userID string, id int64) (*padel.Game, error) {
	row := s.db.QueryRow(`
		SELECT `+gameColumns+`
		FROM games
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, id, userID)

	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// UpdateGame rewrites all mutable fields of the caller's game.
func (s *store) UpdateGame(game *padel.Game) error {
	game.UpdatedAt = time.Now().UTC()

	res, err := s.db.Exec(`
		UPDATE games
		SET played_at = ?, team1_player_dx = ?, team1_player_sx = ?, team2_player_dx = ?, team2_player_sx = ?,
			team1_set1_score = ?, team2_set1_score = ?, team1_set2_score = ?, team2_set2_score = ?,
			team1_set3_score = ?, team2_set3_score = ?, tournament_id = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, game.PlayedAt, game.Team1PlayerDx, game.Team1PlayerSx, game.Team2PlayerDx, game.Team2PlayerSx,
		game.Team1Set1, game.Team2Set1, game.Team1Set2, game.Team2Set2, game.Team1Set3, game.Team2Set3,
		game.TournamentID, game.UpdatedAt, game.ID, game.UserID)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	return checkAffectedRows(res, ErrGameNotFound)
}

// DeleteGame soft-deletes a game.
func (s *store) DeleteGame(userID string, id int64) error {
	now := time.Now().UTC()
	res, err := s.db.Exec(`
		UPDATE games
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted_at IS NULL
	`, now, now, id, userID)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return checkAffectedRows(res, ErrGameNotFound)
}

func scanGame(scanner interface{ Scan(...any) error }) (*padel.Game, error) {
	var (
		game                               padel.Game
		t1s1, t2s1, t1s2, t2s2, t1s3, t2s3 sql.NullInt64
		tournamentID                       sql.NullInt64
	)
	err := scanner.Scan(
		&game.ID, &game.PlayedAt,
		&game.Team1PlayerDx, &game.Team1PlayerSx, &game.Team2PlayerDx, &game.Team2PlayerSx,
		&t1s1, &t2s1, &t1s2, &t2s2, &t1s3, &t2s3,
		&tournamentID, &game.UserID, &game.CreatedAt, &game.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	game.Team1Set1 = intPtr(t1s1)
	game.Team2Set1 = intPtr(t2s1)
	game.Team1Set2 = intPtr(t1s2)
	game.Team2Set2 = intPtr(t2s2)
	game.Team1Set3 = intPtr(t1s3)
	game.Team2Set3 = intPtr(t2s3)
	game.TournamentID = int64Ptr(tournamentID)
	return &game, nil
}

func scanGameDetail(scanner interface{ Scan(...any) error }) (*padel.GameDetail, error) {
	var (
		detail                             padel.GameDetail
		t1s1, t2s1, t1s2, t2s2, t1s3, t2s3 sql.NullInt64
		tournamentID                       sql.NullInt64
		names                              [4][2]sql.NullString
		tournamentName                     sql.NullString
	)
	err := scanner.Scan(
		&detail.ID, &detail.PlayedAt,
		&detail.Team1PlayerDx, &detail.Team1PlayerSx, &detail.Team2PlayerDx, &detail.Team2PlayerSx,
		&t1s1, &t2s1, &t1s2, &t2s2, &t1s3, &t2s3,
		&tournamentID, &detail.UserID, &detail.CreatedAt, &detail.UpdatedAt,
		&names[0][0], &names[0][1],
		&names[1][0], &names[1][1],
		&names[2][0], &names[2][1],
		&names[3][0], &names[3][1],
		&tournamentName,
	)
	if err != nil {
		return nil, err
	}
	detail.Team1Set1 = intPtr(t1s1)
	detail.Team2Set1 = intPtr(t2s1)
	detail.Team1Set2 = intPtr(t1s2)
	detail.Team2Set2 = intPtr(t2s2)
	detail.Team1Set3 = intPtr(t1s3)
	detail.Team2Set3 = intPtr(t2s3)
	detail.TournamentID = int64Ptr(tournamentID)

	detail.Team1PlayerDxName = resolvedName(names[0])
	detail.Team1PlayerSxName = resolvedName(names[1])
	detail.Team2PlayerDxName = resolvedName(names[2])
	detail.Team2PlayerSxName = resolvedName(names[3])
	detail.TournamentName = strPtr(tournamentName)

	detail.Team1SetsWon, detail.Team2SetsWon = detail.Game.SetsWon()
	detail.Winner = detail.Game.Result()
	detail.SetsScoresText = detail.Game.ScoresText()
	return &detail, nil
}

// resolvedName formats a joined player name pair, falling back to "Unknown"
// when the referenced player row no longer resolves.
func resolvedName(name [2]sql.NullString) string {
	if !name[1].Valid {
		return "Unknown"
	}
	return padel.DisplayName(strPtr(name[0]), name[1].String)
}
