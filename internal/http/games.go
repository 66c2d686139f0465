package http

import (
	"net/http"

	"github.com/charmbracelet/log"

	"padel-games/internal/padel"
	"padel-games/internal/store"
)

type gameRequest struct {
	PlayedAt      string `json:"playedAt"`
	Team1PlayerDx int64  `json:"team1PlayerDx"`
	Team1PlayerSx int64  `json:"team1PlayerSx"`
	Team2PlayerDx int64  `json:"team2PlayerDx"`
	Team2PlayerSx int64  `json:"team2PlayerSx"`
	Team1Set1     *int   `json:"team1Set1Score"`
	Team2Set1     *int   `json:"team2Set1Score"`
	Team1Set2     *int   `json:"team1Set2Score"`
	Team2Set2     *int   `json:"team2Set2Score"`
	Team1Set3     *int   `json:"team1Set3Score"`
	Team2Set3     *int   `json:"team2Set3Score"`
	TournamentID  *int64 `json:"tournamentId"`
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	games, err := s.Store.ListGames(userID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, games)
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	game, ok := s.gameFromRequest(w, r, userID)
	if !ok {
		return
	}
	if err := s.Store.CreateGame(game); err != nil {
		s.serverError(w, err)
		return
	}
	s.notifyGameRecorded(userID, game.ID)
	respondJSON(w, http.StatusCreated, game)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		s.mapStoreError(w, store.ErrGameNotFound)
		return
	}

	game, err := s.Store.GetGame(userID, id)
	if err != nil {
		s.mapStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, game)
}

func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		s.mapStoreError(w, store.ErrGameNotFound)
		return
	}

	game, ok := s.gameFromRequest(w, r, userID)
	if !ok {
		return
	}
	game.ID = id
	if err := s.Store.UpdateGame(game); err != nil {
		s.mapStoreError(w, err)
		return
	}

	updated, err := s.Store.GetGame(userID, id)
	if err != nil {
		s.mapStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		s.mapStoreError(w, store.ErrGameNotFound)
		return
	}

	if err := s.Store.DeleteGame(userID, id); err != nil {
		s.mapStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// gameFromRequest decodes and validates a create/update game body. The four
// player ids must resolve to four distinct non-deleted players owned by the
// caller, and the optional tournament must be owned as well. On failure the
// response has already been written and ok is false.
func (s *Server) gameFromRequest(w http.ResponseWriter, r *http.Request, userID string) (*padel.Game, bool) {
	var req gameRequest
	if err := readJSON(w, r, &req); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	if req.PlayedAt == "" || req.Team1PlayerDx == 0 || req.Team1PlayerSx == 0 ||
		req.Team2PlayerDx == 0 || req.Team2PlayerSx == 0 {
		errorResponse(w, http.StatusBadRequest, "missing required fields")
		return nil, false
	}

	playedAt, err := parseDate(req.PlayedAt)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid playedAt date")
		return nil, false
	}

	// COUNT(DISTINCT ...) also rejects the same player occupying two slots.
	playerIDs := []int64{req.Team1PlayerDx, req.Team1PlayerSx, req.Team2PlayerDx, req.Team2PlayerSx}
	owned, err := s.Store.CountOwnedPlayers(userID, playerIDs)
	if err != nil {
		s.serverError(w, err)
		return nil, false
	}
	if owned != 4 {
		errorResponse(w, http.StatusBadRequest, "players not found or not owned")
		return nil, false
	}

	if req.TournamentID != nil {
		exists, err := s.Store.TournamentExists(userID, *req.TournamentID)
		if err != nil {
			s.serverError(w, err)
			return nil, false
		}
		if !exists {
			errorResponse(w, http.StatusBadRequest, "tournament not found or not owned")
			return nil, false
		}
	}

	return &padel.Game{
		PlayedAt:      playedAt,
		Team1PlayerDx: req.Team1PlayerDx,
		Team1PlayerSx: req.Team1PlayerSx,
		Team2PlayerDx: req.Team2PlayerDx,
		Team2PlayerSx: req.Team2PlayerSx,
		Team1Set1:     req.Team1Set1,
		Team2Set1:     req.Team2Set1,
		Team1Set2:     req.Team1Set2,
		Team2Set2:     req.Team2Set2,
		Team1Set3:     req.Team1Set3,
		Team2Set3:     req.Team2Set3,
		TournamentID:  req.TournamentID,
		UserID:        userID,
	}, true
}

// notifyGameRecorded sends a best-effort notification for a newly recorded
// game. Failures are logged and never affect the response.
func (s *Server) notifyGameRecorded(userID string, gameID int64) {
	detail, err := s.Store.GetGameDetail(userID, gameID)
	if err != nil {
		log.Error("Failed to load game for notification", "game_id", gameID, "error", err)
		return
	}
	if _, err := s.Notifier.SendGameRecorded(detail); err != nil {
		log.Error("Failed to send game notification", "game_id", gameID, "error", err)
	}
}
