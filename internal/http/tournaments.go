package http

import (
	"net/http"
	"strings"
	"time"

	"padel-games/internal/padel"
	"padel-games/internal/store"
)

type tournamentRequest struct {
	Name      string  `json:"name"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

func (s *Server) handleListTournaments(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	tournaments, err := s.Store.ListTournaments(userID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tournaments)
}

func (s *Server) handleCreateTournament(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	tournament, ok := s.tournamentFromRequest(w, r, userID)
	if !ok {
		return
	}
	if err := s.Store.CreateTournament(tournament); err != nil {
		s.serverError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tournament)
}

func (s *Server) handleGetTournament(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		s.mapStoreError(w, store.ErrTournamentNotFound)
		return
	}

	tournament, err := s.Store.GetTournament(userID, id)
	if err != nil {
		s.mapStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tournament)
}

func (s *Server) handleUpdateTournament(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		s.mapStoreError(w, store.ErrTournamentNotFound)
		return
	}

	tournament, ok := s.tournamentFromRequest(w, r, userID)
	if !ok {
		return
	}
	tournament.ID = id
	if err := s.Store.UpdateTournament(tournament); err != nil {
		s.mapStoreError(w, err)
		return
	}

	updated, err := s.Store.GetTournament(userID, id)
	if err != nil {
		s.mapStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTournament(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		s.mapStoreError(w, store.ErrTournamentNotFound)
		return
	}

	if err := s.Store.DeleteTournament(userID, id); err != nil {
		s.mapStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Tournament deleted successfully"})
}

func (s *Server) tournamentFromRequest(w http.ResponseWriter, r *http.Request, userID string) (*padel.Tournament, bool) {
	var req tournamentRequest
	if err := readJSON(w, r, &req); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if strings.TrimSpace(req.Name) == "" || req.StartDate == "" {
		errorResponse(w, http.StatusBadRequest, "missing required fields")
		return nil, false
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid startDate date")
		return nil, false
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := parseDate(*req.EndDate)
		if err != nil {
			errorResponse(w, http.StatusBadRequest, "invalid endDate date")
			return nil, false
		}
		endDate = &parsed
	}

	return &padel.Tournament{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		UserID:    userID,
	}, true
}
