package http

import (
	"net/http"
	"strings"

	"padel-games/internal/padel"
	"padel-games/internal/store"
)

type playerRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    string  `json:"lastName"`
	YearOfBirth *string `json:"yearOfBirth"`
	Nickname    *string `json:"nickname"`
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	players, err := s.Store.ListPlayers(userID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, players)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req playerRequest
	if err := readJSON(w, r, &req); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.LastName) == "" {
		errorResponse(w, http.StatusBadRequest, "missing required fields")
		return
	}

	player := padel.Player{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		YearOfBirth: req.YearOfBirth,
		Nickname:    req.Nickname,
		UserID:      userID,
	}
	if err := s.Store.CreatePlayer(&player); err != nil {
		s.serverError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, player)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		s.mapStoreError(w, store.ErrPlayerNotFound)
		return
	}

	player, err := s.Store.GetPlayer(userID, id)
	if err != nil {
		s.mapStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		s.mapStoreError(w, store.ErrPlayerNotFound)
		return
	}

	var req playerRequest
	if err := readJSON(w, r, &req); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.LastName) == "" {
		errorResponse(w, http.StatusBadRequest, "missing required fields")
		return
	}

	player := padel.Player{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		YearOfBirth: req.YearOfBirth,
		Nickname:    req.Nickname,
		UserID:      userID,
	}
	if err := s.Store.UpdatePlayer(&player); err != nil {
		s.mapStoreError(w, err)
		return
	}

	updated, err := s.Store.GetPlayer(userID, id)
	if err != nil {
		s.mapStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		s.mapStoreError(w, store.ErrPlayerNotFound)
		return
	}

	// Players referenced by existing games are still deletable; the games
	// keep resolving the name by direct id lookup.
	if err := s.Store.DeletePlayer(userID, id); err != nil {
		s.mapStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
