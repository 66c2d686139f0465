package http

import "net/http"

// Aggregation endpoints back the dashboard gauges. Invalid ids are rejected
// with a 400 before any store access; store failures surface as a generic
// 500 so the caller treats the value as unknown rather than zero.

func (s *Server) handlePlayerTotalGames(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	playerID, err := idParam(r, "id")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid player id")
		return
	}

	total, err := s.Store.TotalGames(userID, playerID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"totalGames": total})
}

func (s *Server) handlePlayerTotalWins(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	playerID, err := idParam(r, "id")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid player id")
		return
	}

	total, err := s.Store.TotalWins(userID, playerID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"totalWins": total})
}

func (s *Server) handleOpponentTotalGames(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	playerID, err := idParam(r, "id")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid player id")
		return
	}
	opponentID, err := idParam(r, "opponentId")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid opponent id")
		return
	}

	total, err := s.Store.TotalGamesBetween(userID, playerID, opponentID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"totalGames": total})
}

func (s *Server) handleOpponentTotalWins(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	playerID, err := idParam(r, "id")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid player id")
		return
	}
	opponentID, err := idParam(r, "opponentId")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid opponent id")
		return
	}

	total, err := s.Store.TotalWinsAgainst(userID, playerID, opponentID)
	if err != nil {
		s.serverError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"totalWins": total})
}
