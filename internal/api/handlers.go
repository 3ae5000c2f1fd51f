package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/imRanDan/chess-analytics-tool/internal/errors"
	"github.com/imRanDan/chess-analytics-tool/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func profileID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid profile id")
	}
	return id, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.ProfileService.ListProfiles(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	profile, err := s.ProfileService.CreateProfile(r.Context(), req.Username)
	if err != nil {
		handleError(w, r, err)
		return
	}

	// A fresh profile is queued for its first sync immediately.
	s.SyncService.QueueSync(r.Context(), *profile)

	writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.ProfileService.DeleteProfile(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	profile, err := s.ProfileService.GetProfile(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.SyncService.QueueSync(r.Context(), *profile)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sync queued"})
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	q := r.URL.Query()
	filter := models.GameFilter{
		ProfileID: id,
		Platform:  models.Platform(q.Get("platform")),
		Result:    models.Result(q.Get("result")),
		Opening:   q.Get("opening"),
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil {
		filter.Offset = v
	}

	games, total, err := s.StatsService.GetGames(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": games, "total": total})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	gameStats, err := s.StatsService.GetStats(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gameStats)
}

func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	input, err := s.InsightService.GetInsightInput(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, input)
}
