package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// criteriaFromQuery reads the filter query params. Empty and "all" both
// mean "no constraint" for that field.
func criteriaFromQuery(r *http.Request) model.Criteria {
	get := func(key string) string {
		v := r.URL.Query().Get(key)
		if v == "all" {
			return ""
		}
		return v
	}
	return model.Criteria{
		Category: get("category"),
		Priority: get("priority"),
		Status:   get("status"),
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.store.ListComplaints(r.Context())
	if err != nil {
		zap.L().Error("server: load snapshot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load complaints")
		return
	}

	bundle := s.engine.Compute(snapshot, criteriaFromQuery(r))
	writeJSON(w, http.StatusOK, bundle)
}

func (s *Server) handleListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := s.store.ListComplaints(r.Context())
	if err != nil {
		zap.L().Error("server: list complaints", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load complaints")
		return
	}
	if complaints == nil {
		complaints = []model.Complaint{}
	}
	writeJSON(w, http.StatusOK, complaints)
}

// createComplaintRequest is the POST /api/complaints body.
type createComplaintRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
}

func (s *Server) handleCreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req createComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Location == "" {
		writeError(w, http.StatusBadRequest, "location is required")
		return
	}
	if req.Category == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}
	priority, err := model.ParsePriority(req.Priority)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.CreateComplaint(r.Context(), model.Complaint{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Category:    req.Category,
		Priority:    priority,
		Status:      model.StatusPending,
	})
	if err != nil {
		zap.L().Error("server: create complaint", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create complaint")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.UpdateStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "complaint not found")
			return
		}
		zap.L().Error("server: update status",
			zap.String("id", id),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": string(status),
	})
}
