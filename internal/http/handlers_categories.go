package http

import (
	"log/slog"
	"net/http"

	"finanzas/internal/core"
	applog "finanzas/internal/log"
)

type categoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

type categoryListResponse struct {
	Categories []core.Category `json:"categories"`
	Count      int             `json:"count"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	categories, err := s.categories.List(r.Context(), user.ID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list categories, returning empty collection",
			applog.FieldUserID, user.ID,
			applog.FieldError, err)
		categories = nil
	}
	if categories == nil {
		categories = []core.Category{}
	}

	writeJSON(w, http.StatusOK, categoryListResponse{
		Categories: categories,
		Count:      len(categories),
	})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.categories.Create(r.Context(), user.ID, req.toCategory())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.categories.Update(r.Context(), user.ID, id, req.toCategory())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.categories.Delete(r.Context(), user.ID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (req categoryRequest) toCategory() core.Category {
	return core.Category{
		Name:  sanitizeInput(req.Name),
		Type:  core.TransactionType(req.Type),
		Color: sanitizeInput(req.Color),
	}
}
