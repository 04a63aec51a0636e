package signups

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kmathenge/signup-notification-service/internal/domains/emails"
	"github.com/kmathenge/signup-notification-service/internal/handlers"
)

type Handler struct {
	svc *Service
}

func NewHandler(db *sql.DB, queue QueuePublisher) *Handler {
	repo := NewRepository(db)
	emailsRepo := emails.NewRepository(db)
	return &Handler{svc: NewService(repo, emailsRepo, queue)}
}

func (h *Handler) RegisterSignupRoutes(r chi.Router) {
	r.Post("/", h.createSignup)
	r.Post("/{id}/preview", h.preview)
	r.Get("/", h.listSignups)
	r.Get("/{id}", h.getSignup)
}

func (h *Handler) createSignup(w http.ResponseWriter, r *http.Request) {
	var req CreateSignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	response, err := h.svc.CreateSignup(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidUserState) {
			handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_USER_STATE", "user_state must be one of: default, existing, disabled")
		} else if err.Error() == "username cannot be empty" {
			handlers.RespondWithError(w, http.StatusBadRequest, "EMPTY_USERNAME", "username cannot be empty")
		} else if err.Error() == "email cannot be empty" {
			handlers.RespondWithError(w, http.StatusBadRequest, "EMPTY_EMAIL", "email cannot be empty")
		} else {
			handlers.RespondWithError(w, http.StatusInternalServerError, "SIGNUP_CREATE_FAILED", "Failed to create signup: "+err.Error())
		}
		return
	}

	handlers.RespondWithJSON(w, http.StatusCreated, response)
}

func (h *Handler) listSignups(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")
	userState := r.URL.Query().Get("user_state")

	page := int32(1)
	if pageStr != "" {
		if p, err := strconv.ParseInt(pageStr, 10, 32); err == nil {
			page = int32(p)
		}
	}

	pageSize := int32(20)
	if pageSizeStr != "" {
		if ps, err := strconv.ParseInt(pageSizeStr, 10, 32); err == nil {
			pageSize = int32(ps)
		}
	}

	params := ListSignupsParams{
		Page:      page,
		PageSize:  pageSize,
		UserState: userState,
	}

	response, err := h.svc.ListSignups(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidUserState) {
			handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_USER_STATE", "user_state must be one of: default, existing, disabled")
			return
		}
		handlers.RespondWithError(w, http.StatusInternalServerError, "SIGNUPS_LIST_FAILED", "Failed to list signups: "+err.Error())
		return
	}

	handlers.RespondWithJSON(w, http.StatusOK, response)
}

func (h *Handler) getSignup(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_SIGNUP_ID", "Invalid signup ID format")
		return
	}

	response, err := h.svc.GetSignup(r.Context(), int32(id))
	if err != nil {
		if err == sql.ErrNoRows {
			handlers.RespondWithError(w, http.StatusNotFound, "SIGNUP_NOT_FOUND", "Signup with ID "+idStr+" not found")
			return
		}
		handlers.RespondWithError(w, http.StatusInternalServerError, "SIGNUP_GET_FAILED", "Failed to get signup: "+err.Error())
		return
	}

	handlers.RespondWithJSON(w, http.StatusOK, response)
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_SIGNUP_ID", "Invalid signup ID format")
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	response, err := h.svc.Preview(r.Context(), int32(id), req)
	if err != nil {
		if err.Error() == "signup not found" {
			handlers.RespondWithError(w, http.StatusNotFound, "SIGNUP_NOT_FOUND", "Signup with ID "+idStr+" not found")
		} else if errors.Is(err, ErrInvalidUserState) {
			handlers.RespondWithError(w, http.StatusBadRequest, "INVALID_USER_STATE", "user_state must be one of: default, existing, disabled")
		} else {
			handlers.RespondWithError(w, http.StatusInternalServerError, "PREVIEW_FAILED", "Failed to generate preview: "+err.Error())
		}
		return
	}

	handlers.RespondWithJSON(w, http.StatusOK, response)
}
