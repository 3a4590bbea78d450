package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/betdesk/backoffice/internal/dto"
	"github.com/betdesk/backoffice/internal/middleware"
	"github.com/betdesk/backoffice/internal/models"
	"github.com/betdesk/backoffice/internal/response"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	List(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) error
	Status(ctx context.Context, id string) (*dto.UserStatusResponse, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

type authHandlers struct {
	ResponseHandler response.ResponseHandler
	Auth            *middleware.Middleware
	UserSvc         UserService
}

func NewAuthHandlers(deps *Deps) *authHandlers {
	return &authHandlers{
		ResponseHandler: deps.ResponseHandler,
		Auth:            deps.Auth,
		UserSvc:         deps.UserSvc,
	}
}

func (h *authHandlers) AuthRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/users", h.ListUsers)
	r.Delete("/users/{id}", h.DeleteUser)
	r.Patch("/users/{id}/status", h.ToggleUserStatus)
	r.Patch("/users/{id}", h.UpdateUser)
	r.Get("/user-status/{id}", h.UserStatus)
	r.With(h.Auth.Authenticator).Get("/me", h.Me)
	return r
}

func (h *authHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	resp, err := h.UserSvc.Register(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, resp)
}

func (h *authHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	resp, err := h.UserSvc.Login(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *authHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, users)
}

func (h *authHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.UserSvc.Delete(r.Context(), id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *authHandlers) ToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.UserSvc.ToggleActive(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *authHandlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.UserSvc.Update(r.Context(), id, req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *authHandlers) UserStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status, err := h.UserSvc.Status(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	code := http.StatusOK
	if !status.Exists {
		code = http.StatusNotFound
	}
	h.ResponseHandler.WriteSuccess(w, r, code, status)
}

func (h *authHandlers) Me(w http.ResponseWriter, r *http.Request) {
	id := middleware.UserID(r.Context())
	user, err := h.UserSvc.Get(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}
