package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/betdesk/backoffice/internal/dto"
	"github.com/betdesk/backoffice/internal/models"
	"github.com/betdesk/backoffice/internal/response"
)

type WithdrawService interface {
	List(ctx context.Context) []*models.WithdrawRequest
	Create(ctx context.Context, req dto.CreateWithdrawRequest) (*models.WithdrawRequest, error)
	SetStatus(ctx context.Context, id, status string) (*models.WithdrawRequest, bool, error)
	Delete(ctx context.Context, id string)
}

type withdrawHandlers struct {
	ResponseHandler response.ResponseHandler
	WithdrawSvc     WithdrawService
}

func NewWithdrawHandlers(deps *Deps) *withdrawHandlers {
	return &withdrawHandlers{
		ResponseHandler: deps.ResponseHandler,
		WithdrawSvc:     deps.WithdrawSvc,
	}
}

func (h *withdrawHandlers) WithdrawRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.SetStatus)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *withdrawHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.WithdrawSvc.List(r.Context()))
}

func (h *withdrawHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	request, err := h.WithdrawSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, request)
}

func (h *withdrawHandlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	request, kept, err := h.WithdrawSvc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if !kept {
		h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, request)
}

func (h *withdrawHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	h.WithdrawSvc.Delete(r.Context(), chi.URLParam(r, "id"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
