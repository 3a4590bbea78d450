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

type DepositService interface {
	List(ctx context.Context) []*models.DepositRequest
	Create(ctx context.Context, req dto.CreateDepositRequest) (*models.DepositRequest, error)
	SetStatus(ctx context.Context, id, status string) (*models.DepositRequest, bool, error)
	Delete(ctx context.Context, id string)
}

type depositHandlers struct {
	ResponseHandler response.ResponseHandler
	DepositSvc      DepositService
}

func NewDepositHandlers(deps *Deps) *depositHandlers {
	return &depositHandlers{
		ResponseHandler: deps.ResponseHandler,
		DepositSvc:      deps.DepositSvc,
	}
}

func (h *depositHandlers) DepositRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.SetStatus)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *depositHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DepositSvc.List(r.Context()))
}

func (h *depositHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	request, err := h.DepositSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, request)
}

func (h *depositHandlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	request, kept, err := h.DepositSvc.SetStatus(r.Context(), id, req.Status)
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

func (h *depositHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	h.DepositSvc.Delete(r.Context(), chi.URLParam(r, "id"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
