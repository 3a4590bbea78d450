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

type AccountRequestService interface {
	List(ctx context.Context) []*models.AccountRequest
	Create(ctx context.Context, req dto.CreateAccountRequest) (*models.AccountRequest, error)
	Approve(ctx context.Context, id string, req dto.AccountDetailsRequest) (*models.AccountRequest, error)
	UpdateDetails(ctx context.Context, id string, req dto.AccountDetailsRequest) (*models.AccountRequest, error)
	Delete(ctx context.Context, id string)
}

type accountRequestHandlers struct {
	ResponseHandler   response.ResponseHandler
	AccountRequestSvc AccountRequestService
}

func NewAccountRequestHandlers(deps *Deps) *accountRequestHandlers {
	return &accountRequestHandlers{
		ResponseHandler:   deps.ResponseHandler,
		AccountRequestSvc: deps.AccountRequestSvc,
	}
}

func (h *accountRequestHandlers) AccountRequestRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/{id}/approve", h.Approve)
	r.Patch("/{id}/update", h.UpdateDetails)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *accountRequestHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AccountRequestSvc.List(r.Context()))
}

func (h *accountRequestHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	request, err := h.AccountRequestSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, request)
}

func (h *accountRequestHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.AccountDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	request, err := h.AccountRequestSvc.Approve(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, request)
}

func (h *accountRequestHandlers) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.AccountDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	request, err := h.AccountRequestSvc.UpdateDetails(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, request)
}

func (h *accountRequestHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	h.AccountRequestSvc.Delete(r.Context(), chi.URLParam(r, "id"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
