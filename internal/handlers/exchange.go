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

type ExchangeService interface {
	List(ctx context.Context) []*models.Exchange
	Create(ctx context.Context, req dto.ExchangeRequest) (*models.Exchange, error)
	Update(ctx context.Context, id string, req dto.ExchangeRequest) (*models.Exchange, error)
	Delete(ctx context.Context, id string)
}

type exchangeHandlers struct {
	ResponseHandler response.ResponseHandler
	ExchangeSvc     ExchangeService
}

func NewExchangeHandlers(deps *Deps) *exchangeHandlers {
	return &exchangeHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExchangeSvc:     deps.ExchangeSvc,
	}
}

func (h *exchangeHandlers) ExchangeRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *exchangeHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ExchangeSvc.List(r.Context()))
}

func (h *exchangeHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	exchange, err := h.ExchangeSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, exchange)
}

func (h *exchangeHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	exchange, err := h.ExchangeSvc.Update(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, exchange)
}

func (h *exchangeHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	h.ExchangeSvc.Delete(r.Context(), chi.URLParam(r, "id"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
