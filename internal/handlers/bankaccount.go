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

type BankAccountService interface {
	List(ctx context.Context) []*models.BankAccount
	Create(ctx context.Context, req dto.BankAccountRequest) (*models.BankAccount, error)
	Update(ctx context.Context, id string, req dto.BankAccountRequest) (*models.BankAccount, error)
	Delete(ctx context.Context, id string)
}

type bankAccountHandlers struct {
	ResponseHandler response.ResponseHandler
	BankAccountSvc  BankAccountService
}

func NewBankAccountHandlers(deps *Deps) *bankAccountHandlers {
	return &bankAccountHandlers{
		ResponseHandler: deps.ResponseHandler,
		BankAccountSvc:  deps.BankAccountSvc,
	}
}

func (h *bankAccountHandlers) BankAccountRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *bankAccountHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.BankAccountSvc.List(r.Context()))
}

func (h *bankAccountHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	account, err := h.BankAccountSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, account)
}

func (h *bankAccountHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.BankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	account, err := h.BankAccountSvc.Update(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, account)
}

func (h *bankAccountHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	h.BankAccountSvc.Delete(r.Context(), chi.URLParam(r, "id"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
