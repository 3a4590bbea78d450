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

type ComplaintService interface {
	List(ctx context.Context) []*models.Complaint
	Create(ctx context.Context, req dto.CreateComplaintRequest) (*models.Complaint, error)
	SetStatus(ctx context.Context, id, status string) (*models.Complaint, error)
	Delete(ctx context.Context, id string) error
}

type complaintHandlers struct {
	ResponseHandler response.ResponseHandler
	ComplaintSvc    ComplaintService
}

func NewComplaintHandlers(deps *Deps) *complaintHandlers {
	return &complaintHandlers{
		ResponseHandler: deps.ResponseHandler,
		ComplaintSvc:    deps.ComplaintSvc,
	}
}

func (h *complaintHandlers) ComplaintRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/{id}/status", h.SetStatus)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *complaintHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ComplaintSvc.List(r.Context()))
}

func (h *complaintHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	complaint, err := h.ComplaintSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, complaint)
}

func (h *complaintHandlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	complaint, err := h.ComplaintSvc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, complaint)
}

func (h *complaintHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ComplaintSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
