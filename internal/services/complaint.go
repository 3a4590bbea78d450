package services

import (
	"context"
	"errors"

	"github.com/betdesk/backoffice/internal/dto"
	"github.com/betdesk/backoffice/internal/errs"
	"github.com/betdesk/backoffice/internal/models"
	"github.com/betdesk/backoffice/internal/store"
	"github.com/betdesk/backoffice/pkg/logger"
)

type complaintCSStore interface {
	List() []*models.Complaint
	Create(rec *models.Complaint) *models.Complaint
	Update(id string, mutate func(rec *models.Complaint)) (*models.Complaint, error)
	Transition(id string, apply func(rec *models.Complaint) bool) (*models.Complaint, bool, error)
}

type complaintService struct {
	Store complaintCSStore
}

func NewComplaintService(store complaintCSStore) *complaintService {
	return &complaintService{Store: store}
}

func (s *complaintService) List(ctx context.Context) []*models.Complaint {
	return s.Store.List()
}

func (s *complaintService) Create(ctx context.Context, req dto.CreateComplaintRequest) (*models.Complaint, error) {
	if req.AccountUsername == "" || req.Message == "" {
		return nil, errs.NewValidationError("accountUsername and message are required")
	}

	created := s.Store.Create(&models.Complaint{
		AccountUsername: req.AccountUsername,
		Message:         req.Message,
		UserID:          req.UserID,
		UserFullName:    req.UserFullName,
		Status:          models.StatusPending,
	})

	log := logger.FromContext(ctx)
	log.Info("complaint created", "complaint_id", created.ID, "account", created.AccountUsername)
	return created, nil
}

// SetStatus records any status value; complaints have no reject-deletes rule.
func (s *complaintService) SetStatus(ctx context.Context, id, status string) (*models.Complaint, error) {
	if status == "" {
		return nil, errs.NewValidationError("status is required")
	}

	updated, err := s.Store.Update(id, func(rec *models.Complaint) {
		rec.Status = status
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, errs.NewNotFoundError("complaint not found")
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete reports a missing complaint, unlike the other collections whose
// deletes are silently idempotent. Removal goes through Transition so the
// existence check and the removal stay under one lock.
func (s *complaintService) Delete(ctx context.Context, id string) error {
	_, _, err := s.Store.Transition(id, func(*models.Complaint) bool { return false })
	if errors.Is(err, store.ErrNotFound) {
		return errs.NewNotFoundError("complaint not found")
	}
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("complaint deleted", "complaint_id", id)
	return nil
}
