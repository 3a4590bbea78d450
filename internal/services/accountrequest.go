package services

import (
	"context"
	"errors"
	"time"

	"github.com/betdesk/backoffice/internal/dto"
	"github.com/betdesk/backoffice/internal/errs"
	"github.com/betdesk/backoffice/internal/models"
	"github.com/betdesk/backoffice/internal/store"
	"github.com/betdesk/backoffice/pkg/logger"
)

type accountRequestARStore interface {
	List() []*models.AccountRequest
	Create(rec *models.AccountRequest) *models.AccountRequest
	Update(id string, mutate func(rec *models.AccountRequest)) (*models.AccountRequest, error)
	UpdateWhere(id string, check func(existing []*models.AccountRequest) error, mutate func(rec *models.AccountRequest)) (*models.AccountRequest, error)
	Delete(id string)
}

type accountRequestService struct {
	Store accountRequestARStore
}

func NewAccountRequestService(store accountRequestARStore) *accountRequestService {
	return &accountRequestService{Store: store}
}

func (s *accountRequestService) List(ctx context.Context) []*models.AccountRequest {
	return s.Store.List()
}

func (s *accountRequestService) Create(ctx context.Context, req dto.CreateAccountRequest) (*models.AccountRequest, error) {
	if req.Platform == "" || req.Username == "" || req.UserID == "" {
		return nil, errs.NewValidationError("platform, username and userId are required")
	}

	created := s.Store.Create(&models.AccountRequest{
		Platform:     req.Platform,
		Username:     req.Username,
		UserID:       req.UserID,
		UserFullName: req.UserFullName,
		Status:       models.StatusPending,
	})

	log := logger.FromContext(ctx)
	log.Info("account request created", "request_id", created.ID, "platform", created.Platform)
	return created, nil
}

// Approve moves the request to approved and attaches the account details.
func (s *accountRequestService) Approve(ctx context.Context, id string, req dto.AccountDetailsRequest) (*models.AccountRequest, error) {
	status := req.Status
	if status == "" {
		status = "active"
	}

	approved, err := s.Store.Update(id, func(rec *models.AccountRequest) {
		rec.Status = models.StatusApproved
		rec.AccountDetails = &models.AccountDetails{
			Username:   req.Username,
			Password:   req.Password,
			Link:       req.Link,
			Status:     status,
			ApprovedAt: time.Now().UTC(),
		}
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, errs.NewNotFoundError("request not found")
	}
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("account request approved", "request_id", id)
	return approved, nil
}

// UpdateDetails replaces the account details of an already-approved request.
// A request that is not approved yet is reported the same as a missing one.
func (s *accountRequestService) UpdateDetails(ctx context.Context, id string, req dto.AccountDetailsRequest) (*models.AccountRequest, error) {
	requireApproved := func(existing []*models.AccountRequest) error {
		for _, rec := range existing {
			if rec.ID == id && rec.Status != models.StatusApproved {
				return errs.NewNotFoundError("approved account not found")
			}
		}
		return nil
	}

	updated, err := s.Store.UpdateWhere(id, requireApproved, func(rec *models.AccountRequest) {
		now := time.Now().UTC()
		details := rec.AccountDetails
		if details == nil {
			details = &models.AccountDetails{}
			rec.AccountDetails = details
		}
		details.Username = req.Username
		details.Password = req.Password
		details.Link = req.Link
		details.Status = req.Status
		details.UpdatedAt = &now
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, errs.NewNotFoundError("approved account not found")
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *accountRequestService) Delete(ctx context.Context, id string) {
	s.Store.Delete(id)

	log := logger.FromContext(ctx)
	log.Info("account request deleted", "request_id", id)
}
