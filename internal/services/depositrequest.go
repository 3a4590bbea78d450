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

type depositDSStore interface {
	List() []*models.DepositRequest
	Create(rec *models.DepositRequest) *models.DepositRequest
	Transition(id string, apply func(rec *models.DepositRequest) bool) (*models.DepositRequest, bool, error)
	Delete(id string)
}

type depositService struct {
	Store depositDSStore
}

func NewDepositService(store depositDSStore) *depositService {
	return &depositService{Store: store}
}

func (s *depositService) List(ctx context.Context) []*models.DepositRequest {
	return s.Store.List()
}

func (s *depositService) Create(ctx context.Context, req dto.CreateDepositRequest) (*models.DepositRequest, error) {
	if req.Platform == "" || req.Amount == "" || req.UserID == "" {
		return nil, errs.NewValidationError("platform, amount and userId are required")
	}

	created := s.Store.Create(&models.DepositRequest{
		Platform:        req.Platform,
		Amount:          req.Amount,
		Method:          req.Method,
		TransactionID:   req.TransactionID,
		UserID:          req.UserID,
		UserFullName:    req.UserFullName,
		AccountUsername: req.AccountUsername,
		Status:          models.StatusPending,
		Screenshot:      req.Screenshot,
		ScreenshotData:  req.ScreenshotData,
	})

	log := logger.FromContext(ctx)
	log.Info("deposit request created",
		"request_id", created.ID,
		"platform", created.Platform,
		"amount", created.Amount)
	return created, nil
}

// SetStatus updates the request status. A rejected request is removed
// outright rather than kept with the status; the returned bool reports
// whether the record still exists.
func (s *depositService) SetStatus(ctx context.Context, id, status string) (*models.DepositRequest, bool, error) {
	if status == "" {
		return nil, false, errs.NewValidationError("status is required")
	}

	rec, kept, err := s.Store.Transition(id, func(rec *models.DepositRequest) bool {
		if status == models.StatusRejected {
			return false
		}
		rec.Status = status
		return true
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, errs.NewNotFoundError("request not found")
	}
	if err != nil {
		return nil, false, err
	}

	log := logger.FromContext(ctx)
	if !kept {
		log.Info("deposit request rejected and deleted", "request_id", id)
	} else {
		log.Info("deposit request status updated", "request_id", id, "status", status)
	}
	return rec, kept, nil
}

func (s *depositService) Delete(ctx context.Context, id string) {
	s.Store.Delete(id)

	log := logger.FromContext(ctx)
	log.Info("deposit request deleted", "request_id", id)
}
