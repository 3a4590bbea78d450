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

type withdrawWSStore interface {
	List() []*models.WithdrawRequest
	Create(rec *models.WithdrawRequest) *models.WithdrawRequest
	Transition(id string, apply func(rec *models.WithdrawRequest) bool) (*models.WithdrawRequest, bool, error)
	Delete(id string)
}

type withdrawService struct {
	Store withdrawWSStore
}

func NewWithdrawService(store withdrawWSStore) *withdrawService {
	return &withdrawService{Store: store}
}

func (s *withdrawService) List(ctx context.Context) []*models.WithdrawRequest {
	return s.Store.List()
}

func (s *withdrawService) Create(ctx context.Context, req dto.CreateWithdrawRequest) (*models.WithdrawRequest, error) {
	if req.Platform == "" || req.Amount == "" || req.BankName == "" || req.AccountNumber == "" {
		return nil, errs.NewValidationError("platform, amount, bankName and accountNumber are required")
	}

	created := s.Store.Create(&models.WithdrawRequest{
		Platform:        req.Platform,
		Amount:          req.Amount,
		BankName:        req.BankName,
		AccountNumber:   req.AccountNumber,
		AccountTitle:    req.AccountTitle,
		UserID:          req.UserID,
		UserFullName:    req.UserFullName,
		AccountUsername: req.AccountUsername,
		Status:          models.StatusPending,
	})

	log := logger.FromContext(ctx)
	log.Info("withdraw request created",
		"request_id", created.ID,
		"platform", created.Platform,
		"amount", created.Amount)
	return created, nil
}

// SetStatus mirrors the deposit rule: rejection removes the record.
func (s *withdrawService) SetStatus(ctx context.Context, id, status string) (*models.WithdrawRequest, bool, error) {
	if status == "" {
		return nil, false, errs.NewValidationError("status is required")
	}

	rec, kept, err := s.Store.Transition(id, func(rec *models.WithdrawRequest) bool {
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
		log.Info("withdraw request rejected and deleted", "request_id", id)
	} else {
		log.Info("withdraw request status updated", "request_id", id, "status", status)
	}
	return rec, kept, nil
}

func (s *withdrawService) Delete(ctx context.Context, id string) {
	s.Store.Delete(id)

	log := logger.FromContext(ctx)
	log.Info("withdraw request deleted", "request_id", id)
}
