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

type bankAccountBAStore interface {
	List() []*models.BankAccount
	Create(rec *models.BankAccount) *models.BankAccount
	Update(id string, mutate func(rec *models.BankAccount)) (*models.BankAccount, error)
	Delete(id string)
}

type bankAccountService struct {
	Store bankAccountBAStore
}

func NewBankAccountService(store bankAccountBAStore) *bankAccountService {
	return &bankAccountService{Store: store}
}

func (s *bankAccountService) List(ctx context.Context) []*models.BankAccount {
	return s.Store.List()
}

func (s *bankAccountService) Create(ctx context.Context, req dto.BankAccountRequest) (*models.BankAccount, error) {
	if req.BankName == "" || req.AccountNumber == "" || req.AccountTitle == "" {
		return nil, errs.NewValidationError("bankName, accountNumber and accountTitle are required")
	}

	created := s.Store.Create(&models.BankAccount{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountTitle:  req.AccountTitle,
	})

	log := logger.FromContext(ctx)
	log.Info("bank account created", "account_id", created.ID, "bank", created.BankName)
	return created, nil
}

func (s *bankAccountService) Update(ctx context.Context, id string, req dto.BankAccountRequest) (*models.BankAccount, error) {
	updated, err := s.Store.Update(id, func(rec *models.BankAccount) {
		rec.BankName = req.BankName
		rec.AccountNumber = req.AccountNumber
		rec.AccountTitle = req.AccountTitle
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, errs.NewNotFoundError("bank account not found")
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *bankAccountService) Delete(ctx context.Context, id string) {
	s.Store.Delete(id)

	log := logger.FromContext(ctx)
	log.Info("bank account deleted", "account_id", id)
}
