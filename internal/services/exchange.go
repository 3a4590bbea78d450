package services

import (
	"context"
	"errors"
	"strings"

	"github.com/betdesk/backoffice/internal/dto"
	"github.com/betdesk/backoffice/internal/errs"
	"github.com/betdesk/backoffice/internal/models"
	"github.com/betdesk/backoffice/internal/store"
	"github.com/betdesk/backoffice/pkg/logger"
)

const defaultMinDeposit = "500"

type exchangeESStore interface {
	List() []*models.Exchange
	CreateWhere(rec *models.Exchange, check func(existing []*models.Exchange) error) (*models.Exchange, error)
	UpdateWhere(id string, check func(existing []*models.Exchange) error, mutate func(rec *models.Exchange)) (*models.Exchange, error)
	Delete(id string)
}

type exchangeService struct {
	Store exchangeESStore
}

func NewExchangeService(store exchangeESStore) *exchangeService {
	return &exchangeService{Store: store}
}

func (s *exchangeService) List(ctx context.Context) []*models.Exchange {
	return s.Store.List()
}

func (s *exchangeService) Create(ctx context.Context, req dto.ExchangeRequest) (*models.Exchange, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("exchange name is required")
	}

	rec := &models.Exchange{
		Name:       req.Name,
		MinDeposit: minDepositOrDefault(req.MinDeposit),
	}
	created, err := s.Store.CreateWhere(rec, uniqueName(req.Name, ""))
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("exchange created", "exchange_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *exchangeService) Update(ctx context.Context, id string, req dto.ExchangeRequest) (*models.Exchange, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("exchange name is required")
	}

	updated, err := s.Store.UpdateWhere(id, uniqueName(req.Name, id), func(rec *models.Exchange) {
		rec.Name = req.Name
		rec.MinDeposit = minDepositOrDefault(req.MinDeposit)
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, errs.NewNotFoundError("exchange not found")
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *exchangeService) Delete(ctx context.Context, id string) {
	s.Store.Delete(id)

	log := logger.FromContext(ctx)
	log.Info("exchange deleted", "exchange_id", id)
}

// uniqueName rejects a case-insensitive name collision with any exchange
// other than selfID. Evaluated under the store lock, so the check and the
// write it guards are atomic.
func uniqueName(name, selfID string) func(existing []*models.Exchange) error {
	return func(existing []*models.Exchange) error {
		for _, ex := range existing {
			if ex.ID != selfID && strings.EqualFold(ex.Name, name) {
				return errs.NewAlreadyExistsError("exchange already exists")
			}
		}
		return nil
	}
}

func minDepositOrDefault(v string) string {
	if v == "" {
		return defaultMinDeposit
	}
	return v
}
