package services

import (
	"path/filepath"
	"testing"

	"github.com/betdesk/backoffice/internal/dto"
	"github.com/betdesk/backoffice/internal/errs"
	"github.com/betdesk/backoffice/internal/models"
	"github.com/betdesk/backoffice/internal/store"
	"github.com/betdesk/backoffice/pkg/helpers"
	"github.com/betdesk/backoffice/pkg/logger"
)

// The flat-file stores run against t.TempDir, so service tests exercise the
// real persistence path.
func newExchangeService(t *testing.T) *exchangeService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exchanges.json")
	log := logger.FromContext(helpers.TestCtx())
	return NewExchangeService(store.NewRecords[models.Exchange](path, log))
}

func TestExchangeCreateDefaultsMinDeposit(t *testing.T) {
	svc := newExchangeService(t)
	ctx := helpers.TestCtx()

	created, err := svc.Create(ctx, dto.ExchangeRequest{Name: "Acme"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.MinDeposit != "500" {
		t.Fatalf("MinDeposit = %q, want 500", created.MinDeposit)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("record not stamped: %#v", created)
	}
}

func TestExchangeCreateRequiresName(t *testing.T) {
	svc := newExchangeService(t)

	_, err := svc.Create(helpers.TestCtx(), dto.ExchangeRequest{MinDeposit: "1000"})
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("error = %T(%v), want ValidationError", err, err)
	}
}

func TestExchangeNameUniqueCaseInsensitive(t *testing.T) {
	svc := newExchangeService(t)
	ctx := helpers.TestCtx()

	if _, err := svc.Create(ctx, dto.ExchangeRequest{Name: "Acme", MinDeposit: "1000"}); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err := svc.Create(ctx, dto.ExchangeRequest{Name: "acme"})
	if _, ok := err.(*errs.AlreadyExistsError); !ok {
		t.Fatalf("error = %T(%v), want AlreadyExistsError", err, err)
	}
	if got := svc.List(ctx); len(got) != 1 {
		t.Fatalf("expected single exchange, got %d", len(got))
	}
}

func TestExchangeUpdateUniquenessExcludesSelf(t *testing.T) {
	svc := newExchangeService(t)
	ctx := helpers.TestCtx()

	acme, _ := svc.Create(ctx, dto.ExchangeRequest{Name: "Acme"})
	if _, err := svc.Create(ctx, dto.ExchangeRequest{Name: "Beta"}); err != nil {
		t.Fatal(err)
	}

	// Keeping one's own name is not a conflict.
	updated, err := svc.Update(ctx, acme.ID, dto.ExchangeRequest{Name: "Acme", MinDeposit: "750"})
	if err != nil {
		t.Fatalf("self-rename returned error: %v", err)
	}
	if updated.MinDeposit != "750" || updated.UpdatedAt == nil {
		t.Fatalf("unexpected record after update: %#v", updated)
	}

	// Renaming onto another exchange's name is.
	_, err = svc.Update(ctx, acme.ID, dto.ExchangeRequest{Name: "BETA"})
	if _, ok := err.(*errs.AlreadyExistsError); !ok {
		t.Fatalf("error = %T(%v), want AlreadyExistsError", err, err)
	}
}

func TestExchangeUpdateMissing(t *testing.T) {
	svc := newExchangeService(t)

	_, err := svc.Update(helpers.TestCtx(), "999", dto.ExchangeRequest{Name: "Acme"})
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("error = %T(%v), want NotFoundError", err, err)
	}
}

func TestExchangeDeleteUnknownIsNoop(t *testing.T) {
	svc := newExchangeService(t)
	ctx := helpers.TestCtx()

	svc.Create(ctx, dto.ExchangeRequest{Name: "Acme"})
	svc.Delete(ctx, "unknown")
	if got := svc.List(ctx); len(got) != 1 {
		t.Fatalf("expected collection unchanged, got %d records", len(got))
	}
}
