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

func newDepositService(t *testing.T) *depositService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "depositRequests.json")
	log := logger.FromContext(helpers.TestCtx())
	return NewDepositService(store.NewRecords[models.DepositRequest](path, log))
}

func depositFixture() dto.CreateDepositRequest {
	return dto.CreateDepositRequest{
		Platform:        "acme",
		Amount:          "1000",
		Method:          "easypaisa",
		TransactionID:   "tx-1",
		UserID:          "u-1",
		UserFullName:    "Jane Doe",
		AccountUsername: "jane01",
	}
}

func TestDepositCreateStartsPending(t *testing.T) {
	svc := newDepositService(t)

	created, err := svc.Create(helpers.TestCtx(), depositFixture())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != models.StatusPending {
		t.Fatalf("Status = %q, want pending", created.Status)
	}
}

func TestDepositCreateValidation(t *testing.T) {
	svc := newDepositService(t)

	req := depositFixture()
	req.Amount = ""
	_, err := svc.Create(helpers.TestCtx(), req)
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("error = %T(%v), want ValidationError", err, err)
	}
}

func TestDepositRejectDeletes(t *testing.T) {
	svc := newDepositService(t)
	ctx := helpers.TestCtx()

	created, _ := svc.Create(ctx, depositFixture())

	_, kept, err := svc.SetStatus(ctx, created.ID, "rejected")
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if kept {
		t.Fatal("rejected request must be removed, not kept")
	}
	if got := svc.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(got))
	}
}

func TestDepositApproveKeepsRecord(t *testing.T) {
	svc := newDepositService(t)
	ctx := helpers.TestCtx()

	created, _ := svc.Create(ctx, depositFixture())

	updated, kept, err := svc.SetStatus(ctx, created.ID, "approved")
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if !kept {
		t.Fatal("approved request must be kept")
	}
	if updated.Status != "approved" || updated.UpdatedAt == nil {
		t.Fatalf("unexpected record after approval: %#v", updated)
	}
}

func TestDepositSetStatusMissing(t *testing.T) {
	svc := newDepositService(t)

	_, _, err := svc.SetStatus(helpers.TestCtx(), "999", "approved")
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("error = %T(%v), want NotFoundError", err, err)
	}
}
