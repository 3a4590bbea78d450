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

func newAccountRequestService(t *testing.T) *accountRequestService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accountRequests.json")
	log := logger.FromContext(helpers.TestCtx())
	return NewAccountRequestService(store.NewRecords[models.AccountRequest](path, log))
}

func createAccountRequest(t *testing.T, svc *accountRequestService) *models.AccountRequest {
	t.Helper()
	created, err := svc.Create(helpers.TestCtx(), dto.CreateAccountRequest{
		Platform:     "acme",
		Username:     "jane01",
		UserID:       "u-1",
		UserFullName: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return created
}

func TestAccountRequestCreateStartsPending(t *testing.T) {
	svc := newAccountRequestService(t)
	created := createAccountRequest(t, svc)

	if created.Status != models.StatusPending {
		t.Fatalf("Status = %q, want pending", created.Status)
	}
	if created.AccountDetails != nil {
		t.Fatal("expected no account details before approval")
	}
}

func TestAccountRequestUpdateDetailsGatedOnApproval(t *testing.T) {
	svc := newAccountRequestService(t)
	ctx := helpers.TestCtx()
	created := createAccountRequest(t, svc)

	details := dto.AccountDetailsRequest{
		Username: "jane01",
		Password: "pw",
		Link:     "https://acme.example",
		Status:   "active",
	}

	// Before approval the details route reports not-found.
	_, err := svc.UpdateDetails(ctx, created.ID, details)
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("error = %T(%v), want NotFoundError", err, err)
	}

	approved, err := svc.Approve(ctx, created.ID, details)
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if approved.Status != models.StatusApproved {
		t.Fatalf("Status = %q, want approved", approved.Status)
	}
	if approved.AccountDetails == nil || approved.AccountDetails.ApprovedAt.IsZero() {
		t.Fatalf("account details not attached: %#v", approved.AccountDetails)
	}

	details.Link = "https://acme.example/new"
	updated, err := svc.UpdateDetails(ctx, created.ID, details)
	if err != nil {
		t.Fatalf("UpdateDetails after approval returned error: %v", err)
	}
	if updated.AccountDetails.Link != "https://acme.example/new" {
		t.Fatalf("Link = %q, want merged value", updated.AccountDetails.Link)
	}
	if updated.AccountDetails.UpdatedAt == nil {
		t.Fatal("expected accountDetails.updatedAt to be stamped")
	}
}

func TestAccountRequestApproveDefaultsDetailsStatus(t *testing.T) {
	svc := newAccountRequestService(t)
	created := createAccountRequest(t, svc)

	approved, err := svc.Approve(helpers.TestCtx(), created.ID, dto.AccountDetailsRequest{
		Username: "jane01",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if approved.AccountDetails.Status != "active" {
		t.Fatalf("details status = %q, want active", approved.AccountDetails.Status)
	}
}

func TestAccountRequestApproveMissing(t *testing.T) {
	svc := newAccountRequestService(t)

	_, err := svc.Approve(helpers.TestCtx(), "999", dto.AccountDetailsRequest{})
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("error = %T(%v), want NotFoundError", err, err)
	}
}
