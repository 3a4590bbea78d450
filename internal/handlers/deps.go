package handlers

import (
	"log/slog"

	"github.com/betdesk/backoffice/internal/middleware"
	"github.com/betdesk/backoffice/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Auth            *middleware.Middleware

	UserSvc           UserService
	ExchangeSvc       ExchangeService
	BankAccountSvc    BankAccountService
	AccountRequestSvc AccountRequestService
	DepositSvc        DepositService
	WithdrawSvc       WithdrawService
	ComplaintSvc      ComplaintService
}
