package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/betdesk/backoffice/internal/auth"
	"github.com/betdesk/backoffice/internal/bootstrap"
	"github.com/betdesk/backoffice/internal/config"
	"github.com/betdesk/backoffice/internal/handlers"
	"github.com/betdesk/backoffice/internal/middleware"
	"github.com/betdesk/backoffice/internal/models"
	"github.com/betdesk/backoffice/internal/response"
	"github.com/betdesk/backoffice/internal/router"
	"github.com/betdesk/backoffice/internal/services"
	"github.com/betdesk/backoffice/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// helpers
	tokens := auth.NewTokens(cfg.JWTSecret)
	dataFile := func(name string) string { return filepath.Join(cfg.DataDir, name+".json") }

	// stores
	ustore := store.NewUserStore(bs.Users)
	err = ustore.EnsureIndexes(context.Background())
	exitOnError("user index creation failed", err, bs.Log)

	exstore := store.NewRecords[models.Exchange](dataFile("exchanges"), bs.Log)
	bastore := store.NewRecords[models.BankAccount](dataFile("bankAccounts"), bs.Log)
	arstore := store.NewRecords[models.AccountRequest](dataFile("accountRequests"), bs.Log)
	dstore := store.NewRecords[models.DepositRequest](dataFile("depositRequests"), bs.Log)
	wstore := store.NewRecords[models.WithdrawRequest](dataFile("withdrawRequests"), bs.Log)
	cstore := store.NewRecords[models.Complaint](dataFile("complaints"), bs.Log)

	// services
	userv := services.NewUserService(ustore, tokens)
	exserv := services.NewExchangeService(exstore)
	baserv := services.NewBankAccountService(bastore)
	arserv := services.NewAccountRequestService(arstore)
	dserv := services.NewDepositService(dstore)
	wserv := services.NewWithdrawService(wstore)
	cserv := services.NewComplaintService(cstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Auth = middleware.NewMiddleware(tokens)
	deps.UserSvc = userv
	deps.ExchangeSvc = exserv
	deps.BankAccountSvc = baserv
	deps.AccountRequestSvc = arserv
	deps.DepositSvc = dserv
	deps.WithdrawSvc = wserv
	deps.ComplaintSvc = cserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("server listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
