package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/betdesk/backoffice/internal/handlers"
	"github.com/betdesk/backoffice/internal/middleware"
)

// Screenshots arrive base64-inlined in deposit requests.
const maxBodyBytes = 50 << 20

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	ah := handlers.NewAuthHandlers(deps)
	exh := handlers.NewExchangeHandlers(deps)
	bah := handlers.NewBankAccountHandlers(deps)
	arh := handlers.NewAccountRequestHandlers(deps)
	dh := handlers.NewDepositHandlers(deps)
	wh := handlers.NewWithdrawHandlers(deps)
	ch := handlers.NewComplaintHandlers(deps)

	r.Mount("/api/auth", ah.AuthRoutes())
	r.Mount("/api/exchanges", exh.ExchangeRoutes())
	r.Mount("/api/bank-accounts", bah.BankAccountRoutes())
	r.Mount("/api/account-requests", arh.AccountRequestRoutes())
	r.Mount("/api/deposit-requests", dh.DepositRoutes())
	r.Mount("/api/withdraw-requests", wh.WithdrawRoutes())
	r.Mount("/api/complaints", ch.ComplaintRoutes())
	return r
}
