package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stevenarias/bankcore/internal/api"
	apiMiddleware "github.com/stevenarias/bankcore/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Registration, login and the health check are
// public; everything else requires a valid token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authService)
	userHandler := api.NewUserHandler(app.userService)
	accountHandler := api.NewAccountHandler(app.accountService)
	transactionHandler := api.NewTransactionHandler(app.accountService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwt)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", authHandler.Login)
		r.Post("/users/register", userHandler.Register)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// User management
			r.Get("/users", userHandler.List)
			r.Get("/users/{id}", userHandler.GetByID)
			r.Put("/users/{id}", userHandler.Update)
			r.Delete("/users/{id}", userHandler.Delete)

			// Bank accounts
			r.Get("/accounts", accountHandler.List)
			r.Post("/accounts", accountHandler.Create)
			r.Get("/accounts/{id}/balance", accountHandler.GetBalance)
			r.Put("/accounts/{id}", accountHandler.Update)
			r.Delete("/accounts/{id}", accountHandler.Delete)
			r.Post("/accounts/{id}/deposit", accountHandler.Deposit)
			r.Post("/accounts/{id}/withdraw", accountHandler.Withdraw)

			// Movement history
			r.Get("/transactions", transactionHandler.List)
			r.Get("/transactions/messages", transactionHandler.ListMessages)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
