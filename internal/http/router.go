package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ritacosta/belle/internal/http/catalog"
	"github.com/ritacosta/belle/internal/http/expense"
	exportHandler "github.com/ritacosta/belle/internal/http/export"
	"github.com/ritacosta/belle/internal/http/importcsv"
	"github.com/ritacosta/belle/internal/http/middleware"
	"github.com/ritacosta/belle/internal/http/recurring"
	"github.com/ritacosta/belle/internal/http/report"
	"github.com/ritacosta/belle/internal/http/treatment"
)

type Options struct {
	AuthSecret string
	CORSOrigin string
}

func New(
	treatmentsV1 *treatment.Handler,
	expensesV1 *expense.Handler,
	recurringV1 *recurring.Handler,
	catalogV1 *catalog.Handler,
	reportsV1 *report.Handler,
	importV1 *importcsv.Handler,
	exportV1 *exportHandler.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(opts.AuthSecret))

		r.Route("/treatments", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			treatmentsV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/recurring", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			recurringV1.Routes(r)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			catalogV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			exportV1.Routes(r)
		})
	})

	return router
}
