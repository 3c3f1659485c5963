package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ritacosta/belle/internal/catalog"
	catalogStore "github.com/ritacosta/belle/internal/catalog/store"
	"github.com/ritacosta/belle/internal/config"
	"github.com/ritacosta/belle/internal/database"
	"github.com/ritacosta/belle/internal/expense"
	expenseStore "github.com/ritacosta/belle/internal/expense/store"
	"github.com/ritacosta/belle/internal/export"
	belleHttp "github.com/ritacosta/belle/internal/http"
	catalogHandler "github.com/ritacosta/belle/internal/http/catalog"
	expenseHandler "github.com/ritacosta/belle/internal/http/expense"
	exportHandler "github.com/ritacosta/belle/internal/http/export"
	importHandler "github.com/ritacosta/belle/internal/http/importcsv"
	recurringHandler "github.com/ritacosta/belle/internal/http/recurring"
	reportHandler "github.com/ritacosta/belle/internal/http/report"
	treatmentHandler "github.com/ritacosta/belle/internal/http/treatment"
	"github.com/ritacosta/belle/internal/importer"
	"github.com/ritacosta/belle/internal/recurring"
	recurringStore "github.com/ritacosta/belle/internal/recurring/store"
	"github.com/ritacosta/belle/internal/report"
	"github.com/ritacosta/belle/internal/treatment"
	treatmentStore "github.com/ritacosta/belle/internal/treatment/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		treatmentService = treatment.NewService(treatmentStore.New(db))
		expenseService   = expense.NewService(expenseStore.New(db))
		catalogService   = catalog.NewService(catalogStore.New(db))
		recurringService = recurring.NewService(recurringStore.New(db), expenseService)
		reportService    = report.NewService(treatmentService, expenseService, catalogService)
		importService    = importer.NewService()
		exportService    = export.NewService(treatmentService, expenseService)
	)

	var (
		treatmentH = treatmentHandler.NewHandler(treatmentService)
		expenseH   = expenseHandler.NewHandler(expenseService)
		recurringH = recurringHandler.NewHandler(recurringService, nil)
		catalogH   = catalogHandler.NewHandler(catalogService)
		reportH    = reportHandler.NewHandler(reportService, nil)
		importH    = importHandler.NewHandler(importService, expenseService)
		exportH    = exportHandler.NewHandler(exportService, nil)
	)

	router := belleHttp.New(treatmentH, expenseH, recurringH, catalogH, reportH, importH, exportH, belleHttp.Options{
		AuthSecret: cfg.Auth.Secret,
		CORSOrigin: cfg.CORS.Origin,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
