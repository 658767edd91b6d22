package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/fieldworks/attendance-bot-go/internal/config"
	appHTTP "github.com/fieldworks/attendance-bot-go/internal/handler/http"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/cron"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/database"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/email"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/jwt"
	"github.com/fieldworks/attendance-bot-go/internal/pkg/rowstore"
	"github.com/fieldworks/attendance-bot-go/internal/repository/sheetdb"
	serviceAuth "github.com/fieldworks/attendance-bot-go/internal/service/auth"
	ledgerService "github.com/fieldworks/attendance-bot-go/internal/service/ledger"
	materialService "github.com/fieldworks/attendance-bot-go/internal/service/material"
	payrollService "github.com/fieldworks/attendance-bot-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid timezone: ", cfg.App.Timezone)
	}

	var store rowstore.Store
	switch cfg.Store.Backend {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		pgStore := rowstore.NewPostgresStore(db)
		if err := pgStore.Migrate(context.Background()); err != nil {
			log.Fatal("Failed to migrate row store: ", err)
		}
		store = pgStore
	case "googlesheets":
		sheetsStore, err := rowstore.NewSheetsStore(
			context.Background(),
			cfg.Sheets.SpreadsheetKey,
			[]byte(cfg.Sheets.CredentialsJSON),
		)
		if err != nil {
			log.Fatal("Failed to initialize sheets store: ", err)
		}
		store = sheetsStore
	default:
		log.Fatal("Unsupported store backend: ", cfg.Store.Backend)
	}

	if err := sheetdb.EnsureHeaders(context.Background(), store); err != nil {
		log.Fatal("Failed to bootstrap sheet headers: ", err)
	}

	ledgerRepo := sheetdb.NewLedgerRepository(store, cfg.Store.CallTimeout)
	rosterRepo := sheetdb.NewRosterRepository(store, cfg.Store.CallTimeout)
	incentiveRepo := sheetdb.NewIncentiveRepository(store, cfg.Store.CallTimeout)
	materialRepo := sheetdb.NewMaterialRepository(store, cfg.Store.CallTimeout)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(JWTService, cfg.Admin.PasswordHash)
	ledgerSvc := ledgerService.NewLedgerService(ledgerRepo, rosterRepo, loc, cfg.App.SiteAddress)
	payrollSvc := payrollService.NewPayrollService(ledgerRepo, rosterRepo, incentiveRepo)
	materialSvc := materialService.NewMaterialService(materialRepo, rosterRepo, loc)

	authHandler := appHTTP.NewAuthHandler(authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(ledgerSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, loc)
	materialHandler := appHTTP.NewMaterialHandler(materialSvc)

	scheduler := cron.NewScheduler()
	settlementJobs := cron.NewSettlementJobs(payrollSvc, emailService, cfg.SMTP.DigestTo, loc)
	settlementJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		payrollHandler,
		materialHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
