package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/lavanderia-api/internal/application/auth"
	"github.com/jhoicas/lavanderia-api/internal/application/billing"
	"github.com/jhoicas/lavanderia-api/internal/application/costs"
	"github.com/jhoicas/lavanderia-api/internal/application/dashboard"
	"github.com/jhoicas/lavanderia-api/internal/application/reports"
	"github.com/jhoicas/lavanderia-api/internal/domain/report"
	infrapdf "github.com/jhoicas/lavanderia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/lavanderia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/lavanderia-api/internal/interfaces/http"
	"github.com/jhoicas/lavanderia-api/pkg/config"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth_required", cfg.JWT.AuthRequired).
		Bool("billing_compensate", cfg.Billing.Compensate).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	clientRepo := postgres.NewClientRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	linkRepo := postgres.NewClientBranchRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	reportMetaRepo := postgres.NewReportMetaRepository(pool)
	reportSource := postgres.NewReportSource(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	specificRepo := postgres.NewSpecificCostRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	supplyRepo := postgres.NewSupplyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	// Casos de uso
	invoiceUC := billing.NewInvoiceUseCase(
		clientRepo, branchRepo, linkRepo, invoiceRepo, reportMetaRepo,
		billing.Config{Compensate: cfg.Billing.Compensate}, log,
	)
	expenseUC := costs.NewExpenseUseCase(expenseRepo, specificRepo)
	employeeUC := costs.NewEmployeeUseCase(employeeRepo)
	supplyUC := costs.NewSupplyUseCase(supplyRepo, expenseRepo, cfg.Billing.Compensate, log)

	// PDF: tablas de reporte con Maroto
	pdfRenderer := infrapdf.NewReportRenderer(cfg.App.Name)
	reportUC := reports.NewUseCase(
		reportSource,
		report.NewFormats(cfg.Report.Locale, cfg.Report.CurrencySymbol),
		pdfRenderer, log,
	)
	dashboardUC := dashboard.NewUseCase(dashboardRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Lavandería API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:    invoiceUC,
		ExpenseUC:    expenseUC,
		EmployeeUC:   employeeUC,
		SupplyUC:     supplyUC,
		ReportUC:     reportUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		Logger:       log,
		JWTSecret:    cfg.JWT.Secret,
		AuthRequired: cfg.JWT.AuthRequired,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
