package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lavanderia-api/internal/application/auth"
	"github.com/jhoicas/lavanderia-api/internal/application/billing"
	"github.com/jhoicas/lavanderia-api/internal/application/costs"
	"github.com/jhoicas/lavanderia-api/internal/application/dashboard"
	"github.com/jhoicas/lavanderia-api/internal/application/reports"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC   *billing.InvoiceUseCase
	ExpenseUC   *costs.ExpenseUseCase
	EmployeeUC  *costs.EmployeeUseCase
	SupplyUC    *costs.SupplyUseCase
	ReportUC    *reports.UseCase
	DashboardUC *dashboard.UseCase
	AuthUC      *auth.AuthUseCase
	Logger      *logger.Logger

	JWTSecret string
	// AuthRequired protege con Bearer token todo menos login y registro.
	AuthRequired bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Usuarios (público)
	userHandler := NewUserHandler(deps.AuthUC, deps.Logger)
	api.Post("/user/register", userHandler.Register)
	api.Post("/user/login", userHandler.Login)

	protected := api
	var adminOnly []fiber.Handler
	if deps.AuthRequired {
		protected = api.Group("/", AuthMiddleware(deps.JWTSecret))
		adminOnly = append(adminOnly, RequireRole(entity.RoleAdmin))
	}

	users := protected.Group("/user")
	users.Get("/", append(adminOnly, userHandler.List)...)
	users.Delete("/:id", append(adminOnly, userHandler.Delete)...)

	// Facturas
	billHandler := NewBillHandler(deps.InvoiceUC, deps.Logger)
	bill := protected.Group("/bill")
	bill.Get("/", billHandler.List)
	bill.Post("/", billHandler.Create)
	bill.Put("/:id/status", billHandler.ToggleStatus)
	bill.Put("/:id", billHandler.Update)
	bill.Delete("/:id", billHandler.Delete)

	// Gastos, empleados e insumos
	costHandler := NewCostHandler(deps.ExpenseUC, deps.EmployeeUC, deps.SupplyUC, deps.Logger)
	cost := protected.Group("/cost")
	cost.Get("/", costHandler.ListExpenses)

	cost.Get("/specific", costHandler.ListSpecific)
	cost.Post("/specific", costHandler.CreateSpecific)
	cost.Get("/specific/:id", costHandler.GetSpecific)
	cost.Put("/specific/:id", costHandler.UpdateSpecific)
	cost.Delete("/specific/:id", costHandler.DeleteSpecific)

	cost.Get("/employee", costHandler.ListEmployees)
	cost.Post("/employee", costHandler.CreateEmployee)
	cost.Put("/employee/:id", costHandler.PayEmployee)
	cost.Delete("/employee/:id", costHandler.DeleteEmployee)

	cost.Get("/supply", costHandler.ListSupplies)
	cost.Post("/supply", costHandler.CreateSupply)
	cost.Put("/supply/:id", costHandler.UpdateSupply)
	cost.Delete("/supply/:id", costHandler.DeleteSupply)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC, deps.Logger)
	rep := protected.Group("/reports")
	rep.Get("/:type/search", reportHandler.Search)
	rep.Get("/:type/pdf", reportHandler.PDFFromStore)
	rep.Post("/:type/table", reportHandler.Table)
	rep.Post("/:type/pdf", reportHandler.PDF)
	rep.Get("/:type", reportHandler.Fetch)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Logger)
	protected.Get("/dashboard-data", dashboardHandler.GetData)
}
