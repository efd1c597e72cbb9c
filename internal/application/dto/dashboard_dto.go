package dto

import "github.com/shopspring/decimal"

// Unknown valor de reemplazo para código o fecha ausentes en el dashboard.
const Unknown = "Desconocido"

// IncomeDTO ingreso por factura.
type IncomeDTO struct {
	Code   string          `json:"codigo"`
	Date   string          `json:"fecha"`
	Amount decimal.Decimal `json:"ingresos"`
}

// ExpenseDTO gasto para el dashboard.
type ExpenseDTO struct {
	Concept string          `json:"concepto"`
	Cost    decimal.Decimal `json:"costos"`
	Date    string          `json:"fecha"`
}

// DashboardDataDTO respuesta de GET /api/dashboard-data.
type DashboardDataDTO struct {
	Income   []IncomeDTO  `json:"ingresos"`
	Expenses []ExpenseDTO `json:"gastos"`
}
