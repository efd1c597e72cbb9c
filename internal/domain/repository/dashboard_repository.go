package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// IncomeRow ingreso por factura para el dashboard.
type IncomeRow struct {
	Code      string
	Completed *time.Time
	Amount    decimal.Decimal
}

// ExpenseRow gasto para el dashboard.
type ExpenseRow struct {
	Concept string
	Total   decimal.Decimal
	Date    *time.Time
}

// DashboardRepository consultas de solo lectura para el dashboard.
type DashboardRepository interface {
	Income(ctx context.Context) ([]IncomeRow, error)
	Expenses(ctx context.Context) ([]ExpenseRow, error)
}
