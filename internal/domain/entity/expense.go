package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto registrado (tabla gastos). Puede referir un insumo, un gasto de
// empleado o un gasto específico.
type Expense struct {
	ID             int64
	Concept        string
	PurchaseDate   *time.Time
	Total          decimal.Decimal
	SupplyID       *int64
	EmployeeCostID *int64
	SpecificCostID *int64
}

// SpecificCost gasto específico (tabla gasto_especifico).
type SpecificCost struct {
	ID    int64
	Name  string
	Value decimal.Decimal
}
