package repository

import (
	"context"

	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
)

// ExpenseRepository puerto para gastos.
type ExpenseRepository interface {
	List(ctx context.Context) ([]*entity.Expense, error)
	// DeleteReportsBySupply borra los informes que referencian gastos del insumo.
	DeleteReportsBySupply(ctx context.Context, supplyID int64) error
	DeleteBySupply(ctx context.Context, supplyID int64) error
}

// SpecificCostRepository puerto para gasto_especifico.
type SpecificCostRepository interface {
	List(ctx context.Context) ([]*entity.SpecificCost, error)
	GetByID(ctx context.Context, id int64) (*entity.SpecificCost, error)
	Create(ctx context.Context, cost *entity.SpecificCost) error
	// Update y Delete devuelven domain.ErrNotFound si no había fila.
	Update(ctx context.Context, cost *entity.SpecificCost) error
	Delete(ctx context.Context, id int64) error
}
