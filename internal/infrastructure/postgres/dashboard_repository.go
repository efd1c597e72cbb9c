package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el tablero.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Income una fila por factura, la más reciente primero. Facturas sin fecha final al final.
func (r *DashboardRepo) Income(ctx context.Context) ([]repository.IncomeRow, error) {
	const query = `
	SELECT cod_factura, fecha_final_fact, COALESCE(valor_fact, 0)
	FROM factura
	ORDER BY fecha_final_fact DESC NULLS LAST, id_factura DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard ingresos: %w", err)
	}
	defer rows.Close()

	var out []repository.IncomeRow
	for rows.Next() {
		var row repository.IncomeRow
		var code *string
		if err := rows.Scan(&code, &row.Completed, &row.Amount); err != nil {
			return nil, fmt.Errorf("scan dashboard ingresos: %w", err)
		}
		if code != nil {
			row.Code = *code
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Expenses gastos ordenados por fecha de compra descendente.
func (r *DashboardRepo) Expenses(ctx context.Context) ([]repository.ExpenseRow, error) {
	const query = `
	SELECT COALESCE(concepto_gasto, ''), COALESCE(total_gastos, 0), fecha_compra
	FROM gastos
	ORDER BY fecha_compra DESC NULLS LAST, id_gastos DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard gastos: %w", err)
	}
	defer rows.Close()

	var out []repository.ExpenseRow
	for rows.Next() {
		var row repository.ExpenseRow
		if err := rows.Scan(&row.Concept, &row.Total, &row.Date); err != nil {
			return nil, fmt.Errorf("scan dashboard gastos: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
