package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

var (
	_ repository.ExpenseRepository      = (*ExpenseRepo)(nil)
	_ repository.SpecificCostRepository = (*SpecificCostRepo)(nil)
)

// ExpenseRepo tabla gastos.
type ExpenseRepo struct {
	q Querier
}

func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	query := `
		SELECT id_gastos, COALESCE(concepto_gasto, ''), fecha_compra, COALESCE(total_gastos, 0), id_insumo, id_gasto_emp, id_gasto_esp
		FROM gastos ORDER BY fecha_compra DESC NULLS LAST, id_gastos DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Concept, &e.PurchaseDate, &e.Total, &e.SupplyID, &e.EmployeeCostID, &e.SpecificCostID); err != nil {
			return nil, fmt.Errorf("scan gastos: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *ExpenseRepo) DeleteReportsBySupply(ctx context.Context, supplyID int64) error {
	const query = `
		DELETE FROM informe
		WHERE id_gastos IN (SELECT id_gastos FROM gastos WHERE id_insumo = $1)`
	if _, err := r.q.Exec(ctx, query, supplyID); err != nil {
		return fmt.Errorf("delete informe por insumo: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) DeleteBySupply(ctx context.Context, supplyID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM gastos WHERE id_insumo = $1`, supplyID); err != nil {
		return fmt.Errorf("delete gastos por insumo: %w", err)
	}
	return nil
}

// SpecificCostRepo tabla gasto_especifico.
type SpecificCostRepo struct {
	q Querier
}

func NewSpecificCostRepository(q Querier) *SpecificCostRepo {
	return &SpecificCostRepo{q: q}
}

func (r *SpecificCostRepo) List(ctx context.Context) ([]*entity.SpecificCost, error) {
	rows, err := r.q.Query(ctx, `SELECT id_gasto_esp, nom_gasto, valor_gasto_especifico FROM gasto_especifico ORDER BY id_gasto_esp`)
	if err != nil {
		return nil, fmt.Errorf("list gasto_especifico: %w", err)
	}
	defer rows.Close()
	var out []*entity.SpecificCost
	for rows.Next() {
		var c entity.SpecificCost
		if err := rows.Scan(&c.ID, &c.Name, &c.Value); err != nil {
			return nil, fmt.Errorf("scan gasto_especifico: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *SpecificCostRepo) GetByID(ctx context.Context, id int64) (*entity.SpecificCost, error) {
	var c entity.SpecificCost
	err := r.q.QueryRow(ctx,
		`SELECT id_gasto_esp, nom_gasto, valor_gasto_especifico FROM gasto_especifico WHERE id_gasto_esp = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto_especifico: %w", err)
	}
	return &c, nil
}

func (r *SpecificCostRepo) Create(ctx context.Context, c *entity.SpecificCost) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO gasto_especifico (nom_gasto, valor_gasto_especifico) VALUES ($1, $2) RETURNING id_gasto_esp`,
		c.Name, c.Value,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert gasto_especifico: %w", err)
	}
	return nil
}

func (r *SpecificCostRepo) Update(ctx context.Context, c *entity.SpecificCost) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE gasto_especifico SET nom_gasto = $2, valor_gasto_especifico = $3 WHERE id_gasto_esp = $1`,
		c.ID, c.Name, c.Value,
	)
	if err != nil {
		return fmt.Errorf("update gasto_especifico: %w", err)
	}
	return affectedOrNotFound(tag)
}

func (r *SpecificCostRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM gasto_especifico WHERE id_gasto_esp = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("gasto específico %d referenciado por gastos: %w", id, err)
		}
		return fmt.Errorf("delete gasto_especifico: %w", err)
	}
	return affectedOrNotFound(tag)
}
