package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id_empleado, nom_empleado, tipo_emp, salario, tel_empleado, frecuencia_pago, prima, liquidacion`

// paymentUpdates una sentencia fija por tipo de pago; la columna nunca viene del request.
var paymentUpdates = map[entity.PaymentKind]string{
	entity.PaymentBonus:     `UPDATE empleado SET prima = $2 WHERE id_empleado = $1 RETURNING ` + employeeColumns,
	entity.PaymentSeverance: `UPDATE empleado SET liquidacion = $2 WHERE id_empleado = $1 RETURNING ` + employeeColumns,
}

// EmployeeRepo tabla empleado.
type EmployeeRepo struct {
	q Querier
}

func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM empleado ORDER BY id_empleado`)
	if err != nil {
		return nil, fmt.Errorf("list empleado: %w", err)
	}
	defer rows.Close()
	var out []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO empleado (nom_empleado, tipo_emp, salario, tel_empleado, frecuencia_pago)
		VALUES ($1, $2, $3, $4, $5) RETURNING id_empleado`,
		e.Name, e.Type, e.Salary, e.Phone, e.PaymentFrequency,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// SetPayment escribe la columna que corresponde a kind.
func (r *EmployeeRepo) SetPayment(ctx context.Context, id int64, kind entity.PaymentKind, amount decimal.Decimal) (*entity.Employee, error) {
	query, ok := paymentUpdates[kind]
	if !ok {
		return nil, domain.NewValidationError("tipo_pago")
	}
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM empleado WHERE id_empleado = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empleado: %w", err)
	}
	return affectedOrNotFound(tag)
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var phone, freq *string
	err := row.Scan(&e.ID, &e.Name, &e.Type, &e.Salary, &phone, &freq, &e.Bonus, &e.Severance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan empleado: %w", err)
	}
	if phone != nil {
		e.Phone = *phone
	}
	if freq != nil {
		e.PaymentFrequency = *freq
	}
	return &e, nil
}
