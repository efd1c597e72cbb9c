package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
)

// EmployeeRepository puerto para empleado.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	Create(ctx context.Context, employee *entity.Employee) error
	// SetPayment registra prima o liquidación; domain.ErrNotFound si el empleado no existe.
	SetPayment(ctx context.Context, id int64, kind entity.PaymentKind, amount decimal.Decimal) (*entity.Employee, error)
	Delete(ctx context.Context, id int64) error
}
