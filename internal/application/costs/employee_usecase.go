package costs

import (
	"context"
	"fmt"

	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

// EmployeeUseCase empleados y sus pagos puntuales (prima, liquidación).
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Salary.IsNegative() {
		return nil, domain.NewValidationError("salario")
	}
	e := &entity.Employee{
		Name:             in.Name,
		Type:             in.Type,
		Salary:           in.Salary,
		Phone:            in.Phone,
		PaymentFrequency: in.PaymentFrequency,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("crear empleado: %w", err)
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// ApplyPayment registra una prima o una liquidación sobre el empleado.
func (uc *EmployeeUseCase) ApplyPayment(ctx context.Context, id int64, in dto.EmployeePaymentRequest) (*dto.EmployeeResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	kind, ok := entity.ParsePaymentKind(in.Kind)
	if !ok {
		return nil, domain.NewValidationError("tipo_pago")
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewValidationError("monto")
	}
	e, err := uc.repo.SetPayment(ctx, id, kind, *in.Amount)
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Type:             e.Type,
		Salary:           e.Salary,
		Phone:            e.Phone,
		PaymentFrequency: e.PaymentFrequency,
		Bonus:            e.Bonus,
		Severance:        e.Severance,
	}
}
