package costs

import (
	"context"
	"fmt"

	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

// ExpenseUseCase gastos y gastos específicos.
type ExpenseUseCase struct {
	expenseRepo  repository.ExpenseRepository
	specificRepo repository.SpecificCostRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository, specificRepo repository.SpecificCostRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, specificRepo: specificRepo}
}

// ListExpenses lista la tabla gastos.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context) ([]dto.ExpenseResponse, error) {
	list, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar gastos: %w", err)
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ExpenseResponse{
			ID:             e.ID,
			Concept:        e.Concept,
			PurchaseDate:   dto.FormatDate(e.PurchaseDate),
			Total:          e.Total,
			SupplyID:       e.SupplyID,
			EmployeeCostID: e.EmployeeCostID,
			SpecificCostID: e.SpecificCostID,
		})
	}
	return out, nil
}

// ListSpecific lista gasto_especifico.
func (uc *ExpenseUseCase) ListSpecific(ctx context.Context) ([]dto.SpecificCostResponse, error) {
	list, err := uc.specificRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar gastos específicos: %w", err)
	}
	out := make([]dto.SpecificCostResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toSpecificResponse(c))
	}
	return out, nil
}

// GetSpecific devuelve domain.ErrNotFound si no existe.
func (uc *ExpenseUseCase) GetSpecific(ctx context.Context, id int64) (*dto.SpecificCostResponse, error) {
	c, err := uc.specificRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener gasto específico %d: %w", id, err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSpecificResponse(c)
	return &resp, nil
}

// CreateSpecific inserta un gasto específico; el ID lo genera el store.
func (uc *ExpenseUseCase) CreateSpecific(ctx context.Context, in dto.SpecificCostRequest) (*dto.SpecificCostResponse, error) {
	if err := validateSpecific(in); err != nil {
		return nil, err
	}
	c := &entity.SpecificCost{Name: in.Name, Value: in.Value}
	if err := uc.specificRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("crear gasto específico: %w", err)
	}
	resp := toSpecificResponse(c)
	return &resp, nil
}

// UpdateSpecific reemplaza nombre y valor.
func (uc *ExpenseUseCase) UpdateSpecific(ctx context.Context, id int64, in dto.SpecificCostRequest) (*dto.SpecificCostResponse, error) {
	if err := validateSpecific(in); err != nil {
		return nil, err
	}
	c := &entity.SpecificCost{ID: id, Name: in.Name, Value: in.Value}
	if err := uc.specificRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toSpecificResponse(c)
	return &resp, nil
}

// DeleteSpecific elimina por ID.
func (uc *ExpenseUseCase) DeleteSpecific(ctx context.Context, id int64) error {
	return uc.specificRepo.Delete(ctx, id)
}

func validateSpecific(in dto.SpecificCostRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	if in.Value.IsNegative() {
		return domain.NewValidationError("valor_gasto_especifico")
	}
	return nil
}

func toSpecificResponse(c *entity.SpecificCost) dto.SpecificCostResponse {
	return dto.SpecificCostResponse{ID: c.ID, Name: c.Name, Value: c.Value}
}
