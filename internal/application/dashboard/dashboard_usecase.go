// Package dashboard arma los datos del tablero: ingresos por factura y gastos.
package dashboard

import (
	"context"
	"fmt"

	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

// UseCase genera la respuesta de GET /api/dashboard-data.
//
// Fuente de datos: DashboardRepository (consultas read-only), ambas ordenadas por
// fecha descendente.
type UseCase struct {
	repo repository.DashboardRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.DashboardRepository) *UseCase {
	return &UseCase{repo: repo}
}

// GetData lee ingresos y gastos en paralelo. Código o fecha ausentes se muestran
// como "Desconocido".
func (uc *UseCase) GetData(ctx context.Context) (*dto.DashboardDataDTO, error) {
	type incomeResult struct {
		rows []repository.IncomeRow
		err  error
	}
	type expenseResult struct {
		rows []repository.ExpenseRow
		err  error
	}

	incomeCh := make(chan incomeResult, 1)
	expenseCh := make(chan expenseResult, 1)

	go func() {
		rows, err := uc.repo.Income(ctx)
		incomeCh <- incomeResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.Expenses(ctx)
		expenseCh <- expenseResult{rows, err}
	}()

	income := <-incomeCh
	expenses := <-expenseCh

	if income.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos: %w", income.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: gastos: %w", expenses.err)
	}

	out := &dto.DashboardDataDTO{
		Income:   make([]dto.IncomeDTO, 0, len(income.rows)),
		Expenses: make([]dto.ExpenseDTO, 0, len(expenses.rows)),
	}
	for _, r := range income.rows {
		code := r.Code
		if code == "" {
			code = dto.Unknown
		}
		out.Income = append(out.Income, dto.IncomeDTO{
			Code:   code,
			Date:   dateOrUnknown(dto.FormatDate(r.Completed)),
			Amount: r.Amount,
		})
	}
	for _, r := range expenses.rows {
		out.Expenses = append(out.Expenses, dto.ExpenseDTO{
			Concept: r.Concept,
			Cost:    r.Total,
			Date:    dateOrUnknown(dto.FormatDate(r.Date)),
		})
	}
	return out, nil
}

func dateOrUnknown(s *string) string {
	if s == nil {
		return dto.Unknown
	}
	return *s
}
