package costs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lavanderia-api/internal/application/costs"
	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func TestSpecificCost_CRUD(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewExpenseUseCase(expenseRepo{m}, specificRepo{m})
	ctx := context.Background()

	created, err := uc.CreateSpecific(ctx, dto.SpecificCostRequest{Name: "Arriendo", Value: decimal.NewFromInt(800000)})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := uc.GetSpecific(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arriendo", got.Name)

	updated, err := uc.UpdateSpecific(ctx, created.ID, dto.SpecificCostRequest{Name: "Arriendo local", Value: decimal.NewFromInt(900000)})
	require.NoError(t, err)
	assert.Equal(t, "Arriendo local", updated.Name)

	require.NoError(t, uc.DeleteSpecific(ctx, created.ID))
	_, err = uc.GetSpecific(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteSpecific(ctx, created.ID), domain.ErrNotFound)
}

func TestSpecificCost_Validacion(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewExpenseUseCase(expenseRepo{m}, specificRepo{m})

	_, err := uc.CreateSpecific(context.Background(), dto.SpecificCostRequest{Value: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateSpecific(context.Background(), dto.SpecificCostRequest{Name: "x", Value: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, m.specific)
}

func TestListExpenses(t *testing.T) {
	m := newMemCosts()
	m.expenses[1] = entity.Expense{ID: 1, Concept: "Jabón", Total: decimal.NewFromInt(12000), SupplyID: ptr(int64(7))}
	uc := costs.NewExpenseUseCase(expenseRepo{m}, specificRepo{m})

	list, err := uc.ListExpenses(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jabón", list[0].Concept)
	assert.Nil(t, list[0].PurchaseDate)
	assert.Equal(t, int64(7), *list[0].SupplyID)
}

func TestEmployee_ApplyPayment(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewEmployeeUseCase(employeeRepo{m})
	ctx := context.Background()

	e, err := uc.Create(ctx, dto.CreateEmployeeRequest{
		Name: "Luis", Type: "operario", Salary: decimal.NewFromInt(1300000), PaymentFrequency: "mensual",
	})
	require.NoError(t, err)

	out, err := uc.ApplyPayment(ctx, e.ID, dto.EmployeePaymentRequest{Kind: "prima", Amount: ptr(decimal.NewFromInt(650000))})
	require.NoError(t, err)
	require.NotNil(t, out.Bonus)
	assert.True(t, out.Bonus.Equal(decimal.NewFromInt(650000)))
	assert.Nil(t, out.Severance)

	out, err = uc.ApplyPayment(ctx, e.ID, dto.EmployeePaymentRequest{Kind: "liquidacion", Amount: ptr(decimal.NewFromInt(2000000))})
	require.NoError(t, err)
	require.NotNil(t, out.Severance)
	assert.NotNil(t, out.Bonus)
}

func TestEmployee_ApplyPayment_Invalido(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewEmployeeUseCase(employeeRepo{m})
	ctx := context.Background()

	_, err := uc.ApplyPayment(ctx, 1, dto.EmployeePaymentRequest{Kind: "salario", Amount: ptr(decimal.NewFromInt(1))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ApplyPayment(ctx, 1, dto.EmployeePaymentRequest{Kind: "prima"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ApplyPayment(ctx, 1, dto.EmployeePaymentRequest{Kind: "prima", Amount: ptr(decimal.NewFromInt(1))})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func supplyRequest(concepts ...string) dto.SupplyRequest {
	req := dto.SupplyRequest{Name: "Detergente", Value: decimal.NewFromInt(45000)}
	for _, c := range concepts {
		req.Details = append(req.Details, dto.SupplyDetailRequest{Concept: c, Weight: decimal.NewFromInt(5)})
	}
	return req
}

func TestSupply_Create(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewSupplyUseCase(supplyRepo{m}, expenseRepo{m}, true, nil)

	out, err := uc.Create(context.Background(), supplyRequest("bolsa 5kg", "bolsa 10kg"))
	require.NoError(t, err)
	assert.Len(t, out.Details, 2)
	assert.Len(t, m.links[out.ID], 2)
	assert.Len(t, m.details, 2)
}

func TestSupply_CreateCompensaSiFallaElEnlace(t *testing.T) {
	m := newMemCosts()
	m.failLink = errors.New("insert insumo_detalle")
	uc := costs.NewSupplyUseCase(supplyRepo{m}, expenseRepo{m}, true, nil)

	_, err := uc.Create(context.Background(), supplyRequest("bolsa"))

	var werr *domain.DependencyWriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, []string{"insumo", "detalle_insumo"}, werr.Committed)
	assert.Empty(t, m.supplies)
	assert.Empty(t, m.details)
}

func TestSupply_CreateSinDetalles(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewSupplyUseCase(supplyRepo{m}, expenseRepo{m}, true, nil)

	_, err := uc.Create(context.Background(), supplyRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, m.supplies)
}

func TestSupply_UpdateEliminaHuerfanos(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewSupplyUseCase(supplyRepo{m}, expenseRepo{m}, true, nil)
	ctx := context.Background()

	a, err := uc.Create(ctx, supplyRequest("viejo"))
	require.NoError(t, err)
	oldID := a.Details[0].ID

	// un detalle compartido con otro insumo no se elimina
	b, err := uc.Create(ctx, supplyRequest("otro"))
	require.NoError(t, err)
	m.links[b.ID] = append(m.links[b.ID], oldID)

	out, err := uc.Update(ctx, a.ID, supplyRequest("nuevo 1", "nuevo 2"))
	require.NoError(t, err)
	assert.Len(t, out.Details, 2)
	assert.Len(t, m.links[a.ID], 2)
	assert.Contains(t, m.details, oldID)

	delete(m.links, b.ID)
	_, err = uc.Update(ctx, a.ID, supplyRequest("final"))
	require.NoError(t, err)
	assert.Len(t, m.links[a.ID], 1)
	assert.Len(t, m.details, 3) // "final" más los dos detalles que tuvo b; ninguno era de a
}

func TestSupply_DeleteCascadaManual(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewSupplyUseCase(supplyRepo{m}, expenseRepo{m}, true, nil)
	ctx := context.Background()

	s, err := uc.Create(ctx, supplyRequest("bolsa", "caja"))
	require.NoError(t, err)
	m.expenses[100] = entity.Expense{ID: 100, Concept: "compra", SupplyID: ptr(s.ID)}
	m.expenses[101] = entity.Expense{ID: 101, Concept: "otro"}
	// informes sobre el gasto del insumo y sobre otro gasto
	m.reports[500] = 100
	m.reports[501] = 101

	require.NoError(t, uc.Delete(ctx, s.ID))

	assert.Empty(t, m.supplies)
	assert.Empty(t, m.details)
	assert.Empty(t, m.links)
	assert.Len(t, m.expenses, 1)
	assert.Contains(t, m.expenses, int64(101))
	assert.Equal(t, map[int64]int64{501: 101}, m.reports)
}

func TestSupply_DeleteFalloFinalReportaPasosBorrados(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewSupplyUseCase(supplyRepo{m}, expenseRepo{m}, true, nil)
	ctx := context.Background()

	s, err := uc.Create(ctx, supplyRequest("bolsa"))
	require.NoError(t, err)
	m.failDelete = errors.New("delete insumo: timeout")

	err = uc.Delete(ctx, s.ID)

	var werr *domain.DependencyWriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, costs.StepSupply, werr.Step)
	assert.Equal(t, []string{costs.StepReports, costs.StepExpenses, costs.StepLinks, costs.StepOrphanDetails}, werr.Committed)
	assert.False(t, werr.Compensated)
	assert.Equal(t, werr.Committed, werr.Pending())
	assert.Contains(t, m.supplies, s.ID)
	assert.Empty(t, m.links)
	assert.Empty(t, m.details)
}

func TestSupply_UpdateCompensaSiFallaElEnlace(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewSupplyUseCase(supplyRepo{m}, expenseRepo{m}, true, nil)
	ctx := context.Background()

	a, err := uc.Create(ctx, supplyRequest("viejo 1", "viejo 2"))
	require.NoError(t, err)
	oldLinks := append([]int64(nil), m.links[a.ID]...)
	// la siguiente llamada es el enlace de los detalles nuevos
	m.failLinkAt = m.linkCalls + 1

	req := supplyRequest("nuevo")
	req.Name = "Suavizante"
	_, err = uc.Update(ctx, a.ID, req)

	var werr *domain.DependencyWriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, costs.StepLinks, werr.Step)
	assert.Equal(t, []string{costs.StepSupply, costs.StepUnlinkOld, costs.StepDetails}, werr.Committed)
	assert.True(t, werr.Compensated)
	assert.Empty(t, werr.Pending())

	assert.ElementsMatch(t, oldLinks, m.links[a.ID])
	assert.Len(t, m.details, 2)
	assert.Equal(t, "Detergente", m.supplies[a.ID].Name)
}

func TestSupply_UpdateSinCompensacionReportaPendientes(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewSupplyUseCase(supplyRepo{m}, expenseRepo{m}, false, nil)
	ctx := context.Background()

	a, err := uc.Create(ctx, supplyRequest("viejo"))
	require.NoError(t, err)
	m.failLinkAt = m.linkCalls + 1

	_, err = uc.Update(ctx, a.ID, supplyRequest("nuevo"))

	var werr *domain.DependencyWriteError
	require.ErrorAs(t, err, &werr)
	assert.False(t, werr.Compensated)
	assert.Equal(t, []string{costs.StepSupply, costs.StepUnlinkOld, costs.StepDetails}, werr.Pending())
}

func TestSupply_NoEncontrado(t *testing.T) {
	m := newMemCosts()
	uc := costs.NewSupplyUseCase(supplyRepo{m}, expenseRepo{m}, true, nil)

	assert.ErrorIs(t, uc.Delete(context.Background(), 9), domain.ErrNotFound)
	_, err := uc.Update(context.Background(), 9, supplyRequest("x"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
