package dto

import "github.com/shopspring/decimal"

// ExpenseResponse fila de gastos.
type ExpenseResponse struct {
	ID             int64           `json:"id_gastos"`
	Concept        string          `json:"concepto_gasto"`
	PurchaseDate   *string         `json:"fecha_compra"`
	Total          decimal.Decimal `json:"total_gastos"`
	SupplyID       *int64          `json:"id_insumo"`
	EmployeeCostID *int64          `json:"id_gasto_emp"`
	SpecificCostID *int64          `json:"id_gasto_esp"`
}

// SpecificCostRequest body para crear o actualizar un gasto específico.
type SpecificCostRequest struct {
	Name  string          `json:"nom_gasto" validate:"required"`
	Value decimal.Decimal `json:"valor_gasto_especifico"`
}

// SpecificCostResponse gasto específico.
type SpecificCostResponse struct {
	ID    int64           `json:"id_gasto_esp"`
	Name  string          `json:"nom_gasto"`
	Value decimal.Decimal `json:"valor_gasto_especifico"`
}

// CreateEmployeeRequest body para POST /api/cost/employee.
type CreateEmployeeRequest struct {
	Name             string          `json:"nom_empleado" validate:"required"`
	Type             string          `json:"tipo_emp" validate:"required"`
	Salary           decimal.Decimal `json:"salario"`
	Phone            string          `json:"tel_empleado"`
	PaymentFrequency string          `json:"frecuencia_pago" validate:"required"`
}

// EmployeePaymentRequest body para PUT /api/cost/employee/:id.
type EmployeePaymentRequest struct {
	Kind   string           `json:"tipo_pago" validate:"required,oneof=prima liquidacion"`
	Amount *decimal.Decimal `json:"monto" validate:"required"`
}

// EmployeeResponse empleado.
type EmployeeResponse struct {
	ID               int64            `json:"id_empleado"`
	Name             string           `json:"nom_empleado"`
	Type             string           `json:"tipo_emp"`
	Salary           decimal.Decimal  `json:"salario"`
	Phone            string           `json:"tel_empleado"`
	PaymentFrequency string           `json:"frecuencia_pago"`
	Bonus            *decimal.Decimal `json:"prima"`
	Severance        *decimal.Decimal `json:"liquidacion"`
}

// SupplyDetailRequest detalle de insumo en el body.
type SupplyDetailRequest struct {
	Concept string          `json:"concepto" validate:"required"`
	Weight  decimal.Decimal `json:"peso"`
}

// SupplyRequest body para crear o actualizar un insumo.
type SupplyRequest struct {
	Name    string                `json:"nom_insumo" validate:"required"`
	Value   decimal.Decimal       `json:"valor_insumo"`
	Details []SupplyDetailRequest `json:"detalle_insumo" validate:"required,min=1,dive"`
}

// SupplyDetailResponse detalle de insumo.
type SupplyDetailResponse struct {
	ID      int64           `json:"id_detalle_insumo"`
	Concept string          `json:"concepto"`
	Weight  decimal.Decimal `json:"peso"`
}

// SupplyResponse insumo con sus detalles.
type SupplyResponse struct {
	ID      int64                  `json:"id_insumo"`
	Name    string                 `json:"nom_insumo"`
	Value   decimal.Decimal        `json:"valor_insumo"`
	Details []SupplyDetailResponse `json:"detalle_insumo"`
}
