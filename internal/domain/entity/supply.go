package entity

import "github.com/shopspring/decimal"

// Supply insumo (tabla insumo). Sus detalles se enlazan por insumo_detalle.
type Supply struct {
	ID      int64
	Name    string
	Value   decimal.Decimal
	Details []SupplyDetail
}

// SupplyDetail detalle de insumo (tabla detalle_insumo).
type SupplyDetail struct {
	ID      int64
	Concept string
	Weight  decimal.Decimal
}
