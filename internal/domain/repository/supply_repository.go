package repository

import (
	"context"

	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
)

// SupplyRepository puerto para insumo, detalle_insumo e insumo_detalle.
type SupplyRepository interface {
	// List devuelve los insumos con sus detalles ya resueltos a través de insumo_detalle.
	List(ctx context.Context) ([]*entity.Supply, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Supply, error)
	Create(ctx context.Context, supply *entity.Supply) error
	Update(ctx context.Context, supply *entity.Supply) error
	Delete(ctx context.Context, id int64) error

	CreateDetails(ctx context.Context, details []*entity.SupplyDetail) error
	// DeleteOrphanDetails borra de ids solo los detalles que ya no enlaza ningún insumo.
	DeleteOrphanDetails(ctx context.Context, ids []int64) error
	DeleteDetails(ctx context.Context, ids []int64) error

	LinkDetails(ctx context.Context, supplyID int64, detailIDs []int64) error
	// UnlinkAll borra los enlaces del insumo y devuelve los IDs de detalle que tenía.
	UnlinkAll(ctx context.Context, supplyID int64) ([]int64, error)
}
