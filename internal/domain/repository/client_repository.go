package repository

import (
	"context"

	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
)

// ClientRepository puerto de persistencia para cliente.
type ClientRepository interface {
	// Create inserta y asigna el ID generado por el store.
	Create(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id int64) error
}

// BranchRepository puerto de persistencia para sucursal.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	Delete(ctx context.Context, id int64) error
}

// ClientBranchRepository puerto para la tabla de asociación sucursal_cliente.
type ClientBranchRepository interface {
	Create(ctx context.Context, link entity.ClientBranch) error
	Delete(ctx context.Context, link entity.ClientBranch) error
}
