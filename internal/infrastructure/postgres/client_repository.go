package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

var (
	_ repository.ClientRepository       = (*ClientRepo)(nil)
	_ repository.BranchRepository       = (*BranchRepo)(nil)
	_ repository.ClientBranchRepository = (*ClientBranchRepo)(nil)
)

// ClientRepo tabla cliente.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO cliente (nombre_cliente, tel_cliente) VALUES ($1, $2) RETURNING id_cliente`,
		c.Name, c.Phone,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM cliente WHERE id_cliente = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return affectedOrNotFound(tag)
}

// BranchRepo tabla sucursal.
type BranchRepo struct {
	q Querier
}

func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO sucursal (nom_sucursal, direccion_suc) VALUES ($1, $2) RETURNING id_sucursal`,
		b.Name, b.Address,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert sucursal: %w", err)
	}
	return nil
}

func (r *BranchRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sucursal WHERE id_sucursal = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sucursal: %w", err)
	}
	return affectedOrNotFound(tag)
}

// ClientBranchRepo tabla sucursal_cliente.
type ClientBranchRepo struct {
	q Querier
}

func NewClientBranchRepository(q Querier) *ClientBranchRepo {
	return &ClientBranchRepo{q: q}
}

func (r *ClientBranchRepo) Create(ctx context.Context, l entity.ClientBranch) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sucursal_cliente (id_cliente, id_sucursal) VALUES ($1, $2)`,
		l.ClientID, l.BranchID,
	)
	if err != nil {
		return fmt.Errorf("insert sucursal_cliente: %w", err)
	}
	return nil
}

func (r *ClientBranchRepo) Delete(ctx context.Context, l entity.ClientBranch) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM sucursal_cliente WHERE id_cliente = $1 AND id_sucursal = $2`,
		l.ClientID, l.BranchID,
	)
	if err != nil {
		return fmt.Errorf("delete sucursal_cliente: %w", err)
	}
	return nil
}
