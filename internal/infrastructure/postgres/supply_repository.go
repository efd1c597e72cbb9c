package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo tablas insumo, detalle_insumo e insumo_detalle.
type SupplyRepo struct {
	q Querier
}

func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

// List resuelve los detalles de cada insumo a través de la tabla intermedia.
func (r *SupplyRepo) List(ctx context.Context) ([]*entity.Supply, error) {
	query := `
		SELECT i.id_insumo, i.nom_insumo, i.valor_insumo, d.id_detalle_insumo, d.concepto, d.peso
		FROM insumo i
		LEFT JOIN insumo_detalle x ON x.id_insumo = i.id_insumo
		LEFT JOIN detalle_insumo d ON d.id_detalle_insumo = x.id_detalle_insumo
		ORDER BY i.id_insumo, d.id_detalle_insumo`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list insumo: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supply
	var cur *entity.Supply
	for rows.Next() {
		var (
			s       entity.Supply
			dID     *int64
			concept *string
			weight  *decimal.Decimal
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Value, &dID, &concept, &weight); err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		if cur == nil || cur.ID != s.ID {
			s.Details = []entity.SupplyDetail{}
			cur = &s
			out = append(out, cur)
		}
		if dID != nil {
			d := entity.SupplyDetail{ID: *dID}
			if concept != nil {
				d.Concept = *concept
			}
			if weight != nil {
				d.Weight = *weight
			}
			cur.Details = append(cur.Details, d)
		}
	}
	return out, rows.Err()
}

func (r *SupplyRepo) GetByID(ctx context.Context, id int64) (*entity.Supply, error) {
	var s entity.Supply
	err := r.q.QueryRow(ctx,
		`SELECT id_insumo, nom_insumo, valor_insumo FROM insumo WHERE id_insumo = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insumo: %w", err)
	}
	return &s, nil
}

func (r *SupplyRepo) Create(ctx context.Context, s *entity.Supply) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO insumo (nom_insumo, valor_insumo) VALUES ($1, $2) RETURNING id_insumo`,
		s.Name, s.Value,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

func (r *SupplyRepo) Update(ctx context.Context, s *entity.Supply) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE insumo SET nom_insumo = $2, valor_insumo = $3 WHERE id_insumo = $1`,
		s.ID, s.Name, s.Value,
	)
	if err != nil {
		return fmt.Errorf("update insumo: %w", err)
	}
	return affectedOrNotFound(tag)
}

func (r *SupplyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM insumo WHERE id_insumo = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insumo: %w", err)
	}
	return affectedOrNotFound(tag)
}

// CreateDetails inserta los detalles en una sola sentencia y asigna sus IDs.
func (r *SupplyRepo) CreateDetails(ctx context.Context, details []*entity.SupplyDetail) error {
	if len(details) == 0 {
		return nil
	}
	concepts := make([]string, len(details))
	weights := make([]decimal.Decimal, len(details))
	for i, d := range details {
		concepts[i] = d.Concept
		weights[i] = d.Weight
	}
	rows, err := r.q.Query(ctx, `
		INSERT INTO detalle_insumo (concepto, peso)
		SELECT d.concepto, d.peso
		FROM unnest($1::text[], $2::numeric[]) WITH ORDINALITY AS d(concepto, peso, ord)
		ORDER BY d.ord
		RETURNING id_detalle_insumo`, concepts, weights)
	if err != nil {
		return fmt.Errorf("insert detalle_insumo: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return fmt.Errorf("insert detalle_insumo: %w", err)
	}
	if len(ids) != len(details) {
		return fmt.Errorf("insert detalle_insumo: %d filas para %d detalles", len(ids), len(details))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, d := range details {
		d.ID = ids[i]
	}
	return nil
}

func (r *SupplyRepo) DeleteDetails(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM detalle_insumo WHERE id_detalle_insumo = ANY($1)`, ids); err != nil {
		return fmt.Errorf("delete detalle_insumo: %w", err)
	}
	return nil
}

// DeleteOrphanDetails solo borra los detalles que ningún insumo sigue enlazando.
func (r *SupplyRepo) DeleteOrphanDetails(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `
		DELETE FROM detalle_insumo d
		WHERE d.id_detalle_insumo = ANY($1)
		  AND NOT EXISTS (SELECT 1 FROM insumo_detalle x WHERE x.id_detalle_insumo = d.id_detalle_insumo)`, ids)
	if err != nil {
		return fmt.Errorf("delete detalle_insumo huérfanos: %w", err)
	}
	return nil
}

func (r *SupplyRepo) LinkDetails(ctx context.Context, supplyID int64, detailIDs []int64) error {
	if len(detailIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO insumo_detalle (id_insumo, id_detalle_insumo)
		SELECT $1, unnest($2::bigint[])`, supplyID, detailIDs)
	if err != nil {
		return fmt.Errorf("insert insumo_detalle: %w", err)
	}
	return nil
}

func (r *SupplyRepo) UnlinkAll(ctx context.Context, supplyID int64) ([]int64, error) {
	rows, err := r.q.Query(ctx,
		`DELETE FROM insumo_detalle WHERE id_insumo = $1 RETURNING id_detalle_insumo`, supplyID)
	if err != nil {
		return nil, fmt.Errorf("delete insumo_detalle: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("delete insumo_detalle: %w", err)
	}
	return ids, nil
}
