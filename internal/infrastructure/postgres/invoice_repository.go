package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository    = (*InvoiceRepo)(nil)
	_ repository.ReportMetaRepository = (*ReportMetaRepo)(nil)
)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera; el store asigna id_factura y version.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO factura (cod_factura, fecha_creacion_fact, fecha_final_fact, valor_fact, estado, id_cliente)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_factura, estado, version`
	err := r.q.QueryRow(ctx, query,
		inv.Code, inv.CreatedDate, inv.CompletedDate, inv.Amount, inv.Status, inv.ClientID,
	).Scan(&inv.ID, &inv.Status, &inv.Version)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("cod_factura %q ya existe: %w", inv.Code, err)
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// CreateDetails inserta todas las líneas en una sola sentencia.
func (r *InvoiceRepo) CreateDetails(ctx context.Context, details []*entity.InvoiceDetail) error {
	if len(details) == 0 {
		return nil
	}
	descs := make([]string, len(details))
	qtys := make([]int32, len(details))
	prices := make([]decimal.Decimal, len(details))
	invoiceIDs := make([]int64, len(details))
	for i, d := range details {
		descs[i] = d.Description
		if d.Quantity < math.MinInt32 || d.Quantity > math.MaxInt32 {
			return fmt.Errorf("cantidad_prendas %d fuera de rango: %w", d.Quantity, domain.ErrInvalidInput)
		}
		qtys[i] = int32(d.Quantity)
		prices[i] = d.UnitPrice
		invoiceIDs[i] = d.InvoiceID
	}
	query := `
		INSERT INTO factura_detalle (especificacion_prenda, cantidad_prendas, valor_uni_prenda, id_factura)
		SELECT d.especificacion_prenda, d.cantidad_prendas, d.valor_uni_prenda, d.id_factura
		FROM unnest($1::text[], $2::int[], $3::numeric[], $4::bigint[])
		     WITH ORDINALITY AS d(especificacion_prenda, cantidad_prendas, valor_uni_prenda, id_factura, ord)
		ORDER BY d.ord
		RETURNING id_factura_detalle`
	rows, err := r.q.Query(ctx, query, descs, qtys, prices, invoiceIDs)
	if err != nil {
		return fmt.Errorf("insert factura_detalle: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return fmt.Errorf("insert factura_detalle: %w", err)
	}
	if len(ids) != len(details) {
		return fmt.Errorf("insert factura_detalle: %d filas para %d detalles", len(ids), len(details))
	}
	// la secuencia asigna IDs crecientes en el orden de inserción
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, d := range details {
		d.ID = ids[i]
	}
	return nil
}

func (r *InvoiceRepo) DeleteDetails(ctx context.Context, invoiceID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM factura_detalle WHERE id_factura = $1`, invoiceID); err != nil {
		return fmt.Errorf("delete factura_detalle: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `
		SELECT id_factura, cod_factura, fecha_creacion_fact, fecha_final_fact, valor_fact, estado, id_cliente, version
		FROM factura WHERE id_factura = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.Code, &inv.CreatedDate, &inv.CompletedDate, &inv.Amount, &inv.Status, &inv.ClientID, &inv.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return &inv, nil
}

// UpdateIfVersion compare-and-swap sobre version.
func (r *InvoiceRepo) UpdateIfVersion(ctx context.Context, inv *entity.Invoice, expectedVersion int) (bool, error) {
	query := `
		UPDATE factura
		SET estado           = $2,
		    fecha_final_fact = $3,
		    valor_fact       = $4,
		    version          = version + 1
		WHERE id_factura = $1 AND version = $5
		RETURNING version`
	var version int
	err := r.q.QueryRow(ctx, query, inv.ID, inv.Status, inv.CompletedDate, inv.Amount, expectedVersion).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("update factura: %w", err)
	}
	inv.Version = version
	return true, nil
}

func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM factura WHERE id_factura = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return affectedOrNotFound(tag)
}

// ListNested usa la misma proyección anidada que el reporte de facturas, más los detalles.
func (r *InvoiceRepo) ListNested(ctx context.Context) ([]map[string]any, error) {
	rows, err := r.q.Query(ctx, invoiceListQuery)
	if err != nil {
		return nil, fmt.Errorf("list factura: %w", err)
	}
	return collectJSONRecords(rows)
}

// ReportMetaRepo tabla informe.
type ReportMetaRepo struct {
	q Querier
}

func NewReportMetaRepository(q Querier) *ReportMetaRepo {
	return &ReportMetaRepo{q: q}
}

func (r *ReportMetaRepo) DeleteByInvoice(ctx context.Context, invoiceID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM informe WHERE id_factura = $1`, invoiceID); err != nil {
		return fmt.Errorf("delete informe: %w", err)
	}
	return nil
}
