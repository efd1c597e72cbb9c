package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/report"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
)

var _ repository.ReportSource = (*ReportSource)(nil)

// Cada consulta devuelve una columna JSON por fila con la misma forma anidada
// que esperan las columnas del reporte (cliente.sucursal_cliente[].sucursal...).
const (
	clientJSON = `
		CASE WHEN c.id_cliente IS NULL THEN NULL ELSE json_build_object(
			'id_cliente', c.id_cliente,
			'nombre_cliente', c.nombre_cliente,
			'tel_cliente', c.tel_cliente,
			'sucursal_cliente', COALESCE((
				SELECT json_agg(json_build_object(
					'sucursal', json_build_object(
						'id_sucursal', s.id_sucursal,
						'nom_sucursal', s.nom_sucursal,
						'direccion_suc', s.direccion_suc)))
				FROM sucursal_cliente sc
				JOIN sucursal s ON s.id_sucursal = sc.id_sucursal
				WHERE sc.id_cliente = c.id_cliente), '[]'::json)
		) END`

	invoiceFields = `
		'id_factura', f.id_factura,
		'cod_factura', f.cod_factura,
		'fecha_creacion_fact', f.fecha_creacion_fact,
		'fecha_final_fact', f.fecha_final_fact,
		'valor_fact', f.valor_fact,
		'estado', f.estado,
		'cliente', ` + clientJSON

	invoiceFrom = `
		FROM factura f
		LEFT JOIN cliente c ON c.id_cliente = f.id_cliente`

	invoiceReportQuery = `SELECT json_build_object(` + invoiceFields + `)` + invoiceFrom

	invoiceListQuery = `SELECT json_build_object(` + invoiceFields + `,
		'factura_detalle', COALESCE((
			SELECT json_agg(json_build_object(
				'id_factura_detalle', d.id_factura_detalle,
				'especificacion_prenda', d.especificacion_prenda,
				'cantidad_prendas', d.cantidad_prendas,
				'valor_uni_prenda', d.valor_uni_prenda) ORDER BY d.id_factura_detalle)
			FROM factura_detalle d WHERE d.id_factura = f.id_factura), '[]'::json)
		)` + invoiceFrom + `
		ORDER BY f.fecha_creacion_fact DESC, f.id_factura DESC`

	expenseReportQuery = `
		SELECT json_build_object(
			'id_gastos', g.id_gastos,
			'concepto_gasto', g.concepto_gasto,
			'fecha_compra', g.fecha_compra,
			'total_gastos', g.total_gastos,
			'id_insumo', g.id_insumo,
			'id_gasto_emp', g.id_gasto_emp,
			'id_gasto_esp', g.id_gasto_esp)
		FROM gastos g`

	logReportQuery = `
		SELECT json_build_object(
			'id_informe', i.id_informe,
			'fecha_generado', i.fecha_generado,
			'id_factura', i.id_factura,
			'id_gastos', i.id_gastos,
			'factura', CASE WHEN f.id_factura IS NULL THEN NULL
				ELSE json_build_object('cod_factura', f.cod_factura, 'valor_fact', f.valor_fact) END,
			'gastos', CASE WHEN g.id_gastos IS NULL THEN NULL
				ELSE json_build_object('concepto_gasto', g.concepto_gasto, 'total_gastos', g.total_gastos) END)
		FROM informe i
		LEFT JOIN factura f ON f.id_factura = i.id_factura
		LEFT JOIN gastos g ON g.id_gastos = i.id_gastos`
)

type reportQuery struct {
	base    string
	orderBy string
}

var reportQueries = map[report.Type]reportQuery{
	report.TypeFactura: {base: invoiceReportQuery, orderBy: "f.fecha_creacion_fact DESC, f.id_factura DESC"},
	report.TypeGastos:  {base: expenseReportQuery, orderBy: "g.fecha_compra DESC NULLS LAST, g.id_gastos DESC"},
	report.TypeInforme: {base: logReportQuery, orderBy: "i.fecha_generado DESC, i.id_informe DESC"},
}

// ReportSource lee registros anidados para los reportes.
type ReportSource struct {
	q Querier
}

// NewReportSource construye el adaptador.
func NewReportSource(q Querier) *ReportSource {
	return &ReportSource{q: q}
}

// Fetch todos los registros del tipo, más recientes primero.
func (s *ReportSource) Fetch(ctx context.Context, t report.Type) ([]report.Record, error) {
	rq, ok := reportQueries[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidType, string(t))
	}
	rows, err := s.q.Query(ctx, rq.base+"\nORDER BY "+rq.orderBy)
	if err != nil {
		return nil, fmt.Errorf("consultar %s: %w", t, err)
	}
	return collectJSONRecords(rows)
}

// Search aplica el filtro como disyunción ILIKE sobre expresiones permitidas.
func (s *ReportSource) Search(ctx context.Context, f report.Filter) ([]report.Record, error) {
	rq, ok := reportQueries[f.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidType, string(f.Type))
	}
	where, args, err := BuildSearchSQL(f, 1)
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, rq.base+"\nWHERE "+where+"\nORDER BY "+rq.orderBy, args...)
	if err != nil {
		return nil, fmt.Errorf("buscar %s: %w", f.Type, err)
	}
	return collectJSONRecords(rows)
}

// collectJSONRecords decodifica una columna json por fila. Los números quedan como
// json.Number para no perder precisión en NUMERIC.
func collectJSONRecords(rows pgx.Rows) ([]map[string]any, error) {
	raws, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	out := make([]map[string]any, 0, len(raws))
	for _, raw := range raws {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var rec map[string]any
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decodificar registro: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}
