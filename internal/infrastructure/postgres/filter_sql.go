package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/report"
)

// searchExpressions campos de búsqueda permitidos por tipo y su predicado SQL.
// "?" se reemplaza por el placeholder del patrón. Los campos numéricos y de fecha
// se comparan como texto.
var searchExpressions = map[report.Type]map[string]string{
	report.TypeInforme: {
		"id_informe":     "i.id_informe::text ILIKE ?",
		"fecha_generado": "i.fecha_generado::text ILIKE ?",
		"id_factura":     "i.id_factura::text ILIKE ?",
		"id_gastos":      "i.id_gastos::text ILIKE ?",
	},
	report.TypeGastos: {
		"concepto_gasto": "g.concepto_gasto ILIKE ?",
		"total_gastos":   "g.total_gastos::text ILIKE ?",
	},
	report.TypeFactura: {
		"cod_factura":            "f.cod_factura ILIKE ?",
		"valor_fact":             "f.valor_fact::text ILIKE ?",
		"cliente.nombre_cliente": "c.nombre_cliente ILIKE ?",
		"cliente.tel_cliente":    "c.tel_cliente ILIKE ?",
		"cliente.sucursal_cliente.sucursal.nom_sucursal": `EXISTS (
			SELECT 1 FROM sucursal_cliente sc
			JOIN sucursal s ON s.id_sucursal = sc.id_sucursal
			WHERE sc.id_cliente = c.id_cliente AND s.nom_sucursal ILIKE ?)`,
	},
}

// BuildSearchSQL traduce el filtro a "(p1 OR p2 ...)" con un placeholder por
// predicado a partir de $firstArg. Solo acepta campos de la lista permitida.
func BuildSearchSQL(f report.Filter, firstArg int) (string, []any, error) {
	exprs, ok := searchExpressions[f.Type]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", domain.ErrInvalidType, string(f.Type))
	}
	if len(f.Any) == 0 {
		return "", nil, domain.ErrMissingTerm
	}
	parts := make([]string, 0, len(f.Any))
	args := make([]any, 0, len(f.Any))
	for _, p := range f.Any {
		if p.Op != report.OpILike {
			return "", nil, fmt.Errorf("operador no soportado %q", p.Op)
		}
		expr, ok := exprs[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("campo de búsqueda no permitido %q", p.Field)
		}
		parts = append(parts, strings.Replace(expr, "?", fmt.Sprintf("$%d", firstArg+len(args)), 1))
		args = append(args, p.Pattern)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args, nil
}
