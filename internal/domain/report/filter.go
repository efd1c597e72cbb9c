package report

import (
	"fmt"
	"strings"

	"github.com/jhoicas/lavanderia-api/internal/domain"
)

// Operator operador de un predicado de búsqueda.
type Operator string

// OpILike coincidencia parcial sin distinguir mayúsculas. Se usa también para
// campos numéricos y de fecha (se comparan como texto).
const OpILike Operator = "ilike"

// Predicate condición sobre un campo; Field puede cruzar relaciones ("cliente.nombre_cliente").
type Predicate struct {
	Field   string
	Op      Operator
	Pattern string
}

// Filter disyunción de predicados (basta con que uno se cumpla).
type Filter struct {
	Type Type
	Term string
	Any  []Predicate
}

// Fields devuelve los campos del filtro en orden.
func (f Filter) Fields() []string {
	out := make([]string, len(f.Any))
	for i, p := range f.Any {
		out[i] = p.Field
	}
	return out
}

var searchFields = map[Type][]string{
	TypeInforme: {"id_informe", "fecha_generado", "id_factura", "id_gastos"},
	TypeGastos:  {"concepto_gasto", "total_gastos"},
	TypeFactura: {
		"cod_factura",
		"valor_fact",
		"cliente.nombre_cliente",
		"cliente.tel_cliente",
		"cliente.sucursal_cliente.sucursal.nom_sucursal",
	},
}

// SearchFields campos buscables del tipo (lista blanca para el adaptador SQL).
func SearchFields(t Type) []string {
	fields := searchFields[t]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// BuildSearchFilter construye la disyunción de coincidencias parciales para term
// sobre los campos fijos del tipo. Término vacío -> domain.ErrMissingTerm;
// tipo desconocido -> domain.ErrInvalidType.
func BuildSearchFilter(entityType string, term string) (Filter, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return Filter{}, domain.ErrMissingTerm
	}
	t, err := ParseType(entityType)
	if err != nil {
		return Filter{}, err
	}
	fields, ok := searchFields[t]
	if !ok {
		return Filter{}, fmt.Errorf("%w: %q", domain.ErrInvalidType, entityType)
	}
	pattern := "%" + EscapeLike(term) + "%"
	f := Filter{Type: t, Term: term, Any: make([]Predicate, 0, len(fields))}
	for _, field := range fields {
		f.Any = append(f.Any, Predicate{Field: field, Op: OpILike, Pattern: pattern})
	}
	return f, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutraliza los comodines de LIKE en un término de usuario.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
