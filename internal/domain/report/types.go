// Package report contiene la lógica pura de los reportes: tipos de reporte,
// columnas por tipo, resolución de rutas con puntos sobre registros anidados,
// ensamblado de filas planas y construcción de filtros de búsqueda.
//
// No depende del store ni del renderizador PDF; recibe registros ya leídos
// (map[string]any / []any, tal como salen de un JSON anidado).
package report

import (
	"fmt"
	"strings"

	"github.com/jhoicas/lavanderia-api/internal/domain"
)

// Type identificador del reporte tal como llega en la ruta /reports/:type.
type Type string

const (
	TypeInforme Type = "informe" // log de informes generados
	TypeGastos  Type = "gastos"  // gastos
	TypeFactura Type = "factura" // facturas
)

// Record registro anidado (objeto JSON decodificado).
type Record = map[string]any

var typeAliases = map[string]Type{
	"informe":  TypeInforme,
	"log":      TypeInforme,
	"gastos":   TypeGastos,
	"expense":  TypeGastos,
	"factura":  TypeFactura,
	"invoice":  TypeFactura,
	"facturas": TypeFactura,
}

// ParseType normaliza el tipo recibido. Tipos desconocidos devuelven domain.ErrInvalidType.
func ParseType(s string) (Type, error) {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidType, s)
}

// Types devuelve los tipos soportados en orden estable.
func Types() []Type {
	return []Type{TypeInforme, TypeGastos, TypeFactura}
}
