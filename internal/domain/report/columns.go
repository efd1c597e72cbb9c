package report

import (
	"fmt"

	"github.com/jhoicas/lavanderia-api/internal/domain"
)

// Column columna de un reporte: etiqueta visible, ruta al dato y formato opcional.
type Column struct {
	Label  string
	Path   string
	Format Format
}

// Definition todo lo que el ensamblador y el PDF necesitan saber de un tipo de reporte.
type Definition struct {
	Type      Type
	Title     string
	Columns   []Column
	TotalPath string // vacío: el reporte no lleva total
	Filename  string
}

var definitions = map[Type]Definition{
	TypeInforme: {
		Type:  TypeInforme,
		Title: "Reporte de Informes",
		Columns: []Column{
			{Label: "ID", Path: "id_informe"},
			{Label: "Fecha", Path: "fecha_generado", Format: FormatDate},
			{Label: "ID Factura", Path: "id_factura"},
			{Label: "Código Factura", Path: "factura.cod_factura"},
			{Label: "ID Gastos", Path: "id_gastos"},
			{Label: "Concepto Gasto", Path: "gastos.concepto_gasto"},
		},
		Filename: "informe-report.pdf",
	},
	TypeGastos: {
		Type:  TypeGastos,
		Title: "Reporte de Gastos",
		Columns: []Column{
			{Label: "ID", Path: "id_gastos"},
			{Label: "Concepto", Path: "concepto_gasto"},
			{Label: "Fecha", Path: "fecha_compra", Format: FormatDate},
			{Label: "Total", Path: "total_gastos", Format: FormatCurrency},
		},
		TotalPath: "total_gastos",
		Filename:  "gastos-report.pdf",
	},
	TypeFactura: {
		Type:  TypeFactura,
		Title: "Reporte de Facturas",
		Columns: []Column{
			{Label: "Código", Path: "cod_factura"},
			{Label: "Estado", Path: "estado"},
			{Label: "Fecha Creación", Path: "fecha_creacion_fact", Format: FormatDate},
			{Label: "Fecha Entrega", Path: "fecha_final_fact", Format: FormatDate},
			{Label: "Valor", Path: "valor_fact", Format: FormatCurrency},
			{Label: "Cliente", Path: "cliente.nombre_cliente"},
			{Label: "Teléfono", Path: "cliente.tel_cliente"},
			// el store devuelve la asociación como secuencia; se toma la primera sucursal
			{Label: "Sucursal", Path: "cliente.sucursal_cliente.0.sucursal.nom_sucursal"},
		},
		TotalPath: "valor_fact",
		Filename:  "factura-report.pdf",
	},
}

// DefinitionFor devuelve la definición del tipo o domain.ErrInvalidType.
func DefinitionFor(t Type) (Definition, error) {
	def, ok := definitions[t]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", domain.ErrInvalidType, string(t))
	}
	cols := make([]Column, len(def.Columns))
	copy(cols, def.Columns)
	def.Columns = cols
	return def, nil
}

// ColumnsFor devuelve las columnas ordenadas del tipo.
func ColumnsFor(t Type) ([]Column, error) {
	def, err := DefinitionFor(t)
	if err != nil {
		return nil, err
	}
	return def.Columns, nil
}

// Headers etiquetas de las columnas en orden.
func Headers(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}
