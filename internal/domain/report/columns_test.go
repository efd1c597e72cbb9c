package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/report"
)

func TestColumnsFor_Factura(t *testing.T) {
	cols, err := report.ColumnsFor(report.TypeFactura)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Código", "Estado", "Fecha Creación", "Fecha Entrega", "Valor", "Cliente", "Teléfono", "Sucursal"},
		report.Headers(cols))
	assert.Equal(t, report.FormatCurrency, cols[4].Format)
	assert.Equal(t, "cliente.sucursal_cliente.0.sucursal.nom_sucursal", cols[7].Path)
}

func TestColumnsFor_TodosLosTipos(t *testing.T) {
	for _, typ := range report.Types() {
		cols, err := report.ColumnsFor(typ)
		require.NoError(t, err, typ)
		assert.NotEmpty(t, cols, typ)
	}
}

func TestColumnsFor_TipoDesconocido(t *testing.T) {
	_, err := report.ColumnsFor(report.Type("nomina"))
	assert.True(t, errors.Is(err, domain.ErrInvalidType))
}

func TestColumnsFor_DevuelveCopia(t *testing.T) {
	cols, err := report.ColumnsFor(report.TypeGastos)
	require.NoError(t, err)
	cols[0].Label = "mutado"

	again, err := report.ColumnsFor(report.TypeGastos)
	require.NoError(t, err)
	assert.Equal(t, "ID", again[0].Label)
}

func TestParseType_Alias(t *testing.T) {
	cases := map[string]report.Type{
		"factura": report.TypeFactura,
		"invoice": report.TypeFactura,
		"GASTOS":  report.TypeGastos,
		"expense": report.TypeGastos,
		" log ":   report.TypeInforme,
	}
	for in, want := range cases {
		got, err := report.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := report.ParseType("clientes")
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}
