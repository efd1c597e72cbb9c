package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/report"
)

func TestBuildSearchFilter_Factura(t *testing.T) {
	f, err := report.BuildSearchFilter("factura", "ana")
	require.NoError(t, err)

	assert.Equal(t, report.TypeFactura, f.Type)
	assert.Equal(t, []string{
		"cod_factura", "valor_fact", "cliente.nombre_cliente", "cliente.tel_cliente",
		"cliente.sucursal_cliente.sucursal.nom_sucursal",
	}, f.Fields())
	for _, p := range f.Any {
		assert.Equal(t, report.OpILike, p.Op)
		assert.Equal(t, "%ana%", p.Pattern)
	}
}

func TestBuildSearchFilter_AliasIngles(t *testing.T) {
	f, err := report.BuildSearchFilter("expense", "jabón")
	require.NoError(t, err)
	assert.Equal(t, report.TypeGastos, f.Type)
	assert.Equal(t, []string{"concepto_gasto", "total_gastos"}, f.Fields())

	f, err = report.BuildSearchFilter("log", "12")
	require.NoError(t, err)
	assert.Equal(t, report.TypeInforme, f.Type)
	assert.Len(t, f.Any, 4)
}

func TestBuildSearchFilter_Errores(t *testing.T) {
	_, err := report.BuildSearchFilter("factura", "")
	assert.ErrorIs(t, err, domain.ErrMissingTerm)

	_, err = report.BuildSearchFilter("factura", "   ")
	assert.ErrorIs(t, err, domain.ErrMissingTerm)

	_, err = report.BuildSearchFilter("nomina", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestBuildSearchFilter_EscapaComodines(t *testing.T) {
	f, err := report.BuildSearchFilter("gastos", `50%_off\`)
	require.NoError(t, err)
	assert.Equal(t, `%50\%\_off\\%`, f.Any[0].Pattern)
}

func TestSearchFields_DevuelveCopia(t *testing.T) {
	fields := report.SearchFields(report.TypeGastos)
	fields[0] = "mutado"
	assert.Equal(t, "concepto_gasto", report.SearchFields(report.TypeGastos)[0])
}
