package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lavanderia-api/internal/application/reports"
	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/report"
)

type fakeSource struct {
	records    map[report.Type][]report.Record
	lastFilter *report.Filter
	err        error
}

func (f *fakeSource) Fetch(_ context.Context, t report.Type) ([]report.Record, error) {
	return f.records[t], f.err
}

func (f *fakeSource) Search(_ context.Context, filter report.Filter) ([]report.Record, error) {
	f.lastFilter = &filter
	return f.records[filter.Type], f.err
}

type fakeRenderer struct {
	table *report.Table
}

func (r *fakeRenderer) Render(t *report.Table, _ time.Time) ([]byte, error) {
	r.table = t
	return []byte("%PDF-1.4"), nil
}

func invoiceRecords() []report.Record {
	return []report.Record{
		{
			"cod_factura": "F-002",
			"estado":      "Entregado",
			"valor_fact":  30000.0,
			"cliente": map[string]any{
				"nombre_cliente": "Ana",
				"tel_cliente":    "123",
				"sucursal_cliente": []any{
					map[string]any{"sucursal": map[string]any{"nom_sucursal": "Centro"}},
				},
			},
		},
		{"cod_factura": "F-001", "estado": "Pendiente", "valor_fact": 20000.0},
	}
}

func newUC(src *fakeSource, r *fakeRenderer) *reports.UseCase {
	return reports.NewUseCase(src, report.NewFormats("en-US", "$"), r, nil)
}

func TestFetch_TipoInvalido(t *testing.T) {
	_, err := newUC(&fakeSource{}, &fakeRenderer{}).Fetch(context.Background(), "clientes")
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestFetch_AliasYVacio(t *testing.T) {
	records, err := newUC(&fakeSource{}, &fakeRenderer{}).Fetch(context.Background(), "invoice")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSearch_ConstruyeFiltro(t *testing.T) {
	src := &fakeSource{records: map[report.Type][]report.Record{report.TypeFactura: invoiceRecords()}}

	records, err := newUC(src, &fakeRenderer{}).Search(context.Background(), "factura", " ana ")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	require.NotNil(t, src.lastFilter)
	assert.Equal(t, "ana", src.lastFilter.Term)
	assert.Contains(t, src.lastFilter.Fields(), "cliente.nombre_cliente")
}

func TestSearch_TerminoVacio(t *testing.T) {
	src := &fakeSource{}
	_, err := newUC(src, &fakeRenderer{}).Search(context.Background(), "factura", "  ")
	assert.ErrorIs(t, err, domain.ErrMissingTerm)
	assert.Nil(t, src.lastFilter)
}

func TestSearch_ErrorDelStore(t *testing.T) {
	boom := errors.New("conexión perdida")
	_, err := newUC(&fakeSource{err: boom}, &fakeRenderer{}).Search(context.Background(), "gastos", "jabón")
	assert.ErrorIs(t, err, boom)
}

func TestTable_FacturasConTotal(t *testing.T) {
	table, err := newUC(&fakeSource{}, &fakeRenderer{}).Table("factura", invoiceRecords())
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "F-002", table.Rows[0][0])
	assert.Equal(t, "$30,000.00", table.Rows[0][4])
	assert.Equal(t, "Centro", table.Rows[0][7])
	assert.Equal(t, report.NotAvailable, table.Rows[1][7])
	require.NotNil(t, table.Total)
	assert.Equal(t, "$50,000.00", table.FormattedTotal)
}

func TestPDF_UsaDefinicionDelTipo(t *testing.T) {
	r := &fakeRenderer{}
	doc, name, err := newUC(&fakeSource{}, r).PDF("facturas", invoiceRecords())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), doc)
	assert.Equal(t, "factura-report.pdf", name)
	assert.Equal(t, "Reporte de Facturas", r.table.Title)
}

func TestPDFFromStore_ConYSinTermino(t *testing.T) {
	src := &fakeSource{records: map[report.Type][]report.Record{
		report.TypeGastos: {{"id_gastos": 1, "concepto_gasto": "Jabón", "total_gastos": 12000}},
	}}
	r := &fakeRenderer{}
	uc := newUC(src, r)

	_, name, err := uc.PDFFromStore(context.Background(), "expense", "")
	require.NoError(t, err)
	assert.Equal(t, "gastos-report.pdf", name)
	assert.Nil(t, src.lastFilter)
	assert.Len(t, r.table.Rows, 1)

	_, _, err = uc.PDFFromStore(context.Background(), "gastos", "jab")
	require.NoError(t, err)
	require.NotNil(t, src.lastFilter)
}

func TestPDFFromStore_TerminoEnBlancoLeeTodo(t *testing.T) {
	src := &fakeSource{records: map[report.Type][]report.Record{
		report.TypeGastos: {{"id_gastos": 1, "concepto_gasto": "Jabón", "total_gastos": 12000}},
	}}
	r := &fakeRenderer{}

	_, _, err := newUC(src, r).PDFFromStore(context.Background(), "gastos", "  \t ")
	require.NoError(t, err)
	assert.Nil(t, src.lastFilter)
	assert.Len(t, r.table.Rows, 1)
}
