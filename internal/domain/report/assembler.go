package report

import (
	"github.com/shopspring/decimal"
)

// Table filas planas listas para JSON o PDF.
type Table struct {
	Type    Type
	Title   string
	Headers []string
	Rows    [][]string
	// Total solo cuando la definición declara TotalPath.
	Total          *decimal.Decimal
	FormattedTotal string
}

// Assembler aplica columnas + Resolve sobre un conjunto de registros.
type Assembler struct {
	formats Formats
}

// NewAssembler construye el ensamblador con los formateadores del locale.
func NewAssembler(formats Formats) *Assembler {
	return &Assembler{formats: formats}
}

// Assemble produce una fila por registro, en el mismo orden de entrada.
// El formateador solo se aplica a columnas que lo declaran y a valores presentes.
func (a *Assembler) Assemble(records []Record, cols []Column) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(cols))
		for i, col := range cols {
			v, ok := Resolve(rec, col.Path)
			if !ok {
				row[i] = NotAvailable
				continue
			}
			if f := a.formats.formatter(col.Format); f != nil {
				row[i] = f(v)
				continue
			}
			row[i] = Text(v)
		}
		rows = append(rows, row)
	}
	return rows
}

// Build ensambla la tabla completa de una definición, con total si aplica.
func (a *Assembler) Build(def Definition, records []Record) *Table {
	t := &Table{
		Type:    def.Type,
		Title:   def.Title,
		Headers: Headers(def.Columns),
		Rows:    a.Assemble(records, def.Columns),
	}
	if def.TotalPath != "" {
		total := Sum(records, def.TotalPath)
		t.Total = &total
		if a.formats.Currency != nil {
			t.FormattedTotal = a.formats.Currency(total)
		} else {
			t.FormattedTotal = total.StringFixed(2)
		}
	}
	return t
}

// Sum suma los valores numéricos en path; ausentes y no numéricos se ignoran.
func Sum(records []Record, path string) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		v, ok := Resolve(rec, path)
		if !ok {
			continue
		}
		if d, ok := ToDecimal(v); ok {
			total = total.Add(d)
		}
	}
	return total
}
