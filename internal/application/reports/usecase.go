// Package reports lee registros anidados del store y los convierte en tablas
// planas o PDF según la definición de cada tipo de reporte.
package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/lavanderia-api/internal/domain/report"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// PDFRenderer dibuja una tabla de reporte como documento PDF.
type PDFRenderer interface {
	Render(table *report.Table, generatedAt time.Time) ([]byte, error)
}

// UseCase consulta, búsqueda y renderizado de reportes.
type UseCase struct {
	source    repository.ReportSource
	assembler *report.Assembler
	pdf       PDFRenderer
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(source repository.ReportSource, formats report.Formats, pdf PDFRenderer, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		source:    source,
		assembler: report.NewAssembler(formats),
		pdf:       pdf,
		log:       log.Component("reports"),
		now:       time.Now,
	}
}

// Fetch devuelve todos los registros del tipo, del más reciente al más antiguo.
func (uc *UseCase) Fetch(ctx context.Context, entityType string) ([]report.Record, error) {
	t, err := report.ParseType(entityType)
	if err != nil {
		return nil, err
	}
	records, err := uc.source.Fetch(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", t, err)
	}
	return nonNil(records), nil
}

// Search filtra por coincidencia parcial de term en los campos de búsqueda del tipo.
func (uc *UseCase) Search(ctx context.Context, entityType, term string) ([]report.Record, error) {
	f, err := report.BuildSearchFilter(entityType, term)
	if err != nil {
		return nil, err
	}
	records, err := uc.source.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("buscar %s: %w", f.Type, err)
	}
	uc.log.Debug().Str("type", string(f.Type)).Str("term", f.Term).Int("results", len(records)).Msg("búsqueda de reporte")
	return nonNil(records), nil
}

// Table aplana records con las columnas del tipo.
func (uc *UseCase) Table(entityType string, records []report.Record) (*report.Table, error) {
	t, err := report.ParseType(entityType)
	if err != nil {
		return nil, err
	}
	def, err := report.DefinitionFor(t)
	if err != nil {
		return nil, err
	}
	return uc.assembler.Build(def, records), nil
}

// PDF renderiza records recibidos del cliente. Devuelve el documento y el nombre de archivo.
func (uc *UseCase) PDF(entityType string, records []report.Record) ([]byte, string, error) {
	t, err := report.ParseType(entityType)
	if err != nil {
		return nil, "", err
	}
	def, err := report.DefinitionFor(t)
	if err != nil {
		return nil, "", err
	}
	table := uc.assembler.Build(def, records)
	doc, err := uc.pdf.Render(table, uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf %s: %w", t, err)
	}
	return doc, def.Filename, nil
}

// PDFFromStore lee del store (todo, o filtrado si term no está vacío) y renderiza el PDF.
func (uc *UseCase) PDFFromStore(ctx context.Context, entityType, term string) ([]byte, string, error) {
	var (
		records []report.Record
		err     error
	)
	if strings.TrimSpace(term) == "" {
		records, err = uc.Fetch(ctx, entityType)
	} else {
		records, err = uc.Search(ctx, entityType, term)
	}
	if err != nil {
		return nil, "", err
	}
	return uc.PDF(entityType, records)
}

func nonNil(records []report.Record) []report.Record {
	if records == nil {
		return []report.Record{}
	}
	return records
}
