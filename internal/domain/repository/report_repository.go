package repository

import (
	"context"

	"github.com/jhoicas/lavanderia-api/internal/domain/report"
)

// ReportSource lee registros anidados para los reportes, ordenados por fecha descendente.
type ReportSource interface {
	Fetch(ctx context.Context, t report.Type) ([]report.Record, error)
	Search(ctx context.Context, filter report.Filter) ([]report.Record, error)
}
