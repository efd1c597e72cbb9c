package dto

import "github.com/shopspring/decimal"

// ReportRecordsRequest body para POST /api/reports/:type/table y /pdf.
type ReportRecordsRequest struct {
	Data []map[string]any `json:"data" validate:"required"`
}

// ReportTableResponse tabla plana lista para mostrar.
type ReportTableResponse struct {
	Type           string           `json:"type"`
	Title          string           `json:"title"`
	Headers        []string         `json:"headers"`
	Rows           [][]string       `json:"rows"`
	Total          *decimal.Decimal `json:"total,omitempty"`
	FormattedTotal string           `json:"formatted_total,omitempty"`
}
