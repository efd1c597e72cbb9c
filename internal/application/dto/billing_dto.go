package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fecha de la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClientRequest datos del cliente al crear una factura.
type ClientRequest struct {
	Name  string `json:"nombre_cliente" validate:"required"`
	Phone string `json:"tel_cliente" validate:"required"`
}

// BranchRequest datos de la sucursal al crear una factura.
type BranchRequest struct {
	Name    string `json:"nom_sucursal" validate:"required"`
	Address string `json:"direccion_suc" validate:"required"`
}

// InvoiceItemRequest línea de factura: prenda, cantidad y valor unitario.
type InvoiceItemRequest struct {
	Description string          `json:"especificacion_prenda" validate:"required"`
	Quantity    int             `json:"cantidad_prendas" validate:"gt=0,lte=2147483647"` // columna INTEGER
	UnitPrice   decimal.Decimal `json:"valor_uni_prenda"`
}

// CreateInvoiceRequest body para POST /api/bill.
type CreateInvoiceRequest struct {
	Client        *ClientRequest       `json:"cliente" validate:"required"`
	Branch        *BranchRequest       `json:"sucursal" validate:"required"`
	Code          string               `json:"cod_factura" validate:"required"`
	CreatedDate   string               `json:"fecha_creacion_fact" validate:"required"`
	CompletedDate string               `json:"fecha_final_fact,omitempty"`
	Amount        decimal.Decimal      `json:"valor_fact"`
	Items         []InvoiceItemRequest `json:"factura_detalle" validate:"required,min=1,dive"`
}

// UpdateInvoiceRequest body para PUT /api/bill/:id.
type UpdateInvoiceRequest struct {
	CompletedDate string          `json:"fecha_final_fact,omitempty"`
	Amount        decimal.Decimal `json:"valor_fact"`
}

// ClientResponse cliente creado.
type ClientResponse struct {
	ID    int64  `json:"id_cliente"`
	Name  string `json:"nombre_cliente"`
	Phone string `json:"tel_cliente"`
}

// BranchResponse sucursal creada.
type BranchResponse struct {
	ID      int64  `json:"id_sucursal"`
	Name    string `json:"nom_sucursal"`
	Address string `json:"direccion_suc"`
}

// ClientBranchResponse enlace cliente-sucursal creado.
type ClientBranchResponse struct {
	ClientID int64 `json:"id_cliente"`
	BranchID int64 `json:"id_sucursal"`
}

// InvoiceResponse cabecera de factura.
type InvoiceResponse struct {
	ID            int64           `json:"id_factura"`
	Code          string          `json:"cod_factura"`
	CreatedDate   string          `json:"fecha_creacion_fact"`
	CompletedDate *string         `json:"fecha_final_fact"`
	Amount        decimal.Decimal `json:"valor_fact"`
	Status        string          `json:"estado"`
	ClientID      int64           `json:"id_cliente"`
}

// InvoiceDetailResponse línea de factura persistida.
type InvoiceDetailResponse struct {
	ID          int64           `json:"id_factura_detalle"`
	InvoiceID   int64           `json:"id_factura"`
	Description string          `json:"especificacion_prenda"`
	Quantity    int             `json:"cantidad_prendas"`
	UnitPrice   decimal.Decimal `json:"valor_uni_prenda"`
}

// InvoiceCreationResult todo lo que materializó POST /api/bill.
type InvoiceCreationResult struct {
	Message string                  `json:"message"`
	Client  ClientResponse          `json:"cliente"`
	Branch  BranchResponse          `json:"sucursal"`
	Link    ClientBranchResponse    `json:"sucursal_cliente"`
	Invoice InvoiceResponse         `json:"factura"`
	Details []InvoiceDetailResponse `json:"detalles"`
}

// InvoiceMutationResponse respuesta de actualización o cambio de estado.
type InvoiceMutationResponse struct {
	Message string          `json:"message"`
	Invoice InvoiceResponse `json:"factura"`
}

// ParseDate acepta YYYY-MM-DD o RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// FormatDate formatea en YYYY-MM-DD; nil si t es nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
