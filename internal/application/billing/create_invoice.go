package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/internal/application/saga"
	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// Pasos de la creación de factura, en el orden en que se escriben.
const (
	StepClient       = "cliente"
	StepBranch       = "sucursal"
	StepClientBranch = "sucursal_cliente"
	StepInvoice      = "factura"
	StepDetails      = "factura_detalle"
	// solo en el borrado: informes que referencian la factura
	StepReports      = "informe"
)

// InvoiceUseCase crea, actualiza, cambia de estado, elimina y lista facturas.
// El store no ofrece transacciones entre sentencias: la creación es una saga
// de cinco escrituras dependientes.
type InvoiceUseCase struct {
	clientRepo  repository.ClientRepository
	branchRepo  repository.BranchRepository
	linkRepo    repository.ClientBranchRepository
	invoiceRepo repository.InvoiceRepository
	reportRepo  repository.ReportMetaRepository
	cfg         Config
	log         *logger.Logger
	now         Clock
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	clientRepo repository.ClientRepository,
	branchRepo repository.BranchRepository,
	linkRepo repository.ClientBranchRepository,
	invoiceRepo repository.InvoiceRepository,
	reportRepo repository.ReportMetaRepository,
	cfg Config,
	log *logger.Logger,
) *InvoiceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceUseCase{
		clientRepo:  clientRepo,
		branchRepo:  branchRepo,
		linkRepo:    linkRepo,
		invoiceRepo: invoiceRepo,
		reportRepo:  reportRepo,
		cfg:         cfg,
		log:         log.Component("billing"),
		now:         time.Now,
	}
}

// WithClock reemplaza la fuente de la fecha actual.
func (uc *InvoiceUseCase) WithClock(c Clock) *InvoiceUseCase {
	uc.now = c
	return uc
}

// CreateInvoice valida la entrada y escribe cliente, sucursal, enlace, factura y
// detalles en ese orden. Si la validación falla no se escribe nada. Si falla un
// paso devuelve *domain.DependencyWriteError.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceCreationResult, error) {
	created, completed, err := validateCreate(in)
	if err != nil {
		return nil, err
	}

	client := &entity.Client{Name: in.Client.Name, Phone: in.Client.Phone}
	branch := &entity.Branch{Name: in.Branch.Name, Address: in.Branch.Address}
	var link entity.ClientBranch
	inv := &entity.Invoice{
		Code:          in.Code,
		CreatedDate:   created,
		CompletedDate: completed,
		Amount:        in.Amount,
		Status:        entity.StatusPending,
	}
	if completed != nil {
		inv.Status = entity.StatusDelivered
	}
	details := make([]*entity.InvoiceDetail, len(in.Items))
	for i, item := range in.Items {
		details[i] = &entity.InvoiceDetail{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	run := saga.New("crear_factura", uc.cfg.Compensate, uc.log)
	err = run.Run(ctx,
		saga.Step{
			Name: StepClient,
			Do:   func(ctx context.Context) error { return uc.clientRepo.Create(ctx, client) },
			Undo: func(ctx context.Context) error { return uc.clientRepo.Delete(ctx, client.ID) },
		},
		saga.Step{
			Name: StepBranch,
			Do:   func(ctx context.Context) error { return uc.branchRepo.Create(ctx, branch) },
			Undo: func(ctx context.Context) error { return uc.branchRepo.Delete(ctx, branch.ID) },
		},
		saga.Step{
			Name: StepClientBranch,
			Do: func(ctx context.Context) error {
				link = entity.ClientBranch{ClientID: client.ID, BranchID: branch.ID}
				return uc.linkRepo.Create(ctx, link)
			},
			Undo: func(ctx context.Context) error { return uc.linkRepo.Delete(ctx, link) },
		},
		saga.Step{
			Name: StepInvoice,
			Do: func(ctx context.Context) error {
				inv.ClientID = client.ID
				return uc.invoiceRepo.Create(ctx, inv)
			},
			Undo: func(ctx context.Context) error { return uc.invoiceRepo.Delete(ctx, inv.ID) },
		},
		saga.Step{
			Name: StepDetails,
			Do: func(ctx context.Context) error {
				for _, d := range details {
					d.InvoiceID = inv.ID
				}
				return uc.invoiceRepo.CreateDetails(ctx, details)
			},
		},
	)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("id_factura", inv.ID).Str("cod_factura", inv.Code).Int("detalles", len(details)).Msg("factura creada")

	res := &dto.InvoiceCreationResult{
		Message: "Factura, cliente, sucursal y detalles creados exitosamente",
		Client:  dto.ClientResponse{ID: client.ID, Name: client.Name, Phone: client.Phone},
		Branch:  dto.BranchResponse{ID: branch.ID, Name: branch.Name, Address: branch.Address},
		Link:    dto.ClientBranchResponse{ClientID: link.ClientID, BranchID: link.BranchID},
		Invoice: toInvoiceResponse(inv),
		Details: make([]dto.InvoiceDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		res.Details = append(res.Details, dto.InvoiceDetailResponse{
			ID:          d.ID,
			InvoiceID:   d.InvoiceID,
			Description: d.Description,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
		})
	}
	return res, nil
}

// validateCreate reúne todos los campos inválidos antes de cualquier escritura.
func validateCreate(in dto.CreateInvoiceRequest) (created time.Time, completed *time.Time, err error) {
	var fields []string
	if verr := dto.Validate(in); verr != nil {
		var ve *domain.ValidationError
		if !errors.As(verr, &ve) {
			return created, nil, verr
		}
		fields = append(fields, ve.Fields...)
	}
	if !in.Amount.IsPositive() {
		fields = append(fields, "valor_fact")
	}
	if in.CreatedDate != "" {
		t, perr := dto.ParseDate(in.CreatedDate)
		if perr != nil {
			fields = append(fields, "fecha_creacion_fact")
		}
		created = t
	}
	if in.CompletedDate != "" {
		t, perr := dto.ParseDate(in.CompletedDate)
		if perr != nil {
			fields = append(fields, "fecha_final_fact")
		} else {
			completed = &t
		}
	}
	for i, item := range in.Items {
		if item.UnitPrice.IsNegative() {
			fields = append(fields, fmt.Sprintf("factura_detalle[%d].valor_uni_prenda", i))
		}
	}
	if len(fields) > 0 {
		return created, nil, domain.NewValidationError(fields...)
	}
	return created, completed, nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID,
		Code:          inv.Code,
		CreatedDate:   inv.CreatedDate.Format(dto.DateLayout),
		CompletedDate: dto.FormatDate(inv.CompletedDate),
		Amount:        inv.Amount,
		Status:        inv.Status,
		ClientID:      inv.ClientID,
	}
}
