package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/internal/application/saga"
	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
)

// ListInvoices devuelve las facturas con cliente, sucursales y detalles anidados.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context) ([]map[string]any, error) {
	list, err := uc.invoiceRepo.ListNested(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	if list == nil {
		list = []map[string]any{}
	}
	return list, nil
}

// UpdateInvoice cambia el valor y, si viene, la fecha final; una fecha final
// marca la factura como Entregado.
func (uc *InvoiceUseCase) UpdateInvoice(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceMutationResponse, error) {
	var fields []string
	if !in.Amount.IsPositive() {
		fields = append(fields, "valor_fact")
	}
	var completed *time.Time
	if in.CompletedDate != "" {
		t, err := dto.ParseDate(in.CompletedDate)
		if err != nil {
			fields = append(fields, "fecha_final_fact")
		}
		completed = &t
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	inv, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Amount = in.Amount
	if completed != nil {
		inv.CompletedDate = completed
		inv.Status = entity.StatusDelivered
	}
	if err := uc.save(ctx, inv); err != nil {
		return nil, err
	}
	return &dto.InvoiceMutationResponse{
		Message: "Factura actualizada exitosamente",
		Invoice: toInvoiceResponse(inv),
	}, nil
}

// ToggleStatus alterna Pendiente y Entregado. Al pasar a Entregado fija la fecha
// final a hoy; al volver a Pendiente la borra.
func (uc *InvoiceUseCase) ToggleStatus(ctx context.Context, id int64) (*dto.InvoiceMutationResponse, error) {
	inv, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Status = inv.NextStatus()
	if inv.Status == entity.StatusDelivered {
		y, m, d := uc.now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		inv.CompletedDate = &today
	} else {
		inv.CompletedDate = nil
	}
	if err := uc.save(ctx, inv); err != nil {
		return nil, err
	}
	return &dto.InvoiceMutationResponse{
		Message: "Estado de factura actualizado correctamente",
		Invoice: toInvoiceResponse(inv),
	}, nil
}

// DeleteInvoice elimina los informes que la referencian, sus detalles y la factura,
// en ese orden. Los borrados no se deshacen: si falla un paso devuelve
// *domain.DependencyWriteError con los pasos ya borrados como pendientes.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, id int64) error {
	if _, err := uc.mustGet(ctx, id); err != nil {
		return err
	}
	err := saga.New("eliminar_factura", false, uc.log).Run(ctx,
		saga.Step{Name: StepReports, Do: func(ctx context.Context) error { return uc.reportRepo.DeleteByInvoice(ctx, id) }},
		saga.Step{Name: StepDetails, Do: func(ctx context.Context) error { return uc.invoiceRepo.DeleteDetails(ctx, id) }},
		saga.Step{Name: StepInvoice, Do: func(ctx context.Context) error { return uc.invoiceRepo.Delete(ctx, id) }},
	)
	if err != nil {
		return err
	}
	uc.log.Info().Int64("id_factura", id).Msg("factura eliminada")
	return nil
}

func (uc *InvoiceUseCase) mustGet(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura %d: %w", id, err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// save escribe solo si nadie modificó la factura desde que se leyó.
func (uc *InvoiceUseCase) save(ctx context.Context, inv *entity.Invoice) error {
	ok, err := uc.invoiceRepo.UpdateIfVersion(ctx, inv, inv.Version)
	if err != nil {
		return fmt.Errorf("actualizar factura %d: %w", inv.ID, err)
	}
	if !ok {
		uc.log.Warn().Int64("id_factura", inv.ID).Int("version", inv.Version).Msg("actualización concurrente detectada")
		return domain.ErrConflict
	}
	return nil
}
