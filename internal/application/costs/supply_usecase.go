package costs

import (
	"context"
	"fmt"

	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/internal/application/saga"
	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/lavanderia-api/internal/domain/repository"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// SupplyUseCase insumos con sus detalles (insumo, detalle_insumo, insumo_detalle).
// Las cascadas son manuales y en orden; los detalles huérfanos se eliminan.
type SupplyUseCase struct {
	supplyRepo  repository.SupplyRepository
	expenseRepo repository.ExpenseRepository
	compensate  bool
	log         *logger.Logger
}

// NewSupplyUseCase construye el caso de uso. compensate sigue la misma política que la facturación.
func NewSupplyUseCase(supplyRepo repository.SupplyRepository, expenseRepo repository.ExpenseRepository, compensate bool, log *logger.Logger) *SupplyUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SupplyUseCase{
		supplyRepo:  supplyRepo,
		expenseRepo: expenseRepo,
		compensate:  compensate,
		log:         log.Component("costs"),
	}
}

func (uc *SupplyUseCase) List(ctx context.Context) ([]dto.SupplyResponse, error) {
	list, err := uc.supplyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar insumos: %w", err)
	}
	out := make([]dto.SupplyResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplyResponse(s))
	}
	return out, nil
}

// Create escribe el insumo, sus detalles y los enlaces.
func (uc *SupplyUseCase) Create(ctx context.Context, in dto.SupplyRequest) (*dto.SupplyResponse, error) {
	if err := validateSupply(in); err != nil {
		return nil, err
	}
	supply := &entity.Supply{Name: in.Name, Value: in.Value}
	details := newDetails(in.Details)

	err := saga.New("crear_insumo", uc.compensate, uc.log).Run(ctx,
		saga.Step{
			Name: StepSupply,
			Do:   func(ctx context.Context) error { return uc.supplyRepo.Create(ctx, supply) },
			Undo: func(ctx context.Context) error { return uc.supplyRepo.Delete(ctx, supply.ID) },
		},
		saga.Step{
			Name: StepDetails,
			Do:   func(ctx context.Context) error { return uc.supplyRepo.CreateDetails(ctx, details) },
			Undo: func(ctx context.Context) error { return uc.supplyRepo.DeleteDetails(ctx, detailIDs(details)) },
		},
		saga.Step{
			Name: StepLinks,
			Do: func(ctx context.Context) error {
				return uc.supplyRepo.LinkDetails(ctx, supply.ID, detailIDs(details))
			},
		},
	)
	if err != nil {
		return nil, err
	}
	supply.Details = derefDetails(details)
	resp := toSupplyResponse(supply)
	return &resp, nil
}

// Pasos de las escrituras de insumos, en el orden en que se aplican.
const (
	StepSupply        = "insumo"
	StepUnlinkOld     = "insumo_detalle_previo"
	StepDetails       = "detalle_insumo"
	StepLinks         = "insumo_detalle"
	StepOrphanDetails = "detalle_insumo_huerfano"
	StepReports       = "informe"
	StepExpenses      = "gastos"
)

// Update reemplaza campos y detalles del insumo. Los detalles que quedan sin
// ningún insumo que los enlace se eliminan. Si falla un paso se restauran los
// campos y los enlaces anteriores y se borran los detalles nuevos.
func (uc *SupplyUseCase) Update(ctx context.Context, id int64, in dto.SupplyRequest) (*dto.SupplyResponse, error) {
	if err := validateSupply(in); err != nil {
		return nil, err
	}
	prev, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	supply := &entity.Supply{ID: id, Name: in.Name, Value: in.Value}
	details := newDetails(in.Details)
	var oldIDs []int64

	err = saga.New("actualizar_insumo", uc.compensate, uc.log).Run(ctx,
		saga.Step{
			Name: StepSupply,
			Do:   func(ctx context.Context) error { return uc.supplyRepo.Update(ctx, supply) },
			Undo: func(ctx context.Context) error {
				return uc.supplyRepo.Update(ctx, &entity.Supply{ID: id, Name: prev.Name, Value: prev.Value})
			},
		},
		saga.Step{
			Name: StepUnlinkOld,
			Do: func(ctx context.Context) error {
				ids, err := uc.supplyRepo.UnlinkAll(ctx, id)
				oldIDs = ids
				return err
			},
			Undo: func(ctx context.Context) error { return uc.supplyRepo.LinkDetails(ctx, id, oldIDs) },
		},
		saga.Step{
			Name: StepDetails,
			Do:   func(ctx context.Context) error { return uc.supplyRepo.CreateDetails(ctx, details) },
			Undo: func(ctx context.Context) error { return uc.supplyRepo.DeleteDetails(ctx, detailIDs(details)) },
		},
		saga.Step{
			Name: StepLinks,
			Do:   func(ctx context.Context) error { return uc.supplyRepo.LinkDetails(ctx, id, detailIDs(details)) },
			Undo: func(ctx context.Context) error {
				_, err := uc.supplyRepo.UnlinkAll(ctx, id)
				return err
			},
		},
		saga.Step{
			Name: StepOrphanDetails,
			Do:   func(ctx context.Context) error { return uc.supplyRepo.DeleteOrphanDetails(ctx, oldIDs) },
		},
	)
	if err != nil {
		return nil, err
	}
	supply.Details = derefDetails(details)
	resp := toSupplyResponse(supply)
	return &resp, nil
}

// Delete elimina, en ese orden, informes y gastos del insumo, sus enlaces, los
// detalles huérfanos y el insumo. Los borrados no se deshacen: si falla un paso
// devuelve *domain.DependencyWriteError con los pasos ya borrados.
func (uc *SupplyUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.mustGet(ctx, id); err != nil {
		return err
	}
	var oldIDs []int64
	err := saga.New("eliminar_insumo", false, uc.log).Run(ctx,
		saga.Step{Name: StepReports, Do: func(ctx context.Context) error { return uc.expenseRepo.DeleteReportsBySupply(ctx, id) }},
		saga.Step{Name: StepExpenses, Do: func(ctx context.Context) error { return uc.expenseRepo.DeleteBySupply(ctx, id) }},
		saga.Step{
			Name: StepLinks,
			Do: func(ctx context.Context) error {
				ids, err := uc.supplyRepo.UnlinkAll(ctx, id)
				oldIDs = ids
				return err
			},
		},
		saga.Step{Name: StepOrphanDetails, Do: func(ctx context.Context) error { return uc.supplyRepo.DeleteOrphanDetails(ctx, oldIDs) }},
		saga.Step{Name: StepSupply, Do: func(ctx context.Context) error { return uc.supplyRepo.Delete(ctx, id) }},
	)
	if err != nil {
		return err
	}
	uc.log.Info().Int64("id_insumo", id).Int("detalles", len(oldIDs)).Msg("insumo eliminado")
	return nil
}

func (uc *SupplyUseCase) mustGet(ctx context.Context, id int64) (*entity.Supply, error) {
	s, err := uc.supplyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener insumo %d: %w", id, err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func validateSupply(in dto.SupplyRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	if in.Value.IsNegative() {
		return domain.NewValidationError("valor_insumo")
	}
	return nil
}

func newDetails(in []dto.SupplyDetailRequest) []*entity.SupplyDetail {
	out := make([]*entity.SupplyDetail, len(in))
	for i, d := range in {
		out[i] = &entity.SupplyDetail{Concept: d.Concept, Weight: d.Weight}
	}
	return out
}

func detailIDs(details []*entity.SupplyDetail) []int64 {
	ids := make([]int64, 0, len(details))
	for _, d := range details {
		if d.ID != 0 {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

func derefDetails(details []*entity.SupplyDetail) []entity.SupplyDetail {
	out := make([]entity.SupplyDetail, len(details))
	for i, d := range details {
		out[i] = *d
	}
	return out
}

func toSupplyResponse(s *entity.Supply) dto.SupplyResponse {
	resp := dto.SupplyResponse{
		ID:      s.ID,
		Name:    s.Name,
		Value:   s.Value,
		Details: make([]dto.SupplyDetailResponse, 0, len(s.Details)),
	}
	for _, d := range s.Details {
		resp.Details = append(resp.Details, dto.SupplyDetailResponse{ID: d.ID, Concept: d.Concept, Weight: d.Weight})
	}
	return resp
}
