// Package saga ejecuta escrituras multi-tabla sin transacción común: pasos en
// orden estricto, cada uno con su acción compensatoria, registrando qué quedó
// confirmado para poder deshacerlo o reportarlo.
package saga

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// Step paso de la saga. Undo nil: el paso no se puede deshacer y, si quedó
// confirmado, se reporta como pendiente.
type Step struct {
	Name string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

// Saga coordina una secuencia de pasos dependientes.
type Saga struct {
	name       string
	compensate bool
	log        *logger.Logger
}

// New construye la saga. Con compensate=false un fallo deja los pasos previos
// escritos y solo se reportan (reconciliación manual).
func New(name string, compensate bool, log *logger.Logger) *Saga {
	if log == nil {
		log = logger.Nop()
	}
	return &Saga{name: name, compensate: compensate, log: log}
}

// Run ejecuta los pasos en orden. Si el paso k falla devuelve *domain.DependencyWriteError
// con los pasos 1..k-1 en Committed; con compensación activa los deshace en orden inverso.
// Las compensaciones usan un contexto sin cancelación para no quedar a medias si el
// del request ya expiró.
func (s *Saga) Run(ctx context.Context, steps ...Step) error {
	runID := uuid.NewString()
	committed := make([]Step, 0, len(steps))

	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return s.fail(ctx, runID, st.Name, committed, err)
		}
		if err := st.Do(ctx); err != nil {
			return s.fail(ctx, runID, st.Name, committed, err)
		}
		committed = append(committed, st)
		s.log.Debug().Str("saga", s.name).Str("run_id", runID).Str("step", st.Name).Msg("paso confirmado")
	}
	return nil
}

func (s *Saga) fail(ctx context.Context, runID, stepName string, committed []Step, cause error) error {
	names := make([]string, len(committed))
	for i, st := range committed {
		names[i] = st.Name
	}
	werr := &domain.DependencyWriteError{
		Step:      stepName,
		Committed: names,
		Err:       cause,
	}
	s.log.Error().Err(cause).
		Str("saga", s.name).Str("run_id", runID).Str("step", stepName).
		Strs("committed", names).Bool("compensate", s.compensate).
		Msg("paso fallido")

	// sin pasos confirmados no hay nada que deshacer ni reconciliar
	if !s.compensate || len(committed) == 0 {
		return werr
	}

	werr.Compensated = true
	undoCtx := context.WithoutCancel(ctx)
	var left []string
	for i := len(committed) - 1; i >= 0; i-- {
		st := committed[i]
		if st.Undo == nil {
			left = append(left, st.Name)
			continue
		}
		if err := st.Undo(undoCtx); err != nil {
			left = append(left, st.Name)
			werr.CompensationErrors = append(werr.CompensationErrors, fmt.Errorf("compensar %s: %w", st.Name, err))
			s.log.Error().Err(err).Str("saga", s.name).Str("run_id", runID).Str("step", st.Name).
				Msg("compensación fallida, requiere reconciliación manual")
			continue
		}
		s.log.Info().Str("saga", s.name).Str("run_id", runID).Str("step", st.Name).Msg("paso compensado")
	}
	// en el orden original de escritura
	for i := len(left) - 1; i >= 0; i-- {
		werr.Uncompensated = append(werr.Uncompensated, left[i])
	}
	return werr
}
