package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lavanderia-api/internal/application/dto"
	"github.com/jhoicas/lavanderia-api/internal/domain"
	"github.com/jhoicas/lavanderia-api/pkg/logger"
)

// errorMapper traduce errores de dominio a respuestas HTTP.
type errorMapper struct {
	log *logger.Logger
}

func (m errorMapper) write(c *fiber.Ctx, err error) error {
	status, body := classify(err)
	if status >= fiber.StatusInternalServerError && m.log != nil {
		m.log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).Str("path", c.Path()).
			Msg("error en la petición")
	}
	return c.Status(status).JSON(body)
}

// classify devuelve el status y el cuerpo para err. El orden importa: los errores
// tipados se revisan antes que los centinelas que envuelven.
func classify(err error) (int, dto.ErrorResponse) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error(), Details: verr.Fields}
	}
	var dwerr *domain.DependencyWriteError
	if errors.As(err, &dwerr) {
		pending := dwerr.Pending()
		if pending == nil {
			pending = []string{}
		}
		return fiber.StatusInternalServerError, dto.ErrorResponse{
			Code:    "DEPENDENCY_WRITE",
			Message: dwerr.Error(),
			Details: dto.DependencyWriteDetails{
				Step:        dwerr.Step,
				Committed:   dwerr.Committed,
				Compensated: dwerr.Compensated,
				Pending:     pending,
			},
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidType):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_TYPE", Message: err.Error()}
	case errors.Is(err, domain.ErrMissingTerm):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "MISSING_TERM", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: "el recurso fue modificado por otra petición, reintente"}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id")
	}
	return int64(id), nil
}
