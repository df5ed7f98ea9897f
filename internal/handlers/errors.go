package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/usersvc/internal/metrics"
	"github.com/example/usersvc/internal/services"
)

// Messages produced at the HTTP boundary.
const (
	MsgInvalidBody = "Datos inválidos"
	MsgInternal    = "Error interno del servidor"
)

type errorDetail struct {
	Timestamp time.Time `json:"timestamp"`
	Codigo    int       `json:"codigo"`
	Detail    string    `json:"detail"`
}

type errorResponse struct {
	Error []errorDetail `json:"error"`
}

// ErrorHandler renders every failure as a single-element error list.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, detail := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(errorResponse{
		Error: []errorDetail{{
			Timestamp: time.Now(),
			Codigo:    status,
			Detail:    detail,
		}},
	})
}

func classify(err error) (int, string) {
	var validationErr *services.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Message
	case errors.Is(err, services.ErrAlreadyExists):
		return fiber.StatusConflict, services.MsgUserExists
	case errors.Is(err, services.ErrInvalidToken):
		return fiber.StatusUnauthorized, services.MsgInvalidToken
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, services.MsgUserNotFound
	case errors.As(err, &fiberErr):
		if fiberErr.Code >= fiber.StatusInternalServerError {
			return fiberErr.Code, MsgInternal
		}
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, MsgInternal
	}
}

func resultOf(err error) string {
	var validationErr *services.ValidationError

	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.As(err, &validationErr):
		return metrics.ResultValidationFailed
	case errors.Is(err, services.ErrAlreadyExists):
		return metrics.ResultAlreadyExists
	case errors.Is(err, services.ErrInvalidToken):
		return metrics.ResultInvalidToken
	case errors.Is(err, services.ErrUserNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}
