package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"team-collab-app/apperror"
	"team-collab-app/config/common"
	"team-collab-app/dto/res"
)

func NewFiber(cfg *common.Config) *fiber.App {
	appName := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
		ErrorHandler:  errorHandler,
	})
}

// errorHandler is the single boundary between business errors and HTTP.
// Handlers return errors as-is; classification happens here.
func errorHandler(ctx *fiber.Ctx, err error) error {
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{
			Success:     false,
			Message:     validationErr.Message,
			StatusCode:  fiber.StatusBadRequest,
			Error:       validationErr.Message,
			Explanation: validationErr.Explanation,
		})
	}

	var clientErr *apperror.ClientError
	if errors.As(err, &clientErr) {
		return ctx.Status(clientErr.StatusCode).JSON(res.ErrorResponse{
			Success:    false,
			Message:    clientErr.Message,
			StatusCode: clientErr.StatusCode,
			Error:      clientErr.Explanation,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(res.ErrorResponse{
			Success:    false,
			Message:    fiberErr.Message,
			StatusCode: fiberErr.Code,
			Error:      fiberErr.Message,
		})
	}

	// unclassified errors leak no details
	return ctx.Status(fiber.StatusInternalServerError).JSON(res.ErrorResponse{
		Success:    false,
		Message:    "Internal Server Error",
		StatusCode: fiber.StatusInternalServerError,
		Error:      "something went wrong",
	})
}
