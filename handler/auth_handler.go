package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"team-collab-app/dto/req"
	"team-collab-app/dto/res"
	"team-collab-app/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) SignUp(ctx *fiber.Ctx) error {
	payload := new(req.SignUpRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	signUpResponse, err := handler.AuthUsecase.SignUp(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to sign up new user")
		return err
	}

	response := res.CommonResponse[res.SignUpResponse]{
		Success:    true,
		Message:    "User created successfully",
		StatusCode: fiber.StatusCreated,
		Data:       signUpResponse,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *AuthHandler) SignIn(ctx *fiber.Ctx) error {
	payload := new(req.SignInRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	signInResponse, err := handler.AuthUsecase.SignIn(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to sign in")
		return err
	}

	response := res.CommonResponse[res.SignInResponse]{
		Success:    true,
		Message:    "User signed in successfully",
		StatusCode: fiber.StatusOK,
		Data:       signInResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
