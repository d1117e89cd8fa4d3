package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"team-collab-app/dto/res"
	"team-collab-app/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetCurrentUser(ctx *fiber.Ctx) error {
	userResponse, err := handler.UserUsecase.GetUserByID(ctx.Context(), currentUserID(ctx))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get current user")
		return err
	}

	response := res.CommonResponse[res.UserResponse]{
		Success:    true,
		Message:    "User fetched successfully",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	userResponses, err := handler.UserUsecase.GetAllUsers(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get all users")
		return err
	}

	response := res.CommonResponse[[]res.UserResponse]{
		Success:    true,
		Message:    "Users fetched successfully",
		StatusCode: fiber.StatusOK,
		Data:       userResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
