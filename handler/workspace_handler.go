package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"team-collab-app/dto/req"
	"team-collab-app/dto/res"
	"team-collab-app/usecase"
)

type WorkspaceHandler struct {
	usecase.WorkspaceUsecase
	*logrus.Logger
}

func NewWorkspaceHandler(workspaceUsecase usecase.WorkspaceUsecase, logger *logrus.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{WorkspaceUsecase: workspaceUsecase, Logger: logger}
}

func currentUserID(ctx *fiber.Ctx) string {
	userID, _ := ctx.Locals("user_id").(string)
	return userID
}

func (handler *WorkspaceHandler) CreateWorkspace(ctx *fiber.Ctx) error {
	payload := new(req.CreateWorkspaceRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	workspaceResponse, err := handler.WorkspaceUsecase.Create(ctx.Context(), currentUserID(ctx), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create workspace")
		return err
	}

	response := res.CommonResponse[res.WorkspaceResponse]{
		Success:    true,
		Message:    "Workspace created successfully",
		StatusCode: fiber.StatusCreated,
		Data:       workspaceResponse,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *WorkspaceHandler) GetUserWorkspaces(ctx *fiber.Ctx) error {
	workspaceResponses, err := handler.WorkspaceUsecase.GetAllByMember(ctx.Context(), currentUserID(ctx))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to fetch workspaces")
		return err
	}

	response := res.CommonResponse[[]res.WorkspaceResponse]{
		Success:    true,
		Message:    "Workspaces fetched successfully",
		StatusCode: fiber.StatusOK,
		Data:       workspaceResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *WorkspaceHandler) GetWorkspace(ctx *fiber.Ctx) error {
	workspaceResponse, err := handler.WorkspaceUsecase.GetByID(ctx.Context(), currentUserID(ctx), ctx.Params("workspaceId"))
	if err != nil {
		return err
	}

	response := res.CommonResponse[res.WorkspaceResponse]{
		Success:    true,
		Message:    "Workspace fetched successfully",
		StatusCode: fiber.StatusOK,
		Data:       workspaceResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *WorkspaceHandler) GetWorkspaceByJoinCode(ctx *fiber.Ctx) error {
	workspaceResponse, err := handler.WorkspaceUsecase.GetByJoinCode(ctx.Context(), currentUserID(ctx), ctx.Params("joinCode"))
	if err != nil {
		return err
	}

	response := res.CommonResponse[res.WorkspaceResponse]{
		Success:    true,
		Message:    "Workspace fetched successfully",
		StatusCode: fiber.StatusOK,
		Data:       workspaceResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *WorkspaceHandler) UpdateWorkspace(ctx *fiber.Ctx) error {
	payload := new(req.UpdateWorkspaceRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	workspaceResponse, err := handler.WorkspaceUsecase.Update(ctx.Context(), currentUserID(ctx), ctx.Params("workspaceId"), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to update workspace")
		return err
	}

	response := res.CommonResponse[res.WorkspaceResponse]{
		Success:    true,
		Message:    "Workspace updated successfully",
		StatusCode: fiber.StatusOK,
		Data:       workspaceResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *WorkspaceHandler) DeleteWorkspace(ctx *fiber.Ctx) error {
	deletedResponse, err := handler.WorkspaceUsecase.Delete(ctx.Context(), currentUserID(ctx), ctx.Params("workspaceId"))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to delete workspace")
		return err
	}

	response := res.CommonResponse[res.DeletedWorkspaceResponse]{
		Success:    true,
		Message:    "Workspace deleted successfully",
		StatusCode: fiber.StatusOK,
		Data:       deletedResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *WorkspaceHandler) AddMember(ctx *fiber.Ctx) error {
	payload := new(req.AddMemberRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	workspaceResponse, err := handler.WorkspaceUsecase.AddMember(ctx.Context(), currentUserID(ctx), ctx.Params("workspaceId"), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to add member to workspace")
		return err
	}

	response := res.CommonResponse[res.WorkspaceResponse]{
		Success:    true,
		Message:    "Member added to workspace successfully",
		StatusCode: fiber.StatusOK,
		Data:       workspaceResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *WorkspaceHandler) UpdateMemberRole(ctx *fiber.Ctx) error {
	payload := new(req.UpdateMemberRoleRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	workspaceResponse, err := handler.WorkspaceUsecase.UpdateMemberRole(ctx.Context(), currentUserID(ctx), ctx.Params("workspaceId"), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to update member role")
		return err
	}

	response := res.CommonResponse[res.WorkspaceResponse]{
		Success:    true,
		Message:    "Member role updated successfully",
		StatusCode: fiber.StatusOK,
		Data:       workspaceResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *WorkspaceHandler) RemoveMember(ctx *fiber.Ctx) error {
	workspaceResponse, err := handler.WorkspaceUsecase.RemoveMember(ctx.Context(), currentUserID(ctx), ctx.Params("workspaceId"), ctx.Params("memberId"))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to remove member from workspace")
		return err
	}

	response := res.CommonResponse[res.WorkspaceResponse]{
		Success:    true,
		Message:    "Member removed from workspace successfully",
		StatusCode: fiber.StatusOK,
		Data:       workspaceResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *WorkspaceHandler) AddChannel(ctx *fiber.Ctx) error {
	payload := new(req.AddChannelRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	workspaceResponse, err := handler.WorkspaceUsecase.AddChannel(ctx.Context(), currentUserID(ctx), ctx.Params("workspaceId"), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to add channel to workspace")
		return err
	}

	response := res.CommonResponse[res.WorkspaceResponse]{
		Success:    true,
		Message:    "Channel added to workspace successfully",
		StatusCode: fiber.StatusOK,
		Data:       workspaceResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
