package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"team-collab-app/dto"
	"team-collab-app/dto/req"
	"team-collab-app/dto/res"
	"team-collab-app/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	*logrus.Logger
	Notifier *WebSocketHandler
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, logger *logrus.Logger, notifier *WebSocketHandler) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Logger: logger, Notifier: notifier}
}

func (handler *MessageHandler) SendMessage(ctx *fiber.Ctx) error {
	payload := new(req.MessageRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	broadcastMessage, err := handler.MessageUsecase.Send(
		ctx.Context(),
		currentUserID(ctx),
		ctx.Params("workspaceId"),
		ctx.Params("channelId"),
		payload,
	)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to send message")
		return err
	}

	// fan out to live channel subscribers
	if handler.Notifier != nil {
		handler.Notifier.Broadcast <- broadcastMessage
	}

	response := res.CommonResponse[dto.BroadcastMessage]{
		Success:    true,
		Message:    "Message sent successfully",
		StatusCode: fiber.StatusCreated,
		Data:       broadcastMessage,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *MessageHandler) GetChannelMessages(ctx *fiber.Ctx) error {
	messageResponses, err := handler.MessageUsecase.GetChannelMessages(
		ctx.Context(),
		currentUserID(ctx),
		ctx.Params("workspaceId"),
		ctx.Params("channelId"),
	)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get channel messages")
		return err
	}

	response := res.CommonResponse[[]res.MessageResponse]{
		Success:    true,
		Message:    "Messages fetched successfully",
		StatusCode: fiber.StatusOK,
		Data:       messageResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
