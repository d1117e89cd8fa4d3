package usecase

import (
	"context"

	"team-collab-app/dto"
	"team-collab-app/dto/req"
	"team-collab-app/dto/res"
)

type MessageUsecase interface {
	Send(ctx context.Context, senderID, workspaceID, channelID string, request *req.MessageRequest) (dto.BroadcastMessage, error)
	GetChannelMessages(ctx context.Context, userID, workspaceID, channelID string) ([]res.MessageResponse, error)
}
