package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"team-collab-app/apperror"
	"team-collab-app/dto"
	"team-collab-app/dto/req"
	"team-collab-app/dto/res"
	"team-collab-app/entity"
	"team-collab-app/repository"
)

type MessageUsecaseImpl struct {
	WorkspaceRepository repository.WorkspaceRepository
	ChannelRepository   repository.ChannelRepository
	MessageRepository   repository.MessageRepository
	UserRepository      repository.UserRepository
	*validator.Validate
	*logrus.Logger
}

func NewMessageUsecase(workspaceRepository repository.WorkspaceRepository, channelRepository repository.ChannelRepository, messageRepository repository.MessageRepository, userRepository repository.UserRepository, validate *validator.Validate, logger *logrus.Logger) MessageUsecase {
	return &MessageUsecaseImpl{
		WorkspaceRepository: workspaceRepository,
		ChannelRepository:   channelRepository,
		MessageRepository:   messageRepository,
		UserRepository:      userRepository,
		Validate:            validate,
		Logger:              logger,
	}
}

func (uc *MessageUsecaseImpl) Send(ctx context.Context, senderID, workspaceID, channelID string, request *req.MessageRequest) (dto.BroadcastMessage, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return dto.BroadcastMessage{}, apperror.FromValidator(err)
	}

	channel, err := uc.authorizeChannelAccess(ctx, senderID, workspaceID, channelID)
	if err != nil {
		return dto.BroadcastMessage{}, err
	}

	sender, err := uc.UserRepository.FindByID(ctx, senderID)
	if err != nil {
		return dto.BroadcastMessage{}, err
	}
	if sender == nil {
		return dto.BroadcastMessage{}, apperror.NewNotFound("User not found")
	}

	message := &entity.Message{
		Body:        request.Body,
		Images:      request.Images,
		ChannelID:   channel.ID,
		SenderID:    senderID,
		WorkspaceID: workspaceID,
	}

	if err := uc.MessageRepository.SaveMessage(ctx, message); err != nil {
		uc.Logger.WithError(err).Error("Failed to save message")
		return dto.BroadcastMessage{}, err
	}

	return dto.BroadcastMessage{
		MessageID:    message.ID,
		ChannelID:    channel.ID,
		WorkspaceID:  workspaceID,
		SenderID:     senderID,
		SenderName:   sender.Username,
		SenderAvatar: sender.Avatar,
		Body:         message.Body,
		CreatedAt:    message.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

func (uc *MessageUsecaseImpl) GetChannelMessages(ctx context.Context, userID, workspaceID, channelID string) ([]res.MessageResponse, error) {
	channel, err := uc.authorizeChannelAccess(ctx, userID, workspaceID, channelID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.MessageRepository.FindAllByChannelID(ctx, channel.ID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to get messages by channel ID")
		return nil, err
	}

	responses := make([]res.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, res.MessageResponse{
			ID:         message.ID,
			Body:       message.Body,
			Images:     message.Images,
			ChannelID:  message.ChannelID,
			SenderID:   message.SenderID,
			SenderName: message.Sender.Username,
			CreatedAt:  message.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return responses, nil
}

// authorizeChannelAccess checks that the caller belongs to the workspace and
// that the channel actually lives in it.
func (uc *MessageUsecaseImpl) authorizeChannelAccess(ctx context.Context, userID, workspaceID, channelID string) (*entity.Channel, error) {
	workspace, err := uc.WorkspaceRepository.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, apperror.NewNotFound("Workspace not found")
	}
	if !workspace.IsMember(userID) {
		return nil, apperror.NewUnauthorized("User is not a member of the workspace")
	}

	channel, err := uc.ChannelRepository.FindChannelByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil || channel.WorkspaceID != workspaceID {
		return nil, apperror.NewNotFound("Channel not found")
	}

	return channel, nil
}
