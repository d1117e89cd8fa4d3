package repository

import (
	"context"

	"gorm.io/gorm"

	"team-collab-app/entity"
)

type MessageRepositoryImpl struct {
	Repository[entity.Message]
}

func NewMessageRepository(db *gorm.DB) *MessageRepositoryImpl {
	return &MessageRepositoryImpl{Repository[entity.Message]{DB: db}}
}

func (repo *MessageRepositoryImpl) SaveMessage(ctx context.Context, message *entity.Message) error {
	return repo.DB.WithContext(ctx).Create(message).Error
}

func (repo *MessageRepositoryImpl) FindAllByChannelID(ctx context.Context, channelID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := repo.DB.WithContext(ctx).
		Preload("Sender").
		Where("channel_id = ?", channelID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
