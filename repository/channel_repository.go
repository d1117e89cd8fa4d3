package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"team-collab-app/entity"
)

type ChannelRepositoryImpl struct {
	Repository[entity.Channel]
}

func NewChannelRepository(db *gorm.DB) *ChannelRepositoryImpl {
	return &ChannelRepositoryImpl{Repository[entity.Channel]{DB: db}}
}

func (repo *ChannelRepositoryImpl) FindChannelByID(ctx context.Context, id string) (*entity.Channel, error) {
	var channel entity.Channel
	err := repo.DB.WithContext(ctx).Where("id = ?", id).First(&channel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &channel, nil
}
