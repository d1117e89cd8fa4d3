package usecase

import (
	"context"

	"team-collab-app/dto/res"
)

type UserUsecase interface {
	GetUserByID(ctx context.Context, userID string) (res.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]res.UserResponse, error)
}
