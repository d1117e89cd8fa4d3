package usecase

import (
	"context"

	"team-collab-app/apperror"
	"team-collab-app/config/logger"
	"team-collab-app/dto/res"
	"team-collab-app/repository"
)

type UserUsecaseImpl struct {
	UserRepository repository.UserRepository
	Log            *logger.AppLogger
}

func NewUserUsecase(userRepository repository.UserRepository, log *logger.AppLogger) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Log: log}
}

func (uc *UserUsecaseImpl) GetUserByID(ctx context.Context, userID string) (res.UserResponse, error) {
	uc.Log.Http.Trace.Trace().
		Str("userId", userID).
		Msg("Finding user by ID")

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Str("userId", userID).
			Msg("Failed to find user")
		return res.UserResponse{}, err
	}
	if user == nil {
		uc.Log.Http.Warning.Warn().
			Str("userId", userID).
			Msg("User not found")
		return res.UserResponse{}, apperror.NewNotFound("User not found")
	}

	return res.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

func (uc *UserUsecaseImpl) GetAllUsers(ctx context.Context) ([]res.UserResponse, error) {
	users, err := uc.UserRepository.FindAllUsers(ctx)
	if err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Msg("Failed to get all users")
		return nil, err
	}

	userResponses := make([]res.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, res.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Avatar:    user.Avatar,
			CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return userResponses, nil
}
