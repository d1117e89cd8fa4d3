package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"team-collab-app/apperror"
	"team-collab-app/dto/req"
	"team-collab-app/dto/res"
	"team-collab-app/entity"
	"team-collab-app/repository"
	"team-collab-app/security"
	"team-collab-app/util"
)

type AuthUsecaseImpl struct {
	UserRepository repository.UserRepository
	*validator.Validate
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(userRepository repository.UserRepository, validate *validator.Validate, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{UserRepository: userRepository, Validate: validate, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) SignUp(ctx context.Context, request *req.SignUpRequest) (res.SignUpResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.SignUpResponse{}, apperror.FromValidator(err)
	}

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to hash password")
		return res.SignUpResponse{}, err
	}

	newUser := &entity.User{
		Username: request.Username,
		Email:    request.Email,
		Password: hashPassword,
	}

	if err := uc.UserRepository.Save(ctx, newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res.SignUpResponse{}, apperror.NewValidation(
				"A user with same details already exists",
				"username and email must be unique",
			)
		}
		uc.Logger.WithError(err).Error("Failed to save user")
		return res.SignUpResponse{}, err
	}

	uc.Logger.WithField("userId", newUser.ID).Info("User signed up")

	return res.SignUpResponse{
		ID:       newUser.ID,
		Username: newUser.Username,
		Email:    newUser.Email,
	}, nil
}

func (uc *AuthUsecaseImpl) SignIn(ctx context.Context, request *req.SignInRequest) (res.SignInResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.SignInResponse{}, apperror.FromValidator(err)
	}

	currentUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return res.SignInResponse{}, err
	}
	// absent user and wrong password are indistinguishable on purpose
	if currentUser == nil || !util.ComparePassword(currentUser.Password, request.Password) {
		return res.SignInResponse{}, apperror.NewUnauthorized("Invalid email or password")
	}

	token, err := uc.JWT.GenerateToken(currentUser)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to generate token")
		return res.SignInResponse{}, err
	}

	return res.SignInResponse{
		User: res.UserResponse{
			ID:        currentUser.ID,
			Username:  currentUser.Username,
			Email:     currentUser.Email,
			Avatar:    currentUser.Avatar,
			CreatedAt: currentUser.CreatedAt.Format("2006-01-02 15:04:05"),
		},
		Token: token,
	}, nil
}
