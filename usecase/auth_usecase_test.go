package usecase

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"team-collab-app/apperror"
	"team-collab-app/config/common"
	"team-collab-app/dto/req"
	"team-collab-app/entity"
	"team-collab-app/security"
	"team-collab-app/util"
)

func newTestJWT() *security.JWT {
	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	return security.NewJWT(&common.Config{Viper: v})
}

func newAuthUsecase(userRepo *MockUserRepository) AuthUsecase {
	return NewAuthUsecase(userRepo, newTestValidator(), newTestLogger(), newTestJWT())
}

func TestSignUp(t *testing.T) {
	t.Run("stores a bcrypt hash, never the plain password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUsecase(userRepo)

		var saved *entity.User
		userRepo.On("Save", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*entity.User)
			}).
			Return(nil)

		response, err := uc.SignUp(context.Background(), &req.SignUpRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "sup3rsecret",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", response.Username)

		require.NotNil(t, saved)
		assert.NotEqual(t, "sup3rsecret", saved.Password)
		assert.True(t, util.ComparePassword(saved.Password, "sup3rsecret"))
	})

	t.Run("duplicate identity becomes a validation error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUsecase(userRepo)

		userRepo.On("Save", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		_, err := uc.SignUp(context.Background(), &req.SignUpRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "sup3rsecret",
		})
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUsecase(userRepo)

		_, err := uc.SignUp(context.Background(), &req.SignUpRequest{
			Username: "alice",
			Email:    "not-an-email",
			Password: "sup3rsecret",
		})
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		userRepo.AssertNotCalled(t, "Save")
	})
}

func TestSignIn(t *testing.T) {
	hashed, _ := util.HashPassword("sup3rsecret")
	existing := &entity.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: hashed,
	}
	existing.ID = "user-1"

	t.Run("valid credentials yield a token carrying the user id", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUsecase(userRepo)

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

		response, err := uc.SignIn(context.Background(), &req.SignInRequest{
			Email:    "alice@example.com",
			Password: "sup3rsecret",
		})
		require.NoError(t, err)
		assert.Equal(t, "user-1", response.User.ID)

		userID, err := newTestJWT().GetUserIdFromToken(response.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUsecase(userRepo)

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

		_, err := uc.SignIn(context.Background(), &req.SignInRequest{
			Email:    "alice@example.com",
			Password: "wrong",
		})
		var clientErr *apperror.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, 401, clientErr.StatusCode)
	})

	t.Run("unknown email gets the same unauthorized answer", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newAuthUsecase(userRepo)

		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := uc.SignIn(context.Background(), &req.SignInRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		var clientErr *apperror.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, 401, clientErr.StatusCode)
	})
}
