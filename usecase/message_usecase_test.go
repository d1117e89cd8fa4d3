package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"team-collab-app/apperror"
	"team-collab-app/dto/req"
	"team-collab-app/entity"
	"team-collab-app/enum"
)

type messageUsecaseMocks struct {
	workspaceRepo *MockWorkspaceRepository
	channelRepo   *MockChannelRepository
	messageRepo   *MockMessageRepository
	userRepo      *MockUserRepository
}

func newMessageUsecaseWithMocks() (MessageUsecase, messageUsecaseMocks) {
	mocks := messageUsecaseMocks{
		workspaceRepo: new(MockWorkspaceRepository),
		channelRepo:   new(MockChannelRepository),
		messageRepo:   new(MockMessageRepository),
		userRepo:      new(MockUserRepository),
	}
	uc := NewMessageUsecase(mocks.workspaceRepo, mocks.channelRepo, mocks.messageRepo, mocks.userRepo, newTestValidator(), newTestLogger())
	return uc, mocks
}

func messageWorkspace() *entity.Workspace {
	workspace := &entity.Workspace{
		Name: "Eng",
		Members: []entity.WorkspaceMember{
			{UserID: "user-1", Role: enum.RoleMember},
		},
	}
	workspace.ID = "ws-1"
	return workspace
}

func TestSendMessage(t *testing.T) {
	t.Run("non-member cannot post", func(t *testing.T) {
		uc, mocks := newMessageUsecaseWithMocks()
		mocks.workspaceRepo.On("FindByID", mock.Anything, "ws-1").Return(messageWorkspace(), nil)

		_, err := uc.Send(context.Background(), "stranger", "ws-1", "ch-1", &req.MessageRequest{Body: "hi"})
		var clientErr *apperror.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, 401, clientErr.StatusCode)
		mocks.messageRepo.AssertNotCalled(t, "SaveMessage")
	})

	t.Run("channel must belong to the workspace", func(t *testing.T) {
		uc, mocks := newMessageUsecaseWithMocks()
		mocks.workspaceRepo.On("FindByID", mock.Anything, "ws-1").Return(messageWorkspace(), nil)
		foreign := &entity.Channel{Name: "general", WorkspaceID: "other-ws"}
		foreign.ID = "ch-1"
		mocks.channelRepo.On("FindChannelByID", mock.Anything, "ch-1").Return(foreign, nil)

		_, err := uc.Send(context.Background(), "user-1", "ws-1", "ch-1", &req.MessageRequest{Body: "hi"})
		var clientErr *apperror.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, 404, clientErr.StatusCode)
	})

	t.Run("member posts and gets a broadcast payload back", func(t *testing.T) {
		uc, mocks := newMessageUsecaseWithMocks()
		mocks.workspaceRepo.On("FindByID", mock.Anything, "ws-1").Return(messageWorkspace(), nil)
		channel := &entity.Channel{Name: "general", WorkspaceID: "ws-1"}
		channel.ID = "ch-1"
		mocks.channelRepo.On("FindChannelByID", mock.Anything, "ch-1").Return(channel, nil)
		sender := &entity.User{Username: "alice"}
		sender.ID = "user-1"
		mocks.userRepo.On("FindByID", mock.Anything, "user-1").Return(sender, nil)
		mocks.messageRepo.On("SaveMessage", mock.Anything, mock.AnythingOfType("*entity.Message")).Return(nil)

		broadcast, err := uc.Send(context.Background(), "user-1", "ws-1", "ch-1", &req.MessageRequest{Body: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "hi", broadcast.Body)
		assert.Equal(t, "ch-1", broadcast.ChannelID)
		assert.Equal(t, "ws-1", broadcast.WorkspaceID)
		assert.Equal(t, "alice", broadcast.SenderName)

		mocks.messageRepo.AssertCalled(t, "SaveMessage", mock.Anything, mock.MatchedBy(func(message *entity.Message) bool {
			return message.Body == "hi" && message.WorkspaceID == "ws-1" && message.SenderID == "user-1"
		}))
	})

	t.Run("empty body is rejected before any lookup", func(t *testing.T) {
		uc, mocks := newMessageUsecaseWithMocks()

		_, err := uc.Send(context.Background(), "user-1", "ws-1", "ch-1", &req.MessageRequest{})
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		mocks.workspaceRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestGetChannelMessages(t *testing.T) {
	t.Run("member reads messages oldest first", func(t *testing.T) {
		uc, mocks := newMessageUsecaseWithMocks()
		mocks.workspaceRepo.On("FindByID", mock.Anything, "ws-1").Return(messageWorkspace(), nil)
		channel := &entity.Channel{Name: "general", WorkspaceID: "ws-1"}
		channel.ID = "ch-1"
		mocks.channelRepo.On("FindChannelByID", mock.Anything, "ch-1").Return(channel, nil)

		first := entity.Message{Body: "hello", ChannelID: "ch-1", SenderID: "user-1", Sender: entity.User{Username: "alice"}}
		second := entity.Message{Body: "again", ChannelID: "ch-1", SenderID: "user-1", Sender: entity.User{Username: "alice"}}
		mocks.messageRepo.On("FindAllByChannelID", mock.Anything, "ch-1").Return([]entity.Message{first, second}, nil)

		responses, err := uc.GetChannelMessages(context.Background(), "user-1", "ws-1", "ch-1")
		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Equal(t, "hello", responses[0].Body)
		assert.Equal(t, "alice", responses[0].SenderName)
	})

	t.Run("non-member cannot read", func(t *testing.T) {
		uc, mocks := newMessageUsecaseWithMocks()
		mocks.workspaceRepo.On("FindByID", mock.Anything, "ws-1").Return(messageWorkspace(), nil)

		_, err := uc.GetChannelMessages(context.Background(), "stranger", "ws-1", "ch-1")
		var clientErr *apperror.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, 401, clientErr.StatusCode)
	})
}
