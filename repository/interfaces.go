package repository

import (
	"context"

	"team-collab-app/entity"
	"team-collab-app/enum"
)

// Lookup methods return (nil, nil) when the record does not exist; services
// decide what absence means.

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAllUsers(ctx context.Context) ([]entity.User, error)
}

type WorkspaceRepository interface {
	// Create persists the workspace together with any pre-populated member
	// and channel rows in a single transaction.
	Create(ctx context.Context, workspace *entity.Workspace) error
	FindByID(ctx context.Context, id string) (*entity.Workspace, error)
	FindByJoinCode(ctx context.Context, joinCode string) (*entity.Workspace, error)
	FindAllByMemberID(ctx context.Context, userID string) ([]entity.Workspace, error)
	Update(ctx context.Context, workspace *entity.Workspace) error
	AddMember(ctx context.Context, workspaceID, userID string, role enum.Role) error
	UpdateMemberRole(ctx context.Context, workspaceID, userID string, role enum.Role) error
	RemoveMember(ctx context.Context, workspaceID, userID string) error
	AddChannel(ctx context.Context, workspaceID, name string) (*entity.Channel, error)
	// DeleteCascade removes messages, channels and memberships before the
	// workspace record itself, all in one transaction.
	DeleteCascade(ctx context.Context, workspaceID string) error
}

type ChannelRepository interface {
	FindChannelByID(ctx context.Context, id string) (*entity.Channel, error)
}

type MessageRepository interface {
	SaveMessage(ctx context.Context, message *entity.Message) error
	FindAllByChannelID(ctx context.Context, channelID string) ([]entity.Message, error)
}
