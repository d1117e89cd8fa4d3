package usecase

import (
	"context"

	"team-collab-app/dto/req"
	"team-collab-app/dto/res"
)

type WorkspaceUsecase interface {
	Create(ctx context.Context, userID string, request *req.CreateWorkspaceRequest) (res.WorkspaceResponse, error)
	GetByID(ctx context.Context, userID, workspaceID string) (res.WorkspaceResponse, error)
	GetByJoinCode(ctx context.Context, userID, joinCode string) (res.WorkspaceResponse, error)
	GetAllByMember(ctx context.Context, userID string) ([]res.WorkspaceResponse, error)
	Update(ctx context.Context, userID, workspaceID string, request *req.UpdateWorkspaceRequest) (res.WorkspaceResponse, error)
	Delete(ctx context.Context, userID, workspaceID string) (res.DeletedWorkspaceResponse, error)
	AddMember(ctx context.Context, userID, workspaceID string, request *req.AddMemberRequest) (res.WorkspaceResponse, error)
	UpdateMemberRole(ctx context.Context, userID, workspaceID string, request *req.UpdateMemberRoleRequest) (res.WorkspaceResponse, error)
	RemoveMember(ctx context.Context, userID, workspaceID, memberID string) (res.WorkspaceResponse, error)
	AddChannel(ctx context.Context, userID, workspaceID string, request *req.AddChannelRequest) (res.WorkspaceResponse, error)
}
