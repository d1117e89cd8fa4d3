package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"team-collab-app/apperror"
	"team-collab-app/dto/req"
	"team-collab-app/dto/res"
	"team-collab-app/entity"
	"team-collab-app/enum"
	"team-collab-app/repository"
)

const defaultChannelName = "general"

type WorkspaceUsecaseImpl struct {
	WorkspaceRepository repository.WorkspaceRepository
	UserRepository      repository.UserRepository
	*validator.Validate
	*logrus.Logger
}

func NewWorkspaceUsecase(workspaceRepository repository.WorkspaceRepository, userRepository repository.UserRepository, validate *validator.Validate, logger *logrus.Logger) WorkspaceUsecase {
	return &WorkspaceUsecaseImpl{
		WorkspaceRepository: workspaceRepository,
		UserRepository:      userRepository,
		Validate:            validate,
		Logger:              logger,
	}
}

func generateJoinCode() string {
	return strings.ToUpper(uuid.New().String()[:6])
}

func (uc *WorkspaceUsecaseImpl) Create(ctx context.Context, userID string, request *req.CreateWorkspaceRequest) (res.WorkspaceResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.WorkspaceResponse{}, apperror.FromValidator(err)
	}

	workspace := &entity.Workspace{
		Name:        request.Name,
		Description: request.Description,
		JoinCode:    generateJoinCode(),
		Members: []entity.WorkspaceMember{
			{UserID: userID, Role: enum.RoleAdmin},
		},
		Channels: []entity.Channel{
			{Name: defaultChannelName},
		},
	}

	// single transactional write: owner membership and the default channel
	// land together with the workspace or not at all
	if err := uc.WorkspaceRepository.Create(ctx, workspace); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res.WorkspaceResponse{}, apperror.NewValidation(
				"A workspace with same details already exists",
				"name and description must be unique together",
			)
		}
		uc.Logger.WithError(err).Error("Failed to create workspace")
		return res.WorkspaceResponse{}, err
	}

	uc.Logger.WithFields(logrus.Fields{
		"workspaceId": workspace.ID,
		"ownerId":     userID,
	}).Info("Workspace created")

	return toWorkspaceResponse(workspace), nil
}

func (uc *WorkspaceUsecaseImpl) GetByID(ctx context.Context, userID, workspaceID string) (res.WorkspaceResponse, error) {
	workspace, err := uc.loadWorkspace(ctx, workspaceID)
	if err != nil {
		return res.WorkspaceResponse{}, err
	}
	if !workspace.IsMember(userID) {
		return res.WorkspaceResponse{}, apperror.NewUnauthorized("User is not a member of the workspace")
	}
	return toWorkspaceResponse(workspace), nil
}

func (uc *WorkspaceUsecaseImpl) GetByJoinCode(ctx context.Context, userID, joinCode string) (res.WorkspaceResponse, error) {
	workspace, err := uc.WorkspaceRepository.FindByJoinCode(ctx, strings.ToUpper(joinCode))
	if err != nil {
		return res.WorkspaceResponse{}, err
	}
	if workspace == nil {
		return res.WorkspaceResponse{}, apperror.NewNotFound("Workspace not found")
	}
	if !workspace.IsMember(userID) {
		return res.WorkspaceResponse{}, apperror.NewUnauthorized("User is not a member of the workspace")
	}
	return toWorkspaceResponse(workspace), nil
}

func (uc *WorkspaceUsecaseImpl) GetAllByMember(ctx context.Context, userID string) ([]res.WorkspaceResponse, error) {
	workspaces, err := uc.WorkspaceRepository.FindAllByMemberID(ctx, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to list workspaces by member")
		return nil, err
	}

	responses := make([]res.WorkspaceResponse, 0, len(workspaces))
	for i := range workspaces {
		responses = append(responses, toWorkspaceResponse(&workspaces[i]))
	}
	return responses, nil
}

func (uc *WorkspaceUsecaseImpl) Update(ctx context.Context, userID, workspaceID string, request *req.UpdateWorkspaceRequest) (res.WorkspaceResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.WorkspaceResponse{}, apperror.FromValidator(err)
	}

	workspace, err := uc.loadWorkspace(ctx, workspaceID)
	if err != nil {
		return res.WorkspaceResponse{}, err
	}
	if !workspace.IsAdmin(userID) {
		return res.WorkspaceResponse{}, apperror.NewUnauthorized("User is not an admin of the workspace")
	}

	if request.Name != nil {
		workspace.Name = *request.Name
	}
	if request.Description != nil {
		workspace.Description = *request.Description
	}

	if err := uc.WorkspaceRepository.Update(ctx, workspace); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res.WorkspaceResponse{}, apperror.NewValidation(
				"A workspace with same details already exists",
				"name and description must be unique together",
			)
		}
		uc.Logger.WithError(err).Error("Failed to update workspace")
		return res.WorkspaceResponse{}, err
	}

	return toWorkspaceResponse(workspace), nil
}

func (uc *WorkspaceUsecaseImpl) Delete(ctx context.Context, userID, workspaceID string) (res.DeletedWorkspaceResponse, error) {
	workspace, err := uc.loadWorkspace(ctx, workspaceID)
	if err != nil {
		return res.DeletedWorkspaceResponse{}, err
	}
	if !workspace.IsAdmin(userID) {
		return res.DeletedWorkspaceResponse{}, apperror.NewUnauthorized("User is not allowed to delete the workspace")
	}

	if err := uc.WorkspaceRepository.DeleteCascade(ctx, workspaceID); err != nil {
		uc.Logger.WithError(err).Error("Failed to delete workspace")
		return res.DeletedWorkspaceResponse{}, err
	}

	uc.Logger.WithField("workspaceId", workspaceID).Info("Workspace deleted")
	return res.DeletedWorkspaceResponse{ID: workspaceID}, nil
}

func (uc *WorkspaceUsecaseImpl) AddMember(ctx context.Context, userID, workspaceID string, request *req.AddMemberRequest) (res.WorkspaceResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.WorkspaceResponse{}, apperror.FromValidator(err)
	}

	workspace, err := uc.loadWorkspace(ctx, workspaceID)
	if err != nil {
		return res.WorkspaceResponse{}, err
	}
	if !workspace.IsAdmin(userID) {
		return res.WorkspaceResponse{}, apperror.NewUnauthorized("User is not an admin of the workspace")
	}

	targetUser, err := uc.UserRepository.FindByID(ctx, request.MemberID)
	if err != nil {
		return res.WorkspaceResponse{}, err
	}
	if targetUser == nil {
		return res.WorkspaceResponse{}, apperror.NewNotFound("User not found")
	}

	if workspace.IsMember(request.MemberID) {
		return res.WorkspaceResponse{}, apperror.NewValidation("User is already a member of the workspace")
	}

	role := enum.Role(request.Role)
	if !role.IsValid() {
		role = enum.RoleMember
	}

	if err := uc.WorkspaceRepository.AddMember(ctx, workspaceID, request.MemberID, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res.WorkspaceResponse{}, apperror.NewValidation("User is already a member of the workspace")
		}
		uc.Logger.WithError(err).Error("Failed to add member to workspace")
		return res.WorkspaceResponse{}, err
	}

	return uc.reload(ctx, workspaceID)
}

func (uc *WorkspaceUsecaseImpl) UpdateMemberRole(ctx context.Context, userID, workspaceID string, request *req.UpdateMemberRoleRequest) (res.WorkspaceResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.WorkspaceResponse{}, apperror.FromValidator(err)
	}

	workspace, err := uc.loadWorkspace(ctx, workspaceID)
	if err != nil {
		return res.WorkspaceResponse{}, err
	}
	if !workspace.IsAdmin(userID) {
		return res.WorkspaceResponse{}, apperror.NewUnauthorized("User is not an admin of the workspace")
	}
	if !workspace.IsMember(request.MemberID) {
		return res.WorkspaceResponse{}, apperror.NewNotFound("Member not found in the workspace")
	}

	role := enum.Role(request.Role)
	if role == enum.RoleMember && workspace.IsAdmin(request.MemberID) && workspace.AdminCount() == 1 {
		return res.WorkspaceResponse{}, apperror.NewValidation("Workspace must keep at least one admin")
	}

	if err := uc.WorkspaceRepository.UpdateMemberRole(ctx, workspaceID, request.MemberID, role); err != nil {
		uc.Logger.WithError(err).Error("Failed to update member role")
		return res.WorkspaceResponse{}, err
	}

	return uc.reload(ctx, workspaceID)
}

func (uc *WorkspaceUsecaseImpl) RemoveMember(ctx context.Context, userID, workspaceID, memberID string) (res.WorkspaceResponse, error) {
	workspace, err := uc.loadWorkspace(ctx, workspaceID)
	if err != nil {
		return res.WorkspaceResponse{}, err
	}
	if !workspace.IsAdmin(userID) {
		return res.WorkspaceResponse{}, apperror.NewUnauthorized("User is not an admin of the workspace")
	}
	if !workspace.IsMember(memberID) {
		return res.WorkspaceResponse{}, apperror.NewNotFound("Member not found in the workspace")
	}
	if workspace.IsAdmin(memberID) && workspace.AdminCount() == 1 {
		return res.WorkspaceResponse{}, apperror.NewValidation("Workspace must keep at least one admin")
	}

	if err := uc.WorkspaceRepository.RemoveMember(ctx, workspaceID, memberID); err != nil {
		uc.Logger.WithError(err).Error("Failed to remove member from workspace")
		return res.WorkspaceResponse{}, err
	}

	return uc.reload(ctx, workspaceID)
}

func (uc *WorkspaceUsecaseImpl) AddChannel(ctx context.Context, userID, workspaceID string, request *req.AddChannelRequest) (res.WorkspaceResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.WorkspaceResponse{}, apperror.FromValidator(err)
	}

	workspace, err := uc.loadWorkspace(ctx, workspaceID)
	if err != nil {
		return res.WorkspaceResponse{}, err
	}
	if !workspace.IsMember(userID) {
		return res.WorkspaceResponse{}, apperror.NewUnauthorized("User is not a member of the workspace")
	}

	// names collide case-insensitively
	if workspace.HasChannelNamed(request.ChannelName) {
		return res.WorkspaceResponse{}, apperror.NewValidation("Channel with the same name already exists in the workspace")
	}

	if _, err := uc.WorkspaceRepository.AddChannel(ctx, workspaceID, request.ChannelName); err != nil {
		uc.Logger.WithError(err).Error("Failed to add channel to workspace")
		return res.WorkspaceResponse{}, err
	}

	return uc.reload(ctx, workspaceID)
}

func (uc *WorkspaceUsecaseImpl) loadWorkspace(ctx context.Context, workspaceID string) (*entity.Workspace, error) {
	workspace, err := uc.WorkspaceRepository.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, apperror.NewNotFound("Workspace not found")
	}
	return workspace, nil
}

func (uc *WorkspaceUsecaseImpl) reload(ctx context.Context, workspaceID string) (res.WorkspaceResponse, error) {
	workspace, err := uc.loadWorkspace(ctx, workspaceID)
	if err != nil {
		return res.WorkspaceResponse{}, err
	}
	return toWorkspaceResponse(workspace), nil
}

func toWorkspaceResponse(workspace *entity.Workspace) res.WorkspaceResponse {
	members := make([]res.MemberResponse, 0, len(workspace.Members))
	for _, member := range workspace.Members {
		memberResponse := res.MemberResponse{
			MemberID: member.ResolvedUserID(),
			Role:     string(member.Role),
		}
		if member.User != nil {
			memberResponse.Username = member.User.Username
		}
		members = append(members, memberResponse)
	}

	channels := make([]res.ChannelResponse, 0, len(workspace.Channels))
	for _, channel := range workspace.Channels {
		channels = append(channels, res.ChannelResponse{ID: channel.ID, Name: channel.Name})
	}

	return res.WorkspaceResponse{
		ID:          workspace.ID,
		Name:        workspace.Name,
		Description: workspace.Description,
		JoinCode:    workspace.JoinCode,
		Members:     members,
		Channels:    channels,
		CreatedAt:   workspace.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
