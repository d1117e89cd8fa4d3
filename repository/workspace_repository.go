package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"team-collab-app/entity"
	"team-collab-app/enum"
)

type WorkspaceRepositoryImpl struct {
	Repository[entity.Workspace]
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepositoryImpl {
	return &WorkspaceRepositoryImpl{Repository[entity.Workspace]{DB: db}}
}

func (repo *WorkspaceRepositoryImpl) Create(ctx context.Context, workspace *entity.Workspace) error {
	// gorm persists the workspace row and its member/channel association
	// rows inside one transaction.
	return repo.DB.WithContext(ctx).Create(workspace).Error
}

func (repo *WorkspaceRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Workspace, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *WorkspaceRepositoryImpl) FindByJoinCode(ctx context.Context, joinCode string) (*entity.Workspace, error) {
	return repo.findOne(ctx, "join_code = ?", joinCode)
}

func (repo *WorkspaceRepositoryImpl) findOne(ctx context.Context, query string, arg string) (*entity.Workspace, error) {
	var workspace entity.Workspace
	err := repo.DB.WithContext(ctx).
		Preload("Members").
		Preload("Members.User").
		Preload("Channels").
		Where(query, arg).
		First(&workspace).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	normalizeMemberRefs(&workspace)
	return &workspace, nil
}

// normalizeMemberRefs makes sure every membership row carries a plain user
// id even when only the expanded User object was loaded, so predicates never
// have to care which form the reference came back in.
func normalizeMemberRefs(workspace *entity.Workspace) {
	for i := range workspace.Members {
		workspace.Members[i].UserID = workspace.Members[i].ResolvedUserID()
	}
}

func (repo *WorkspaceRepositoryImpl) FindAllByMemberID(ctx context.Context, userID string) ([]entity.Workspace, error) {
	var workspaces []entity.Workspace
	err := repo.DB.WithContext(ctx).
		Joins("JOIN t_workspace_member wm ON wm.workspace_id = t_workspace.id").
		Where("wm.user_id = ?", userID).
		Preload("Members").
		Preload("Channels").
		Find(&workspaces).Error
	if err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (repo *WorkspaceRepositoryImpl) AddMember(ctx context.Context, workspaceID, userID string, role enum.Role) error {
	member := entity.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
	}
	// the (workspace_id, user_id) unique index rejects duplicates
	return repo.DB.WithContext(ctx).Create(&member).Error
}

func (repo *WorkspaceRepositoryImpl) UpdateMemberRole(ctx context.Context, workspaceID, userID string, role enum.Role) error {
	result := repo.DB.WithContext(ctx).
		Model(&entity.WorkspaceMember{}).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *WorkspaceRepositoryImpl) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	result := repo.DB.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Delete(&entity.WorkspaceMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *WorkspaceRepositoryImpl) AddChannel(ctx context.Context, workspaceID, name string) (*entity.Channel, error) {
	channel := entity.Channel{
		Name:        name,
		WorkspaceID: workspaceID,
	}
	if err := repo.DB.WithContext(ctx).Create(&channel).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func (repo *WorkspaceRepositoryImpl) DeleteCascade(ctx context.Context, workspaceID string) error {
	// channel cleanup must run before the workspace row disappears, and the
	// whole cascade either lands or rolls back together
	return repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workspace_id = ?", workspaceID).Delete(&entity.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workspace_id = ?", workspaceID).Delete(&entity.Channel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workspace_id = ?", workspaceID).Delete(&entity.WorkspaceMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", workspaceID).Delete(&entity.Workspace{}).Error
	})
}
