package entity

import (
	"strings"

	"team-collab-app/enum"
)

type Workspace struct {
	BaseEntity
	Name        string `json:"name" gorm:"type:varchar(100);uniqueIndex:idx_workspace_identity"`
	Description string `json:"description" gorm:"type:varchar(255);uniqueIndex:idx_workspace_identity"`
	JoinCode    string `json:"joinCode" gorm:"type:varchar(6);index"`

	Members  []WorkspaceMember `json:"members" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE;"`
	Channels []Channel         `json:"channels" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE;"`
}

type WorkspaceMember struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(255);default:gen_random_uuid()"`
	WorkspaceID string    `json:"workspaceId" gorm:"type:varchar(255);not null;uniqueIndex:idx_workspace_member"`
	UserID      string    `json:"memberId" gorm:"type:varchar(255);not null;uniqueIndex:idx_workspace_member"`
	Role        enum.Role `json:"role" gorm:"type:varchar(10);default:'member'"`

	User *User `json:"member,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

// ResolvedUserID returns the member's user id whether the membership row
// carries the raw id or only the preloaded User object.
func (m WorkspaceMember) ResolvedUserID() string {
	if m.UserID != "" {
		return m.UserID
	}
	if m.User != nil {
		return m.User.ID
	}
	return ""
}

func (w *Workspace) IsAdmin(userID string) bool {
	for _, member := range w.Members {
		if member.ResolvedUserID() == userID && member.Role == enum.RoleAdmin {
			return true
		}
	}
	return false
}

func (w *Workspace) IsMember(userID string) bool {
	for _, member := range w.Members {
		if member.ResolvedUserID() == userID {
			return true
		}
	}
	return false
}

func (w *Workspace) HasChannelNamed(name string) bool {
	for _, channel := range w.Channels {
		if strings.EqualFold(channel.Name, name) {
			return true
		}
	}
	return false
}

func (w *Workspace) AdminCount() int {
	count := 0
	for _, member := range w.Members {
		if member.Role == enum.RoleAdmin {
			count++
		}
	}
	return count
}
