package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"team-collab-app/enum"
)

func TestMembershipPredicates(t *testing.T) {
	expanded := &User{}
	expanded.ID = "user-2"

	workspace := &Workspace{
		Members: []WorkspaceMember{
			{UserID: "user-1", Role: enum.RoleAdmin},
			{User: expanded, Role: enum.RoleMember}, // reference came back expanded
		},
	}

	assert.True(t, workspace.IsAdmin("user-1"))
	assert.True(t, workspace.IsMember("user-1"))

	// expanded reference still resolves to a plain id
	assert.True(t, workspace.IsMember("user-2"))
	assert.False(t, workspace.IsAdmin("user-2"))

	assert.False(t, workspace.IsMember("stranger"))
	assert.False(t, workspace.IsAdmin("stranger"))
}

func TestAdminImpliesMember(t *testing.T) {
	workspace := &Workspace{
		Members: []WorkspaceMember{
			{UserID: "user-1", Role: enum.RoleAdmin},
			{UserID: "user-2", Role: enum.RoleMember},
		},
	}

	for _, userID := range []string{"user-1", "user-2", "stranger"} {
		if workspace.IsAdmin(userID) {
			assert.True(t, workspace.IsMember(userID))
		}
	}
}

func TestResolvedUserID(t *testing.T) {
	assert.Equal(t, "raw", WorkspaceMember{UserID: "raw"}.ResolvedUserID())

	expanded := &User{}
	expanded.ID = "expanded"
	assert.Equal(t, "expanded", WorkspaceMember{User: expanded}.ResolvedUserID())

	// raw id wins when both forms are present
	assert.Equal(t, "raw", WorkspaceMember{UserID: "raw", User: expanded}.ResolvedUserID())

	assert.Equal(t, "", WorkspaceMember{}.ResolvedUserID())
}

func TestHasChannelNamed(t *testing.T) {
	workspace := &Workspace{
		Channels: []Channel{
			{Name: "General"},
			{Name: "random"},
		},
	}

	assert.True(t, workspace.HasChannelNamed("general"))
	assert.True(t, workspace.HasChannelNamed("GENERAL"))
	assert.True(t, workspace.HasChannelNamed("Random"))
	assert.False(t, workspace.HasChannelNamed("announcements"))
}

func TestAdminCount(t *testing.T) {
	workspace := &Workspace{
		Members: []WorkspaceMember{
			{UserID: "user-1", Role: enum.RoleAdmin},
			{UserID: "user-2", Role: enum.RoleMember},
			{UserID: "user-3", Role: enum.RoleAdmin},
		},
	}
	assert.Equal(t, 2, workspace.AdminCount())
	assert.Equal(t, 0, (&Workspace{}).AdminCount())
}
