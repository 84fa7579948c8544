package service

import (
	"os"
	"testing"

	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/model"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/log"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	log.MustInit(log.SetDefaults())
	os.Exit(m.Run())
}

func TestClassifyRoleValue(t *testing.T) {
	tests := []struct {
		raw      string
		isCustom bool
	}{
		{"Owner", false},
		{"Editor", false},
		{"Viewer", false},
		{"1717171717000-x9k2", true},
		{"owner", true}, // role literals are case sensitive
		{"", true},
	}
	for _, tt := range tests {
		v := ClassifyRoleValue(tt.raw)
		assert.Equal(t, tt.isCustom, v.IsCustom(), "raw=%q", tt.raw)
	}
}

func TestGetUserRole(t *testing.T) {
	project := &model.Project{
		Id:      "p1",
		OwnerId: "owner",
		Members: []model.ProjectMember{
			{UserId: "alice", Role: "Viewer"},
			{UserId: "bob", Role: "1717171717000-x9k2"},
			model.LegacyMember("carol"),
			// stale row for the owner must never win over ownership
			{UserId: "owner", Role: "Viewer"},
		},
	}

	tests := []struct {
		name   string
		userId string
		role   string
		ok     bool
	}{
		{"owner wins before membership lookup", "owner", "Owner", true},
		{"structured legacy literal", "alice", "Viewer", true},
		{"custom role id passes through verbatim", "bob", "1717171717000-x9k2", true},
		{"flat entry defaults to Editor", "carol", "Editor", true},
		{"non-member has no role", "dave", "", false},
		{"empty user id has no role", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := GetUserRole(project, tt.userId)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.role, role)
		})
	}

	role, ok := GetUserRole(nil, "alice")
	assert.False(t, ok)
	assert.Empty(t, role)
}

func TestResolvePermissions(t *testing.T) {
	customRoles := []model.CustomRole{
		{RoleId: "r1", Name: "QA", Permissions: []string{model.PermProjectRead, model.PermIssueCreate}},
	}

	t.Run("legacy literals map to fixed lists", func(t *testing.T) {
		assert.Equal(t, model.LegacyRolePermissions[model.RoleOwner], ResolvePermissions(customRoles, "Owner"))
		assert.Equal(t, model.LegacyRolePermissions[model.RoleViewer], ResolvePermissions(customRoles, "Viewer"))
	})

	t.Run("custom role list is authoritative", func(t *testing.T) {
		perms := ResolvePermissions(customRoles, "r1")
		assert.Equal(t, []string{model.PermProjectRead, model.PermIssueCreate}, perms)
		assert.NotContains(t, perms, model.PermProjectUpdate)
	})

	t.Run("stale reference falls back to Viewer", func(t *testing.T) {
		perms := ResolvePermissions(customRoles, "deleted-role-id")
		assert.Equal(t, model.LegacyRolePermissions[model.RoleViewer], perms)
	})

	t.Run("nil snapshot still resolves", func(t *testing.T) {
		perms := ResolvePermissions(nil, "whatever")
		assert.Equal(t, model.LegacyRolePermissions[model.RoleViewer], perms)
	})
}

func TestCheckPermission(t *testing.T) {
	customRoles := []model.CustomRole{
		{RoleId: "r1", Permissions: []string{model.PermIssueCreate}},
	}
	project := &model.Project{
		Id:      "p1",
		OwnerId: "owner",
		Members: []model.ProjectMember{
			{UserId: "alice", Role: "Viewer"},
			{UserId: "bob", Role: "r1"},
		},
	}

	// owner passes every check regardless of the role catalog
	assert.True(t, CheckPermission(project, "owner", model.PermProjectDelete, nil))
	assert.True(t, CheckPermission(project, "owner", model.PermRoleManage, customRoles))

	assert.True(t, CheckPermission(project, "alice", model.PermCommentCreate, customRoles))
	assert.False(t, CheckPermission(project, "alice", model.PermProjectUpdate, customRoles))

	assert.True(t, CheckPermission(project, "bob", model.PermIssueCreate, customRoles))
	assert.False(t, CheckPermission(project, "bob", model.PermProjectRead, customRoles))

	assert.False(t, CheckPermission(project, "nobody", model.PermProjectRead, customRoles))
	assert.False(t, CheckPermission(project, "", model.PermProjectRead, customRoles))
	assert.False(t, CheckPermission(nil, "alice", model.PermProjectRead, customRoles))
}

func TestCheckCapability(t *testing.T) {
	project := &model.Project{
		Id:      "p1",
		OwnerId: "owner",
		Members: []model.ProjectMember{
			{UserId: "alice", Role: "Viewer"},
			{UserId: "bob", Role: "1717171717000-x9k2"},
			model.LegacyMember("carol"),
		},
	}

	assert.True(t, CheckCapability(project, "owner", model.CapDelete))

	assert.True(t, CheckCapability(project, "alice", model.CapComment))
	assert.False(t, CheckCapability(project, "alice", model.CapEdit))

	// the capability path ignores custom roles, a custom id resolves all-false
	assert.False(t, CheckCapability(project, "bob", model.CapView))

	// flat entries act as Editor
	assert.True(t, CheckCapability(project, "carol", model.CapManageTasks))
	assert.False(t, CheckCapability(project, "carol", model.CapDelete))

	assert.False(t, CheckCapability(project, "alice", "unknownKey"))
	assert.False(t, CheckCapability(project, "nobody", model.CapView))
}

func TestResolveCapabilities(t *testing.T) {
	project := &model.Project{
		Id:      "p1",
		OwnerId: "owner",
		Members: []model.ProjectMember{
			{UserId: "bob", Role: "custom-id"},
		},
	}

	assert.Equal(t, model.RoleOwner.Capabilities(), ResolveCapabilities(project, "owner"))
	assert.Equal(t, model.Capabilities{}, ResolveCapabilities(project, "bob"))
	assert.Equal(t, model.Capabilities{}, ResolveCapabilities(project, "nobody"))
}
