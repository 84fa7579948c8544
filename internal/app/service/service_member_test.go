package service

import (
	"context"
	"testing"

	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/core"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProjectRepo keeps one project in memory.
type fakeProjectRepo struct {
	project  *model.Project
	replaces int
}

func newFakeProjectRepo(p *model.Project) *fakeProjectRepo {
	return &fakeProjectRepo{project: p}
}

func (f *fakeProjectRepo) GetProject(_ context.Context, projectId string) (*model.Project, error) {
	if f.project == nil || f.project.Id != projectId {
		return nil, core.ErrProjectNotFound
	}
	return f.project, nil
}

func (f *fakeProjectRepo) ReplaceMembers(_ context.Context, projectId string, members []model.ProjectMember) error {
	if f.project == nil || f.project.Id != projectId {
		return core.ErrProjectNotFound
	}
	f.project.Members = members
	f.replaces++
	return nil
}

func TestMigrateMembersToRoles(t *testing.T) {
	t.Run("flat entries become Editor records", func(t *testing.T) {
		members := []model.ProjectMember{
			model.LegacyMember("u1"),
			model.LegacyMember("u2"),
		}

		out := MigrateMembersToRoles(members, "u1")
		require.Len(t, out, 1)
		assert.Equal(t, "u2", out[0].UserId)
		assert.Equal(t, "Editor", out[0].Role)
		assert.Equal(t, "u1", out[0].InvitedBy)
		assert.False(t, out[0].JoinedAt.IsZero())
		assert.False(t, out[0].IsLegacyEntry())
	})

	t.Run("structured entries pass through unchanged", func(t *testing.T) {
		members := []model.ProjectMember{
			{UserId: "alice", Role: "Viewer", InvitedBy: "owner"},
			{UserId: "bob", Role: "1717171717000-x9k2", InvitedBy: "alice"},
		}

		out := MigrateMembersToRoles(members, "owner")
		assert.Equal(t, members, out)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, MigrateMembersToRoles(nil, "owner"))
	})
}

func TestMemberService_ListMembersNormalizes(t *testing.T) {
	projects := newFakeProjectRepo(&model.Project{
		Id:      "p1",
		OwnerId: "owner",
		Members: []model.ProjectMember{
			model.LegacyMember("u1"),
			{UserId: "alice", Role: "Viewer"},
		},
	})
	svc := NewMemberService(projects, newFakeWorkspaceRepo(nil))

	members, err := svc.ListMembers(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Editor", members[0].Role)
	assert.Equal(t, "Viewer", members[1].Role)

	// listing never writes the document back
	assert.Equal(t, 0, projects.replaces)
	assert.True(t, projects.project.Members[0].IsLegacyEntry())
}

func TestMemberService_AddMember(t *testing.T) {
	newSvc := func(defaultRoleId string, roles []model.CustomRole) (*MemberService, *fakeProjectRepo) {
		projects := newFakeProjectRepo(&model.Project{
			Id:          "p1",
			WorkspaceId: "ws1",
			OwnerId:     "owner",
			Members: []model.ProjectMember{
				{UserId: "alice", Role: "Viewer"},
			},
		})
		workspaces := newFakeWorkspaceRepo(&model.Workspace{
			Id:            "ws1",
			CustomRoles:   roles,
			DefaultRoleId: defaultRoleId,
		})
		return NewMemberService(projects, workspaces), projects
	}

	t.Run("explicit role is stored verbatim", func(t *testing.T) {
		svc, projects := newSvc("", nil)
		member, err := svc.AddMember(context.Background(), "p1", "owner", &model.AddMemberRequest{
			UserId: "bob", Role: "custom-123",
		})
		require.NoError(t, err)
		assert.Equal(t, "custom-123", member.Role)
		assert.Equal(t, "owner", member.InvitedBy)
		assert.Equal(t, 1, projects.replaces)
	})

	t.Run("empty role uses workspace default", func(t *testing.T) {
		svc, _ := newSvc("r1", []model.CustomRole{{RoleId: "r1", Name: "QA"}})
		member, err := svc.AddMember(context.Background(), "p1", "owner", &model.AddMemberRequest{UserId: "bob"})
		require.NoError(t, err)
		assert.Equal(t, "r1", member.Role)
	})

	t.Run("stale default falls back to Editor", func(t *testing.T) {
		svc, _ := newSvc("gone", []model.CustomRole{{RoleId: "r1"}})
		member, err := svc.AddMember(context.Background(), "p1", "owner", &model.AddMemberRequest{UserId: "bob"})
		require.NoError(t, err)
		assert.Equal(t, "Editor", member.Role)
	})

	t.Run("duplicate member", func(t *testing.T) {
		svc, _ := newSvc("", nil)
		_, err := svc.AddMember(context.Background(), "p1", "owner", &model.AddMemberRequest{UserId: "alice"})
		assert.ErrorIs(t, err, core.ErrMemberExists)
	})

	t.Run("owner cannot be added", func(t *testing.T) {
		svc, _ := newSvc("", nil)
		_, err := svc.AddMember(context.Background(), "p1", "alice", &model.AddMemberRequest{UserId: "owner"})
		assert.ErrorIs(t, err, core.ErrMemberExists)
	})

	t.Run("unauthenticated actor", func(t *testing.T) {
		svc, _ := newSvc("", nil)
		_, err := svc.AddMember(context.Background(), "p1", "", &model.AddMemberRequest{UserId: "bob"})
		assert.ErrorIs(t, err, core.ErrUnauthenticated)
	})

	t.Run("unknown project", func(t *testing.T) {
		svc, _ := newSvc("", nil)
		_, err := svc.AddMember(context.Background(), "missing", "owner", &model.AddMemberRequest{UserId: "bob"})
		assert.ErrorIs(t, err, core.ErrProjectNotFound)
	})
}

func TestMemberService_UpdateMemberRole(t *testing.T) {
	projects := newFakeProjectRepo(&model.Project{
		Id:      "p1",
		OwnerId: "owner",
		Members: []model.ProjectMember{
			{UserId: "alice", Role: "Viewer"},
		},
	})
	svc := NewMemberService(projects, newFakeWorkspaceRepo(nil))
	ctx := context.Background()

	require.NoError(t, svc.UpdateMemberRole(ctx, "p1", "owner", "alice", "custom-123"))
	assert.Equal(t, "custom-123", projects.project.Members[0].Role)

	err := svc.UpdateMemberRole(ctx, "p1", "owner", "ghost", "Viewer")
	assert.ErrorIs(t, err, core.ErrMemberNotFound)

	err = svc.UpdateMemberRole(ctx, "p1", "", "alice", "Viewer")
	assert.ErrorIs(t, err, core.ErrUnauthenticated)
}

func TestMemberService_RemoveMember(t *testing.T) {
	projects := newFakeProjectRepo(&model.Project{
		Id:      "p1",
		OwnerId: "owner",
		Members: []model.ProjectMember{
			{UserId: "alice", Role: "Viewer"},
			{UserId: "bob", Role: "Editor"},
		},
	})
	svc := NewMemberService(projects, newFakeWorkspaceRepo(nil))
	ctx := context.Background()

	require.NoError(t, svc.RemoveMember(ctx, "p1", "owner", "alice"))
	require.Len(t, projects.project.Members, 1)
	assert.Equal(t, "bob", projects.project.Members[0].UserId)

	err := svc.RemoveMember(ctx, "p1", "owner", "alice")
	assert.ErrorIs(t, err, core.ErrMemberNotFound)
}

func TestMemberService_PersistMigration(t *testing.T) {
	projects := newFakeProjectRepo(&model.Project{
		Id:      "p1",
		OwnerId: "owner",
		Members: []model.ProjectMember{
			model.LegacyMember("owner"),
			model.LegacyMember("u2"),
			{UserId: "alice", Role: "Viewer"},
		},
	})
	svc := NewMemberService(projects, newFakeWorkspaceRepo(nil))

	members, err := svc.PersistMigration(context.Background(), "p1", "owner")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "u2", members[0].UserId)
	assert.Equal(t, "Editor", members[0].Role)
	assert.Equal(t, "alice", members[1].UserId)

	// the write-back happened
	assert.Equal(t, 1, projects.replaces)
	for i := range projects.project.Members {
		assert.False(t, projects.project.Members[i].IsLegacyEntry())
	}
}
