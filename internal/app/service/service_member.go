package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/core"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/model"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/repo"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/log"
)

// MigrateMembersToRoles bridges the legacy flat member-id array and the
// structured membership records. Structured entries pass through unchanged.
// Flat entries are dropped when they name the owner (the owner never appears
// as a member) and otherwise become Editor records joined "now" with the
// owner as inviter; the exact historical join time is unrecoverable. Pure
// function: nothing is persisted unless the caller writes the result back.
func MigrateMembersToRoles(members []model.ProjectMember, ownerId string) []model.ProjectMember {
	out := make([]model.ProjectMember, 0, len(members))
	now := time.Now()
	for i := range members {
		m := members[i]
		if !m.IsLegacyEntry() {
			out = append(out, m)
			continue
		}
		if m.UserId == ownerId {
			continue
		}
		out = append(out, model.ProjectMember{
			UserId:    m.UserId,
			Role:      string(model.RoleEditor),
			JoinedAt:  now,
			InvitedBy: ownerId,
		})
	}
	return out
}

// MemberService owns project membership mutations. All writes replace the
// full member list in structured form.
type MemberService struct {
	projects   repo.IProjectRepository
	workspaces repo.IWorkspaceRepository
}

func NewMemberService(projects repo.IProjectRepository, workspaces repo.IWorkspaceRepository) *MemberService {
	return &MemberService{
		projects:   projects,
		workspaces: workspaces,
	}
}

// ListMembers returns the normalized member list. Read-time only, the stored
// document is left as-is.
func (ms *MemberService) ListMembers(ctx context.Context, projectId string) ([]model.ProjectMember, error) {
	project, err := ms.projects.GetProject(ctx, projectId)
	if err != nil {
		return nil, err
	}
	return MigrateMembersToRoles(project.Members, project.OwnerId), nil
}

// AddMember adds a membership record. An empty role falls back to the
// workspace's default custom role, then to Editor. The owner cannot be added
// as a member.
func (ms *MemberService) AddMember(ctx context.Context, projectId, actorId string, req *model.AddMemberRequest) (*model.ProjectMember, error) {
	if actorId == "" {
		return nil, core.ErrUnauthenticated
	}
	project, err := ms.projects.GetProject(ctx, projectId)
	if err != nil {
		return nil, err
	}
	if req.UserId == project.OwnerId {
		return nil, fmt.Errorf("owner cannot be added as member: %w", core.ErrMemberExists)
	}

	members := MigrateMembersToRoles(project.Members, project.OwnerId)
	for i := range members {
		if members[i].UserId == req.UserId {
			return nil, core.ErrMemberExists
		}
	}

	role := req.Role
	if role == "" {
		role = ms.defaultRoleValue(ctx, project.WorkspaceId)
	}

	member := model.ProjectMember{
		UserId:    req.UserId,
		Role:      role,
		JoinedAt:  time.Now(),
		InvitedBy: actorId,
	}
	members = append(members, member)

	if err := ms.projects.ReplaceMembers(ctx, projectId, members); err != nil {
		log.Errorw("failed to add member", "projectId", projectId, "userId", req.UserId, "error", err)
		return nil, err
	}

	log.Infow("member added", "projectId", projectId, "userId", req.UserId, "role", role)
	return &member, nil
}

// UpdateMemberRole changes a member's role value (legacy literal or custom
// role id, stored verbatim).
func (ms *MemberService) UpdateMemberRole(ctx context.Context, projectId, actorId, userId, role string) error {
	if actorId == "" {
		return core.ErrUnauthenticated
	}
	project, err := ms.projects.GetProject(ctx, projectId)
	if err != nil {
		return err
	}

	members := MigrateMembersToRoles(project.Members, project.OwnerId)
	found := false
	for i := range members {
		if members[i].UserId == userId {
			members[i].Role = role
			found = true
			break
		}
	}
	if !found {
		return core.ErrMemberNotFound
	}

	if err := ms.projects.ReplaceMembers(ctx, projectId, members); err != nil {
		log.Errorw("failed to update member role", "projectId", projectId, "userId", userId, "error", err)
		return err
	}

	log.Infow("member role updated", "projectId", projectId, "userId", userId, "role", role)
	return nil
}

// RemoveMember removes a membership record.
func (ms *MemberService) RemoveMember(ctx context.Context, projectId, actorId, userId string) error {
	if actorId == "" {
		return core.ErrUnauthenticated
	}
	project, err := ms.projects.GetProject(ctx, projectId)
	if err != nil {
		return err
	}

	members := MigrateMembersToRoles(project.Members, project.OwnerId)
	out := members[:0]
	found := false
	for i := range members {
		if members[i].UserId == userId {
			found = true
			continue
		}
		out = append(out, members[i])
	}
	if !found {
		return core.ErrMemberNotFound
	}

	if err := ms.projects.ReplaceMembers(ctx, projectId, out); err != nil {
		log.Errorw("failed to remove member", "projectId", projectId, "userId", userId, "error", err)
		return err
	}

	log.Infow("member removed", "projectId", projectId, "userId", userId)
	return nil
}

// PersistMigration explicitly writes the normalized member list back,
// upgrading a legacy flat array document to structured records.
func (ms *MemberService) PersistMigration(ctx context.Context, projectId, actorId string) ([]model.ProjectMember, error) {
	if actorId == "" {
		return nil, core.ErrUnauthenticated
	}
	project, err := ms.projects.GetProject(ctx, projectId)
	if err != nil {
		return nil, err
	}

	members := MigrateMembersToRoles(project.Members, project.OwnerId)
	if err := ms.projects.ReplaceMembers(ctx, projectId, members); err != nil {
		log.Errorw("failed to persist member migration", "projectId", projectId, "error", err)
		return nil, err
	}

	log.Infow("member list migrated", "projectId", projectId, "members", len(members))
	return members, nil
}

// defaultRoleValue picks the role for invitees that come without an explicit
// role: the workspace default custom role when set and still existing,
// otherwise Editor.
func (ms *MemberService) defaultRoleValue(ctx context.Context, workspaceId string) string {
	defaultId, err := ms.workspaces.GetDefaultRoleId(ctx, workspaceId)
	if err != nil || defaultId == "" {
		return string(model.RoleEditor)
	}
	roles, err := ms.workspaces.ListCustomRoles(ctx, workspaceId)
	if err != nil {
		return string(model.RoleEditor)
	}
	for i := range roles {
		if roles[i].RoleId == defaultId {
			return defaultId
		}
	}
	// stale default pointer, degrade to the historical default
	return string(model.RoleEditor)
}
