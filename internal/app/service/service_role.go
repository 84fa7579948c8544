package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/consts"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/core"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/model"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/repo"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/cache"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/id"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/log"
)

const roleCacheTTL = 5 * time.Minute

// RoleService is the custom-role catalog: CRUD over the workspace's role
// list. Every mutation reads the current snapshot, computes a new full list
// and writes it back in one replace; concurrent writers race as last write
// wins, never as a partial merge.
type RoleService struct {
	workspaces repo.IWorkspaceRepository
	cache      cache.ICache
}

func NewRoleService(workspaces repo.IWorkspaceRepository, c cache.ICache) *RoleService {
	return &RoleService{
		workspaces: workspaces,
		cache:      c,
	}
}

// ListCustomRoles returns the workspace's custom roles ordered by position.
// The list is cached per workspace so repeated capability checks within one
// session do not refetch.
func (rs *RoleService) ListCustomRoles(ctx context.Context, workspaceId string) ([]model.CustomRole, error) {
	if rs.cache != nil {
		if raw, err := rs.cache.Get(ctx, consts.RoleListKey+workspaceId).Result(); err == nil {
			var cached []model.CustomRole
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	roles, err := rs.workspaces.ListCustomRoles(ctx, workspaceId)
	if err != nil {
		log.Errorw("failed to list custom roles", "workspaceId", workspaceId, "error", err)
		return nil, err
	}
	sort.SliceStable(roles, func(i, j int) bool {
		return roles[i].Position < roles[j].Position
	})

	rs.cacheRoles(ctx, workspaceId, roles)
	return roles, nil
}

// CreateCustomRole appends a new role to the workspace's list. The id is a
// timestamp plus random suffix, re-rolled on the off chance it collides with
// an existing id. Position sorts after all existing roles; isDefault starts
// false.
func (rs *RoleService) CreateCustomRole(ctx context.Context, workspaceId, actorId string, req *model.CreateCustomRoleRequest) (*model.CustomRole, error) {
	if actorId == "" {
		return nil, core.ErrUnauthenticated
	}

	roles, err := rs.workspaces.ListCustomRoles(ctx, workspaceId)
	if err != nil {
		return nil, err
	}

	roleId := id.TimeId()
	for containsRoleId(roles, roleId) {
		roleId = id.TimeId()
	}

	position := 0
	for i := range roles {
		if roles[i].Position >= position {
			position = roles[i].Position + 1
		}
	}

	role := model.CustomRole{
		RoleId:      roleId,
		Name:        req.Name,
		Color:       req.Color,
		Permissions: validPermissions(req.Permissions),
		IsDefault:   false,
		Position:    position,
	}

	roles = append(roles, role)
	if err := rs.workspaces.ReplaceCustomRoles(ctx, workspaceId, roles); err != nil {
		log.Errorw("failed to create custom role", "workspaceId", workspaceId, "error", err)
		return nil, err
	}
	rs.invalidate(ctx, workspaceId)

	log.Infow("custom role created", "workspaceId", workspaceId, "roleId", role.RoleId)
	return &role, nil
}

// UpdateCustomRole merges partial fields into the role with the given id.
// When isDefault is being set true every sibling's flag is cleared within
// the same list write, so no observable state ever holds two defaults.
func (rs *RoleService) UpdateCustomRole(ctx context.Context, workspaceId, actorId, roleId string, req *model.UpdateCustomRoleRequest) error {
	if actorId == "" {
		return core.ErrUnauthenticated
	}

	roles, err := rs.workspaces.ListCustomRoles(ctx, workspaceId)
	if err != nil {
		return err
	}

	idx := indexOfRole(roles, roleId)
	if idx < 0 {
		return fmt.Errorf("update role %s: %w", roleId, core.ErrRoleNotFound)
	}

	if req.Name != nil {
		roles[idx].Name = *req.Name
	}
	if req.Color != nil {
		roles[idx].Color = *req.Color
	}
	if req.Permissions != nil {
		roles[idx].Permissions = validPermissions(*req.Permissions)
	}
	if req.Position != nil {
		roles[idx].Position = *req.Position
	}
	if req.IsDefault != nil {
		if *req.IsDefault {
			applyDefaultFlag(roles, roleId)
		} else {
			roles[idx].IsDefault = false
		}
	}

	if err := rs.workspaces.ReplaceCustomRoles(ctx, workspaceId, roles); err != nil {
		log.Errorw("failed to update custom role", "workspaceId", workspaceId, "roleId", roleId, "error", err)
		return err
	}
	rs.invalidate(ctx, workspaceId)

	log.Infow("custom role updated", "workspaceId", workspaceId, "roleId", roleId)
	return nil
}

// SetDefaultRole marks the role as the workspace default for new invitees:
// the exclusive isDefault flag and the workspace defaultRoleId pointer move
// together.
func (rs *RoleService) SetDefaultRole(ctx context.Context, workspaceId, actorId, roleId string) error {
	if actorId == "" {
		return core.ErrUnauthenticated
	}

	roles, err := rs.workspaces.ListCustomRoles(ctx, workspaceId)
	if err != nil {
		return err
	}
	if indexOfRole(roles, roleId) < 0 {
		return fmt.Errorf("set default role %s: %w", roleId, core.ErrRoleNotFound)
	}

	applyDefaultFlag(roles, roleId)
	if err := rs.workspaces.ReplaceCustomRoles(ctx, workspaceId, roles); err != nil {
		return err
	}
	if err := rs.workspaces.SetDefaultRoleId(ctx, workspaceId, roleId); err != nil {
		return err
	}
	rs.invalidate(ctx, workspaceId)

	log.Infow("default role set", "workspaceId", workspaceId, "roleId", roleId)
	return nil
}

// ClearDefaultRole removes the workspace default role assignment.
func (rs *RoleService) ClearDefaultRole(ctx context.Context, workspaceId, actorId string) error {
	if actorId == "" {
		return core.ErrUnauthenticated
	}

	roles, err := rs.workspaces.ListCustomRoles(ctx, workspaceId)
	if err != nil {
		return err
	}
	for i := range roles {
		roles[i].IsDefault = false
	}
	if err := rs.workspaces.ReplaceCustomRoles(ctx, workspaceId, roles); err != nil {
		return err
	}
	if err := rs.workspaces.SetDefaultRoleId(ctx, workspaceId, ""); err != nil {
		return err
	}
	rs.invalidate(ctx, workspaceId)
	return nil
}

// GetDefaultRoleId returns the invite default role id, empty when unset.
func (rs *RoleService) GetDefaultRoleId(ctx context.Context, workspaceId string) (string, error) {
	return rs.workspaces.GetDefaultRoleId(ctx, workspaceId)
}

// DeleteCustomRole removes the role from the workspace's list. Memberships
// still referencing the deleted id are left alone; they degrade to the
// Viewer fallback at resolution time. Deleting the current default also
// clears the invite default pointer.
func (rs *RoleService) DeleteCustomRole(ctx context.Context, workspaceId, actorId, roleId string) error {
	if actorId == "" {
		return core.ErrUnauthenticated
	}

	roles, err := rs.workspaces.ListCustomRoles(ctx, workspaceId)
	if err != nil {
		return err
	}

	idx := indexOfRole(roles, roleId)
	if idx < 0 {
		return fmt.Errorf("delete role %s: %w", roleId, core.ErrRoleNotFound)
	}
	wasDefault := roles[idx].IsDefault
	roles = append(roles[:idx], roles[idx+1:]...)

	if err := rs.workspaces.ReplaceCustomRoles(ctx, workspaceId, roles); err != nil {
		log.Errorw("failed to delete custom role", "workspaceId", workspaceId, "roleId", roleId, "error", err)
		return err
	}
	if wasDefault {
		if err := rs.workspaces.SetDefaultRoleId(ctx, workspaceId, ""); err != nil {
			log.Warnw("failed to clear stale default role id", "workspaceId", workspaceId, "error", err)
		}
	}
	rs.invalidate(ctx, workspaceId)

	log.Infow("custom role deleted", "workspaceId", workspaceId, "roleId", roleId)
	return nil
}

// ReorderCustomRoles rewrites every role's position to its index in
// orderedIds. Ids absent from the list keep their prior position; unknown
// ids are ignored. Never fails on a partial list.
func (rs *RoleService) ReorderCustomRoles(ctx context.Context, workspaceId, actorId string, orderedIds []string) error {
	if actorId == "" {
		return core.ErrUnauthenticated
	}

	roles, err := rs.workspaces.ListCustomRoles(ctx, workspaceId)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(orderedIds))
	for i, rid := range orderedIds {
		index[rid] = i
	}
	for i := range roles {
		if pos, ok := index[roles[i].RoleId]; ok {
			roles[i].Position = pos
		}
	}

	if err := rs.workspaces.ReplaceCustomRoles(ctx, workspaceId, roles); err != nil {
		log.Errorw("failed to reorder custom roles", "workspaceId", workspaceId, "error", err)
		return err
	}
	rs.invalidate(ctx, workspaceId)
	return nil
}

func (rs *RoleService) cacheRoles(ctx context.Context, workspaceId string, roles []model.CustomRole) {
	if rs.cache == nil {
		return
	}
	raw, err := json.Marshal(roles)
	if err != nil {
		return
	}
	if err := rs.cache.Set(ctx, consts.RoleListKey+workspaceId, raw, roleCacheTTL).Err(); err != nil {
		log.Debugw("failed to cache role list", "workspaceId", workspaceId, "error", err)
	}
}

func (rs *RoleService) invalidate(ctx context.Context, workspaceId string) {
	if rs.cache == nil {
		return
	}
	if err := rs.cache.Del(ctx, consts.RoleListKey+workspaceId).Err(); err != nil {
		log.Debugw("failed to invalidate role list cache", "workspaceId", workspaceId, "error", err)
	}
}

func containsRoleId(roles []model.CustomRole, roleId string) bool {
	return indexOfRole(roles, roleId) >= 0
}

func indexOfRole(roles []model.CustomRole, roleId string) int {
	for i := range roles {
		if roles[i].RoleId == roleId {
			return i
		}
	}
	return -1
}

// applyDefaultFlag sets isDefault on the target and clears it on every
// sibling, all within the caller's single list write.
func applyDefaultFlag(roles []model.CustomRole, roleId string) {
	for i := range roles {
		roles[i].IsDefault = roles[i].RoleId == roleId
	}
}

// validPermissions drops keys outside the fixed vocabulary.
func validPermissions(perms []string) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if model.IsKnownPermission(p) {
			out = append(out, p)
		}
	}
	return out
}
