// Copyright 2025 ProjectFlow Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/model"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/repo"
)

// ProjectGate is the read-only facade feature code consults for one
// (project, user) pair. Fetching the project and the workspace's custom-role
// list happens once at construction; every query afterwards is a pure
// computation over that snapshot and never blocks or fails.
type ProjectGate struct {
	project     *model.Project
	customRoles []model.CustomRole
	userId      string
	role        string
	hasRole     bool
}

// NewProjectGate builds a gate over the current project and role-list
// snapshot. The role list comes through the RoleService cache.
func NewProjectGate(ctx context.Context, projects repo.IProjectRepository, roles *RoleService, projectId, userId string) (*ProjectGate, error) {
	project, err := projects.GetProject(ctx, projectId)
	if err != nil {
		return nil, err
	}
	customRoles, err := roles.ListCustomRoles(ctx, project.WorkspaceId)
	if err != nil {
		// permission checks must keep answering; degrade to no custom roles
		customRoles = []model.CustomRole{}
	}
	return NewProjectGateFromSnapshot(project, customRoles, userId), nil
}

// NewProjectGateFromSnapshot builds a gate over already-fetched data, for
// headless checks where the caller manages its own snapshot.
func NewProjectGateFromSnapshot(project *model.Project, customRoles []model.CustomRole, userId string) *ProjectGate {
	role, hasRole := GetUserRole(project, userId)
	return &ProjectGate{
		project:     project,
		customRoles: customRoles,
		userId:      userId,
		role:        role,
		hasRole:     hasRole,
	}
}

// Role returns the resolved role value (legacy literal or custom role id);
// ok is false when the user has no role in this project.
func (g *ProjectGate) Role() (string, bool) {
	return g.role, g.hasRole
}

// IsOwner reports project ownership.
func (g *ProjectGate) IsOwner() bool {
	return g.project.OwnerId == g.userId && g.userId != ""
}

// Can answers the coarse capability check.
func (g *ProjectGate) Can(capabilityKey string) bool {
	return CheckCapability(g.project, g.userId, capabilityKey)
}

// HasPermission answers the fine-grained permission check.
func (g *ProjectGate) HasPermission(permissionKey string) bool {
	return CheckPermission(g.project, g.userId, permissionKey, g.customRoles)
}

// Permissions returns the user's full resolved permission list, for UI
// prefetch. Empty when the user has no role.
func (g *ProjectGate) Permissions() []string {
	if g.IsOwner() {
		return model.LegacyRolePermissions[model.RoleOwner]
	}
	if !g.hasRole {
		return []string{}
	}
	return ResolvePermissions(g.customRoles, g.role)
}

// Capabilities returns the user's resolved capability set.
func (g *ProjectGate) Capabilities() model.Capabilities {
	return ResolveCapabilities(g.project, g.userId)
}

// WorkspaceGate is the workspace-scope counterpart. Composite checks are
// thin call-site logic over the role and its static capability set, not part
// of the core resolver.
type WorkspaceGate struct {
	workspace *model.Workspace
	userId    string
	role      model.WorkspaceRole
	hasRole   bool
}

func NewWorkspaceGate(ctx context.Context, workspaces repo.IWorkspaceRepository, workspaceId, userId string) (*WorkspaceGate, error) {
	ws, err := workspaces.GetWorkspace(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return NewWorkspaceGateFromSnapshot(ws, userId), nil
}

func NewWorkspaceGateFromSnapshot(ws *model.Workspace, userId string) *WorkspaceGate {
	role, hasRole := ws.MemberRole(userId)
	return &WorkspaceGate{
		workspace: ws,
		userId:    userId,
		role:      role,
		hasRole:   hasRole,
	}
}

// Role returns the normalized workspace role; ok is false for non-members.
func (g *WorkspaceGate) Role() (model.WorkspaceRole, bool) {
	return g.role, g.hasRole
}

// IsOwner reports workspace ownership.
func (g *WorkspaceGate) IsOwner() bool {
	return g.workspace.OwnerId == g.userId && g.userId != ""
}

// Can answers the workspace capability check.
func (g *WorkspaceGate) Can(capabilityKey string) bool {
	if !g.hasRole {
		return false
	}
	return g.role.Capabilities().Has(capabilityKey)
}

// Capabilities returns the resolved workspace capability set.
func (g *WorkspaceGate) Capabilities() model.WorkspaceCapabilities {
	if !g.hasRole {
		return model.WorkspaceCapabilities{}
	}
	return g.role.Capabilities()
}

// CanChangeVisibility is an application-level composite: the workspace owner
// holding a non-guest role.
func (g *WorkspaceGate) CanChangeVisibility() bool {
	return g.IsOwner() && g.hasRole && g.role != model.WorkspaceRoleGuest
}
