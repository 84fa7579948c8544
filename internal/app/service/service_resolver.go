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
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/model"
)

// The resolver is pure computation over an already-fetched snapshot: no
// storage access, no locking, and read paths never fail. Unresolvable input
// degrades to the least-privileged outcome.

// RoleValue is the classified form of the string union stored in membership
// records: either a legacy role literal or a custom role id.
type RoleValue struct {
	Legacy   model.Role
	CustomId string
}

// IsCustom reports whether the value references a custom role.
func (v RoleValue) IsCustom() bool {
	return v.CustomId != ""
}

// ClassifyRoleValue classifies a raw role value once. Every consumer goes
// through this instead of comparing strings at call sites.
func ClassifyRoleValue(raw string) RoleValue {
	if r := model.Role(raw); r.IsLegacy() {
		return RoleValue{Legacy: r}
	}
	return RoleValue{CustomId: raw}
}

// ResolvePermissions translates a role value into its permission list. Legacy
// literals map to their fixed lists; custom role ids resolve against the
// supplied snapshot and are authoritative on their own. A stale or deleted
// reference falls back to the Viewer list: fail closed, never error.
func ResolvePermissions(customRoles []model.CustomRole, roleValue string) []string {
	v := ClassifyRoleValue(roleValue)
	if !v.IsCustom() {
		return model.LegacyRolePermissions[v.Legacy]
	}
	for i := range customRoles {
		if customRoles[i].RoleId == v.CustomId {
			return customRoles[i].Permissions
		}
	}
	return model.LegacyRolePermissions[model.RoleViewer]
}

// GetUserRole resolves the caller's raw role value within a project. The
// owner is always Owner, short-circuiting before any membership lookup. A
// flat legacy entry resolves to Editor, the historical default. The returned
// value may be a custom role id; callers needing permissions pass it on to
// ResolvePermissions. ok is false when the user has no role at all.
func GetUserRole(project *model.Project, userId string) (role string, ok bool) {
	if project == nil || userId == "" {
		return "", false
	}
	if project.OwnerId == userId {
		return string(model.RoleOwner), true
	}
	for i := range project.Members {
		m := &project.Members[i]
		if m.UserId != userId {
			continue
		}
		if m.IsLegacyEntry() {
			return string(model.RoleEditor), true
		}
		return m.Role, true
	}
	return "", false
}

// ResolveCapabilities returns the static capability set for the caller's
// legacy role. This path predates custom roles and deliberately ignores
// them: a custom role value yields the all-false set. Kept because it is
// cheaper than the permission path and sufficient for most UI gating.
func ResolveCapabilities(project *model.Project, userId string) model.Capabilities {
	role, ok := GetUserRole(project, userId)
	if !ok {
		return model.Capabilities{}
	}
	return model.Role(role).Capabilities()
}

// CheckPermission is the fine-grained check: true iff the user is the
// project owner or their resolved permission set contains the permission.
func CheckPermission(project *model.Project, userId, permission string, customRoles []model.CustomRole) bool {
	if project == nil {
		return false
	}
	if project.OwnerId == userId && userId != "" {
		return true
	}
	role, ok := GetUserRole(project, userId)
	if !ok {
		return false
	}
	for _, p := range ResolvePermissions(customRoles, role) {
		if p == permission {
			return true
		}
	}
	return false
}

// CheckCapability is the coarse boolean check: true iff the user is the
// project owner or the capability flag is set for their legacy role.
func CheckCapability(project *model.Project, userId, capabilityKey string) bool {
	if project == nil {
		return false
	}
	if project.OwnerId == userId && userId != "" {
		return true
	}
	return ResolveCapabilities(project, userId).Has(capabilityKey)
}
