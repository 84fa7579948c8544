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

package model

// Role is one of the fixed legacy project roles.
type Role string

const (
	RoleOwner  Role = "Owner"
	RoleEditor Role = "Editor"
	RoleViewer Role = "Viewer"
)

// IsLegacy reports whether the value is one of the three legacy literals.
// Everything else is treated as a custom role id.
func (r Role) IsLegacy() bool {
	switch r {
	case RoleOwner, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// Capabilities is the fixed-shape boolean capability set tied to a legacy
// role. Constants, never persisted per-instance.
type Capabilities struct {
	Edit         bool `json:"edit"`
	Delete       bool `json:"delete"`
	Invite       bool `json:"invite"`
	ManageTasks  bool `json:"manageTasks"`
	ManageIdeas  bool `json:"manageIdeas"`
	ManageIssues bool `json:"manageIssues"`
	Comment      bool `json:"comment"`
	View         bool `json:"view"`
	ManageGroups bool `json:"manageGroups"`
}

// Capability keys used by the coarse boolean query path.
const (
	CapEdit         = "edit"
	CapDelete       = "delete"
	CapInvite       = "invite"
	CapManageTasks  = "manageTasks"
	CapManageIdeas  = "manageIdeas"
	CapManageIssues = "manageIssues"
	CapComment      = "comment"
	CapView         = "view"
	CapManageGroups = "manageGroups"
)

// Has looks a capability up by key. Unknown keys are false.
func (c Capabilities) Has(key string) bool {
	switch key {
	case CapEdit:
		return c.Edit
	case CapDelete:
		return c.Delete
	case CapInvite:
		return c.Invite
	case CapManageTasks:
		return c.ManageTasks
	case CapManageIdeas:
		return c.ManageIdeas
	case CapManageIssues:
		return c.ManageIssues
	case CapComment:
		return c.Comment
	case CapView:
		return c.View
	case CapManageGroups:
		return c.ManageGroups
	}
	return false
}

var roleCapabilities = map[Role]Capabilities{
	RoleOwner: {
		Edit: true, Delete: true, Invite: true,
		ManageTasks: true, ManageIdeas: true, ManageIssues: true,
		Comment: true, View: true, ManageGroups: true,
	},
	RoleEditor: {
		Edit: true, Invite: true,
		ManageTasks: true, ManageIdeas: true, ManageIssues: true,
		Comment: true, View: true, ManageGroups: true,
	},
	RoleViewer: {
		Comment: true, View: true,
	},
}

// Capabilities returns the static capability set for a legacy role.
// Non-legacy values (custom role ids, stale references) yield the all-false
// set, never an error.
func (r Role) Capabilities() Capabilities {
	return roleCapabilities[r]
}
