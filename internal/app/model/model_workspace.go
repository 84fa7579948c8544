package model

// WorkspaceRole is one of the fixed workspace-scope roles. Workspace and
// project scopes resolve independently; there is no cross-scope override.
type WorkspaceRole string

const (
	WorkspaceRoleOwner  WorkspaceRole = "Owner"
	WorkspaceRoleAdmin  WorkspaceRole = "Admin"
	WorkspaceRoleMember WorkspaceRole = "Member"
	WorkspaceRoleGuest  WorkspaceRole = "Guest"
)

// NormalizeWorkspaceRole maps a stored workspace role value to the current
// role set. Historical records may carry Editor/Viewer; these alias to
// Member/Guest at read time, stored data is never rewritten. Unknown values
// degrade to Guest.
func NormalizeWorkspaceRole(v string) WorkspaceRole {
	switch WorkspaceRole(v) {
	case WorkspaceRoleOwner:
		return WorkspaceRoleOwner
	case WorkspaceRoleAdmin:
		return WorkspaceRoleAdmin
	case WorkspaceRoleMember, WorkspaceRole(RoleEditor):
		return WorkspaceRoleMember
	case WorkspaceRoleGuest, WorkspaceRole(RoleViewer):
		return WorkspaceRoleGuest
	}
	return WorkspaceRoleGuest
}

// WorkspaceCapabilities is the static capability set tied to a workspace role.
type WorkspaceCapabilities struct {
	ManageWorkspace bool `json:"manageWorkspace"`
	ManageMembers   bool `json:"manageMembers"`
	ManageGroups    bool `json:"manageGroups"`
	CreateProjects  bool `json:"createProjects"`
	DeleteProjects  bool `json:"deleteProjects"`
	ViewAllProjects bool `json:"viewAllProjects"`
}

// Workspace capability keys.
const (
	WsCapManageWorkspace = "manageWorkspace"
	WsCapManageMembers   = "manageMembers"
	WsCapManageGroups    = "manageGroups"
	WsCapCreateProjects  = "createProjects"
	WsCapDeleteProjects  = "deleteProjects"
	WsCapViewAllProjects = "viewAllProjects"
)

// Has looks a workspace capability up by key. Unknown keys are false.
func (c WorkspaceCapabilities) Has(key string) bool {
	switch key {
	case WsCapManageWorkspace:
		return c.ManageWorkspace
	case WsCapManageMembers:
		return c.ManageMembers
	case WsCapManageGroups:
		return c.ManageGroups
	case WsCapCreateProjects:
		return c.CreateProjects
	case WsCapDeleteProjects:
		return c.DeleteProjects
	case WsCapViewAllProjects:
		return c.ViewAllProjects
	}
	return false
}

var workspaceRoleCapabilities = map[WorkspaceRole]WorkspaceCapabilities{
	WorkspaceRoleOwner: {
		ManageWorkspace: true, ManageMembers: true, ManageGroups: true,
		CreateProjects: true, DeleteProjects: true, ViewAllProjects: true,
	},
	WorkspaceRoleAdmin: {
		ManageMembers: true, ManageGroups: true,
		CreateProjects: true, DeleteProjects: true, ViewAllProjects: true,
	},
	WorkspaceRoleMember: {
		CreateProjects: true,
	},
	WorkspaceRoleGuest: {},
}

// Capabilities returns the static workspace capability set for the role.
func (r WorkspaceRole) Capabilities() WorkspaceCapabilities {
	return workspaceRoleCapabilities[r]
}

// WorkspaceMember is one per (workspace, user). Role stores the raw value and
// is normalized at read time.
type WorkspaceMember struct {
	UserId string `bson:"userId" json:"userId"`
	Role   string `bson:"role" json:"role"`
}

// Workspace (tenant) document. Custom roles live as a single array on the
// document and are replaced wholesale on every catalog mutation.
type Workspace struct {
	Id            string            `bson:"_id" json:"workspaceId"`
	Name          string            `bson:"name" json:"name"`
	OwnerId       string            `bson:"ownerId" json:"ownerId"`
	Members       []WorkspaceMember `bson:"members" json:"members"`
	CustomRoles   []CustomRole      `bson:"customRoles,omitempty" json:"customRoles,omitempty"`
	DefaultRoleId string            `bson:"defaultRoleId,omitempty" json:"defaultRoleId,omitempty"`
}

// MemberRole returns the normalized workspace role for a user. The workspace
// owner is always Owner; otherwise the membership record decides. No record
// means no role.
func (w *Workspace) MemberRole(userId string) (WorkspaceRole, bool) {
	if w.OwnerId == userId {
		return WorkspaceRoleOwner, true
	}
	for i := range w.Members {
		if w.Members[i].UserId == userId {
			return NormalizeWorkspaceRole(w.Members[i].Role), true
		}
	}
	return "", false
}
