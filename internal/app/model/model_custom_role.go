package model

// CustomRole is a workspace-scoped role with freely assigned fine-grained
// permissions. Stored as an array element on the workspace document.
type CustomRole struct {
	RoleId      string   `bson:"roleId" json:"roleId"`
	Name        string   `bson:"name" json:"name"`
	Color       string   `bson:"color" json:"color"`
	Permissions []string `bson:"permissions" json:"permissions"`
	IsDefault   bool     `bson:"isDefault" json:"isDefault"`
	Position    int      `bson:"position" json:"position"`
}

// HasPermission reports whether the role grants the permission key. A custom
// role's permission set is authoritative and exhaustive, it is never merged
// with a legacy template.
func (cr *CustomRole) HasPermission(perm string) bool {
	for _, p := range cr.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// CreateCustomRoleRequest is the payload for creating a custom role.
type CreateCustomRoleRequest struct {
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Permissions []string `json:"permissions"`
}

// UpdateCustomRoleRequest carries the partial fields merged into an existing
// role. Nil pointers leave the stored value untouched.
type UpdateCustomRoleRequest struct {
	Name        *string   `json:"name,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
	IsDefault   *bool     `json:"isDefault,omitempty"`
	Position    *int      `json:"position,omitempty"`
}

// ReorderCustomRolesRequest carries the ordered role id list; ids absent from
// the list keep their prior position.
type ReorderCustomRolesRequest struct {
	OrderedIds []string `json:"orderedIds"`
}
