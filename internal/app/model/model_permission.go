package model

// Permission points. Fine-grained string keys grantable independently via a
// custom role.
const (
	PermProjectRead   = "project.read"
	PermProjectUpdate = "project.update"
	PermProjectDelete = "project.delete"
	PermProjectInvite = "project.invite"

	PermTaskCreate = "task.create"
	PermTaskUpdate = "task.update"
	PermTaskDelete = "task.delete"

	PermIdeaCreate = "idea.create"
	PermIdeaUpdate = "idea.update"
	PermIdeaDelete = "idea.delete"

	PermIssueCreate = "issue.create"
	PermIssueUpdate = "issue.update"
	PermIssueDelete = "issue.delete"

	PermGroupCreate = "group.create"
	PermGroupUpdate = "group.update"
	PermGroupDelete = "group.delete"

	PermCommentCreate = "comment.create"
	PermRoleManage    = "role.manage"
	PermMemberManage  = "member.manage"
)

// AllPermissions is the full enumerated vocabulary, used to validate
// custom-role grants.
var AllPermissions = []string{
	PermProjectRead, PermProjectUpdate, PermProjectDelete, PermProjectInvite,
	PermTaskCreate, PermTaskUpdate, PermTaskDelete,
	PermIdeaCreate, PermIdeaUpdate, PermIdeaDelete,
	PermIssueCreate, PermIssueUpdate, PermIssueDelete,
	PermGroupCreate, PermGroupUpdate, PermGroupDelete,
	PermCommentCreate, PermRoleManage, PermMemberManage,
}

// Legacy permission lists. Each tier is built on top of the one below it, so
// Owner ⊇ Editor ⊇ Viewer holds by construction.
var (
	viewerPermissions = []string{
		PermProjectRead,
		PermCommentCreate,
	}

	editorPermissions = append(append([]string{}, viewerPermissions...),
		PermProjectUpdate, PermProjectInvite,
		PermTaskCreate, PermTaskUpdate, PermTaskDelete,
		PermIdeaCreate, PermIdeaUpdate, PermIdeaDelete,
		PermIssueCreate, PermIssueUpdate, PermIssueDelete,
		PermGroupCreate, PermGroupUpdate,
	)

	ownerPermissions = append(append([]string{}, editorPermissions...),
		PermProjectDelete,
		PermGroupDelete,
		PermRoleManage, PermMemberManage,
	)
)

// LegacyRolePermissions maps a legacy role to its fixed permission list.
var LegacyRolePermissions = map[Role][]string{
	RoleOwner:  ownerPermissions,
	RoleEditor: editorPermissions,
	RoleViewer: viewerPermissions,
}

// IsKnownPermission reports whether the key belongs to the vocabulary.
func IsKnownPermission(key string) bool {
	for _, p := range AllPermissions {
		if p == key {
			return true
		}
	}
	return false
}
