package core

import "errors"

var (
	// ErrRoleNotFound role id not present when an update/delete targets an explicit id
	ErrRoleNotFound = errors.New("role not found")
	// ErrWorkspaceNotFound workspace record missing
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrProjectNotFound project record missing
	ErrProjectNotFound = errors.New("project not found")
	// ErrMemberNotFound membership record missing
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberExists membership record already present
	ErrMemberExists = errors.New("member already exists")
	// ErrUnauthenticated no current user context on a mutating role operation
	ErrUnauthenticated = errors.New("unauthenticated")
)
