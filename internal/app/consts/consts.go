package consts

const (
	// UserInfoKey redis key prefix for issued auth tokens
	UserInfoKey = "pf:user:token:"
	// RoleListKey redis key prefix for cached workspace custom-role lists
	RoleListKey = "pf:ws:roles:"
)
