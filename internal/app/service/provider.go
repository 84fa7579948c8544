package service

import "github.com/google/wire"

// ProviderSet provides service implementations.
var ProviderSet = wire.NewSet(NewRoleService, NewMemberService)
