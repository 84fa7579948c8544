package repo

import "github.com/google/wire"

// ProviderSet provides repository implementations.
var ProviderSet = wire.NewSet(NewWorkspaceRepo, NewProjectRepo)
