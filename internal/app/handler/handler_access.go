package handler

import (
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/repo"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/service"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/http"
	"github.com/gofiber/fiber/v2"
)

// AccessHandler serves the gate snapshots consumed by UI gating. Read-path
// failures below the snapshot fetch never surface as errors; a capability
// that cannot be resolved is simply denied.
type AccessHandler struct {
	projects    repo.IProjectRepository
	workspaces  repo.IWorkspaceRepository
	roleService *service.RoleService
}

func NewAccessHandler(projects repo.IProjectRepository, workspaces repo.IWorkspaceRepository, roleService *service.RoleService) *AccessHandler {
	return &AccessHandler{
		projects:    projects,
		workspaces:  workspaces,
		roleService: roleService,
	}
}

// ProjectAccess returns the caller's full project gate snapshot.
func (h *AccessHandler) ProjectAccess(c *fiber.Ctx) error {
	projectId := c.Params("projectId")
	userId := currentUserId(c)

	gate, err := service.NewProjectGate(c.Context(), h.projects, h.roleService, projectId, userId)
	if err != nil {
		return repServiceErr(c, err)
	}

	role, hasRole := gate.Role()
	detail := fiber.Map{
		"isOwner":      gate.IsOwner(),
		"capabilities": gate.Capabilities(),
		"permissions":  gate.Permissions(),
	}
	if hasRole {
		detail["role"] = role
	} else {
		detail["role"] = nil
	}
	return http.WithRepJSON(c, detail)
}

// ProjectAccessCheck answers a single capability or permission query.
func (h *AccessHandler) ProjectAccessCheck(c *fiber.Ctx) error {
	projectId := c.Params("projectId")
	userId := currentUserId(c)

	capability := c.Query("capability")
	permission := c.Query("permission")
	if capability == "" && permission == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "capability or permission query is required", c.Path())
	}

	gate, err := service.NewProjectGate(c.Context(), h.projects, h.roleService, projectId, userId)
	if err != nil {
		return repServiceErr(c, err)
	}

	granted := false
	if capability != "" {
		granted = gate.Can(capability)
	} else {
		granted = gate.HasPermission(permission)
	}
	return http.WithRepJSON(c, fiber.Map{"granted": granted})
}

// WorkspaceAccess returns the caller's workspace gate snapshot.
func (h *AccessHandler) WorkspaceAccess(c *fiber.Ctx) error {
	workspaceId := c.Params("wsId")
	userId := currentUserId(c)

	gate, err := service.NewWorkspaceGate(c.Context(), h.workspaces, workspaceId, userId)
	if err != nil {
		return repServiceErr(c, err)
	}

	role, hasRole := gate.Role()
	detail := fiber.Map{
		"isOwner":             gate.IsOwner(),
		"capabilities":        gate.Capabilities(),
		"canChangeVisibility": gate.CanChangeVisibility(),
	}
	if hasRole {
		detail["role"] = role
	} else {
		detail["role"] = nil
	}
	return http.WithRepJSON(c, detail)
}
