package router

import (
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) accessRouter(r fiber.Router, auth fiber.Handler) {
	projectAccess := r.Group("/projects/:projectId/access")
	{
		projectAccess.Get("/", auth, rt.accessHandler.ProjectAccess)           // GET /projects/:projectId/access - gate snapshot
		projectAccess.Get("/check", auth, rt.accessHandler.ProjectAccessCheck) // GET /projects/:projectId/access/check - single check
	}

	r.Get("/workspaces/:wsId/access", auth, rt.accessHandler.WorkspaceAccess) // GET /workspaces/:wsId/access - workspace gate snapshot
}
