package router

import (
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) roleRouter(r fiber.Router, auth fiber.Handler) {
	roleGroup := r.Group("/workspaces/:wsId/roles")
	{
		roleGroup.Get("/", auth, rt.roleHandler.ListRoles)                    // GET /workspaces/:wsId/roles - list custom roles
		roleGroup.Post("/", auth, rt.roleHandler.CreateRole)                  // POST /workspaces/:wsId/roles - create a custom role
		roleGroup.Put("/reorder", auth, rt.roleHandler.ReorderRoles)          // PUT /workspaces/:wsId/roles/reorder - rewrite display order
		roleGroup.Put("/:roleId", auth, rt.roleHandler.UpdateRole)            // PUT /workspaces/:wsId/roles/:roleId - partial update
		roleGroup.Put("/:roleId/default", auth, rt.roleHandler.SetDefaultRole) // PUT /workspaces/:wsId/roles/:roleId/default - make default
		roleGroup.Delete("/:roleId", auth, rt.roleHandler.DeleteRole)         // DELETE /workspaces/:wsId/roles/:roleId - delete role
	}

	defaultGroup := r.Group("/workspaces/:wsId/default-role")
	{
		defaultGroup.Get("/", auth, rt.roleHandler.GetDefaultRole)   // GET /workspaces/:wsId/default-role - invite default
		defaultGroup.Put("/", auth, rt.roleHandler.SetDefaultRoleId) // PUT /workspaces/:wsId/default-role - set/clear invite default
	}
}
