package router

import (
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) memberRouter(r fiber.Router, auth fiber.Handler) {
	memberGroup := r.Group("/projects/:projectId/members")
	{
		memberGroup.Get("/", auth, rt.memberHandler.ListMembers)            // GET /projects/:projectId/members - normalized member list
		memberGroup.Post("/", auth, rt.memberHandler.AddMember)             // POST /projects/:projectId/members - add member
		memberGroup.Post("/migrate", auth, rt.memberHandler.MigrateMembers) // POST /projects/:projectId/members/migrate - persist migration
		memberGroup.Put("/:userId", auth, rt.memberHandler.UpdateMember)    // PUT /projects/:projectId/members/:userId - change role value
		memberGroup.Delete("/:userId", auth, rt.memberHandler.RemoveMember) // DELETE /projects/:projectId/members/:userId - remove member
	}
}
