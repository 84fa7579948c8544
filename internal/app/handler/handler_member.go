package handler

import (
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/model"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/service"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/http"
	"github.com/gofiber/fiber/v2"
)

// MemberHandler serves project membership endpoints.
type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// ListMembers returns the normalized member list.
func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	projectId := c.Params("projectId")
	if projectId == "" {
		return http.WithRepErrMsg(c, http.ProjectIdIsEmpty.Code, http.ProjectIdIsEmpty.Msg, c.Path())
	}

	members, err := h.memberService.ListMembers(c.Context(), projectId)
	if err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"members": members})
}

// AddMember adds a membership record; an omitted role falls back to the
// workspace default custom role, then Editor.
func (h *MemberHandler) AddMember(c *fiber.Ctx) error {
	projectId := c.Params("projectId")

	var req model.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "invalid request parameters", c.Path())
	}
	if req.UserId == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "userId is required", c.Path())
	}

	member, err := h.memberService.AddMember(c.Context(), projectId, currentUserId(c), &req)
	if err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepJSON(c, member)
}

// UpdateMember changes a member's role value.
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	projectId := c.Params("projectId")
	userId := c.Params("userId")

	var req model.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "invalid request parameters", c.Path())
	}
	if req.Role == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "role is required", c.Path())
	}

	if err := h.memberService.UpdateMemberRole(c.Context(), projectId, currentUserId(c), userId, req.Role); err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

// RemoveMember removes a membership record.
func (h *MemberHandler) RemoveMember(c *fiber.Ctx) error {
	projectId := c.Params("projectId")
	userId := c.Params("userId")

	if err := h.memberService.RemoveMember(c.Context(), projectId, currentUserId(c), userId); err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

// MigrateMembers persists the normalized member list, upgrading legacy flat
// arrays in place.
func (h *MemberHandler) MigrateMembers(c *fiber.Ctx) error {
	projectId := c.Params("projectId")

	members, err := h.memberService.PersistMigration(c.Context(), projectId, currentUserId(c))
	if err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"members": members})
}
