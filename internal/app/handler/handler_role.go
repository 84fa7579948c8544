// Copyright 2025 ProjectFlow Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package handler

import (
	"errors"

	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/core"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/model"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/service"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/http"
	"github.com/gofiber/fiber/v2"
)

// RoleHandler serves the custom-role catalog endpoints.
type RoleHandler struct {
	roleService *service.RoleService
}

func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func currentUserId(c *fiber.Ctx) string {
	if userId, ok := c.Locals("user_id").(string); ok {
		return userId
	}
	return ""
}

// repServiceErr maps service errors onto the response code table. Mutation
// failures are loud; the caller needs to know the role was not written.
func repServiceErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, core.ErrUnauthenticated):
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	case errors.Is(err, core.ErrRoleNotFound):
		return http.WithRepErrMsg(c, http.RoleNotExist.Code, http.RoleNotExist.Msg, c.Path())
	case errors.Is(err, core.ErrWorkspaceNotFound),
		errors.Is(err, core.ErrProjectNotFound),
		errors.Is(err, core.ErrMemberNotFound):
		return http.WithRepErrMsg(c, http.NotFound.Code, err.Error(), c.Path())
	case errors.Is(err, core.ErrMemberExists):
		return http.WithRepErrMsg(c, http.MemberAlreadyExist.Code, err.Error(), c.Path())
	}
	return http.WithRepErrMsg(c, http.InternalError.Code, err.Error(), c.Path())
}

// ListRoles lists the workspace's custom roles in display order.
func (h *RoleHandler) ListRoles(c *fiber.Ctx) error {
	workspaceId := c.Params("wsId")
	if workspaceId == "" {
		return http.WithRepErrMsg(c, http.WorkspaceIdIsEmpty.Code, http.WorkspaceIdIsEmpty.Msg, c.Path())
	}

	roles, err := h.roleService.ListCustomRoles(c.Context(), workspaceId)
	if err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"roles": roles})
}

// CreateRole creates a custom role.
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	workspaceId := c.Params("wsId")

	var req model.CreateCustomRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "invalid request parameters", c.Path())
	}
	if req.Name == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "role name is required", c.Path())
	}

	role, err := h.roleService.CreateCustomRole(c.Context(), workspaceId, currentUserId(c), &req)
	if err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepJSON(c, role)
}

// UpdateRole merges partial fields into a role.
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	workspaceId := c.Params("wsId")
	roleId := c.Params("roleId")

	var req model.UpdateCustomRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "invalid request parameters", c.Path())
	}

	if err := h.roleService.UpdateCustomRole(c.Context(), workspaceId, currentUserId(c), roleId, &req); err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

// SetDefaultRole makes the role the workspace default for invitees.
func (h *RoleHandler) SetDefaultRole(c *fiber.Ctx) error {
	workspaceId := c.Params("wsId")
	roleId := c.Params("roleId")

	if err := h.roleService.SetDefaultRole(c.Context(), workspaceId, currentUserId(c), roleId); err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

// DeleteRole removes a role from the catalog.
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	workspaceId := c.Params("wsId")
	roleId := c.Params("roleId")

	if err := h.roleService.DeleteCustomRole(c.Context(), workspaceId, currentUserId(c), roleId); err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

// ReorderRoles rewrites display positions from an ordered id list.
func (h *RoleHandler) ReorderRoles(c *fiber.Ctx) error {
	workspaceId := c.Params("wsId")

	var req model.ReorderCustomRolesRequest
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "invalid request parameters", c.Path())
	}

	if err := h.roleService.ReorderCustomRoles(c.Context(), workspaceId, currentUserId(c), req.OrderedIds); err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

// GetDefaultRole returns the invite default role id, null when unset.
func (h *RoleHandler) GetDefaultRole(c *fiber.Ctx) error {
	workspaceId := c.Params("wsId")

	roleId, err := h.roleService.GetDefaultRoleId(c.Context(), workspaceId)
	if err != nil {
		return repServiceErr(c, err)
	}
	if roleId == "" {
		return http.WithRepJSON(c, fiber.Map{"defaultRoleId": nil})
	}
	return http.WithRepJSON(c, fiber.Map{"defaultRoleId": roleId})
}

// SetDefaultRoleId sets or clears the invite default role id.
func (h *RoleHandler) SetDefaultRoleId(c *fiber.Ctx) error {
	workspaceId := c.Params("wsId")

	var req struct {
		RoleId *string `json:"roleId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "invalid request parameters", c.Path())
	}

	var err error
	if req.RoleId == nil || *req.RoleId == "" {
		err = h.roleService.ClearDefaultRole(c.Context(), workspaceId, currentUserId(c))
	} else {
		err = h.roleService.SetDefaultRole(c.Context(), workspaceId, currentUserId(c), *req.RoleId)
	}
	if err != nil {
		return repServiceErr(c, err)
	}
	return http.WithRepNotDetail(c)
}
