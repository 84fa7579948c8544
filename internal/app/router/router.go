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

package router

import (
	"time"

	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/handler"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/repo"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/service"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/cache"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/ctx"
	httpx "github.com/ChristophLabestin/projectflow-app-sub007/pkg/http"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/http/middleware"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
)

type Router struct {
	Http *httpx.Http
	Ctx  *ctx.Context

	roleHandler   *handler.RoleHandler
	memberHandler *handler.MemberHandler
	accessHandler *handler.AccessHandler
}

func NewRouter(httpConf *httpx.Http, appCtx *ctx.Context) *Router {
	workspaceRepo := repo.NewWorkspaceRepo(appCtx.MongoIns)
	projectRepo := repo.NewProjectRepo(appCtx.MongoIns)
	roleCache := cache.NewRedisCache(appCtx.RedisIns)

	roleService := service.NewRoleService(workspaceRepo, roleCache)
	memberService := service.NewMemberService(projectRepo, workspaceRepo)

	return &Router{
		Http:          httpConf,
		Ctx:           appCtx,
		roleHandler:   handler.NewRoleHandler(roleService),
		memberHandler: handler.NewMemberHandler(memberService),
		accessHandler: handler.NewAccessHandler(projectRepo, workspaceRepo, roleService),
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ProjectFlow",
		ReadTimeout:  time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(rt.Http.IdleTimeout) * time.Second,
	})

	app.Use(
		fiberrecover.New(),
		cors.New(),
	)

	if rt.Http.AccessLog {
		app.Use(httpx.AccessLogFormat(rt.Ctx.Log.Desugar()))
	}

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// version info
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	contextPath := rt.Http.ContextPath
	if contextPath == "" {
		contextPath = "/api/v1"
	}
	api := app.Group(contextPath)

	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey, rt.Ctx.RedisIns)

	rt.roleRouter(api, auth)
	rt.memberRouter(api, auth)
	rt.accessRouter(api, auth)

	// fallthrough for unknown paths, after all routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).
			JSON(httpx.ResponseErr{ErrCode: fiber.StatusNotFound, ErrMsg: "request path not found", Path: c.Path()})
	})

	return app
}
