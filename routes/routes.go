package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"team-collab-app/handler"
	"team-collab-app/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.WorkspaceHandler
	*handler.MessageHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/signup", rc.AuthHandler.SignUp)
	app.Post("/auth/signin", rc.AuthHandler.SignIn)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)
	app.Use(rc.Middleware.ExtractUserID)

	app.Get("/auth/me", rc.UserHandler.GetCurrentUser)
	app.Get("/users", rc.UserHandler.GetAllUsers)

	app.Post("/workspace", rc.WorkspaceHandler.CreateWorkspace)
	app.Get("/workspace", rc.WorkspaceHandler.GetUserWorkspaces)
	app.Get("/workspace/join/:joinCode", rc.WorkspaceHandler.GetWorkspaceByJoinCode)
	app.Get("/workspace/:workspaceId", rc.WorkspaceHandler.GetWorkspace)
	app.Put("/workspace/:workspaceId", rc.WorkspaceHandler.UpdateWorkspace)
	app.Delete("/workspace/:workspaceId", rc.WorkspaceHandler.DeleteWorkspace)

	app.Put("/workspace/:workspaceId/member", rc.WorkspaceHandler.AddMember)
	app.Put("/workspace/:workspaceId/member/role", rc.WorkspaceHandler.UpdateMemberRole)
	app.Delete("/workspace/:workspaceId/member/:memberId", rc.WorkspaceHandler.RemoveMember)

	app.Put("/workspace/:workspaceId/channel", rc.WorkspaceHandler.AddChannel)

	app.Post("/workspace/:workspaceId/channel/:channelId/message", rc.MessageHandler.SendMessage)
	app.Get("/workspace/:workspaceId/channel/:channelId/message", rc.MessageHandler.GetChannelMessages)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
