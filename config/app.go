package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"team-collab-app/config/common"
	applogger "team-collab-app/config/logger"
	"team-collab-app/handler"
	"team-collab-app/middleware"
	"team-collab-app/repository"
	"team-collab-app/routes"
	"team-collab-app/security"
	"team-collab-app/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLog *applogger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	appLog := applogger.NewLogger()
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	db := aC.GetDB()

	newUserRepository := repository.NewUserRepository(db)
	newWorkspaceRepository := repository.NewWorkspaceRepository(db)
	newChannelRepository := repository.NewChannelRepository(db)
	newMessageRepository := repository.NewMessageRepository(db)

	newAuthUsecase := usecase.NewAuthUsecase(newUserRepository, aC.Validate, aC.Logger, aC.JWT)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.AppLog)
	newWorkspaceUsecase := usecase.NewWorkspaceUsecase(newWorkspaceRepository, newUserRepository, aC.Validate, aC.Logger)
	newMessageUsecase := usecase.NewMessageUsecase(newWorkspaceRepository, newChannelRepository, newMessageRepository, newUserRepository, aC.Validate, aC.Logger)

	wsHandler := handler.NewWebSocketHandler(aC.Logger, newMessageUsecase, newChannelRepository, aC.JWT)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newWorkspaceHandler := handler.NewWorkspaceHandler(newWorkspaceUsecase, aC.Logger)
	newMessageHandler := handler.NewMessageHandler(newMessageUsecase, aC.Logger, wsHandler)

	route := routes.ConfigRoute{
		App:              aC.App,
		Middleware:       aC.Middleware,
		AuthHandler:      newAuthHandler,
		UserHandler:      newUserHandler,
		WorkspaceHandler: newWorkspaceHandler,
		MessageHandler:   newMessageHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}

func NewValidator() *validator.Validate {
	return validator.New()
}
