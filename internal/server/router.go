package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// SetupRouter creates the echo router with all routes and middleware.
func SetupRouter(handler *Handler, logger linuxsim.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))
	e.Use(RequestLogger(logger))

	e.GET("/health", handler.HandleHealth)

	api := e.Group("/api/sessions")
	api.POST("", handler.HandleCreate)
	api.GET("/:id", handler.HandleGet)
	api.POST("/:id/exec", handler.HandleExec)
	api.GET("/:id/complete", handler.HandleComplete)
	api.GET("/:id/tree", handler.HandleTree)
	api.DELETE("/:id", handler.HandleDelete)

	return e
}
