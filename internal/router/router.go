package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetApplication(c *ginext.Context)
	DeleteApplication(c *ginext.Context)
	GetUserApplications(c *ginext.Context)
	GetUserProfile(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Applications
		api.GET("/applications/:id", h.GetApplication)
		api.DELETE("/applications/:id", h.DeleteApplication)

		// Users
		api.GET("/users/:id/applications", h.GetUserApplications)
		api.GET("/users/:id/profile", h.GetUserProfile)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
