package routes

import (
	"portfolio/internal/handlers"

	"github.com/gin-gonic/gin"
)

// PageRoutes serves the HTML site.
type PageRoutes struct {
	handler *handlers.PageHandler
}

func NewPageRoutes(handler *handlers.PageHandler) *PageRoutes {
	return &PageRoutes{handler: handler}
}

func (r *PageRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", r.handler.Home)
	projects := router.Group("/projects")
	{
		projects.GET("", r.handler.Projects)
		projects.GET("/:slug", r.handler.Project)
	}
}
