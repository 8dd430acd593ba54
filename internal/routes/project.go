package routes

import (
	"portfolio/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ProjectRoutes struct {
	handler *handlers.ProjectHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", r.handler.ListProjects)
		projects.GET("/:slug", r.handler.GetProject)
	}
}
