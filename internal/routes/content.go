package routes

import (
	"portfolio/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ContentRoutes struct {
	handler *handlers.ContentHandler
}

func NewContentRoutes(handler *handlers.ContentHandler) *ContentRoutes {
	return &ContentRoutes{handler: handler}
}

func (r *ContentRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/site", r.handler.GetSite)
	router.GET("/home", r.handler.GetHome)
}
