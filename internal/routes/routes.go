package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio/internal/handlers"
	"portfolio/internal/web"
)

func RegisterRoutes(router *gin.Engine, allowedOrigins []string, pageHandler *handlers.PageHandler, contentHandler *handlers.ContentHandler, projectHandler *handlers.ProjectHandler) {
	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/healthz", contentHandler.Health)

	pageRoutes := NewPageRoutes(pageHandler)
	pageRoutes.RegisterRoutes(&router.RouterGroup)
	router.NoRoute(pageHandler.NotFound)

	api := router.Group("/api/v1")
	api.Use(cors.New(corsConfig(allowedOrigins)))

	contentRoutes := NewContentRoutes(contentHandler)
	contentRoutes.RegisterRoutes(api)

	projectRoutes := NewProjectRoutes(projectHandler)
	projectRoutes.RegisterRoutes(api)
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	cfg.ExposeHeaders = []string{"X-Request-ID"}
	return cfg
}
