package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portfolio/internal/config"
	"portfolio/internal/handlers"
	"portfolio/internal/middlewares"
	"portfolio/internal/richtext"
	"portfolio/internal/routes"
	"portfolio/internal/services"
	"portfolio/internal/web"
)

// NewRouter wires handlers over pages into a gin engine.
func NewRouter(cfg config.Config, pages *services.PageService, renderer *richtext.Renderer, logger zerolog.Logger) (*gin.Engine, error) {
	tmpl, err := web.Templates(renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Dependency injection
	pageHandler := handlers.NewPageHandler(pages, logger)
	contentHandler := handlers.NewContentHandler(pages.Content())
	projectHandler := handlers.NewProjectHandler(pages)

	router := gin.New()
	router.Use(middlewares.RequestID, middlewares.Logger(logger), gin.Recovery())
	router.SetHTMLTemplate(tmpl)
	routes.RegisterRoutes(router, cfg.Server.AllowedOrigins, pageHandler, contentHandler, projectHandler)

	return router, nil
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg config.Config, pages *services.PageService, renderer *richtext.Renderer, logger zerolog.Logger) (*http.Server, error) {
	router, err := NewRouter(cfg, pages, renderer, logger)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return server, nil
}
