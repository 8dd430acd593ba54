package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portfolio/internal/services"
	"portfolio/internal/web"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	pages  *services.PageService
	logger zerolog.Logger
}

func NewPageHandler(pages *services.PageService, logger zerolog.Logger) *PageHandler {
	return &PageHandler{
		pages:  pages,
		logger: logger,
	}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	page, err := h.pages.HomePage(c.Request.Context())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.HTML(http.StatusOK, web.HomeTemplate, page)
}

// Projects handles GET /projects
func (h *PageHandler) Projects(c *gin.Context) {
	page, err := h.pages.ProjectsPage(c.Request.Context())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.HTML(http.StatusOK, web.ProjectsTemplate, page)
}

// Project handles GET /projects/:slug
func (h *PageHandler) Project(c *gin.Context) {
	page, err := h.pages.ProjectPage(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, services.ErrProjectNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		h.abort(c, err)
		return
	}
	c.HTML(http.StatusOK, web.ProjectTemplate, page)
}

// NotFound renders the 404 page for unknown routes and projects.
func (h *PageHandler) NotFound(c *gin.Context) {
	site := h.pages.Content().SiteSettings(c.Request.Context())
	c.HTML(http.StatusNotFound, web.NotFoundTemplate, gin.H{"Site": site})
}

// abort covers the request being abandoned mid-render.
func (h *PageHandler) abort(c *gin.Context, err error) {
	h.logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("page not rendered")
	c.AbortWithStatus(http.StatusServiceUnavailable)
}
