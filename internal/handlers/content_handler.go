package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/responses"
	"portfolio/internal/services"
)

// ContentHandler serves the resolved singletons as JSON.
type ContentHandler struct {
	content *services.ContentService
}

func NewContentHandler(content *services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// GetSite handles GET /api/v1/site
func (h *ContentHandler) GetSite(c *gin.Context) {
	responses.Success(c, http.StatusOK, h.content.SiteSettings(c.Request.Context()), "Site settings retrieved successfully")
}

// GetHome handles GET /api/v1/home
func (h *ContentHandler) GetHome(c *gin.Context) {
	responses.Success(c, http.StatusOK, h.content.Home(c.Request.Context()), "Home content retrieved successfully")
}

// Health handles GET /healthz
func (h *ContentHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"backend": h.content.Backend(),
	})
}
