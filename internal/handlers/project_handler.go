package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/responses"
	"portfolio/internal/services"
)

type ProjectHandler struct {
	content *services.ContentService
	pages   *services.PageService
}

func NewProjectHandler(pages *services.PageService) *ProjectHandler {
	return &ProjectHandler{
		content: pages.Content(),
		pages:   pages,
	}
}

// ListProjects handles GET /api/v1/projects[?featured=true]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	featured := false
	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid featured flag")
			return
		}
		featured = b
	}

	if featured {
		responses.Success(c, http.StatusOK, h.content.FeaturedProjects(c.Request.Context()), "Projects retrieved successfully")
		return
	}
	responses.Success(c, http.StatusOK, h.content.Projects(c.Request.Context()), "Projects retrieved successfully")
}

// GetProject handles GET /api/v1/projects/:slug
func (h *ProjectHandler) GetProject(c *gin.Context) {
	page, err := h.pages.ProjectPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "Project not found")
			return
		}
		responses.Fail(c, http.StatusServiceUnavailable, err, "Failed to retrieve project")
		return
	}

	responses.Success(c, http.StatusOK, page, "Project retrieved successfully")
}
