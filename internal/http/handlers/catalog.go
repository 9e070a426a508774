package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/skillone/skillpath-backend/internal/http/response"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
	"github.com/skillone/skillpath-backend/internal/services"
)

type CatalogHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService, baseLog *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		log:     baseLog.With("handler", "CatalogHandler"),
		catalog: catalog,
	}
}

// GET /api/courses
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	rows, err := h.catalog.ListCourses(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, "load_catalog_failed", err)
		return
	}

	response.RespondOK(c, gin.H{"courses": rows, "total": len(rows)})
}
