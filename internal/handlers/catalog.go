package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomovies/internal/models"
)

func (h *Handler) handleCatalog(c *gin.Context) {
	view := h.services.Catalog.Load(c.Request.Context())
	c.JSON(http.StatusOK, view)
}

type selectSourceRequest struct {
	Source string `json:"source"`
}

func (h *Handler) handleSelectSource(c *gin.Context) {
	var req selectSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source payload"})
		return
	}

	source, err := models.ParseCatalogSource(req.Source)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown catalog source"})
		return
	}

	h.services.Logger.Infof("[CatalogHandler] source selected: %s", source)

	view := h.services.Catalog.Select(c.Request.Context(), source)
	c.JSON(http.StatusOK, view)
}
