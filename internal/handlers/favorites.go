package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/amaumene/gomovies/internal/errors"
	"github.com/amaumene/gomovies/internal/models"
)

func (h *Handler) handleListFavorites(c *gin.Context) {
	movies, err := h.services.DB.All()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": movies, "total_results": len(movies)})
}

func (h *Handler) handleAddFavorite(c *gin.Context) {
	var movie models.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie payload"})
		return
	}
	if movie.ID < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	if err := h.services.DB.Insert(movie); err != nil {
		if apperrors.IsConstraintViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	h.services.Logger.Infof("[FavoriteHandler] stored favorite %d", movie.ID)
	c.JSON(http.StatusCreated, gin.H{"id": movie.ID, "state": models.Favorited})
}

func (h *Handler) handleRemoveFavorite(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.services.DB.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": deleted, "state": models.NotFavorited})
}

func (h *Handler) handleToggleFavorite(c *gin.Context) {
	var movie models.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie payload"})
		return
	}
	if movie.ID < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	state, err := h.services.Favorites.Toggle(movie)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": movie.ID, "state": state})
}
