// Package handlers implements HTTP request handlers for the movie browser API.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomovies/internal/config"
	"github.com/amaumene/gomovies/internal/constants"
	apperrors "github.com/amaumene/gomovies/internal/errors"
	"github.com/amaumene/gomovies/internal/services"
)

// Handler handles HTTP requests for the movie browser API.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)
	r.GET("/health", h.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/movies", h.handleListMovies)
		api.GET("/movies/:id", h.handleMovieDetails)
		api.GET("/movies/:id/reviews", h.handleListReviews)
		api.GET("/movies/:id/videos", h.handleListVideos)

		api.GET("/favorites", h.handleListFavorites)
		api.POST("/favorites", h.handleAddFavorite)
		api.DELETE("/favorites/:id", h.handleRemoveFavorite)
		api.POST("/favorites/toggle", h.handleToggleFavorite)

		api.GET("/catalog", h.handleCatalog)
		api.PUT("/catalog/source", h.handleSelectSource)
	}
}

func (h *Handler) handleHome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to %s! See /api/movies for listings.", constants.ServiceName)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": constants.ServiceName,
		"version": constants.ServiceVersion,
	})
}

// movieIDParam parses and validates the :id path parameter. Negative and
// non-numeric identifiers are rejected at the boundary.
func movieIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return 0, false
	}
	return id, true
}

// respondError maps a service failure to an HTTP response. Remote failures
// become 502 with a retryable flag so clients know whether a retry
// affordance makes sense; everything else is a client error.
func respondError(c *gin.Context, err error) {
	if fe := apperrors.AsRemoteFetchError(err); fe != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     fe.Error(),
			"status":    fe.StatusCode,
			"retryable": fe.Retryable(),
		})
		return
	}

	switch err {
	case apperrors.ErrInvalidSortCriterion, apperrors.ErrInvalidMovieID, apperrors.ErrInvalidCatalogSource:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.ErrAPIKeyMissing:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
