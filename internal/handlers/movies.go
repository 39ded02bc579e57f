package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomovies/internal/models"
)

// videoResponse decorates a trailer with a playable link.
type videoResponse struct {
	models.Video
	WatchURL string `json:"watch_url"`
}

func (h *Handler) handleListMovies(c *gin.Context) {
	criterion, err := models.ParseSortCriterion(c.DefaultQuery("sort", string(models.SortPopular)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort criterion"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	h.services.Logger.Infof("[MovieHandler] listing %s movies, page %d", criterion, page)

	listing, err := h.services.TMDB.ListMovies(c.Request.Context(), criterion, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *Handler) handleMovieDetails(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	details, err := h.services.TMDB.GetMovieDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	status, err := h.services.Favorites.Status(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movie":        details,
		"poster_url":   details.PosterURL(c.Query("poster_size")),
		"backdrop_url": details.BackdropURL(c.Query("backdrop_size")),
		"favorite":     status == models.Favorited,
	})
}

func (h *Handler) handleListReviews(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	listing, err := h.services.TMDB.ListReviews(c.Request.Context(), id, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *Handler) handleListVideos(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	listing, err := h.services.TMDB.ListVideos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Only trailers are surfaced unless the full set is asked for
	if strings.EqualFold(c.Query("type"), "trailer") {
		trailers := listing.Trailers()
		results := make([]videoResponse, 0, len(trailers))
		for _, v := range trailers {
			results = append(results, videoResponse{Video: v, WatchURL: v.WatchURL()})
		}
		c.JSON(http.StatusOK, gin.H{"id": listing.ID, "results": results})
		return
	}

	c.JSON(http.StatusOK, listing)
}
