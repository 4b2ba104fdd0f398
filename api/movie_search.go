package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MovieSearch proxies free-text search to the catalog. Upstream failures are
// invisible here: the client falls back to its static list internally, so
// this never needs a failure branch beyond validation.
func (a *API) MovieSearch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Search query is required",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, a.TMDB.SearchMovies(c.Request.Context(), query))
}
