package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) MovieFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	movies, err := a.Store.GetMovies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to fetch movies",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch movies", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, movies)
}
