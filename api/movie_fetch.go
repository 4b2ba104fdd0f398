package api

import (
	"errors"
	"net/http"
	"strconv"

	"cliptrace/match-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) MovieFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	ctx := c.Request.Context()

	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid movie ID",
			"requestID": requestID,
		})
		return
	}

	movie, err := a.Store.GetMovie(ctx, movieID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Movie not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to fetch movie details",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch movie", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	scenes, err := a.Store.GetScenesByMovieID(ctx, movieID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to fetch movie details",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch scenes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movie":  movie,
		"scenes": scenes,
	})
}
