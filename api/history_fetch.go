package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) HistoryFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	history, err := a.Store.GetSearchHistory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to fetch search history",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch search history", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, history)
}
