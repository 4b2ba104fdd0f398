package api

import (
	"errors"
	"net/http"
	"strconv"

	"cliptrace/match-api/model"
	"cliptrace/match-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) AnalyzeVideo(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	ctx := c.Request.Context()

	uploadID, err := strconv.Atoi(c.Param("uploadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid upload ID",
			"requestID": requestID,
		})
		return
	}

	upload, err := a.Store.GetVideoUpload(ctx, uploadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Video upload not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to analyze video",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch video upload", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	analysis, err := a.Store.AnalyzeVideo(ctx, uploadID)
	if err != nil {
		a.analysisError(c, requestID, err)
		return
	}

	// Unlike the URL endpoint, history is only written once the match
	// details resolved
	movie, scene, ok := a.matchDetails(c, requestID, analysis)
	if !ok {
		return
	}

	confidence := strconv.Itoa(analysis.Confidence)
	_, err = a.Store.CreateSearchHistory(ctx, model.SearchHistory{
		FileName:   &upload.FileName,
		MovieID:    &analysis.MovieID,
		Confidence: &confidence,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to analyze video",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save search history", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movie":      movie,
		"scene":      scene,
		"confidence": analysis.Confidence,
		"uploadId":   uploadID,
	})
}
