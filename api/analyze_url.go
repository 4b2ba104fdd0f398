package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cliptrace/match-api/model"
	"cliptrace/match-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type analyzeURLBody struct {
	URL string `json:"url"`
}

func (a *API) AnalyzeURL(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	ctx := c.Request.Context()

	var body analyzeURLBody
	if err := c.ShouldBindJSON(&body); err != nil || body.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Video URL is required",
			"requestID": requestID,
		})
		return
	}

	// No bytes ever arrive for URL submissions, the link itself stands in
	// for the file
	upload, err := a.Store.CreateVideoUpload(ctx, model.VideoUpload{
		FileName: fmt.Sprintf("url_video_%d.mp4", time.Now().UnixMilli()),
		FilePath: body.URL,
		FileSize: 0,
		MimeType: "video/mp4",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to analyze video URL",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create upload record for URL", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	analysis, err := a.Store.AnalyzeVideo(ctx, upload.ID)
	if err != nil {
		a.analysisError(c, requestID, err)
		return
	}

	// History is written before the movie/scene lookup below. The upload-id
	// endpoint does this the other way around; both orders are kept as-is for
	// parity with the original demo
	confidence := strconv.Itoa(analysis.Confidence)
	_, err = a.Store.CreateSearchHistory(ctx, model.SearchHistory{
		VideoURL:   &body.URL,
		MovieID:    &analysis.MovieID,
		Confidence: &confidence,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to analyze video URL",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save search history", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	movie, scene, ok := a.matchDetails(c, requestID, analysis)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movie":      movie,
		"scene":      scene,
		"confidence": analysis.Confidence,
		"uploadId":   upload.ID,
	})
}

// matchDetails resolves the matched movie and scene rows, answering 404 when
// either disappeared between the match and now.
func (a *API) matchDetails(c *gin.Context, requestID string, analysis *store.MatchResult) (*model.Movie, *model.Scene, bool) {
	ctx := c.Request.Context()

	movie, err := a.Store.GetMovie(ctx, analysis.MovieID)
	if err == nil {
		var scene *model.Scene
		scene, err = a.Store.GetScene(ctx, analysis.SceneID)
		if err == nil {
			return movie, scene, true
		}
	}

	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Movie or scene not found",
			"requestID": requestID,
		})
		return nil, nil, false
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "Failed to fetch match details",
		"requestID": requestID,
	})

	zap.L().Error("Failed to fetch match details", zap.Error(err), zap.String("requestID", requestID))
	return nil, nil, false
}

func (a *API) analysisError(c *gin.Context, requestID string, err error) {
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

	zap.L().Error("Video analysis failed", zap.Error(err), zap.String("requestID", requestID))
}
