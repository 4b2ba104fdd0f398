package api

import (
	"errors"
	"net/http"
	"strings"

	"cliptrace/match-api/model"
	"cliptrace/match-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) VideoUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if !strings.HasPrefix(c.Request.Header.Get("Content-Type"), "multipart/form-data") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request",
			"requestID": requestID,
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Failed to parse multipart form",
			"requestID": requestID,
		})

		zap.L().Debug("Failed to parse multipart form", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	files := form.File["video"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No video file provided",
			"requestID": requestID,
		})
		return
	}

	fh := files[0]

	code, f, err := validators.VideoValidator(fh)
	if err != nil {
		if code == http.StatusInternalServerError {
			zap.L().Error("Failed to validate file", zap.Error(err), zap.String("requestID", requestID))

			// Set the error to a general one for the users
			err = errors.New("internal server error")
		}

		c.JSON(code, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}
	defer f.Close()

	storedPath, err := a.Uploader.Save(f, fh.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to upload video",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store uploaded clip", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	upload, err := a.Store.CreateVideoUpload(c.Request.Context(), model.VideoUpload{
		FileName: fh.Filename,
		FilePath: storedPath,
		FileSize: fh.Size,
		MimeType: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to upload video",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save upload record", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uploadId": upload.ID,
	})
}
