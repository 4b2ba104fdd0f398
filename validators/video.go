// Package validators holds request payload validation helpers
package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrNoFile              = errors.New("no video file provided")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileNameTooLong     = errors.New("file name is too long")
	ErrFileTypeUnsupported = errors.New("invalid file type, only video files are allowed")
)

const maxFileNameSize = 255

// VideoValidator checks an uploaded clip before anything is written to disk:
// declared MIME type against the configured allow list, size against the
// configured ceiling, then a content sniff so a renamed non-video still gets
// rejected. Returns the matching status code, the opened file positioned at
// the start, and the user-safe error.
func VideoValidator(fh *multipart.FileHeader) (int, multipart.File, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, ErrNoFile
	}

	// Check headers first which is easy to spoof, but faster for legit clients
	ct := fh.Header.Get("Content-Type")
	allowed := viper.GetStringSlice("upload.allowed_types")
	if len(allowed) > 0 && !slices.Contains(allowed, ct) {
		return http.StatusBadRequest, nil, ErrFileTypeUnsupported
	}

	if len(fh.Filename) > maxFileNameSize {
		return http.StatusBadRequest, nil, ErrFileNameTooLong
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, nil, ErrFileTooLarge
	}

	// And now check the actual content to catch renamed files from
	// malicious clients
	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, err
	}

	if !strings.HasPrefix(mime.String(), "video/") {
		f.Close()
		return http.StatusBadRequest, nil, ErrFileTypeUnsupported
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, err
	}

	return 0, f, nil
}
