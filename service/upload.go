// Package service contains operations that back the HTTP handlers without
// being handlers themselves
package service

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"cliptrace/match-api/util"

	"go.uber.org/zap"
)

// DiskUploader writes accepted clips to local disk under a generated name.
// Nothing reads the binaries back afterwards; the stored path only exists so
// upload rows point somewhere real.
type DiskUploader struct {
	Dir string
}

func NewDiskUploader(dir string) (*DiskUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory, %w", err)
	}

	return &DiskUploader{Dir: dir}, nil
}

// Save streams src into the upload directory and returns the generated path.
// The original file name only survives in the database record, never on disk.
func (u *DiskUploader) Save(src io.Reader, originalName string) (string, error) {
	ext := path.Ext(originalName)
	if ext == "" {
		ext = ".mp4"
	}

	dest := filepath.Join(u.Dir, util.RandStr(16)+ext)

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file, %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, src)
	if err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to write upload file, %w", err)
	}

	zap.L().Debug("Stored uploaded clip", zap.String("path", dest), zap.Int64("size", n))
	return dest, nil
}
