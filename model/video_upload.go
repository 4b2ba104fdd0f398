package model

import "time"

type VideoUpload struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	FileName string `gorm:"not null" json:"fileName"`

	// Local path for real uploads, the submitted URL for analyze-by-url
	FilePath string `gorm:"not null" json:"filePath"`
	FileSize int64  `gorm:"not null" json:"fileSize"`
	MimeType string `gorm:"not null" json:"mimeType"`

	// Seconds; never extracted for now
	Duration  *int      `json:"duration"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
