package model

import "time"

// SearchHistory rows are append-only. Either VideoURL or FileName is set
// depending on how the clip came in, and MovieID/Confidence stay null when
// a lookup never produced a match.
type SearchHistory struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	VideoURL   *string   `gorm:"column:video_url" json:"videoUrl"`
	FileName   *string   `json:"fileName"`
	MovieID    *int      `json:"movieId"`
	Confidence *string   `json:"confidence"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
}
