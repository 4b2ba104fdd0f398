package model

type Scene struct {
	ID      int `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID int `gorm:"not null;index" json:"movieId"`

	// Range within the movie, e.g. "1:23:45 - 1:24:15"
	Timestamp   string  `gorm:"not null" json:"timestamp"`
	Description string  `gorm:"not null" json:"description"`
	Chapter     *string `json:"chapter"`

	// Opaque hash reserved for a real matching pipeline. Nothing reads it yet
	Fingerprint *string `json:"fingerprint"`
}
