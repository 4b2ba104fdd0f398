// Package model defines database models
package model

type Movie struct {
	// External catalog ids are reused as primary keys on the relational
	// backend, so no autoIncrement here
	ID       int    `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Year     int    `gorm:"not null" json:"year"`
	Director string `gorm:"not null" json:"director"`
	Genre    string `gorm:"not null" json:"genre"`
	// MPAA-style label, derived heuristically by the catalog client
	Rating     string  `gorm:"not null" json:"rating"`
	IMDBRating string  `gorm:"column:imdb_rating" json:"imdbRating"`
	Poster     *string `json:"poster"`

	Description *string      `json:"description"`
	Cast        CastList     `gorm:"type:text" json:"cast"`
	Platforms   PlatformList `gorm:"type:text" json:"platforms"`
}

type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Image     string `json:"image"`
}

type Platform struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"` // subscription or rental
	Price     *string `json:"price,omitempty"`
	Available bool    `json:"available"`
}
