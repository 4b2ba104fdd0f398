package tmdb

import "cliptrace/match-api/model"

// fallbackMovies returns the static catalog served whenever TMDB can't be.
// IDs are the real TMDB ids so a later live lookup resolves to the same film.
// Platform data is freshly fabricated per call, like everywhere else.
func (c *Client) fallbackMovies() []model.Movie {
	return []model.Movie{
		{
			ID:          550,
			Title:       "Fight Club",
			Year:        1999,
			Director:    "David Fincher",
			Genre:       "Drama",
			Rating:      "R",
			IMDBRating:  "8.8",
			Poster:      strptr(imageBaseURL + "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"),
			Description: strptr("An insomniac office worker and a devil-may-care soap maker form an underground fight club that evolves into an anarchist organization."),
			Cast: model.CastList{
				{Name: "Brad Pitt", Character: "Tyler Durden", Image: profileBaseURL + "/cckcYc2v0yh1tc9QjRelptcOBko.jpg"},
				{Name: "Edward Norton", Character: "The Narrator", Image: profileBaseURL + "/5XBzD5WuTyVQZeS4VI25z2moMeY.jpg"},
				{Name: "Helena Bonham Carter", Character: "Marla Singer", Image: profileBaseURL + "/DDeITcCpnBd0CkAIRPhggy9bt5.jpg"},
			},
			Platforms: c.mockPlatforms(),
		},
		{
			ID:          155,
			Title:       "The Dark Knight",
			Year:        2008,
			Director:    "Christopher Nolan",
			Genre:       "Action, Crime, Drama",
			Rating:      "PG-13",
			IMDBRating:  "9.0",
			Poster:      strptr(imageBaseURL + "/qJ2tW6WMUDux911r6m7haRef0WH.jpg"),
			Description: strptr("When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice."),
			Cast: model.CastList{
				{Name: "Christian Bale", Character: "Bruce Wayne / Batman", Image: profileBaseURL + "/vecCuUwdcCwCzNqTAUhqnHktNte.jpg"},
				{Name: "Heath Ledger", Character: "The Joker", Image: profileBaseURL + "/5Y9HnYYa9jF4NunY9lSgJGjSe8E.jpg"},
				{Name: "Aaron Eckhart", Character: "Harvey Dent / Two-Face", Image: profileBaseURL + "/keMg4eNjgcSQP7xjBzOJx4CyEG.jpg"},
			},
			Platforms: c.mockPlatforms(),
		},
		{
			ID:          13,
			Title:       "Forrest Gump",
			Year:        1994,
			Director:    "Robert Zemeckis",
			Genre:       "Drama, Romance",
			Rating:      "PG-13",
			IMDBRating:  "8.8",
			Poster:      strptr(imageBaseURL + "/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg"),
			Description: strptr("The presidencies of Kennedy and Johnson, the Vietnam War, the Watergate scandal and other historical events unfold from the perspective of an Alabama man with an IQ of 75."),
			Cast: model.CastList{
				{Name: "Tom Hanks", Character: "Forrest Gump", Image: profileBaseURL + "/xndWFsBlClOJFRdhSt4NBwiPq2o.jpg"},
				{Name: "Robin Wright", Character: "Jenny Curran", Image: profileBaseURL + "/sQsf6vWL73p2JmKlVjnMAmRYSdL.jpg"},
				{Name: "Gary Sinise", Character: "Lieutenant Dan Taylor", Image: profileBaseURL + "/7ZhpoHwq3m0F3qslEvGKXPi6OhY.jpg"},
			},
			Platforms: c.mockPlatforms(),
		},
		{
			ID:          122,
			Title:       "The Lord of the Rings: The Return of the King",
			Year:        2003,
			Director:    "Peter Jackson",
			Genre:       "Adventure, Drama, Fantasy",
			Rating:      "PG-13",
			IMDBRating:  "9.0",
			Poster:      strptr(imageBaseURL + "/rCzpDGLbOoPwLjy3OAm5NUPOTrC.jpg"),
			Description: strptr("Gandalf and Aragorn lead the World of Men against Sauron's army to draw his gaze from Frodo and Sam as they approach Mount Doom with the One Ring."),
			Cast: model.CastList{
				{Name: "Elijah Wood", Character: "Frodo Baggins", Image: profileBaseURL + "/7UKRbJBNG7mxBl2QQc5XsAh6F8B.jpg"},
				{Name: "Ian McKellen", Character: "Gandalf", Image: profileBaseURL + "/coJJDqeHJSVU5cBBd7kJR3k9PFx.jpg"},
				{Name: "Viggo Mortensen", Character: "Aragorn", Image: profileBaseURL + "/vH5gVSpHAMhDaFWfh0Q7BG61O1y.jpg"},
			},
			Platforms: c.mockPlatforms(),
		},
		{
			ID:          680,
			Title:       "Pulp Fiction",
			Year:        1994,
			Director:    "Quentin Tarantino",
			Genre:       "Crime, Drama",
			Rating:      "R",
			IMDBRating:  "8.9",
			Poster:      strptr(imageBaseURL + "/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg"),
			Description: strptr("The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption."),
			Cast: model.CastList{
				{Name: "John Travolta", Character: "Vincent Vega", Image: profileBaseURL + "/9GVufE87MMIrSn0CbJFLudkALdL.jpg"},
				{Name: "Uma Thurman", Character: "Mia Wallace", Image: profileBaseURL + "/xuxgPXyv6KjUHIM8cZaxx4ry25L.jpg"},
				{Name: "Samuel L. Jackson", Character: "Jules Winnfield", Image: profileBaseURL + "/AiAYAqwpM5xmiFrAIeQvUXDCVvo.jpg"},
			},
			Platforms: c.mockPlatforms(),
		},
	}
}

const fallbackProfileImage = "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=400"
