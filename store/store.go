// Package store holds the persistence layer: one Store contract with an
// in-memory backend and a relational one, interchangeable at startup.
package store

import (
	"context"
	"errors"

	"cliptrace/match-api/model"
)

// ErrNotFound is returned by every lookup whose target doesn't exist.
// Missing entities are an expected outcome, not a failure.
var ErrNotFound = errors.New("record not found")

// MatchResult is what the analysis stub hands back for a processed upload.
type MatchResult struct {
	MovieID    int `json:"movieId"`
	SceneID    int `json:"sceneId"`
	Confidence int `json:"confidence"`
}

// Catalog is the slice of the movie catalog client the matcher needs.
type Catalog interface {
	RandomPopularMovie(ctx context.Context) *model.Movie
}

type Store interface {
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, data model.User) (*model.User, error)

	GetMovie(ctx context.Context, id int) (*model.Movie, error)
	GetMovies(ctx context.Context) ([]model.Movie, error)
	CreateMovie(ctx context.Context, data model.Movie) (*model.Movie, error)

	GetScene(ctx context.Context, id int) (*model.Scene, error)
	GetScenesByMovieID(ctx context.Context, movieID int) ([]model.Scene, error)
	CreateScene(ctx context.Context, data model.Scene) (*model.Scene, error)

	// Newest first
	GetSearchHistory(ctx context.Context) ([]model.SearchHistory, error)
	CreateSearchHistory(ctx context.Context, data model.SearchHistory) (*model.SearchHistory, error)

	CreateVideoUpload(ctx context.Context, data model.VideoUpload) (*model.VideoUpload, error)
	GetVideoUpload(ctx context.Context, id int) (*model.VideoUpload, error)

	// AnalyzeVideo runs the fake matching pipeline against an existing
	// upload. See matcher for what "analysis" actually means here.
	AnalyzeVideo(ctx context.Context, videoID int) (*MatchResult, error)
}
