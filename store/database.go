package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cliptrace/match-api/model"

	"gorm.io/gorm"
)

// DatabaseStore persists through GORM, so it works against SQLite and
// Postgres alike. Atomicity is whatever the underlying database gives single
// statements; the match flow runs no multi-statement transaction, so a crash
// between the movie insert and the scene insert can leave a movie without
// scenes.
type DatabaseStore struct {
	db      *gorm.DB
	matcher *matcher
}

var _ Store = (*DatabaseStore)(nil)

func NewDatabaseStore(db *gorm.DB, catalog Catalog, opts ...Option) *DatabaseStore {
	return &DatabaseStore{
		db:      db,
		matcher: newMatcher(catalog, opts...),
	}
}

func (s *DatabaseStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	var u model.User

	err := s.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, translate(err, "failed to fetch user")
	}
	return &u, nil
}

func (s *DatabaseStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User

	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, translate(err, "failed to fetch user by username")
	}
	return &u, nil
}

func (s *DatabaseStore) CreateUser(ctx context.Context, data model.User) (*model.User, error) {
	data.ID = 0

	err := s.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create user, %w", err)
	}
	return &data, nil
}

func (s *DatabaseStore) GetMovie(ctx context.Context, id int) (*model.Movie, error) {
	var m model.Movie

	err := s.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		return nil, translate(err, "failed to fetch movie")
	}
	return &m, nil
}

func (s *DatabaseStore) GetMovies(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie

	err := s.db.WithContext(ctx).Order("id").Find(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movies, %w", err)
	}
	return movies, nil
}

// CreateMovie keeps a caller-supplied id as the primary key, which is how
// catalog movies land here without remapping. Callers are expected to
// pre-check with GetMovie; a skipped pre-check surfaces as the driver's
// duplicate key error.
func (s *DatabaseStore) CreateMovie(ctx context.Context, data model.Movie) (*model.Movie, error) {
	err := s.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create movie, %w", err)
	}
	return &data, nil
}

func (s *DatabaseStore) GetScene(ctx context.Context, id int) (*model.Scene, error) {
	var sc model.Scene

	err := s.db.WithContext(ctx).First(&sc, id).Error
	if err != nil {
		return nil, translate(err, "failed to fetch scene")
	}
	return &sc, nil
}

func (s *DatabaseStore) GetScenesByMovieID(ctx context.Context, movieID int) ([]model.Scene, error) {
	var scenes []model.Scene

	err := s.db.WithContext(ctx).Where("movie_id = ?", movieID).Order("id").Find(&scenes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scenes, %w", err)
	}
	return scenes, nil
}

func (s *DatabaseStore) CreateScene(ctx context.Context, data model.Scene) (*model.Scene, error) {
	data.ID = 0

	err := s.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create scene, %w", err)
	}
	return &data, nil
}

func (s *DatabaseStore) GetSearchHistory(ctx context.Context) ([]model.SearchHistory, error) {
	var searches []model.SearchHistory

	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&searches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search history, %w", err)
	}
	return searches, nil
}

func (s *DatabaseStore) CreateSearchHistory(ctx context.Context, data model.SearchHistory) (*model.SearchHistory, error) {
	data.ID = 0
	data.CreatedAt = time.Now()

	err := s.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create search history, %w", err)
	}
	return &data, nil
}

func (s *DatabaseStore) CreateVideoUpload(ctx context.Context, data model.VideoUpload) (*model.VideoUpload, error) {
	data.ID = 0
	data.CreatedAt = time.Now()

	err := s.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create video upload, %w", err)
	}
	return &data, nil
}

func (s *DatabaseStore) GetVideoUpload(ctx context.Context, id int) (*model.VideoUpload, error) {
	var u model.VideoUpload

	err := s.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, translate(err, "failed to fetch video upload")
	}
	return &u, nil
}

func (s *DatabaseStore) AnalyzeVideo(ctx context.Context, videoID int) (*MatchResult, error) {
	if _, err := s.GetVideoUpload(ctx, videoID); err != nil {
		return nil, err
	}

	return s.matcher.run(ctx, s)
}

func translate(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s, %w", msg, err)
}
