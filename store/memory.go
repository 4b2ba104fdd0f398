package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"cliptrace/match-api/model"
)

// MemoryStore keeps everything in process memory. Data is gone on restart,
// which is fine for demos and tests. A single mutex serializes id assignment
// and map writes so concurrent requests don't race the counters.
type MemoryStore struct {
	mu sync.Mutex

	users    map[int]model.User
	movies   map[int]model.Movie
	scenes   map[int]model.Scene
	searches map[int]model.SearchHistory
	uploads  map[int]model.VideoUpload

	nextUserID   int
	nextMovieID  int
	nextSceneID  int
	nextSearchID int
	nextUploadID int

	matcher *matcher
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(catalog Catalog, opts ...Option) *MemoryStore {
	return &MemoryStore{
		users:        map[int]model.User{},
		movies:       map[int]model.Movie{},
		scenes:       map[int]model.Scene{},
		searches:     map[int]model.SearchHistory{},
		uploads:      map[int]model.VideoUpload{},
		nextUserID:   1,
		nextMovieID:  1,
		nextSceneID:  1,
		nextSearchID: 1,
		nextUploadID: 1,
		matcher:      newMatcher(catalog, opts...),
	}
}

// Seed loads the demo data set: one known movie with one known scene and a
// couple of past searches. Called synchronously at startup, before any
// request can hit the store.
func (s *MemoryStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	poster := "https://images.unsplash.com/photo-1489599032470-841ea88893b2?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600"
	description := "An ex-hit-man comes out of retirement to track down the gangsters that took everything from him."

	johnWick := model.Movie{
		ID:          s.nextMovieID,
		Title:       "John Wick",
		Year:        2014,
		Director:    "Chad Stahelski",
		Genre:       "Action, Thriller",
		Rating:      "R",
		IMDBRating:  "7.4",
		Poster:      &poster,
		Description: &description,
		Cast: model.CastList{
			{Name: "Keanu Reeves", Character: "John Wick", Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=400"},
			{Name: "Bridget Moynahan", Character: "Helen", Image: "https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=400"},
			{Name: "Ian McShane", Character: "Winston", Image: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&h=400"},
		},
		Platforms: model.PlatformList{
			{Name: "Netflix", Type: "subscription", Available: true},
			{Name: "Prime Video", Type: "rental", Price: strptr("Rent $3.99 | Buy $12.99"), Available: true},
			{Name: "Hulu", Type: "subscription", Available: true},
		},
	}
	s.nextMovieID++
	s.movies[johnWick.ID] = johnWick

	chapter := "Final Confrontation"
	fingerprint := "sample_fingerprint_hash"
	scene := model.Scene{
		ID:          s.nextSceneID,
		MovieID:     johnWick.ID,
		Timestamp:   "1:23:45 - 1:24:15",
		Description: "Continental Hotel Fight",
		Chapter:     &chapter,
		Fingerprint: &fingerprint,
	}
	s.nextSceneID++
	s.scenes[scene.ID] = scene

	matched := model.SearchHistory{
		ID:         s.nextSearchID,
		FileName:   strptr("action_scene_clip.mp4"),
		MovieID:    &johnWick.ID,
		Confidence: strptr("97.0"),
		CreatedAt:  time.Now().Add(-2 * time.Hour),
	}
	s.nextSearchID++
	s.searches[matched.ID] = matched

	unmatched := model.SearchHistory{
		ID:        s.nextSearchID,
		FileName:  strptr("romantic_dialogue.mp4"),
		CreatedAt: time.Now().Add(-24 * time.Hour),
	}
	s.nextSearchID++
	s.searches[unmatched.ID] = unmatched
}

func (s *MemoryStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, data model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data.ID = s.nextUserID
	s.nextUserID++
	s.users[data.ID] = data

	return &data, nil
}

func (s *MemoryStore) GetMovie(ctx context.Context, id int) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemoryStore) GetMovies(ctx context.Context) ([]model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies := make([]model.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		movies = append(movies, m)
	}

	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

// CreateMovie always assigns a fresh local id, even when the input carries an
// external catalog id. Only the relational backend reuses external ids.
func (s *MemoryStore) CreateMovie(ctx context.Context, data model.Movie) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data.ID = s.nextMovieID
	s.nextMovieID++
	s.movies[data.ID] = data

	return &data, nil
}

func (s *MemoryStore) GetScene(ctx context.Context, id int) (*model.Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.scenes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sc, nil
}

func (s *MemoryStore) GetScenesByMovieID(ctx context.Context, movieID int) ([]model.Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scenes := []model.Scene{}
	for _, sc := range s.scenes {
		if sc.MovieID == movieID {
			scenes = append(scenes, sc)
		}
	}

	sort.Slice(scenes, func(i, j int) bool { return scenes[i].ID < scenes[j].ID })
	return scenes, nil
}

func (s *MemoryStore) CreateScene(ctx context.Context, data model.Scene) (*model.Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data.ID = s.nextSceneID
	s.nextSceneID++
	s.scenes[data.ID] = data

	return &data, nil
}

func (s *MemoryStore) GetSearchHistory(ctx context.Context) ([]model.SearchHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	searches := make([]model.SearchHistory, 0, len(s.searches))
	for _, h := range s.searches {
		searches = append(searches, h)
	}

	// Newest first; ids break ties from coarse clocks
	sort.Slice(searches, func(i, j int) bool {
		if !searches[i].CreatedAt.Equal(searches[j].CreatedAt) {
			return searches[i].CreatedAt.After(searches[j].CreatedAt)
		}
		return searches[i].ID > searches[j].ID
	})

	return searches, nil
}

func (s *MemoryStore) CreateSearchHistory(ctx context.Context, data model.SearchHistory) (*model.SearchHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data.ID = s.nextSearchID
	s.nextSearchID++
	data.CreatedAt = time.Now()
	s.searches[data.ID] = data

	return &data, nil
}

func (s *MemoryStore) CreateVideoUpload(ctx context.Context, data model.VideoUpload) (*model.VideoUpload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data.ID = s.nextUploadID
	s.nextUploadID++
	data.CreatedAt = time.Now()
	s.uploads[data.ID] = data

	return &data, nil
}

func (s *MemoryStore) GetVideoUpload(ctx context.Context, id int) (*model.VideoUpload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.uploads[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) AnalyzeVideo(ctx context.Context, videoID int) (*MatchResult, error) {
	if _, err := s.GetVideoUpload(ctx, videoID); err != nil {
		return nil, err
	}

	return s.matcher.run(ctx, s)
}

func strptr(v string) *string {
	return &v
}
