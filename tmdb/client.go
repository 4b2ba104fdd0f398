// Package tmdb talks to the TMDB API and normalizes its responses into our
// movie model. Every public lookup degrades to a built-in fallback list when
// the API is unreachable or no key was configured, so callers never have to
// care about upstream availability.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"cliptrace/match-api/model"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"
	profileBaseURL = "https://image.tmdb.org/t/p/w185"

	maxSearchResults  = 10
	maxPopularResults = 20
	maxCastMembers    = 10
)

// ErrDisabled is returned by raw fetches when no API key was configured.
var ErrDisabled = errors.New("tmdb client is disabled")

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	// Guards rng. Handlers call into the client concurrently and rand.Rand
	// isn't safe for that
	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithRand injects a seeded random source so the fabricated parts of the
// output (platform availability, random picks) become deterministic.
func WithRand(r *rand.Rand) Option {
	return func(c *Client) {
		if r != nil {
			c.rng = r
		}
	}
}

// New creates a TMDB client. An empty API key is allowed and disables live
// calls entirely, leaving only the fallback data paths.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		zap.L().Warn("No TMDB API key configured, serving fallback catalog data only")
	}

	return c
}

// Enabled reports whether live API calls are possible.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

//
// Raw response types
//

type movieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	Adult       bool    `json:"adult"`
}

type listResponse struct {
	Page    int           `json:"page"`
	Results []movieResult `json:"results"`
}

type movieDetail struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	Adult       bool    `json:"adult"`
	Runtime     int     `json:"runtime"`
	Genres      []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

type movieCredits struct {
	Cast []struct {
		Name        string `json:"name"`
		Character   string `json:"character"`
		ProfilePath string `json:"profile_path"`
	} `json:"cast"`
	Crew []struct {
		Name string `json:"name"`
		Job  string `json:"job"`
	} `json:"crew"`
}

//
// Lookups
//

// SearchMovies returns up to 10 movies matching the query. Upstream failures
// are swallowed: the fixed fallback list is filtered by case-insensitive
// title substring instead.
func (c *Client) SearchMovies(ctx context.Context, query string) []model.Movie {
	var data listResponse

	err := c.fetch(ctx, "/search/movie", url.Values{"query": {query}}, &data)
	if err != nil {
		zap.L().Warn("Movie search fell back to static data", zap.Error(err))

		matches := []model.Movie{}
		for _, m := range c.fallbackMovies() {
			if strings.Contains(strings.ToLower(m.Title), strings.ToLower(query)) {
				matches = append(matches, m)
			}
		}
		return matches
	}

	results := data.Results
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}

	movies := make([]model.Movie, 0, len(results))
	for _, r := range results {
		movies = append(movies, c.transformMovie(r))
	}
	return movies
}

// PopularMovies returns up to 20 movies from the popular feed, or the whole
// fallback list when the feed can't be reached.
func (c *Client) PopularMovies(ctx context.Context) []model.Movie {
	var data listResponse

	err := c.fetch(ctx, "/movie/popular", nil, &data)
	if err != nil {
		zap.L().Warn("Popular movies fell back to static data", zap.Error(err))
		return c.fallbackMovies()
	}

	results := data.Results
	if len(results) > maxPopularResults {
		results = results[:maxPopularResults]
	}

	movies := make([]model.Movie, 0, len(results))
	for _, r := range results {
		movies = append(movies, c.transformMovie(r))
	}
	return movies
}

// MovieByID fetches full detail for one movie. Detail and credits are two
// separate API calls, done concurrently.
func (c *Client) MovieByID(ctx context.Context, id int) (*model.Movie, error) {
	var (
		detail  movieDetail
		credits movieCredits
	)

	errChan := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		errChan <- c.fetch(ctx, fmt.Sprintf("/movie/%d", id), nil, &detail)
	}()

	go func() {
		defer wg.Done()
		errChan <- c.fetch(ctx, fmt.Sprintf("/movie/%d/credits", id), nil, &credits)
	}()

	wg.Wait()

	for range 2 {
		if err := <-errChan; err != nil {
			return nil, fmt.Errorf("failed to fetch movie %d, %w", id, err)
		}
	}

	m := c.transformDetailedMovie(detail, credits)
	return &m, nil
}

// RandomPopularMovie picks one popular movie uniformly at random and
// re-fetches it for full detail. It never returns nil: any failure along the
// way resolves to a random entry from the fallback list instead.
func (c *Client) RandomPopularMovie(ctx context.Context) *model.Movie {
	movies := c.PopularMovies(ctx)
	if len(movies) == 0 {
		fallback := c.fallbackMovies()
		return &fallback[c.intn(len(fallback))]
	}

	pick := movies[c.intn(len(movies))]

	m, err := c.MovieByID(ctx, pick.ID)
	if err != nil {
		zap.L().Warn("Random movie detail fetch failed, picking from fallback list", zap.Error(err))

		fallback := c.fallbackMovies()
		m = &fallback[c.intn(len(fallback))]
	}

	return m
}

func (c *Client) fetch(ctx context.Context, endpoint string, query url.Values, out any) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request, %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response, %w", err)
	}

	return nil
}

//
// Normalization
//

func (c *Client) transformMovie(r movieResult) model.Movie {
	// Real content ratings aren't on the list payload. Adult flag is the
	// best signal available
	rating := "PG-13"
	if r.Adult {
		rating = "R"
	}

	return model.Movie{
		ID:          r.ID,
		Title:       r.Title,
		Year:        releaseYear(r.ReleaseDate),
		Director:    "Unknown", // Filled by the detail lookup
		Genre:       "Unknown",
		Rating:      rating,
		IMDBRating:  strconv.FormatFloat(r.VoteAverage, 'f', 1, 64),
		Poster:      posterURL(imageBaseURL, r.PosterPath),
		Description: optional(r.Overview),
		Cast:        model.CastList{},
		Platforms:   c.mockPlatforms(),
	}
}

func (c *Client) transformDetailedMovie(d movieDetail, credits movieCredits) model.Movie {
	director := "Unknown"
	for _, person := range credits.Crew {
		if person.Job == "Director" {
			director = person.Name
			break
		}
	}

	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}
	genre := strings.Join(genres, ", ")
	if genre == "" {
		genre = "Unknown"
	}

	rating := "PG-13"
	if d.Adult || d.Runtime > 120 {
		rating = "R"
	}

	cast := make(model.CastList, 0, maxCastMembers)
	for _, actor := range credits.Cast {
		if len(cast) == maxCastMembers {
			break
		}

		image := fallbackProfileImage
		if actor.ProfilePath != "" {
			image = profileBaseURL + actor.ProfilePath
		}

		cast = append(cast, model.CastMember{
			Name:      actor.Name,
			Character: actor.Character,
			Image:     image,
		})
	}

	return model.Movie{
		ID:          d.ID,
		Title:       d.Title,
		Year:        releaseYear(d.ReleaseDate),
		Director:    director,
		Genre:       genre,
		Rating:      rating,
		IMDBRating:  strconv.FormatFloat(d.VoteAverage, 'f', 1, 64),
		Poster:      posterURL(imageBaseURL, d.PosterPath),
		Description: optional(d.Overview),
		Cast:        cast,
		Platforms:   c.mockPlatforms(),
	}
}

func (c *Client) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

func releaseYear(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return t.Year()
}

func posterURL(base, path string) *string {
	if path == "" {
		return nil
	}
	u := base + path
	return &u
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
