package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"cliptrace/match-api/model"
	"cliptrace/match-api/util"
)

// No video fingerprinting exists. The "analysis" waits a bit to feel like
// work, grabs a random popular movie from the catalog and invents a scene
// in it. Both store backends run this exact algorithm, so swapping backends
// never changes what a client sees.

const (
	minConfidence = 80
	maxConfidence = 99

	// Scenes are placed inside a nominal two-hour runtime since normalized
	// movies don't carry one
	maxSceneStart  = 110 * 60
	minSceneLength = 20
	maxSceneLength = 50

	sceneChapter = "Random Scene"
)

var sceneDescriptions = []string{
	"Intense action sequence",
	"Dramatic confrontation",
	"Emotional dialogue scene",
	"Epic battle scene",
	"Suspenseful chase sequence",
	"Romantic encounter",
	"Climactic showdown",
	"Mysterious revelation",
	"Heartbreaking farewell",
	"Triumphant victory moment",
}

type matcher struct {
	catalog Catalog
	delay   time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// Option tweaks the matcher inside a store backend. Mostly for tests, which
// want zero delay and a fixed seed.
type Option func(*matcher)

// WithDelay overrides the artificial processing delay.
func WithDelay(d time.Duration) Option {
	return func(m *matcher) {
		m.delay = d
	}
}

// WithRand injects a seeded random source for deterministic matches.
func WithRand(r *rand.Rand) Option {
	return func(m *matcher) {
		if r != nil {
			m.rng = r
		}
	}
}

func newMatcher(catalog Catalog, opts ...Option) *matcher {
	m := &matcher{
		catalog: catalog,
		delay:   2 * time.Second,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// run produces a match through the given store. The caller has already
// verified the upload exists. The wait is a plain sleep: a disconnecting
// client doesn't abort pending work, same as the original demo.
func (m *matcher) run(ctx context.Context, s Store) (*MatchResult, error) {
	time.Sleep(m.delay)

	if m.catalog == nil {
		return nil, errors.New("no catalog configured")
	}

	movie := m.catalog.RandomPopularMovie(ctx)

	// Pre-check before create so a repeat match of the same catalog movie
	// doesn't trip over the reused external id
	stored, err := s.GetMovie(ctx, movie.ID)
	if errors.Is(err, ErrNotFound) {
		stored, err = s.CreateMovie(ctx, *movie)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record matched movie, %w", err)
	}

	scene, err := s.CreateScene(ctx, m.randomScene(stored.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to record matched scene, %w", err)
	}

	return &MatchResult{
		MovieID:    stored.ID,
		SceneID:    scene.ID,
		Confidence: minConfidence + m.intn(maxConfidence-minConfidence+1),
	}, nil
}

func (m *matcher) randomScene(movieID int) model.Scene {
	start := m.intn(maxSceneStart)
	length := minSceneLength + m.intn(maxSceneLength-minSceneLength+1)

	chapter := sceneChapter
	return model.Scene{
		MovieID:     movieID,
		Timestamp:   util.ClockTimestamp(start) + " - " + util.ClockTimestamp(start+length),
		Description: sceneDescriptions[m.intn(len(sceneDescriptions))],
		Chapter:     &chapter,
	}
}

func (m *matcher) intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.Intn(n)
}
