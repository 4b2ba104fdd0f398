// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"cliptrace/match-api/db"
	"cliptrace/match-api/middleware"
	"cliptrace/match-api/service"
	"cliptrace/match-api/store"
	"cliptrace/match-api/tmdb"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	Router   *gin.Engine
	Store    store.Store
	TMDB     *tmdb.Client
	Uploader *service.DiskUploader
}

// NewRouter wires the whole app from configuration: catalog client, the
// configured store backend, the upload directory and all routes.
func NewRouter() (*API, error) {
	makeLogger()

	catalog := tmdb.New(viper.GetString("tmdb.api_key"))

	s, err := buildStore(catalog)
	if err != nil {
		return nil, err
	}

	uploader, err := service.NewDiskUploader(viper.GetString("upload.dir"))
	if err != nil {
		return nil, err
	}

	return New(s, catalog, uploader), nil
}

// New assembles the router around explicitly provided dependencies. Tests use
// this directly with a fresh memory store per test.
func New(s store.Store, catalog *tmdb.Client, uploader *service.DiskUploader) *API {
	a := &API{
		Store:    s,
		TMDB:     catalog,
		Uploader: uploader,
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	a.Router.MaxMultipartMemory = 5 << 20

	maxUploadSize := viper.GetInt64("upload.max_size")

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// GET /api/search-history	-> Returns all past searches, newest first
		main.GET("/search-history", a.HistoryFetch)

		// POST /api/upload-video	-> Accepts a clip and stores it for analysis
		main.POST("/upload-video", middleware.BodySizeLimiter(maxUploadSize), a.VideoUpload)

		// POST /api/analyze-url	-> Matches a clip submitted as a URL
		main.POST("/analyze-url", middleware.BodySizeLimiter(1<<20), a.AnalyzeURL)

		// POST /api/analyze-video/:uploadId -> Matches a previously uploaded clip
		main.POST("/analyze-video/:uploadId", a.AnalyzeVideo)
	}

	movies := main.Group("/movies")
	{
		// GET /api/movies		-> Returns all locally known movies
		movies.GET("", a.MovieFetchBulk)

		// GET /api/movies/:id		-> Returns one movie plus its scenes
		movies.GET("/:id", a.MovieFetch)
	}

	// GET /api/search/movies?q=	-> Free-text catalog search
	main.GET("/search/movies", cacheFor(30), a.MovieSearch)

	return a
}

func buildStore(catalog *tmdb.Client) (store.Store, error) {
	delay := store.WithDelay(time.Duration(viper.GetInt("match.delay_ms")) * time.Millisecond)

	if viper.GetString("storage.backend") == "memory" {
		s := store.NewMemoryStore(catalog, delay)

		// Seed before the listener starts so no request can observe a
		// half-seeded store
		if viper.GetBool("app.seed_demo_data") {
			s.Seed()
		}
		return s, nil
	}

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	return store.NewDatabaseStore(conn, catalog, delay), nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	if level, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
