package api_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"regexp"
	"testing"

	"cliptrace/match-api/api"
	"cliptrace/match-api/service"
	"cliptrace/match-api/store"
	"cliptrace/match-api/tmdb"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timestampPattern = regexp.MustCompile(`^\d+:\d{2}:\d{2} - \d+:\d{2}:\d{2}$`)

// Enough of an MP4 header for content sniffing to accept it as video
var mp4Bytes = append([]byte{
	0x00, 0x00, 0x00, 0x1c, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm',
	0x00, 0x00, 0x02, 0x00, 'i', 's', 'o', 'm', 'i', 's', 'o', '2', 'm', 'p', '4', '1',
}, bytes.Repeat([]byte{0}, 64)...)

func newTestAPI(t *testing.T, seed bool) *api.API {
	t.Helper()
	gin.SetMode(gin.TestMode)

	viper.Set("upload.max_size", int64(100<<20))
	viper.Set("upload.allowed_types", []string{"video/mp4", "video/mov", "video/avi", "video/quicktime"})

	catalog := tmdb.New("", tmdb.WithRand(rand.New(rand.NewSource(7))))

	s := store.NewMemoryStore(catalog, store.WithDelay(0), store.WithRand(rand.New(rand.NewSource(7))))
	if seed {
		s.Seed()
	}

	uploader, err := service.NewDiskUploader(t.TempDir())
	require.NoError(t, err)

	return api.New(s, catalog, uploader)
}

func do(a *api.API, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func uploadRequest(t *testing.T, contentType string, payload []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="video"; filename="clip.mp4"`)
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-video", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHeartbeat(t *testing.T) {
	a := newTestAPI(t, false)

	w := do(a, httptest.NewRequest(http.MethodHead, "/api/heartbeat", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadVideoHappyPath(t *testing.T) {
	a := newTestAPI(t, false)

	w := do(a, uploadRequest(t, "video/mp4", mp4Bytes))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decode(t, w)["uploadId"])

	w = do(a, uploadRequest(t, "video/mp4", mp4Bytes))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode(t, w)["uploadId"], "upload ids must keep increasing")
}

func TestUploadVideoNoFile(t *testing.T) {
	a := newTestAPI(t, false)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "not a file"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-video", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := do(a, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadVideoRejectsDeclaredType(t *testing.T) {
	a := newTestAPI(t, false)

	w := do(a, uploadRequest(t, "text/plain", mp4Bytes))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadVideoSniffsContent(t *testing.T) {
	a := newTestAPI(t, false)

	// Declared as video but the bytes say otherwise
	w := do(a, uploadRequest(t, "video/mp4", []byte("definitely not a video file")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeURLRequiresURL(t *testing.T) {
	a := newTestAPI(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-url", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := do(a, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeURLOnEmptyStore(t *testing.T) {
	a := newTestAPI(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-url", bytes.NewBufferString(`{"url":"https://youtube.com/shorts/abc"}`))
	req.Header.Set("Content-Type", "application/json")

	w := do(a, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)

	movie, ok := body["movie"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, movie["title"])

	scene, ok := body["scene"].(map[string]any)
	require.True(t, ok)
	assert.Regexp(t, timestampPattern, scene["timestamp"])
	assert.EqualValues(t, movie["id"], scene["movieId"])

	confidence, ok := body["confidence"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, confidence, 80.0)
	assert.LessOrEqual(t, confidence, 99.0)

	// Exactly one history row, carrying the submitted URL
	hw := do(a, httptest.NewRequest(http.MethodGet, "/api/search-history", nil))
	require.Equal(t, http.StatusOK, hw.Code)

	var history []map[string]any
	require.NoError(t, json.Unmarshal(hw.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "https://youtube.com/shorts/abc", history[0]["videoUrl"])
}

func TestAnalyzeVideoInvalidID(t *testing.T) {
	a := newTestAPI(t, false)

	w := do(a, httptest.NewRequest(http.MethodPost, "/api/analyze-video/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeVideoUnknownUploadWritesNoHistory(t *testing.T) {
	a := newTestAPI(t, false)

	w := do(a, httptest.NewRequest(http.MethodPost, "/api/analyze-video/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	hw := do(a, httptest.NewRequest(http.MethodGet, "/api/search-history", nil))
	require.Equal(t, http.StatusOK, hw.Code)

	var history []map[string]any
	require.NoError(t, json.Unmarshal(hw.Body.Bytes(), &history))
	assert.Empty(t, history)
}

func TestAnalyzeUploadedVideoFlow(t *testing.T) {
	a := newTestAPI(t, false)

	w := do(a, uploadRequest(t, "video/mp4", mp4Bytes))
	require.Equal(t, http.StatusOK, w.Code)

	w = do(a, httptest.NewRequest(http.MethodPost, "/api/analyze-video/1", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	movie := body["movie"].(map[string]any)
	scene := body["scene"].(map[string]any)
	assert.EqualValues(t, movie["id"], scene["movieId"])
	assert.EqualValues(t, 1, body["uploadId"])

	hw := do(a, httptest.NewRequest(http.MethodGet, "/api/search-history", nil))
	var history []map[string]any
	require.NoError(t, json.Unmarshal(hw.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "clip.mp4", history[0]["fileName"])
	assert.Nil(t, history[0]["videoUrl"])
}

func TestMovieFetch(t *testing.T) {
	a := newTestAPI(t, true)

	w := do(a, httptest.NewRequest(http.MethodGet, "/api/movies/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	movie := body["movie"].(map[string]any)
	assert.Equal(t, "John Wick", movie["title"])

	scenes := body["scenes"].([]any)
	require.Len(t, scenes, 1)

	// Catalog-sourced fields must not drift between identical reads
	again := do(a, httptest.NewRequest(http.MethodGet, "/api/movies/1", nil))
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestMovieFetchInvalidAndMissing(t *testing.T) {
	a := newTestAPI(t, true)

	w := do(a, httptest.NewRequest(http.MethodGet, "/api/movies/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(a, httptest.NewRequest(http.MethodGet, "/api/movies/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieFetchBulk(t *testing.T) {
	a := newTestAPI(t, true)

	w := do(a, httptest.NewRequest(http.MethodGet, "/api/movies", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var movies []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "John Wick", movies[0]["title"])
}

func TestSearchMoviesRequiresQuery(t *testing.T) {
	a := newTestAPI(t, false)

	w := do(a, httptest.NewRequest(http.MethodGet, "/api/search/movies", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchMoviesServesFallback(t *testing.T) {
	a := newTestAPI(t, false)

	w := do(a, httptest.NewRequest(http.MethodGet, "/api/search/movies?q=gump", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var movies []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "Forrest Gump", movies[0]["title"])
}

func TestHistoryNewestFirstAcrossRequests(t *testing.T) {
	a := newTestAPI(t, true)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-url", bytes.NewBufferString(`{"url":"https://example.com/clip"}`))
	req.Header.Set("Content-Type", "application/json")
	require.Equal(t, http.StatusOK, do(a, req).Code)

	hw := do(a, httptest.NewRequest(http.MethodGet, "/api/search-history", nil))
	require.Equal(t, http.StatusOK, hw.Code)

	var history []map[string]any
	require.NoError(t, json.Unmarshal(hw.Body.Bytes(), &history))
	require.Len(t, history, 3)
	assert.Equal(t, "https://example.com/clip", history[0]["videoUrl"], "newest entry first")
}
