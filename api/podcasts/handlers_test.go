package podcasts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/castkeep/catalog-api/api/types"
	"github.com/castkeep/catalog-api/internal/models"
	episodesService "github.com/castkeep/catalog-api/internal/services/episodes"
	podcastsService "github.com/castkeep/catalog-api/internal/services/podcasts"
	"github.com/castkeep/catalog-api/internal/services/uploads"
)

// pngContent carries the PNG magic bytes so upload sniffing accepts it
var pngContent = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Podcast{}, &models.Episode{}))

	uploadService, err := uploads.NewService(t.TempDir(), "/uploads", uploads.MaxUploadSize)
	require.NoError(t, err)

	podcastRepo := podcastsService.NewRepository(db)
	episodeRepo := episodesService.NewRepository(db)
	deps := &types.Dependencies{
		PodcastService: podcastsService.NewService(podcastRepo),
		EpisodeService: episodesService.NewService(episodeRepo, podcastRepo),
		Uploads:        uploadService,
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/podcasts"), deps)
	return router
}

func performRequest(router *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, path string, fields url.Values) *httptest.ResponseRecorder {
	return performRequest(router, http.MethodPost, path,
		strings.NewReader(fields.Encode()), "application/x-www-form-urlencoded")
}

func putForm(router *gin.Engine, path string, fields url.Values) *httptest.ResponseRecorder {
	return performRequest(router, http.MethodPut, path,
		strings.NewReader(fields.Encode()), "application/x-www-form-urlencoded")
}

// multipartBody builds a multipart form with string fields and one
// optional file part
func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createPodcast(t *testing.T, router *gin.Engine, title string) uint {
	t.Helper()
	w := postForm(router, "/api/podcasts", url.Values{"title": {title}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	return uint(body["id"].(float64))
}

func TestPostPodcast(t *testing.T) {
	router := setupTestRouter(t)

	w := postForm(router, "/api/podcasts", url.Values{
		"title":     {"My Podcast"},
		"image_url": {"https://example.com/cover.png"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "My Podcast", body["title"])
	assert.Equal(t, "https://example.com/cover.png", body["imageUrl"])
}

func TestPostPodcastWithoutCover(t *testing.T) {
	router := setupTestRouter(t)

	w := postForm(router, "/api/podcasts", url.Values{"title": {"Plain"}})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Nil(t, body["imageUrl"])
}

func TestPostPodcastUploadTakesPrecedence(t *testing.T) {
	router := setupTestRouter(t)

	// Both a file and an external URL: the file wins
	reader, contentType := multipartBody(t,
		map[string]string{"title": "Uploaded", "image_url": "https://example.com/ignored.png"},
		"image", "cover.png", pngContent)
	w := performRequest(router, http.MethodPost, "/api/podcasts", reader, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	imageURL, ok := body["imageUrl"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(imageURL, "/uploads/image-"), "got %s", imageURL)
	assert.True(t, strings.HasSuffix(imageURL, ".png"))
}

func TestPostPodcastMissingTitle(t *testing.T) {
	router := setupTestRouter(t)

	w := postForm(router, "/api/podcasts", url.Values{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "MISSING_FIELD", body["error"])
}

func TestPostPodcastRejectsBadUpload(t *testing.T) {
	router := setupTestRouter(t)

	reader, contentType := multipartBody(t,
		map[string]string{"title": "Sneaky"},
		"image", "script.sh", []byte("#!/bin/sh\n"))
	w := performRequest(router, http.MethodPost, "/api/podcasts", reader, contentType)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "VALIDATION", body["error"])

	// The rejected request created nothing
	w = performRequest(router, http.MethodGet, "/api/podcasts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetPodcasts(t *testing.T) {
	router := setupTestRouter(t)

	first := createPodcast(t, router, "First")
	second := createPodcast(t, router, "Second")

	w := performRequest(router, http.MethodGet, "/api/podcasts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)

	// Newest first, each with an integer episode count
	assert.Equal(t, float64(second), list[0]["id"])
	assert.Equal(t, float64(first), list[1]["id"])
	assert.Equal(t, float64(0), list[0]["episodeCount"])
}

func TestGetPodcast(t *testing.T) {
	router := setupTestRouter(t)
	id := createPodcast(t, router, "Lookup")

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/podcasts/%d", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(id), body["id"])
	assert.Equal(t, "Lookup", body["title"])
}

func TestGetPodcastErrors(t *testing.T) {
	router := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/api/podcasts/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, http.MethodGet, "/api/podcasts/999999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "NOT_FOUND", body["error"])
}

func TestPutPodcastKeepsCoverWhenAbsent(t *testing.T) {
	router := setupTestRouter(t)

	w := postForm(router, "/api/podcasts", url.Values{
		"title":     {"Original"},
		"image_url": {"https://example.com/cover.png"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint(decodeBody(t, w)["id"].(float64))

	w = putForm(router, fmt.Sprintf("/api/podcasts/%d", id), url.Values{"title": {"Renamed"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Renamed", body["title"])
	assert.Equal(t, "https://example.com/cover.png", body["imageUrl"])
}

func TestPutPodcastNotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := putForm(router, "/api/podcasts/999999", url.Values{"title": {"Ghost"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePodcast(t *testing.T) {
	router := setupTestRouter(t)
	id := createPodcast(t, router, "Short-lived")

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/podcasts/%d", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Podcast deleted successfully", decodeBody(t, w)["message"])

	// Second delete of the same ID is a 404, not a silent success
	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/podcasts/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostEpisode(t *testing.T) {
	router := setupTestRouter(t)
	id := createPodcast(t, router, "Owner")

	payload := `{"title":"Episode One","description":"The first","publicationDate":"2024-03-05","audioUrl":"https://example.com/one.mp3"}`
	w := performRequest(router, http.MethodPost,
		fmt.Sprintf("/api/podcasts/%d/episodes", id),
		strings.NewReader(payload), "application/json")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "Episode One", body["title"])
	assert.Equal(t, "2024-03-05", body["publicationDate"])

	// The embedded podcast summary identifies the owner
	owner, ok := body["podcast"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(id), owner["id"])
	assert.Equal(t, "Owner", owner["title"])
}

func TestPostEpisodeMissingPodcast(t *testing.T) {
	router := setupTestRouter(t)

	payload := `{"title":"Orphan","description":"No owner","publicationDate":"2024-03-05","audioUrl":"https://example.com/x.mp3"}`
	w := performRequest(router, http.MethodPost, "/api/podcasts/999999/episodes",
		strings.NewReader(payload), "application/json")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostEpisodeMissingFields(t *testing.T) {
	router := setupTestRouter(t)
	id := createPodcast(t, router, "Owner")

	w := performRequest(router, http.MethodPost,
		fmt.Sprintf("/api/podcasts/%d/episodes", id),
		strings.NewReader(`{"title":"Only a title"}`), "application/json")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "MISSING_FIELD", body["error"])
}

func TestGetEpisodesOrdered(t *testing.T) {
	router := setupTestRouter(t)
	id := createPodcast(t, router, "Owner")

	for _, date := range []string{"2024-01-15", "2024-06-01", "2023-12-31"} {
		payload := fmt.Sprintf(
			`{"title":"Episode %s","description":"d","publicationDate":"%s","audioUrl":"https://example.com/a.mp3"}`,
			date, date)
		w := performRequest(router, http.MethodPost,
			fmt.Sprintf("/api/podcasts/%d/episodes", id),
			strings.NewReader(payload), "application/json")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(router, http.MethodGet,
		fmt.Sprintf("/api/podcasts/%d/episodes", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "2024-06-01", list[0]["publicationDate"])
	assert.Equal(t, "2024-01-15", list[1]["publicationDate"])
	assert.Equal(t, "2023-12-31", list[2]["publicationDate"])
}
