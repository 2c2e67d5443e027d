package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/domain"
	"github.com/pawhaven/shelter-api/internal/http/handler"
	"github.com/pawhaven/shelter-api/internal/repository"
	"github.com/pawhaven/shelter-api/internal/service"
	"github.com/pawhaven/shelter-api/internal/storage"
	"github.com/pawhaven/shelter-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupPhotoRoutes(t *testing.T, db *gorm.DB) (http.Handler, *service.PhotoService) {
	logger := zap.NewNop()
	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	catRepo := repository.NewCatRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	photoService := service.NewPhotoService(photoRepo, catRepo, activityRepo, fileStorage, logger)
	h := handler.NewPhotoHandler(photoService, 25, logger)

	r := chi.NewRouter()
	r.Post("/cats/{id}/photos", h.UploadPhotos)
	r.Get("/cats/{id}/photos", h.ListPhotos)
	r.Get("/photos/{id}/download", h.DownloadPhoto)
	r.Delete("/photos/{id}", h.DeletePhoto)
	return r, photoService
}

func multipartPhotos(t *testing.T, photos map[string][]byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for filename, content := range photos {
		part, err := writer.CreateFormFile("photos", filename)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(content))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestPhotoHandler_UploadPhotos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes, _ := setupPhotoRoutes(t, db)

	cat := testutil.CreateTestCat(t, db, "Poser")

	t.Run("success", func(t *testing.T) {
		body, contentType := multipartPhotos(t, map[string][]byte{
			"portrait.jpg": []byte("image-data"),
		})

		req := httptest.NewRequest(http.MethodPost, "/cats/"+cat.ID.String()+"/photos", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var photos []domain.PhotoDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &photos))
		require.Len(t, photos, 1)
		assert.Equal(t, "portrait.jpg", photos[0].Filename)
	})

	t.Run("no files", func(t *testing.T) {
		body, contentType := multipartPhotos(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/cats/"+cat.ID.String()+"/photos", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		body, contentType := multipartPhotos(t, map[string][]byte{
			"notes.txt": []byte("plain text"),
		})

		req := httptest.NewRequest(http.MethodPost, "/cats/"+cat.ID.String()+"/photos", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-multipart body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cats/"+cat.ID.String()+"/photos", strings.NewReader(`{"photo":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var apiErr domain.APIError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
		assert.Equal(t, domain.ErrorTypeBadRequest, apiErr.Type)
	})

	t.Run("unknown cat", func(t *testing.T) {
		body, contentType := multipartPhotos(t, map[string][]byte{
			"lost.jpg": []byte("image-data"),
		})

		req := httptest.NewRequest(http.MethodPost, "/cats/"+uuid.New().String()+"/photos", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPhotoHandler_ListPhotos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes, _ := setupPhotoRoutes(t, db)

	cat := testutil.CreateTestCat(t, db, "Gallery")
	testutil.CreateTestPhoto(t, db, cat.ID, "a.jpg")
	testutil.CreateTestPhoto(t, db, cat.ID, "b.jpg")

	req := httptest.NewRequest(http.MethodGet, "/cats/"+cat.ID.String()+"/photos", nil)
	rr := httptest.NewRecorder()
	routes.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var photos []domain.PhotoDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &photos))
	assert.Len(t, photos, 2)
}

func TestPhotoHandler_DownloadPhoto(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes, photoService := setupPhotoRoutes(t, db)

	cat := testutil.CreateTestCat(t, db, "Star")
	content := []byte("streamed-bytes")

	photos, err := photoService.UploadToCat(context.Background(), cat.ID, []service.Upload{
		{Filename: "star.jpg", ContentType: "image/jpeg", Data: bytes.NewReader(content)},
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/photos/"+photos[0].ID.String()+"/download", nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, content, rr.Body.Bytes())
		assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "star.jpg")
	})

	t.Run("filename with quotes stays a valid header", func(t *testing.T) {
		quoted, err := photoService.UploadToCat(context.Background(), cat.ID, []service.Upload{
			{Filename: `od"d.jpg`, ContentType: "image/jpeg", Data: bytes.NewReader(content)},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/photos/"+quoted[0].ID.String()+"/download", nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		disposition, params, err := mime.ParseMediaType(rr.Header().Get("Content-Disposition"))
		require.NoError(t, err)
		assert.Equal(t, "attachment", disposition)
		assert.Equal(t, `od"d.jpg`, params["filename"])
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/photos/"+uuid.New().String()+"/download", nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPhotoHandler_DeletePhoto(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes, _ := setupPhotoRoutes(t, db)

	cat := testutil.CreateTestCat(t, db, "Trimmed")
	photo := testutil.CreateTestPhoto(t, db, cat.ID, "extra.jpg")

	req := httptest.NewRequest(http.MethodDelete, "/photos/"+photo.ID.String(), nil)
	rr := httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodDelete, "/photos/"+photo.ID.String(), nil)
	rr = httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
