package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
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

func setupCatRoutes(t *testing.T, db *gorm.DB) http.Handler {
	return setupCatRoutesWithLimit(t, db, 25)
}

func setupCatRoutesWithLimit(t *testing.T, db *gorm.DB, maxUploadMB int64) http.Handler {
	logger := zap.NewNop()
	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	catRepo := repository.NewCatRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	catService := service.NewCatService(catRepo, photoRepo, activityRepo, fileStorage, logger)
	photoService := service.NewPhotoService(photoRepo, catRepo, activityRepo, fileStorage, logger)

	h := handler.NewCatHandler(catService, photoService, maxUploadMB, logger)

	r := chi.NewRouter()
	r.Get("/cats", h.ListCats)
	r.Post("/cats", h.CreateCat)
	r.Get("/cats/{id}", h.GetCat)
	r.Put("/cats/{id}", h.UpdateCat)
	r.Delete("/cats/{id}", h.DeleteCat)
	r.Get("/cats/{id}/activities", h.ListActivities)
	return r
}

func multipartCatForm(t *testing.T, fields map[string]string, photos map[string][]byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for filename, content := range photos {
		part, err := writer.CreateFormFile("photos", filename)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(content))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCatHandler_ListCats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes := setupCatRoutes(t, db)

	for _, name := range []string{"Ada", "Byte", "Compiler"} {
		testutil.CreateTestCat(t, db, name)
	}

	t.Run("list all", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cats", nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.PaginatedResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, int64(3), result.Total)
	})

	t.Run("pagination", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cats?page=1&pageSize=2", nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.PaginatedResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, int64(3), result.Total)
		assert.Equal(t, 2, result.PageSize)
		assert.Equal(t, 2, result.TotalPages)
	})

	t.Run("search", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cats?search=byte", nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.PaginatedResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("invalid gender", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cats?gender=robot", nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid sterilized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cats?sterilized=maybe", nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCatHandler_GetCat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes := setupCatRoutes(t, db)

	cat := testutil.CreateTestCat(t, db, "Viewer")

	t.Run("found, counts views", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cats/"+cat.ID.String(), nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.CatWithPhotosDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "Viewer", result.Name)
		assert.Equal(t, int64(1), result.Views)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cats/"+uuid.New().String(), nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cats/not-a-uuid", nil)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCatHandler_CreateCat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes := setupCatRoutes(t, db)

	t.Run("with photos", func(t *testing.T) {
		body, contentType := multipartCatForm(t,
			map[string]string{
				"name":       "Multi",
				"age":        "2",
				"gender":     "female",
				"about":      "Created over multipart",
				"sterilized": "true",
			},
			map[string][]byte{
				"one.jpg": []byte("jpg-bytes"),
				"two.png": []byte("png-bytes"),
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/cats", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var result domain.CatWithPhotosDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "Multi", result.Name)
		assert.Len(t, result.Photos, 2)
		assert.Equal(t, 2, result.PhotoCount)
		assert.NotEmpty(t, rr.Header().Get("Location"))
	})

	t.Run("without photos", func(t *testing.T) {
		body, contentType := multipartCatForm(t,
			map[string]string{"name": "Plain", "gender": "male"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/cats", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var result domain.CatWithPhotosDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Empty(t, result.Photos)
	})

	t.Run("missing gender", func(t *testing.T) {
		body, contentType := multipartCatForm(t,
			map[string]string{"name": "Nameless"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/cats", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-multipart body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cats", strings.NewReader(`{"name":"JSON","gender":"male"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var apiErr domain.APIError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
		assert.Equal(t, domain.ErrorTypeBadRequest, apiErr.Type)
	})

	t.Run("oversized body", func(t *testing.T) {
		small := setupCatRoutesWithLimit(t, db, 1)
		body, contentType := multipartCatForm(t,
			map[string]string{"name": "Huge", "gender": "male"},
			map[string][]byte{"big.jpg": bytes.Repeat([]byte("x"), 2*1024*1024)},
		)

		req := httptest.NewRequest(http.MethodPost, "/cats", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		small.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)

		var apiErr domain.APIError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
		assert.Equal(t, domain.ErrorTypePayloadTooLarge, apiErr.Type)
	})

	t.Run("rejected extension keeps cat out of the database", func(t *testing.T) {
		body, contentType := multipartCatForm(t,
			map[string]string{"name": "Rejected", "gender": "male"},
			map[string][]byte{"nope.txt": []byte("not an image")},
		)

		req := httptest.NewRequest(http.MethodPost, "/cats", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var count int64
		require.NoError(t, db.Model(&domain.Cat{}).Where("name = ?", "Rejected").Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestCatHandler_UpdateCat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes := setupCatRoutes(t, db)

	cat := testutil.CreateTestCat(t, db, "Original")

	t.Run("success", func(t *testing.T) {
		payload, _ := json.Marshal(domain.UpdateCatRequest{
			Name:       "Renamed",
			Age:        5,
			Gender:     "male",
			About:      "Now different",
			Sterilized: true,
		})

		req := httptest.NewRequest(http.MethodPut, "/cats/"+cat.ID.String(), bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.CatDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "Renamed", result.Name)
	})

	t.Run("invalid gender", func(t *testing.T) {
		payload := []byte(`{"name":"X","age":1,"gender":"martian"}`)

		req := httptest.NewRequest(http.MethodPut, "/cats/"+cat.ID.String(), bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		payload, _ := json.Marshal(domain.UpdateCatRequest{Gender: "female"})

		req := httptest.NewRequest(http.MethodPut, "/cats/"+uuid.New().String(), bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCatHandler_DeleteCat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes := setupCatRoutes(t, db)

	cat := testutil.CreateTestCat(t, db, "Doomed")

	req := httptest.NewRequest(http.MethodDelete, "/cats/"+cat.ID.String(), nil)
	rr := httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodDelete, "/cats/"+cat.ID.String(), nil)
	rr = httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCatHandler_ListActivities(t *testing.T) {
	db := testutil.SetupTestDB(t)
	routes := setupCatRoutes(t, db)

	cat := testutil.CreateTestCat(t, db, "Busy")
	require.NoError(t, db.Create(&domain.Activity{
		CatID: cat.ID,
		Title: "Cat registered",
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/cats/"+cat.ID.String()+"/activities", nil)
	rr := httptest.NewRecorder()
	routes.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var activities []domain.ActivityDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &activities))
	require.Len(t, activities, 1)
	assert.Equal(t, "Cat registered", activities[0].Title)
}
