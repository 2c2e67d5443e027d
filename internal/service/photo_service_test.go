package service_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/domain"
	"github.com/pawhaven/shelter-api/internal/repository"
	"github.com/pawhaven/shelter-api/internal/service"
	"github.com/pawhaven/shelter-api/internal/storage"
	"github.com/pawhaven/shelter-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newPhotoService(t *testing.T, db *gorm.DB) (*service.PhotoService, storage.Storage) {
	logger := zap.NewNop()
	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	catRepo := repository.NewCatRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	return service.NewPhotoService(photoRepo, catRepo, activityRepo, fileStorage, logger), fileStorage
}

func TestValidateFilenames(t *testing.T) {
	valid := []service.Upload{
		{Filename: "a.jpg"},
		{Filename: "b.JPEG"},
		{Filename: "c.png"},
		{Filename: "d.gif"},
		{Filename: "e.webp"},
	}
	assert.NoError(t, service.ValidateFilenames(valid))

	invalid := []service.Upload{
		{Filename: "a.jpg"},
		{Filename: "malware.exe"},
	}
	err := service.ValidateFilenames(invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUnsupportedFileType)
	assert.Contains(t, err.Error(), "malware.exe")
}

func TestPhotoService_UploadToCat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, fileStorage := newPhotoService(t, db)
	ctx := context.Background()

	cat := testutil.CreateTestCat(t, db, "Biscuit")

	uploads := []service.Upload{
		{Filename: "front.jpg", ContentType: "image/jpeg", Data: strings.NewReader("front-bytes")},
		{Filename: "back.png", ContentType: "image/png", Data: strings.NewReader("back-bytes")},
	}

	photos, err := svc.UploadToCat(ctx, cat.ID, uploads)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "front.jpg", photos[0].Filename)
	assert.Equal(t, int64(len("front-bytes")), photos[0].SizeBytes)
	assert.Contains(t, photos[0].URL, photos[0].ID.String())

	// Blobs land in the cat's folder
	paths, err := fileStorage.List(ctx, cat.StorageFolder)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestPhotoService_UploadToCat_RejectsBatchOnBadExtension(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, fileStorage := newPhotoService(t, db)
	ctx := context.Background()

	cat := testutil.CreateTestCat(t, db, "Strict")

	uploads := []service.Upload{
		{Filename: "ok.jpg", ContentType: "image/jpeg", Data: strings.NewReader("data")},
		{Filename: "bad.pdf", ContentType: "application/pdf", Data: strings.NewReader("data")},
	}

	_, err := svc.UploadToCat(ctx, cat.ID, uploads)
	assert.ErrorIs(t, err, service.ErrUnsupportedFileType)

	// Nothing stored, not even the valid file
	paths, err := fileStorage.List(ctx, cat.StorageFolder)
	require.NoError(t, err)
	assert.Empty(t, paths)

	var count int64
	require.NoError(t, db.Model(&domain.Photo{}).Where("cat_id = ?", cat.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPhotoService_UploadToCat_UnknownCat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, _ := newPhotoService(t, db)

	_, err := svc.UploadToCat(context.Background(), uuid.New(), []service.Upload{
		{Filename: "a.jpg", ContentType: "image/jpeg", Data: strings.NewReader("data")},
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPhotoService_Download(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, _ := newPhotoService(t, db)
	ctx := context.Background()

	cat := testutil.CreateTestCat(t, db, "Streamer")
	content := []byte("photo-bytes")

	photos, err := svc.UploadToCat(ctx, cat.ID, []service.Upload{
		{Filename: "pic.jpg", ContentType: "image/jpeg", Data: bytes.NewReader(content)},
	})
	require.NoError(t, err)

	reader, photo, err := svc.Download(ctx, photos[0].ID)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, "pic.jpg", photo.Filename)
	assert.Equal(t, "image/jpeg", photo.ContentType)
}

func TestPhotoService_Download_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, _ := newPhotoService(t, db)

	_, _, err := svc.Download(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPhotoService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, fileStorage := newPhotoService(t, db)
	ctx := context.Background()

	cat := testutil.CreateTestCat(t, db, "Cleanup")

	photos, err := svc.UploadToCat(ctx, cat.ID, []service.Upload{
		{Filename: "gone.jpg", ContentType: "image/jpeg", Data: strings.NewReader("data")},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, photos[0].ID))

	var count int64
	require.NoError(t, db.Model(&domain.Photo{}).Where("id = ?", photos[0].ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	paths, err := fileStorage.List(ctx, cat.StorageFolder)
	require.NoError(t, err)
	assert.Empty(t, paths)

	assert.ErrorIs(t, svc.Delete(ctx, photos[0].ID), service.ErrNotFound)
}
