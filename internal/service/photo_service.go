package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/auth"
	"github.com/pawhaven/shelter-api/internal/domain"
	"github.com/pawhaven/shelter-api/internal/mapper"
	"github.com/pawhaven/shelter-api/internal/repository"
	"github.com/pawhaven/shelter-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// allowedExtensions lists the accepted photo file extensions
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Upload holds one incoming photo file
type Upload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// PhotoService handles photo uploads, downloads and deletion
type PhotoService struct {
	photoRepo    *repository.PhotoRepository
	catRepo      *repository.CatRepository
	activityRepo *repository.ActivityRepository
	storage      storage.Storage
	logger       *zap.Logger
}

func NewPhotoService(
	photoRepo *repository.PhotoRepository,
	catRepo *repository.CatRepository,
	activityRepo *repository.ActivityRepository,
	fileStorage storage.Storage,
	logger *zap.Logger,
) *PhotoService {
	return &PhotoService{
		photoRepo:    photoRepo,
		catRepo:      catRepo,
		activityRepo: activityRepo,
		storage:      fileStorage,
		logger:       logger,
	}
}

// ValidateFilenames rejects the whole batch before anything is stored when
// any file has a non-image extension
func ValidateFilenames(uploads []Upload) error {
	for _, u := range uploads {
		ext := strings.ToLower(filepath.Ext(u.Filename))
		if !allowedExtensions[ext] {
			return fmt.Errorf("%w: file '%s', only image files are allowed", ErrUnsupportedFileType, u.Filename)
		}
	}
	return nil
}

// UploadToCat stores the given files in the cat's storage folder and records
// a photo row per file
func (s *PhotoService) UploadToCat(ctx context.Context, catID uuid.UUID, uploads []Upload) ([]domain.PhotoDTO, error) {
	cat, err := s.catRepo.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cat: %w", err)
	}

	if err := ValidateFilenames(uploads); err != nil {
		return nil, err
	}

	dtos := make([]domain.PhotoDTO, 0, len(uploads))
	for _, u := range uploads {
		dto, err := s.uploadOne(ctx, cat, u)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}

	s.logActivity(ctx, cat.ID, "Photos uploaded",
		fmt.Sprintf("%d photo(s) uploaded for cat '%s'", len(dtos), cat.Name))

	return dtos, nil
}

func (s *PhotoService) uploadOne(ctx context.Context, cat *domain.Cat, u Upload) (*domain.PhotoDTO, error) {
	storagePath, size, err := s.storage.Upload(ctx, cat.StorageFolder, u.Filename, u.ContentType, u.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	photo := &domain.Photo{
		CatID:       cat.ID,
		Filename:    u.Filename,
		ContentType: u.ContentType,
		SizeBytes:   size,
		StoragePath: storagePath,
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		// Best-effort cleanup; the sweep job catches leftovers
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			s.logger.Warn("failed to cleanup blob after DB error",
				zap.String("storagePath", storagePath),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("failed to create photo record: %w", err)
	}

	dto := mapper.ToPhotoDTO(photo)
	return &dto, nil
}

// ListByCat returns photo metadata for a cat
func (s *PhotoService) ListByCat(ctx context.Context, catID uuid.UUID) ([]domain.PhotoDTO, error) {
	if _, err := s.catRepo.GetByID(ctx, catID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cat: %w", err)
	}

	photos, err := s.photoRepo.ListByCat(ctx, catID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	return mapper.ToPhotoDTOs(photos), nil
}

// Download streams the photo bytes from storage
func (s *PhotoService) Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, *domain.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get photo: %w", err)
	}

	reader, err := s.storage.Download(ctx, photo.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download photo: %w", err)
	}

	return reader, photo, nil
}

// Delete removes a single photo (row and blob)
func (s *PhotoService) Delete(ctx context.Context, id uuid.UUID) error {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get photo: %w", err)
	}

	if err := s.photoRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete photo record: %w", err)
	}

	if err := s.storage.Delete(ctx, photo.StoragePath); err != nil {
		// Row is gone; the sweep job reclaims the blob
		s.logger.Warn("failed to delete blob",
			zap.String("storagePath", photo.StoragePath),
			zap.Error(err),
		)
	}

	s.logActivity(ctx, photo.CatID, "Photo deleted",
		fmt.Sprintf("Photo '%s' was deleted", photo.Filename))

	return nil
}

func (s *PhotoService) logActivity(ctx context.Context, catID uuid.UUID, title, body string) {
	activity := &domain.Activity{
		CatID: catID,
		Title: title,
		Body:  body,
	}
	if userCtx, ok := auth.FromContext(ctx); ok {
		activity.ActorName = userCtx.DisplayName
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("failed to record activity",
			zap.String("cat_id", catID.String()),
			zap.String("title", title),
			zap.Error(err),
		)
	}
}
