package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/auth"
	"github.com/pawhaven/shelter-api/internal/domain"
	"github.com/pawhaven/shelter-api/internal/mapper"
	"github.com/pawhaven/shelter-api/internal/repository"
	"github.com/pawhaven/shelter-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CatService struct {
	catRepo      *repository.CatRepository
	photoRepo    *repository.PhotoRepository
	activityRepo *repository.ActivityRepository
	storage      storage.Storage
	logger       *zap.Logger
}

func NewCatService(
	catRepo *repository.CatRepository,
	photoRepo *repository.PhotoRepository,
	activityRepo *repository.ActivityRepository,
	fileStorage storage.Storage,
	logger *zap.Logger,
) *CatService {
	return &CatService{
		catRepo:      catRepo,
		photoRepo:    photoRepo,
		activityRepo: activityRepo,
		storage:      fileStorage,
		logger:       logger,
	}
}

// Create registers a new cat. The ID is assigned up front so the storage
// folder name is known before the row exists.
func (s *CatService) Create(ctx context.Context, req *domain.CreateCatRequest) (*domain.CatDTO, error) {
	id := uuid.New()
	cat := &domain.Cat{
		BaseModel:     domain.BaseModel{ID: id},
		Name:          req.Name,
		Age:           req.Age,
		Gender:        domain.Gender(req.Gender),
		About:         req.About,
		Sterilized:    req.Sterilized,
		RegisteredAt:  time.Now().UTC(),
		StorageFolder: "cats/" + id.String(),
	}

	if err := s.catRepo.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to create cat: %w", err)
	}

	s.logActivity(ctx, cat.ID, "Cat registered",
		fmt.Sprintf("Cat '%s' was registered at the shelter", cat.Name))

	dto := mapper.ToCatDTO(cat)
	return &dto, nil
}

// GetWithPhotos returns a single cat with photo metadata and counts the view
func (s *CatService) GetWithPhotos(ctx context.Context, id uuid.UUID) (*domain.CatWithPhotosDTO, error) {
	if err := s.catRepo.IncrementViews(ctx, id); err != nil {
		// A missing row surfaces on the fetch below; other errors just lose a view
		s.logger.Warn("failed to increment views",
			zap.String("cat_id", id.String()),
			zap.Error(err),
		)
	}

	cat, err := s.catRepo.GetWithPhotos(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cat: %w", err)
	}

	dto := mapper.ToCatWithPhotosDTO(cat)
	return &dto, nil
}

// List returns cats with filters, sorting and pagination
func (s *CatService) List(ctx context.Context, page, pageSize int, filters *repository.CatFilters, sortBy repository.CatSortOption) (*domain.PaginatedResponse, error) {
	cats, total, err := s.catRepo.List(ctx, page, pageSize, filters, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list cats: %w", err)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &domain.PaginatedResponse{
		Data:       mapper.ToCatDTOs(cats),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Update changes the editable fields of an existing cat
func (s *CatService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCatRequest) (*domain.CatDTO, error) {
	cat, err := s.catRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cat: %w", err)
	}

	cat.Name = req.Name
	cat.Age = req.Age
	cat.Gender = domain.Gender(req.Gender)
	cat.About = req.About
	cat.Sterilized = req.Sterilized

	if err := s.catRepo.Update(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to update cat: %w", err)
	}

	s.logActivity(ctx, cat.ID, "Cat updated",
		fmt.Sprintf("Cat '%s' was updated", cat.Name))

	dto := mapper.ToCatDTO(cat)
	return &dto, nil
}

// Delete removes a cat, its photo records and its entire storage folder
func (s *CatService) Delete(ctx context.Context, id uuid.UUID) error {
	cat, err := s.catRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get cat: %w", err)
	}

	// Photo rows go explicitly; the FK cascade is a backstop
	if err := s.photoRepo.DeleteByCat(ctx, id); err != nil {
		return fmt.Errorf("failed to delete photos: %w", err)
	}

	if err := s.catRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete cat: %w", err)
	}

	if cat.StorageFolder != "" {
		if err := s.storage.DeleteFolder(ctx, cat.StorageFolder); err != nil {
			// Row is gone; the sweep job reclaims any blobs left behind
			s.logger.Warn("failed to delete storage folder",
				zap.String("cat_id", id.String()),
				zap.String("folder", cat.StorageFolder),
				zap.Error(err),
			)
		}
	}

	s.logActivity(ctx, cat.ID, "Cat deleted",
		fmt.Sprintf("Cat '%s' and all related photos were deleted", cat.Name))

	return nil
}

// ListActivities returns the audit trail for a cat, newest first. The trail
// outlives the cat, so a missing row is only a miss when there is no history
// either.
func (s *CatService) ListActivities(ctx context.Context, catID uuid.UUID, limit int) ([]domain.ActivityDTO, error) {
	activities, err := s.activityRepo.ListByCat(ctx, catID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	if len(activities) == 0 {
		if _, err := s.catRepo.GetByID(ctx, catID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get cat: %w", err)
		}
	}

	return mapper.ToActivityDTOs(activities), nil
}

func (s *CatService) logActivity(ctx context.Context, catID uuid.UUID, title, body string) {
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
