package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/domain"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	var photo domain.Photo
	err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListByCat returns all photos attached to a cat, oldest first
func (r *PhotoRepository) ListByCat(ctx context.Context, catID uuid.UUID) ([]domain.Photo, error) {
	var photos []domain.Photo
	err := r.db.WithContext(ctx).
		Where("cat_id = ?", catID).
		Order("created_at").
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Photo{}, "id = ?", id).Error
}

// DeleteByCat removes all photo rows for a cat
func (r *PhotoRepository) DeleteByCat(ctx context.Context, catID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Photo{}, "cat_id = ?", catID).Error
}

// CountByCat returns the count of photos attached to a cat
func (r *PhotoRepository) CountByCat(ctx context.Context, catID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Photo{}).
		Where("cat_id = ?", catID).
		Count(&count).Error
	return count, err
}

// ExistsByStoragePath reports whether any photo row references the given
// storage path. Used by the storage sweep to detect orphaned blobs.
func (r *PhotoRepository) ExistsByStoragePath(ctx context.Context, storagePath string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Photo{}).
		Where("storage_path = ?", storagePath).
		Count(&count).Error
	return count > 0, err
}
