package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/domain"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListByCat returns the activity trail for a cat, newest first
func (r *ActivityRepository) ListByCat(ctx context.Context, catID uuid.UUID, limit int) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.WithContext(ctx).
		Where("cat_id = ?", catID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
