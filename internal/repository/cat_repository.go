package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/domain"
	"gorm.io/gorm"
)

type CatRepository struct {
	db *gorm.DB
}

func NewCatRepository(db *gorm.DB) *CatRepository {
	return &CatRepository{db: db}
}

func (r *CatRepository) Create(ctx context.Context, cat *domain.Cat) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *CatRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	var cat domain.Cat
	err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetWithPhotos returns a cat with its photos preloaded
func (r *CatRepository) GetWithPhotos(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	var cat domain.Cat
	err := r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photos.created_at")
		}).
		First(&cat, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatRepository) Update(ctx context.Context, cat *domain.Cat) error {
	return r.db.WithContext(ctx).Omit("Photos").Save(cat).Error
}

func (r *CatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Cat{}, "id = ?", id).Error
}

// IncrementViews bumps the view counter without touching updated_at
func (r *CatRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Cat{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// CatFilters holds filters for listing cats
type CatFilters struct {
	Search     string
	Gender     *domain.Gender
	Sterilized *bool
}

// CatSortOption defines sort options for cats
type CatSortOption string

const (
	CatSortByNameAsc        CatSortOption = "name_asc"
	CatSortByNameDesc       CatSortOption = "name_desc"
	CatSortByAgeAsc         CatSortOption = "age_asc"
	CatSortByAgeDesc        CatSortOption = "age_desc"
	CatSortByViewsDesc      CatSortOption = "views_desc"
	CatSortByRegisteredDesc CatSortOption = "registered_desc"
)

// List returns cats with filters and pagination
func (r *CatRepository) List(ctx context.Context, page, pageSize int, filters *CatFilters, sortBy CatSortOption) ([]domain.Cat, int64, error) {
	var cats []domain.Cat
	var total int64

	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx).Model(&domain.Cat{})

	if filters != nil {
		if filters.Search != "" {
			pattern := "%" + strings.ToLower(filters.Search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(about) LIKE ?", pattern, pattern)
		}
		if filters.Gender != nil {
			query = query.Where("gender = ?", *filters.Gender)
		}
		if filters.Sterilized != nil {
			query = query.Where("sterilized = ?", *filters.Sterilized)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch sortBy {
	case CatSortByNameAsc:
		query = query.Order("name ASC")
	case CatSortByNameDesc:
		query = query.Order("name DESC")
	case CatSortByAgeAsc:
		query = query.Order("age ASC")
	case CatSortByAgeDesc:
		query = query.Order("age DESC")
	case CatSortByViewsDesc:
		query = query.Order("views DESC")
	default:
		query = query.Order("registered_at DESC")
	}

	err := query.
		Preload("Photos").
		Offset(offset).
		Limit(pageSize).
		Find(&cats).Error

	return cats, total, err
}
