package domain

import (
	"github.com/google/uuid"
)

// DTOs for API responses

type CatDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name,omitempty"`
	Age          int       `json:"age"`
	Gender       Gender    `json:"gender"`
	About        string    `json:"about,omitempty"`
	Sterilized   bool      `json:"sterilized"`
	Views        int64     `json:"views"`
	PhotoCount   int       `json:"photoCount"`
	RegisteredAt string    `json:"registeredAt"` // ISO 8601
	CreatedAt    string    `json:"createdAt"`    // ISO 8601
	UpdatedAt    string    `json:"updatedAt"`    // ISO 8601
}

// CatWithPhotosDTO includes the cat's photo metadata
type CatWithPhotosDTO struct {
	CatDTO
	Photos []PhotoDTO `json:"photos"`
}

type PhotoDTO struct {
	ID          uuid.UUID `json:"id"`
	CatID       uuid.UUID `json:"catId"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType,omitempty"`
	SizeBytes   int64     `json:"sizeBytes"`
	URL         string    `json:"url"`
	CreatedAt   string    `json:"createdAt"` // ISO 8601
}

type ActivityDTO struct {
	ID        uuid.UUID `json:"id"`
	CatID     uuid.UUID `json:"catId"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	ActorName string    `json:"actorName,omitempty"`
	CreatedAt string    `json:"createdAt"` // ISO 8601
}

// PaginatedResponse wraps list results with pagination metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// Request DTOs

type CreateCatRequest struct {
	Name       string `json:"name" validate:"omitempty,max=200"`
	Age        int    `json:"age" validate:"gte=0,lte=40"`
	Gender     string `json:"gender" validate:"required,oneof=male female unknown"`
	About      string `json:"about" validate:"omitempty,max=5000"`
	Sterilized bool   `json:"sterilized"`
}

type UpdateCatRequest struct {
	Name       string `json:"name" validate:"omitempty,max=200"`
	Age        int    `json:"age" validate:"gte=0,lte=40"`
	Gender     string `json:"gender" validate:"required,oneof=male female unknown"`
	About      string `json:"about" validate:"omitempty,max=5000"`
	Sterilized bool   `json:"sterilized"`
}
