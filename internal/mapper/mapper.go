package mapper

import (
	"github.com/pawhaven/shelter-api/internal/domain"
)

const timeFormat = "2006-01-02T15:04:05Z"

// ToCatDTO converts Cat to CatDTO
func ToCatDTO(cat *domain.Cat) domain.CatDTO {
	return domain.CatDTO{
		ID:           cat.ID,
		Name:         cat.Name,
		Age:          cat.Age,
		Gender:       cat.Gender,
		About:        cat.About,
		Sterilized:   cat.Sterilized,
		Views:        cat.Views,
		PhotoCount:   len(cat.Photos),
		RegisteredAt: cat.RegisteredAt.UTC().Format(timeFormat),
		CreatedAt:    cat.CreatedAt.UTC().Format(timeFormat),
		UpdatedAt:    cat.UpdatedAt.UTC().Format(timeFormat),
	}
}

// ToCatDTOs converts a slice of cats
func ToCatDTOs(cats []domain.Cat) []domain.CatDTO {
	dtos := make([]domain.CatDTO, len(cats))
	for i := range cats {
		dtos[i] = ToCatDTO(&cats[i])
	}
	return dtos
}

// ToCatWithPhotosDTO converts Cat to CatWithPhotosDTO
func ToCatWithPhotosDTO(cat *domain.Cat) domain.CatWithPhotosDTO {
	dto := domain.CatWithPhotosDTO{
		CatDTO: ToCatDTO(cat),
		Photos: make([]domain.PhotoDTO, len(cat.Photos)),
	}
	for i := range cat.Photos {
		dto.Photos[i] = ToPhotoDTO(&cat.Photos[i])
	}
	return dto
}

// ToPhotoDTO converts Photo to PhotoDTO.
// URL points at this API's download endpoint rather than the backing store;
// clients never see storage paths.
func ToPhotoDTO(photo *domain.Photo) domain.PhotoDTO {
	return domain.PhotoDTO{
		ID:          photo.ID,
		CatID:       photo.CatID,
		Filename:    photo.Filename,
		ContentType: photo.ContentType,
		SizeBytes:   photo.SizeBytes,
		URL:         "/api/v1/photos/" + photo.ID.String() + "/download",
		CreatedAt:   photo.CreatedAt.UTC().Format(timeFormat),
	}
}

// ToPhotoDTOs converts a slice of photos
func ToPhotoDTOs(photos []domain.Photo) []domain.PhotoDTO {
	dtos := make([]domain.PhotoDTO, len(photos))
	for i := range photos {
		dtos[i] = ToPhotoDTO(&photos[i])
	}
	return dtos
}

// ToActivityDTO converts Activity to ActivityDTO
func ToActivityDTO(activity *domain.Activity) domain.ActivityDTO {
	return domain.ActivityDTO{
		ID:        activity.ID,
		CatID:     activity.CatID,
		Title:     activity.Title,
		Body:      activity.Body,
		ActorName: activity.ActorName,
		CreatedAt: activity.CreatedAt.UTC().Format(timeFormat),
	}
}

// ToActivityDTOs converts a slice of activities
func ToActivityDTOs(activities []domain.Activity) []domain.ActivityDTO {
	dtos := make([]domain.ActivityDTO, len(activities))
	for i := range activities {
		dtos[i] = ToActivityDTO(&activities[i])
	}
	return dtos
}
