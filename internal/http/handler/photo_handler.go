package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/service"
	"go.uber.org/zap"
)

type PhotoHandler struct {
	photoService *service.PhotoService
	maxUploadMB  int64
	logger       *zap.Logger
}

func NewPhotoHandler(photoService *service.PhotoService, maxUploadMB int64, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		maxUploadMB:  maxUploadMB,
		logger:       logger,
	}
}

// UploadPhotos godoc
// @Summary Upload photos
// @Description Upload one or more photos for a cat
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Cat ID"
// @Param photos formData file true "Photo files (jpg, jpeg, png, gif, webp)"
// @Success 201 {array} domain.PhotoDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /cats/{id}/photos [post]
func (h *PhotoHandler) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid cat ID: must be a valid UUID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadMB*1024*1024)

	if err := r.ParseMultipartForm(h.maxUploadMB * 1024 * 1024); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Request too large: maximum size is %dMB", h.maxUploadMB))
			return
		}
		respondWithError(w, http.StatusBadRequest, "Invalid request body: expected multipart form data")
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["photos"]) == 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid upload: photos field is required")
		return
	}

	var uploads []service.Upload
	for _, header := range r.MultipartForm.File["photos"] {
		file, err := header.Open()
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid file upload: "+header.Filename)
			return
		}
		defer file.Close()
		uploads = append(uploads, service.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        file,
		})
	}

	photos, err := h.photoService.UploadToCat(r.Context(), catID, uploads)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Cat not found")
			return
		}
		if errors.Is(err, service.ErrUnsupportedFileType) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to upload photos", zap.Error(err), zap.String("cat_id", catID.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to upload photos")
		return
	}

	respondJSON(w, http.StatusCreated, photos)
}

// ListPhotos godoc
// @Summary List photos
// @Description Get photo metadata for a cat
// @Tags Photos
// @Produce json
// @Param id path string true "Cat ID"
// @Success 200 {array} domain.PhotoDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /cats/{id}/photos [get]
func (h *PhotoHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid cat ID: must be a valid UUID")
		return
	}

	photos, err := h.photoService.ListByCat(r.Context(), catID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Cat not found")
			return
		}
		h.logger.Error("failed to list photos", zap.Error(err), zap.String("cat_id", catID.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to list photos")
		return
	}

	respondJSON(w, http.StatusOK, photos)
}

// DownloadPhoto godoc
// @Summary Download photo
// @Description Stream the photo bytes
// @Tags Photos
// @Produce application/octet-stream
// @Param id path string true "Photo ID"
// @Success 200
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /photos/{id}/download [get]
func (h *PhotoHandler) DownloadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid photo ID: must be a valid UUID")
		return
	}

	reader, photo, err := h.photoService.Download(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Photo not found")
			return
		}
		h.logger.Error("failed to download photo", zap.Error(err), zap.String("photo_id", id.String()))
		respondWithError(w, http.StatusNotFound, "Photo not found")
		return
	}
	defer reader.Close()

	contentType := photo.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": photo.Filename}))
	w.Header().Set("Content-Type", contentType)

	_, _ = io.Copy(w, reader)
}

// DeletePhoto godoc
// @Summary Delete photo
// @Description Delete a single photo
// @Tags Photos
// @Param id path string true "Photo ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /photos/{id} [delete]
func (h *PhotoHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid photo ID: must be a valid UUID")
		return
	}

	if err := h.photoService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Photo not found")
			return
		}
		h.logger.Error("failed to delete photo", zap.Error(err), zap.String("photo_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
