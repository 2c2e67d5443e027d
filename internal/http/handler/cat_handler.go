package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/domain"
	"github.com/pawhaven/shelter-api/internal/repository"
	"github.com/pawhaven/shelter-api/internal/service"
	"go.uber.org/zap"
)

// CatHandler handles HTTP requests for cats
type CatHandler struct {
	catService   *service.CatService
	photoService *service.PhotoService
	maxUploadMB  int64
	logger       *zap.Logger
}

// NewCatHandler creates a new CatHandler
func NewCatHandler(catService *service.CatService, photoService *service.PhotoService, maxUploadMB int64, logger *zap.Logger) *CatHandler {
	return &CatHandler{
		catService:   catService,
		photoService: photoService,
		maxUploadMB:  maxUploadMB,
		logger:       logger,
	}
}

// ListCats godoc
// @Summary List cats
// @Description Get paginated list of cats with optional filters
// @Tags Cats
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param search query string false "Search by name or description"
// @Param gender query string false "Filter by gender" Enums(male, female, unknown)
// @Param sterilized query bool false "Filter by sterilization status"
// @Param sortBy query string false "Sort option" Enums(name_asc, name_desc, age_asc, age_desc, views_desc, registered_desc)
// @Success 200 {object} domain.PaginatedResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /cats [get]
func (h *CatHandler) ListCats(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	filters := &repository.CatFilters{
		Search: r.URL.Query().Get("search"),
	}

	if gender := r.URL.Query().Get("gender"); gender != "" {
		if !domain.IsValidGender(gender) {
			respondWithError(w, http.StatusBadRequest, "Invalid gender: must be one of male, female, unknown")
			return
		}
		g := domain.Gender(gender)
		filters.Gender = &g
	}

	if sterilized := r.URL.Query().Get("sterilized"); sterilized != "" {
		val, err := strconv.ParseBool(sterilized)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid sterilized: must be true or false")
			return
		}
		filters.Sterilized = &val
	}

	sortBy := repository.CatSortByRegisteredDesc
	if s := r.URL.Query().Get("sortBy"); s != "" {
		sortBy = repository.CatSortOption(s)
	}

	result, err := h.catService.List(r.Context(), page, pageSize, filters, sortBy)
	if err != nil {
		h.logger.Error("failed to list cats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list cats")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetCat godoc
// @Summary Get cat
// @Description Get a cat by ID with its photos. Each call counts as a view.
// @Tags Cats
// @Produce json
// @Param id path string true "Cat ID"
// @Success 200 {object} domain.CatWithPhotosDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /cats/{id} [get]
func (h *CatHandler) GetCat(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid cat ID: must be a valid UUID")
		return
	}

	cat, err := h.catService.GetWithPhotos(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Cat not found")
			return
		}
		h.logger.Error("failed to get cat", zap.Error(err), zap.String("cat_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get cat")
		return
	}

	respondJSON(w, http.StatusOK, cat)
}

// CreateCat godoc
// @Summary Create cat
// @Description Register a new cat, optionally with photos in the same multipart request
// @Tags Cats
// @Accept multipart/form-data
// @Produce json
// @Param name formData string false "Cat name"
// @Param age formData int false "Age in years"
// @Param gender formData string true "Gender" Enums(male, female, unknown)
// @Param about formData string false "Description"
// @Param sterilized formData bool false "Sterilization status"
// @Param photos formData file false "Photo files (jpg, jpeg, png, gif, webp)"
// @Success 201 {object} domain.CatWithPhotosDTO
// @Failure 400 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /cats [post]
func (h *CatHandler) CreateCat(w http.ResponseWriter, r *http.Request) {
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

	req, err := parseCatForm(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	var uploads []service.Upload
	if r.MultipartForm != nil {
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
	}

	// Reject bad filenames before the cat row exists
	if err := service.ValidateFilenames(uploads); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := h.catService.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create cat", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create cat")
		return
	}

	result := domain.CatWithPhotosDTO{CatDTO: *cat, Photos: []domain.PhotoDTO{}}
	if len(uploads) > 0 {
		photos, err := h.photoService.UploadToCat(r.Context(), cat.ID, uploads)
		if err != nil {
			h.logger.Error("failed to upload photos for new cat", zap.Error(err), zap.String("cat_id", cat.ID.String()))
			respondWithError(w, http.StatusInternalServerError, "Cat was created but photo upload failed")
			return
		}
		result.Photos = photos
		result.PhotoCount = len(photos)
	}

	w.Header().Set("Location", "/api/v1/cats/"+cat.ID.String())
	respondJSON(w, http.StatusCreated, result)
}

// UpdateCat godoc
// @Summary Update cat
// @Description Update an existing cat
// @Tags Cats
// @Accept json
// @Produce json
// @Param id path string true "Cat ID"
// @Param request body domain.UpdateCatRequest true "Cat data"
// @Success 200 {object} domain.CatDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /cats/{id} [put]
func (h *CatHandler) UpdateCat(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid cat ID: must be a valid UUID")
		return
	}

	var req domain.UpdateCatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	cat, err := h.catService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Cat not found")
			return
		}
		h.logger.Error("failed to update cat", zap.Error(err), zap.String("cat_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to update cat")
		return
	}

	respondJSON(w, http.StatusOK, cat)
}

// DeleteCat godoc
// @Summary Delete cat
// @Description Delete a cat with all its photos
// @Tags Cats
// @Param id path string true "Cat ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /cats/{id} [delete]
func (h *CatHandler) DeleteCat(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid cat ID: must be a valid UUID")
		return
	}

	if err := h.catService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Cat not found")
			return
		}
		h.logger.Error("failed to delete cat", zap.Error(err), zap.String("cat_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete cat")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListActivities godoc
// @Summary List cat activities
// @Description Get the activity log for a cat, newest first
// @Tags Cats
// @Produce json
// @Param id path string true "Cat ID"
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} domain.ActivityDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /cats/{id}/activities [get]
func (h *CatHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid cat ID: must be a valid UUID")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	activities, err := h.catService.ListActivities(r.Context(), id, limit)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Cat not found")
			return
		}
		h.logger.Error("failed to list activities", zap.Error(err), zap.String("cat_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to list activities")
		return
	}

	respondJSON(w, http.StatusOK, activities)
}

// parseCatForm builds a create request from multipart form fields
func parseCatForm(r *http.Request) (*domain.CreateCatRequest, error) {
	req := &domain.CreateCatRequest{
		Name:   r.FormValue("name"),
		Gender: r.FormValue("gender"),
		About:  r.FormValue("about"),
	}

	if age := r.FormValue("age"); age != "" {
		val, err := strconv.Atoi(age)
		if err != nil {
			return nil, errors.New("Invalid age: must be an integer")
		}
		req.Age = val
	}

	if sterilized := r.FormValue("sterilized"); sterilized != "" {
		val, err := strconv.ParseBool(sterilized)
		if err != nil {
			return nil, errors.New("Invalid sterilized: must be true or false")
		}
		req.Sterilized = val
	}

	return req, nil
}
