package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// GalleryImageSuccessResponse is the success response envelope for endpoints returning one gallery image.
type GalleryImageSuccessResponse struct {
	Data  *domain.GalleryImage `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListGalleryImagesSuccessResponse is the success response envelope for GET /gallery (200).
type ListGalleryImagesSuccessResponse struct {
	Data  []*domain.GalleryImage `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type GalleryController struct {
	Logger  *slog.Logger
	Service domain.GalleryService
}

func NewGalleryController(logger *slog.Logger, svc domain.GalleryService) *GalleryController {
	return &GalleryController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List gallery images of a year
// @Description Gallery images of a year, newest first.
// @Tags gallery
// @Produce json
// @Param yearId query string true "Year ID (UUID)"
// @Param category query string false "Only images of this category"
// @Success 200 {object} controllers.ListGalleryImagesSuccessResponse "data contains the gallery images"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /gallery [get]
func (c *GalleryController) List(w http.ResponseWriter, r *http.Request) {
	yearID, ok := helpers.RequireQueryID(w, r, "yearId")
	if !ok {
		return
	}
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	images, err := c.Service.List(r.Context(), domain.GalleryFilter{YearID: yearID, Category: category})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if images == nil {
		images = []*domain.GalleryImage{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, images)
}

// Get godoc
// @Summary Get a gallery image
// @Tags gallery
// @Produce json
// @Param id path string true "Gallery image ID (UUID)"
// @Success 200 {object} controllers.GalleryImageSuccessResponse "data contains the gallery image"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /gallery/{id} [get]
func (c *GalleryController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	item, err := c.Service.Get(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// Create godoc
// @Summary Create a gallery image
// @Description Adds an image to the gallery. yearId and imageUrl are required.
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.GalleryImagePatch true "Gallery image data"
// @Success 201 {object} controllers.GalleryImageSuccessResponse "data contains the created gallery image"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /gallery [post]
func (c *GalleryController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.GalleryImagePatch
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.Create(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, item)
}

// Update godoc
// @Summary Update a gallery image
// @Description Partial update: absent fields are kept, null clears an optional field.
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID (UUID)"
// @Param body body domain.GalleryImagePatch true "Fields to update"
// @Success 200 {object} controllers.GalleryImageSuccessResponse "data contains the updated gallery image"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /gallery/{id} [put]
func (c *GalleryController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req domain.GalleryImagePatch
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.Update(r.Context(), id, req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a gallery image
// @Description Removes the gallery entry and, best-effort, the image from the media store.
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /gallery/{id} [delete]
func (c *GalleryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
