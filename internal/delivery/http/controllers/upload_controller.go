package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// multipartOverhead leaves room for form boundaries and the folder field on top of the file limit.
const multipartOverhead = 1 << 20

// UploadResponse is the response body for POST /upload.
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadSuccessResponse is the success response envelope for POST /upload (201).
type UploadSuccessResponse struct {
	Data  UploadResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteUploadRequest is the request body for DELETE /upload.
type DeleteUploadRequest struct {
	URL string `json:"url"`
}

// Validate implements Validator.
func (d DeleteUploadRequest) Validate() []string {
	if strings.TrimSpace(d.URL) == "" {
		return []string{"url is required"}
	}
	return nil
}

type UploadController struct {
	Logger  *slog.Logger
	Service domain.MediaService
}

func NewUploadController(logger *slog.Logger, svc domain.MediaService) *UploadController {
	return &UploadController{
		Logger:  logger,
		Service: svc,
	}
}

// Upload godoc
// @Summary Upload a media file
// @Description Stores an image under a folder and returns its public URL. JPEG, PNG, GIF and WebP are accepted everywhere, SVG only in the sponsors folder. Files are limited to 5 MB.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Param folder formData string true "Target folder" Enums(speakers, sponsors, organizers, volunteers, gallery, venue, avatars, general)
// @Success 201 {object} controllers.UploadSuccessResponse "data contains the public url"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 413 {object} helpers.APIResponse "error.code: payload_too_large"
// @Failure 415 {object} helpers.APIResponse "error.code: unsupported_media_type"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /upload [post]
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(domain.MaxUploadSize + multipartOverhead); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			helpers.WriteJSONError(w, http.StatusRequestEntityTooLarge, helpers.ErrCodePayloadTooLarge, "file exceeds the 5 MB limit")
			return
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file is required")
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	if strings.TrimSpace(folder) == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "folder is required")
		return
	}

	url, err := c.Service.Upload(r.Context(), domain.MediaFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, folder)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, UploadResponse{URL: url})
}

// Delete godoc
// @Summary Delete a media file
// @Description Removes an object previously returned by POST /upload. URLs outside the media store are rejected.
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body DeleteUploadRequest true "Public URL of the object"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /upload [delete]
func (c *UploadController) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteUploadRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Delete(r.Context(), strings.TrimSpace(req.URL)); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
