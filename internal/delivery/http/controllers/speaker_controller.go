package controllers

import (
	"log/slog"
	"net/http"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// SpeakerSuccessResponse is the success response envelope for endpoints returning one speaker.
type SpeakerSuccessResponse struct {
	Data  *domain.Speaker   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSpeakersSuccessResponse is the success response envelope for GET /speakers (200).
type ListSpeakersSuccessResponse struct {
	Data  []*domain.Speaker `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List speakers of a year
// @Description Speakers of a year, keynote speakers first, then newest first.
// @Tags speakers
// @Produce json
// @Param yearId query string true "Year ID (UUID)"
// @Param keyNote query bool false "Only keynote (true) or regular (false) speakers"
// @Success 200 {object} controllers.ListSpeakersSuccessResponse "data contains the speakers"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) List(w http.ResponseWriter, r *http.Request) {
	yearID, ok := helpers.RequireQueryID(w, r, "yearId")
	if !ok {
		return
	}
	keyNote, ok := helpers.OptionalBool(w, r, "keyNote")
	if !ok {
		return
	}
	speakers, err := c.Service.List(r.Context(), domain.SpeakerFilter{YearID: yearID, KeyNote: keyNote})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakers)
}

// Get godoc
// @Summary Get a speaker
// @Tags speakers
// @Produce json
// @Param id path string true "Speaker ID (UUID)"
// @Success 200 {object} controllers.SpeakerSuccessResponse "data contains the speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{id} [get]
func (c *SpeakerController) Get(w http.ResponseWriter, r *http.Request) {
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
// @Summary Create a speaker
// @Description Creates a speaker. yearId and name are required; photoUrl normally comes from POST /upload.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.SpeakerPatch true "Speaker data"
// @Success 201 {object} controllers.SpeakerSuccessResponse "data contains the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.SpeakerPatch
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
// @Summary Update a speaker
// @Description Partial update: absent fields are kept, null clears an optional field.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Speaker ID (UUID)"
// @Param body body domain.SpeakerPatch true "Fields to update"
// @Success 200 {object} controllers.SpeakerSuccessResponse "data contains the updated speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{id} [put]
func (c *SpeakerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req domain.SpeakerPatch
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
// @Summary Delete a speaker
// @Description Removes the speaker and, best-effort, its photo from the media store.
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Speaker ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{id} [delete]
func (c *SpeakerController) Delete(w http.ResponseWriter, r *http.Request) {
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
