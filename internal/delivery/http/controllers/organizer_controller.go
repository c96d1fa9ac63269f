package controllers

import (
	"log/slog"
	"net/http"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// OrganizerSuccessResponse is the success response envelope for endpoints returning one organizer.
type OrganizerSuccessResponse struct {
	Data  *domain.Organizer `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListOrganizersSuccessResponse is the success response envelope for GET /organizers (200).
type ListOrganizersSuccessResponse struct {
	Data  []*domain.Organizer `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type OrganizerController struct {
	Logger  *slog.Logger
	Service domain.OrganizerService
}

func NewOrganizerController(logger *slog.Logger, svc domain.OrganizerService) *OrganizerController {
	return &OrganizerController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List organizers of a year
// @Description Organizing team of a year ordered by role, then newest first.
// @Tags organizers
// @Produce json
// @Param yearId query string true "Year ID (UUID)"
// @Success 200 {object} controllers.ListOrganizersSuccessResponse "data contains the organizers"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /organizers [get]
func (c *OrganizerController) List(w http.ResponseWriter, r *http.Request) {
	yearID, ok := helpers.RequireQueryID(w, r, "yearId")
	if !ok {
		return
	}
	organizers, err := c.Service.List(r.Context(), yearID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if organizers == nil {
		organizers = []*domain.Organizer{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, organizers)
}

// Get godoc
// @Summary Get a organizer
// @Tags organizers
// @Produce json
// @Param id path string true "Organizer ID (UUID)"
// @Success 200 {object} controllers.OrganizerSuccessResponse "data contains the organizer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /organizers/{id} [get]
func (c *OrganizerController) Get(w http.ResponseWriter, r *http.Request) {
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
// @Summary Create a organizer
// @Description Creates an organizer. yearId and name are required.
// @Tags organizers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.OrganizerPatch true "Organizer data"
// @Success 201 {object} controllers.OrganizerSuccessResponse "data contains the created organizer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /organizers [post]
func (c *OrganizerController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.OrganizerPatch
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
// @Summary Update a organizer
// @Description Partial update: absent fields are kept, null clears an optional field.
// @Tags organizers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organizer ID (UUID)"
// @Param body body domain.OrganizerPatch true "Fields to update"
// @Success 200 {object} controllers.OrganizerSuccessResponse "data contains the updated organizer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /organizers/{id} [put]
func (c *OrganizerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req domain.OrganizerPatch
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
// @Summary Delete a organizer
// @Description Removes the organizer and, best-effort, its photo from the media store.
// @Tags organizers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organizer ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /organizers/{id} [delete]
func (c *OrganizerController) Delete(w http.ResponseWriter, r *http.Request) {
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
