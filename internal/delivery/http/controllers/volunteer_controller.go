package controllers

import (
	"log/slog"
	"net/http"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// VolunteerSuccessResponse is the success response envelope for endpoints returning one volunteer.
type VolunteerSuccessResponse struct {
	Data  *domain.Volunteer `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListVolunteersSuccessResponse is the success response envelope for GET /volunteers (200).
type ListVolunteersSuccessResponse struct {
	Data  []*domain.Volunteer `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type VolunteerController struct {
	Logger  *slog.Logger
	Service domain.VolunteerService
}

func NewVolunteerController(logger *slog.Logger, svc domain.VolunteerService) *VolunteerController {
	return &VolunteerController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List volunteers of a year
// @Description Volunteers of a year, newest first.
// @Tags volunteers
// @Produce json
// @Param yearId query string true "Year ID (UUID)"
// @Success 200 {object} controllers.ListVolunteersSuccessResponse "data contains the volunteers"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers [get]
func (c *VolunteerController) List(w http.ResponseWriter, r *http.Request) {
	yearID, ok := helpers.RequireQueryID(w, r, "yearId")
	if !ok {
		return
	}
	volunteers, err := c.Service.List(r.Context(), yearID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if volunteers == nil {
		volunteers = []*domain.Volunteer{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, volunteers)
}

// Get godoc
// @Summary Get a volunteer
// @Tags volunteers
// @Produce json
// @Param id path string true "Volunteer ID (UUID)"
// @Success 200 {object} controllers.VolunteerSuccessResponse "data contains the volunteer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/{id} [get]
func (c *VolunteerController) Get(w http.ResponseWriter, r *http.Request) {
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
// @Summary Create a volunteer
// @Description Creates a volunteer. yearId and name are required.
// @Tags volunteers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.VolunteerPatch true "Volunteer data"
// @Success 201 {object} controllers.VolunteerSuccessResponse "data contains the created volunteer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers [post]
func (c *VolunteerController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.VolunteerPatch
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
// @Summary Update a volunteer
// @Description Partial update: absent fields are kept, null clears an optional field.
// @Tags volunteers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Volunteer ID (UUID)"
// @Param body body domain.VolunteerPatch true "Fields to update"
// @Success 200 {object} controllers.VolunteerSuccessResponse "data contains the updated volunteer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/{id} [put]
func (c *VolunteerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req domain.VolunteerPatch
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
// @Summary Delete a volunteer
// @Description Removes the volunteer and, best-effort, its photo from the media store.
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Volunteer ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/{id} [delete]
func (c *VolunteerController) Delete(w http.ResponseWriter, r *http.Request) {
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
