package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// VenueSuccessResponse is the success response envelope for venue endpoints. Data is null when the year has none.
type VenueSuccessResponse struct {
	Data  *domain.Venue     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type VenueController struct {
	Logger  *slog.Logger
	Service domain.VenueService
}

func NewVenueController(logger *slog.Logger, svc domain.VenueService) *VenueController {
	return &VenueController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get the venue of a year
// @Tags venue
// @Produce json
// @Param yearId query string true "Year ID (UUID)"
// @Success 200 {object} controllers.VenueSuccessResponse "data contains the venue or null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venue [get]
func (c *VenueController) Get(w http.ResponseWriter, r *http.Request) {
	yearID, ok := helpers.RequireQueryID(w, r, "yearId")
	if !ok {
		return
	}
	item, err := c.Service.GetByYear(r.Context(), yearID)
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONSuccess(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// Upsert godoc
// @Summary Save the venue of a year
// @Description Creates or replaces fields of the year's venue, keyed by yearId. images replaces the whole list; removed images are deleted from the media store best-effort.
// @Tags venue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.VenuePatch true "Venue fields; yearId is required"
// @Success 200 {object} controllers.VenueSuccessResponse "data contains the saved venue"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venue [put]
func (c *VenueController) Upsert(w http.ResponseWriter, r *http.Request) {
	var req domain.VenuePatch
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.Upsert(r.Context(), req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete the venue record
// @Tags venue
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venue/{id} [delete]
func (c *VenueController) Delete(w http.ResponseWriter, r *http.Request) {
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
