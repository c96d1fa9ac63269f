package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// GeneralSettingSuccessResponse is the success response envelope for settings endpoints. Data is null when the year has none.
type GeneralSettingSuccessResponse struct {
	Data  *domain.GeneralSetting `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type SettingsController struct {
	Logger  *slog.Logger
	Service domain.SettingsService
}

func NewSettingsController(logger *slog.Logger, svc domain.SettingsService) *SettingsController {
	return &SettingsController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get the settings of a year
// @Tags settings
// @Produce json
// @Param yearId query string true "Year ID (UUID)"
// @Success 200 {object} controllers.GeneralSettingSuccessResponse "data contains the settings or null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /settings [get]
func (c *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
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
// @Summary Save the settings of a year
// @Description Creates or updates the year's general settings (RSVP, dates, links, taglines), keyed by yearId.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.GeneralSettingPatch true "Settings fields; yearId is required"
// @Success 200 {object} controllers.GeneralSettingSuccessResponse "data contains the saved settings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /settings [put]
func (c *SettingsController) Upsert(w http.ResponseWriter, r *http.Request) {
	var req domain.GeneralSettingPatch
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
// @Summary Delete the settings record
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Settings ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /settings/{id} [delete]
func (c *SettingsController) Delete(w http.ResponseWriter, r *http.Request) {
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
