package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// ContactInfoSuccessResponse is the success response envelope for contact info endpoints. Data is null when the year has none.
type ContactInfoSuccessResponse struct {
	Data  *domain.ContactInfo `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get the contact info of a year
// @Tags contact
// @Produce json
// @Param yearId query string true "Year ID (UUID)"
// @Success 200 {object} controllers.ContactInfoSuccessResponse "data contains the contact info or null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [get]
func (c *ContactController) Get(w http.ResponseWriter, r *http.Request) {
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
// @Summary Save the contact info of a year
// @Description Creates or updates the year's contact details, keyed by yearId.
// @Tags contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.ContactInfoPatch true "Contact info fields; yearId is required"
// @Success 200 {object} controllers.ContactInfoSuccessResponse "data contains the saved contact info"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [put]
func (c *ContactController) Upsert(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactInfoPatch
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
// @Summary Delete the contact info record
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact info ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact/{id} [delete]
func (c *ContactController) Delete(w http.ResponseWriter, r *http.Request) {
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
