package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// SponsorSuccessResponse is the success response envelope for endpoints returning one sponsor.
type SponsorSuccessResponse struct {
	Data  *domain.Sponsor   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSponsorsSuccessResponse is the success response envelope for GET /sponsors (200).
type ListSponsorsSuccessResponse struct {
	Data  []*domain.Sponsor `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SponsorController struct {
	Logger  *slog.Logger
	Service domain.SponsorService
}

func NewSponsorController(logger *slog.Logger, svc domain.SponsorService) *SponsorController {
	return &SponsorController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List sponsors of a year
// @Description Sponsors of a year ordered by tier (PLATINUM first), then newest first.
// @Tags sponsors
// @Produce json
// @Param yearId query string true "Year ID (UUID)"
// @Param type query string false "Tier filter" Enums(PLATINUM, GOLD, SILVER, BRONZE, PARTNER, COMMUNITY)
// @Success 200 {object} controllers.ListSponsorsSuccessResponse "data contains the sponsors"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sponsors [get]
func (c *SponsorController) List(w http.ResponseWriter, r *http.Request) {
	yearID, ok := helpers.RequireQueryID(w, r, "yearId")
	if !ok {
		return
	}
	tier := domain.SponsorType(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("type"))))
	sponsors, err := c.Service.List(r.Context(), domain.SponsorFilter{YearID: yearID, Type: tier})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if sponsors == nil {
		sponsors = []*domain.Sponsor{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sponsors)
}

// Get godoc
// @Summary Get a sponsor
// @Tags sponsors
// @Produce json
// @Param id path string true "Sponsor ID (UUID)"
// @Success 200 {object} controllers.SponsorSuccessResponse "data contains the sponsor"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sponsors/{id} [get]
func (c *SponsorController) Get(w http.ResponseWriter, r *http.Request) {
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
// @Summary Create a sponsor
// @Description Creates a sponsor. yearId, name and type are required.
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.SponsorPatch true "Sponsor data"
// @Success 201 {object} controllers.SponsorSuccessResponse "data contains the created sponsor"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sponsors [post]
func (c *SponsorController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.SponsorPatch
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
// @Summary Update a sponsor
// @Description Partial update: absent fields are kept, null clears an optional field.
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sponsor ID (UUID)"
// @Param body body domain.SponsorPatch true "Fields to update"
// @Success 200 {object} controllers.SponsorSuccessResponse "data contains the updated sponsor"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sponsors/{id} [put]
func (c *SponsorController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req domain.SponsorPatch
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
// @Summary Delete a sponsor
// @Description Removes the sponsor and, best-effort, its logo from the media store.
// @Tags sponsors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sponsor ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sponsors/{id} [delete]
func (c *SponsorController) Delete(w http.ResponseWriter, r *http.Request) {
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
