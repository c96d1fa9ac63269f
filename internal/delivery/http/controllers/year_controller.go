package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// CreateYearRequest is the request body for POST /years.
type CreateYearRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateYearRequest) Validate() []string {
	if strings.TrimSpace(c.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// YearSuccessResponse is the success response envelope for endpoints returning one year.
type YearSuccessResponse struct {
	Data  *domain.Year      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListYearsSuccessResponse is the success response envelope for GET /years (200).
type ListYearsSuccessResponse struct {
	Data  []*domain.Year    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type YearController struct {
	Logger  *slog.Logger
	Service domain.YearService
}

func NewYearController(logger *slog.Logger, svc domain.YearService) *YearController {
	return &YearController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List years
// @Description All conference editions, newest name first.
// @Tags years
// @Produce json
// @Success 200 {object} controllers.ListYearsSuccessResponse "data contains the years"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /years [get]
func (c *YearController) List(w http.ResponseWriter, r *http.Request) {
	years, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if years == nil {
		years = []*domain.Year{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, years)
}

// Get godoc
// @Summary Get a year
// @Tags years
// @Produce json
// @Param id path string true "Year ID (UUID)"
// @Success 200 {object} controllers.YearSuccessResponse "data contains the year"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /years/{id} [get]
func (c *YearController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	year, err := c.Service.Get(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, year)
}

// Create godoc
// @Summary Create a year
// @Description Opens a new conference edition. Names are unique. Admin only.
// @Tags years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateYearRequest true "Year name, e.g. 2025"
// @Success 201 {object} controllers.YearSuccessResponse "data contains the created year"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /years [post]
func (c *YearController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateYearRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	year, err := c.Service.Create(r.Context(), req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, year)
}
