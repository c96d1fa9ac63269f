package controllers

import (
	"log/slog"
	"net/http"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// AgendaItemSuccessResponse is the success response envelope for endpoints returning one agenda item.
type AgendaItemSuccessResponse struct {
	Data  *domain.AgendaItem `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListAgendaItemsSuccessResponse is the success response envelope for GET /agenda (200).
type ListAgendaItemsSuccessResponse struct {
	Data  []*domain.AgendaItem `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type AgendaController struct {
	Logger  *slog.Logger
	Service domain.AgendaService
}

func NewAgendaController(logger *slog.Logger, svc domain.AgendaService) *AgendaController {
	return &AgendaController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List agenda items of a year
// @Description Agenda of a year ordered by start time.
// @Tags agenda
// @Produce json
// @Param yearId query string true "Year ID (UUID)"
// @Param published query bool false "Only published (true) or draft (false) items"
// @Success 200 {object} controllers.ListAgendaItemsSuccessResponse "data contains the agenda items"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /agenda [get]
func (c *AgendaController) List(w http.ResponseWriter, r *http.Request) {
	yearID, ok := helpers.RequireQueryID(w, r, "yearId")
	if !ok {
		return
	}
	published, ok := helpers.OptionalBool(w, r, "published")
	if !ok {
		return
	}
	items, err := c.Service.List(r.Context(), domain.AgendaFilter{YearID: yearID, Published: published})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if items == nil {
		items = []*domain.AgendaItem{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}

// Get godoc
// @Summary Get a agenda item
// @Tags agenda
// @Produce json
// @Param id path string true "Agenda item ID (UUID)"
// @Success 200 {object} controllers.AgendaItemSuccessResponse "data contains the agenda item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /agenda/{id} [get]
func (c *AgendaController) Get(w http.ResponseWriter, r *http.Request) {
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
// @Summary Create a agenda item
// @Description Creates an agenda item. yearId, titleEn, titleFr, startTime and endTime are required; endTime must be after startTime. type defaults to TALK.
// @Tags agenda
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.AgendaItemPatch true "Agenda item data"
// @Success 201 {object} controllers.AgendaItemSuccessResponse "data contains the created agenda item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /agenda [post]
func (c *AgendaController) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.AgendaItemPatch
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
// @Summary Update a agenda item
// @Description Partial update: absent fields are kept, null clears an optional field.
// @Tags agenda
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agenda item ID (UUID)"
// @Param body body domain.AgendaItemPatch true "Fields to update"
// @Success 200 {object} controllers.AgendaItemSuccessResponse "data contains the updated agenda item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /agenda/{id} [put]
func (c *AgendaController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req domain.AgendaItemPatch
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
// @Summary Delete a agenda item
// @Description Removes the agenda item.
// @Tags agenda
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agenda item ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /agenda/{id} [delete]
func (c *AgendaController) Delete(w http.ResponseWriter, r *http.Request) {
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
