package controllers

import (
	"log/slog"
	"net/http"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"
)

// DashboardSuccessResponse is the success response envelope for GET /dashboard (200).
type DashboardSuccessResponse struct {
	Data  *domain.Dashboard `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type DashboardController struct {
	Logger  *slog.Logger
	Service domain.DashboardService
}

func NewDashboardController(logger *slog.Logger, svc domain.DashboardService) *DashboardController {
	return &DashboardController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Dashboard summary of a year
// @Description Record counts, the six most recent speakers/agenda/gallery/sponsor changes and a completion checklist. Failing sub-queries degrade to zero or empty instead of failing the call.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param yearId query string true "Year ID (UUID)"
// @Success 200 {object} controllers.DashboardSuccessResponse "data contains stats, recentActivity and completionStatus"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard [get]
func (c *DashboardController) Get(w http.ResponseWriter, r *http.Request) {
	yearID, ok := helpers.RequireQueryID(w, r, "yearId")
	if !ok {
		return
	}
	dashboard, err := c.Service.Get(r.Context(), yearID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dashboard)
}
