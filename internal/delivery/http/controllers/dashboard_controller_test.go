package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityday/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardController_Get(t *testing.T) {
	dash := &domain.Dashboard{
		YearID:         testYearID,
		Stats:          domain.DashboardStats{Speakers: 3, Venue: 1},
		RecentActivity: []domain.ActivityItem{{ID: testSpeakerID, Type: domain.ActivitySpeaker, Title: "Ada"}},
		CompletionStatus: domain.CompletionStatus{
			Venue:    true,
			Speakers: true,
		},
	}

	t.Run("returns summary", func(t *testing.T) {
		svc := &fakeDashboardService{dashboard: dash}
		ctrl := NewDashboardController(testLogger(), svc)
		rr := httptest.NewRecorder()

		ctrl.Get(rr, httptest.NewRequest(http.MethodGet, "/dashboard?yearId="+testYearID, nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, testYearID, svc.lastYear)
		var got domain.Dashboard
		require.Nil(t, decodeEnvelope(t, rr, &got))
		assert.Equal(t, 3, got.Stats.Speakers)
		assert.True(t, got.CompletionStatus.Venue)
		assert.False(t, got.CompletionStatus.Agenda)
		require.Len(t, got.RecentActivity, 1)
		assert.Equal(t, "Ada", got.RecentActivity[0].Title)
	})

	t.Run("yearId required", func(t *testing.T) {
		svc := &fakeDashboardService{dashboard: dash}
		ctrl := NewDashboardController(testLogger(), svc)
		rr := httptest.NewRecorder()

		ctrl.Get(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, svc.lastYear)
	})

	t.Run("year name instead of id", func(t *testing.T) {
		svc := &fakeDashboardService{dashboard: dash}
		ctrl := NewDashboardController(testLogger(), svc)
		rr := httptest.NewRecorder()

		ctrl.Get(rr, httptest.NewRequest(http.MethodGet, "/dashboard?yearId=2025", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "yearId must be a valid UUID")
		assert.Empty(t, svc.lastYear)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		ctrl := NewDashboardController(testLogger(), &fakeDashboardService{err: errors.New("boom")})
		rr := httptest.NewRecorder()

		ctrl.Get(rr, httptest.NewRequest(http.MethodGet, "/dashboard?yearId="+testYearID, nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "boom")
	})
}

func TestHealthController(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthController(testLogger(), fakePinger{}).Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"status":"ok","database":"ok"},"error":null}`, rr.Body.String())

	rr = httptest.NewRecorder()
	NewHealthController(testLogger(), fakePinger{err: errors.New("refused")}).Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
