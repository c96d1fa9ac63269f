package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityday/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueController_Get(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeVenueService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "year without venue yields null data",
			svc:        &fakeVenueService{err: fmt.Errorf("get venue: %w", domain.ErrNotFound)},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":null,"error":null}`,
		},
		{
			name:       "existing venue",
			svc:        &fakeVenueService{venue: &domain.Venue{ID: "v1", YearID: testYearID, Name: "Hilton Yaounde", Images: []string{}}},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewVenueController(testLogger(), tt.svc)
			rr := httptest.NewRecorder()

			ctrl.Get(rr, httptest.NewRequest(http.MethodGet, "/venue?yearId="+testYearID, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, testYearID, tt.svc.lastYear)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestVenueController_Get_malformedYearID(t *testing.T) {
	svc := &fakeVenueService{}
	rr := httptest.NewRecorder()

	NewVenueController(testLogger(), svc).Get(rr, httptest.NewRequest(http.MethodGet, "/venue?yearId=2025", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.lastYear)
}

func TestVenueController_Upsert(t *testing.T) {
	svc := &fakeVenueService{venue: &domain.Venue{ID: "v1", YearID: testYearID, Name: "Hilton Yaounde"}}
	ctrl := NewVenueController(testLogger(), svc)
	body := `{"yearId":"` + testYearID + `","name":"Hilton Yaounde","images":["https://cdn.example.cm/venue/a.jpg"],"capacity":null}`
	rr := httptest.NewRecorder()

	ctrl.Upsert(rr, httptest.NewRequest(http.MethodPut, "/venue", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.Of(testYearID), svc.lastPatch.YearID)
	assert.Equal(t, []string{"https://cdn.example.cm/venue/a.jpg"}, svc.lastPatch.Images.Value)
	assert.True(t, svc.lastPatch.Capacity.Null)
	assert.False(t, svc.lastPatch.City.Set)
}

func TestVenueController_Upsert_MissingYear(t *testing.T) {
	svc := &fakeVenueService{err: fmt.Errorf("%w: yearId is required", domain.ErrInvalidInput)}
	ctrl := NewVenueController(testLogger(), svc)
	rr := httptest.NewRecorder()

	ctrl.Upsert(rr, httptest.NewRequest(http.MethodPost, "/venue", bytes.NewBufferString(`{"name":"X"}`)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "yearId is required")
}
