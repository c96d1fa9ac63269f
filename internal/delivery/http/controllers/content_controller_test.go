package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"communityday/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgendaController_List_PublishedFilter(t *testing.T) {
	svc := &fakeAgendaService{}
	ctrl := NewAgendaController(testLogger(), svc)
	rr := httptest.NewRecorder()

	ctrl.List(rr, httptest.NewRequest(http.MethodGet, "/agenda?yearId="+testYearID+"&published=false", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.AgendaFilter{YearID: testYearID, Published: ptr(false)}, svc.lastFilter)
}

func TestSponsorController_List_TypeFilter(t *testing.T) {
	svc := &fakeSponsorService{sponsors: []*domain.Sponsor{{Name: "Acme", Type: domain.SponsorGold}}}
	ctrl := NewSponsorController(testLogger(), svc)
	rr := httptest.NewRecorder()

	ctrl.List(rr, httptest.NewRequest(http.MethodGet, "/sponsors?yearId="+testYearID+"&type=gold", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.SponsorGold, svc.lastFilter.Type)
	var got []*domain.Sponsor
	require.Nil(t, decodeEnvelope(t, rr, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].Name)
}

func TestGalleryController_List_CategoryFilter(t *testing.T) {
	svc := &fakeGalleryService{}
	ctrl := NewGalleryController(testLogger(), svc)
	rr := httptest.NewRecorder()

	ctrl.List(rr, httptest.NewRequest(http.MethodGet, "/gallery?yearId="+testYearID+"&category=keynotes", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.GalleryFilter{YearID: testYearID, Category: "keynotes"}, svc.lastFilter)
}

func TestContentControllers_RequireYearID(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"agenda":  NewAgendaController(testLogger(), &fakeAgendaService{}).List,
		"sponsor": NewSponsorController(testLogger(), &fakeSponsorService{}).List,
		"gallery": NewGalleryController(testLogger(), &fakeGalleryService{}).List,
		"venue":   NewVenueController(testLogger(), &fakeVenueService{}).Get,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), "yearId is required")
		})
	}
}
