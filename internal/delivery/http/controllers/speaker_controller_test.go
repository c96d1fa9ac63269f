package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeakerController_List(t *testing.T) {
	keynote := &domain.Speaker{ID: testSpeakerID, YearID: testYearID, Name: "Ada", KeyNote: true}

	tests := []struct {
		name        string
		query       string
		svc         *fakeSpeakerService
		wantStatus  int
		wantKeyNote *bool
		wantCalls   int
	}{
		{"missing yearId", "", &fakeSpeakerService{}, http.StatusBadRequest, nil, 0},
		{"year name instead of id", "?yearId=2025", &fakeSpeakerService{}, http.StatusBadRequest, nil, 0},
		{"all speakers", "?yearId=" + testYearID, &fakeSpeakerService{speakers: []*domain.Speaker{keynote}}, http.StatusOK, nil, 1},
		{"keynote filter", "?yearId=" + testYearID + "&keyNote=true", &fakeSpeakerService{}, http.StatusOK, ptr(true), 1},
		{"bad keynote filter", "?yearId=" + testYearID + "&keyNote=yes", &fakeSpeakerService{}, http.StatusBadRequest, nil, 0},
		{"store failure", "?yearId=" + testYearID, &fakeSpeakerService{err: errors.New("db down")}, http.StatusInternalServerError, nil, 1},
		{"store rejects identifier", "?yearId=" + testYearID, &fakeSpeakerService{err: domain.ErrInvalidInput}, http.StatusBadRequest, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewSpeakerController(testLogger(), tt.svc)
			rr := httptest.NewRecorder()

			ctrl.List(rr, httptest.NewRequest(http.MethodGet, "/speakers"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalls, tt.svc.calls)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, testYearID, tt.svc.lastFilter.YearID)
				assert.Equal(t, tt.wantKeyNote, tt.svc.lastFilter.KeyNote)
				var got []*domain.Speaker
				require.Nil(t, decodeEnvelope(t, rr, &got))
				assert.NotNil(t, got, "empty list encodes as []")
			}
		})
	}
}

func TestSpeakerController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeSpeakerService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       `{"yearId":"` + testYearID + `","name":"Ada","photoUrl":"https://cdn.example.cm/speakers/a.jpg","keyNote":true}`,
			svc:        &fakeSpeakerService{speaker: &domain.Speaker{ID: testSpeakerID, Name: "Ada"}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "validation error from service",
			body:       `{"yearId":"` + testYearID + `"}`,
			svc:        &fakeSpeakerService{err: fmt.Errorf("%w: name is required", domain.ErrInvalidInput)},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown year",
			body:       `{"yearId":"` + testYearID + `","name":"Ada"}`,
			svc:        &fakeSpeakerService{err: fmt.Errorf("create speaker: %w", domain.ErrInvalidReference)},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"yearId":"` + testYearID + `","name":"Ada","twitter":"@ada"}`,
			svc:        &fakeSpeakerService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "wrong type",
			body:       `{"yearId":"` + testYearID + `","name":"Ada","keyNote":"yes"}`,
			svc:        &fakeSpeakerService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewSpeakerController(testLogger(), tt.svc)
			rr := httptest.NewRecorder()

			ctrl.Create(rr, httptest.NewRequest(http.MethodPost, "/speakers", bytes.NewBufferString(tt.body)))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				apiErr := decodeEnvelope(t, rr, nil)
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			assert.Equal(t, domain.Of(testYearID), tt.svc.lastPatch.YearID)
			assert.Equal(t, domain.Of(true), tt.svc.lastPatch.KeyNote)
			assert.False(t, tt.svc.lastPatch.Bio.Set)
		})
	}
}

func TestSpeakerController_Update(t *testing.T) {
	svc := &fakeSpeakerService{speaker: &domain.Speaker{ID: testSpeakerID}}
	ctrl := NewSpeakerController(testLogger(), svc)
	req := httptest.NewRequest(http.MethodPut, "/speakers/"+testSpeakerID, bytes.NewBufferString(`{"photoUrl":null,"title":"CTO"}`))
	req.SetPathValue("id", testSpeakerID)
	rr := httptest.NewRecorder()

	ctrl.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testSpeakerID, svc.lastID)
	assert.Equal(t, domain.Null[string](), svc.lastPatch.PhotoURL)
	assert.Equal(t, domain.Of("CTO"), svc.lastPatch.Title)
	assert.False(t, svc.lastPatch.Name.Set)
}

func TestSpeakerController_GetAndDelete(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		id         string
		svcErr     error
		wantStatus int
		wantCalls  int
	}{
		{"get found", http.MethodGet, testSpeakerID, nil, http.StatusOK, 1},
		{"get missing", http.MethodGet, testSpeakerID, fmt.Errorf("get speaker: %w", domain.ErrNotFound), http.StatusNotFound, 1},
		{"get malformed id", http.MethodGet, "abc", nil, http.StatusBadRequest, 0},
		{"delete ok", http.MethodDelete, testSpeakerID, nil, http.StatusOK, 1},
		{"delete missing", http.MethodDelete, testSpeakerID, fmt.Errorf("delete speaker: %w", domain.ErrNotFound), http.StatusNotFound, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSpeakerService{speaker: &domain.Speaker{ID: testSpeakerID}, err: tt.svcErr}
			ctrl := NewSpeakerController(testLogger(), svc)
			req := httptest.NewRequest(tt.method, "/speakers/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()

			if tt.method == http.MethodGet {
				ctrl.Get(rr, req)
			} else {
				ctrl.Delete(rr, req)
			}

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}

func ptr[T any](v T) *T { return &v }
