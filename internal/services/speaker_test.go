package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityday/internal/domain"
)

func TestSpeakerService_Create(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		errIs error
	}{
		{name: "valid", body: `{"yearId":"5b0c2e7a-3d4f-4a1b-9e8c-7f6a5d4c3b21","name":" Ada ","title":"CTO","keyNote":true}`},
		{name: "missing name", body: `{"yearId":"5b0c2e7a-3d4f-4a1b-9e8c-7f6a5d4c3b21"}`, errIs: domain.ErrInvalidInput},
		{name: "null name", body: `{"yearId":"5b0c2e7a-3d4f-4a1b-9e8c-7f6a5d4c3b21","name":null}`, errIs: domain.ErrInvalidInput},
		{name: "year name instead of id", body: `{"yearId":"2025","name":"Ada"}`, errIs: domain.ErrInvalidInput},
		{name: "missing year", body: `{"name":"Ada"}`, errIs: domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in domain.SpeakerPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			repo := newFakeSpeakerRepo()
			svc := NewSpeakerService(repo, &fakeMediaService{}, discardLogger(), testTimeout)

			s, err := svc.Create(context.Background(), in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Empty(t, repo.byID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ada", s.Name)
			assert.True(t, s.KeyNote)
			require.NotNil(t, s.Title)
			assert.Nil(t, s.Bio)
			assert.False(t, s.CreatedAt.IsZero())
			assert.Contains(t, repo.byID, s.ID)
		})
	}
}

func TestSpeakerService_UpdatePartial(t *testing.T) {
	existing := &domain.Speaker{ID: "sp-1", YearID: testYearID, Name: "Ada", Title: strPtr("CTO"), Bio: strPtr("bio"),
		PhotoURL: strPtr("https://cdn.example.com/speakers/old.png")}

	tests := []struct {
		name        string
		body        string
		wantDeleted []string
		check       func(t *testing.T, s *domain.Speaker)
	}{
		{
			name: "absent fields untouched",
			body: `{"name":"Ada Lovelace"}`,
			check: func(t *testing.T, s *domain.Speaker) {
				assert.Equal(t, "Ada Lovelace", s.Name)
				assert.Equal(t, "CTO", *s.Title)
				assert.Equal(t, "bio", *s.Bio)
			},
		},
		{
			name: "null clears optional field",
			body: `{"bio":null}`,
			check: func(t *testing.T, s *domain.Speaker) {
				assert.Nil(t, s.Bio)
				assert.NotNil(t, s.Title)
			},
		},
		{
			name:        "replacing photo removes old file",
			body:        `{"photoUrl":"https://cdn.example.com/speakers/new.png"}`,
			wantDeleted: []string{"https://cdn.example.com/speakers/old.png"},
			check: func(t *testing.T, s *domain.Speaker) {
				assert.Equal(t, "https://cdn.example.com/speakers/new.png", *s.PhotoURL)
			},
		},
		{
			name:        "clearing photo removes old file",
			body:        `{"photoUrl":null}`,
			wantDeleted: []string{"https://cdn.example.com/speakers/old.png"},
			check:       func(t *testing.T, s *domain.Speaker) { assert.Nil(t, s.PhotoURL) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := *existing
			repo := newFakeSpeakerRepo(&cp)
			media := &fakeMediaService{}
			svc := NewSpeakerService(repo, media, discardLogger(), testTimeout)

			var in domain.SpeakerPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			s, err := svc.Update(context.Background(), "sp-1", in)
			require.NoError(t, err)
			tt.check(t, s)
			assert.Equal(t, tt.wantDeleted, media.deleted)
		})
	}
}

func TestSpeakerService_UpdateNullRequiredField(t *testing.T) {
	repo := newFakeSpeakerRepo(&domain.Speaker{ID: "sp-1", YearID: testYearID, Name: "Ada"})
	svc := NewSpeakerService(repo, &fakeMediaService{}, discardLogger(), testTimeout)

	_, err := svc.Update(context.Background(), "sp-1", domain.SpeakerPatch{Name: domain.Null[string]()})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Ada", repo.byID["sp-1"].Name)
}

func TestSpeakerService_Delete(t *testing.T) {
	photo := "https://cdn.example.com/speakers/ada.png"
	repo := newFakeSpeakerRepo(&domain.Speaker{ID: "sp-1", YearID: testYearID, Name: "Ada", PhotoURL: &photo})
	media := &fakeMediaService{deleteErr: errors.New("s3 unavailable")}
	svc := NewSpeakerService(repo, media, discardLogger(), testTimeout)

	require.NoError(t, svc.Delete(context.Background(), "sp-1"), "media cleanup failure must not fail the delete")
	assert.Equal(t, []string{photo}, media.deleted)
	assert.Empty(t, repo.byID)

	require.ErrorIs(t, svc.Delete(context.Background(), "sp-1"), domain.ErrNotFound)
}

func TestSpeakerService_ListRequiresYear(t *testing.T) {
	repo := newFakeSpeakerRepo(
		&domain.Speaker{ID: "a", YearID: testYearID, Name: "A"},
		&domain.Speaker{ID: "b", YearID: otherYearID, Name: "B"},
	)
	svc := NewSpeakerService(repo, nil, discardLogger(), testTimeout)

	_, err := svc.List(context.Background(), domain.SpeakerFilter{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := svc.List(context.Background(), domain.SpeakerFilter{YearID: testYearID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, testYearID, got[0].YearID)
}
