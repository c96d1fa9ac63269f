package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"communityday/internal/delivery/http/helpers"
	"communityday/internal/domain"

	"github.com/stretchr/testify/require"
)

const (
	testYearID    = "2f1d8c4e-7a3b-4e5f-9c1a-0b2d3e4f5a6b"
	testSpeakerID = "8c9f3a52-6b0e-4d8e-9a51-3c2f7e1d4b60"
	testUserID    = "d7e8f9a0-1b2c-4d3e-8f4a-5b6c7d8e9f01"
	testAdminID   = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// decodeEnvelope decodes the response body into an envelope whose data is unmarshalled into data (when non-nil).
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) *helpers.APIError {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.Error
}

type fakeAuthService struct {
	session   *domain.Session
	loginErr  error
	me        *domain.User
	meErr     error
	lastEmail string
}

func (f *fakeAuthService) Login(_ context.Context, email, _ string) (*domain.Session, error) {
	f.lastEmail = email
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuthService) Me(_ context.Context, _ string) (*domain.User, error) {
	return f.me, f.meErr
}

type fakeUserService struct {
	users       []*domain.User
	total       int
	listParams  domain.PaginationParams
	user        *domain.User
	err         error
	lastCreate  domain.CreateUserInput
	lastPatch   domain.UserPatch
	deleteActor string
	deleteID    string
}

func (f *fakeUserService) List(_ context.Context, params domain.PaginationParams) ([]*domain.User, int, error) {
	f.listParams = params
	return f.users, f.total, f.err
}

func (f *fakeUserService) Get(_ context.Context, _ string) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) Create(_ context.Context, in domain.CreateUserInput) (*domain.User, error) {
	f.lastCreate = in
	return f.user, f.err
}

func (f *fakeUserService) Update(_ context.Context, _ string, in domain.UserPatch) (*domain.User, error) {
	f.lastPatch = in
	return f.user, f.err
}

func (f *fakeUserService) Delete(_ context.Context, actorID, id string) error {
	f.deleteActor, f.deleteID = actorID, id
	return f.err
}

type fakeYearService struct {
	years    []*domain.Year
	year     *domain.Year
	err      error
	lastName string
}

func (f *fakeYearService) List(context.Context) ([]*domain.Year, error) { return f.years, f.err }

func (f *fakeYearService) Get(context.Context, string) (*domain.Year, error) { return f.year, f.err }

func (f *fakeYearService) Create(_ context.Context, name string) (*domain.Year, error) {
	f.lastName = name
	return f.year, f.err
}

type fakeSpeakerService struct {
	speakers   []*domain.Speaker
	speaker    *domain.Speaker
	err        error
	lastFilter domain.SpeakerFilter
	lastPatch  domain.SpeakerPatch
	lastID     string
	calls      int
}

func (f *fakeSpeakerService) List(_ context.Context, filter domain.SpeakerFilter) ([]*domain.Speaker, error) {
	f.calls++
	f.lastFilter = filter
	return f.speakers, f.err
}

func (f *fakeSpeakerService) Get(_ context.Context, id string) (*domain.Speaker, error) {
	f.calls++
	f.lastID = id
	return f.speaker, f.err
}

func (f *fakeSpeakerService) Create(_ context.Context, in domain.SpeakerPatch) (*domain.Speaker, error) {
	f.calls++
	f.lastPatch = in
	return f.speaker, f.err
}

func (f *fakeSpeakerService) Update(_ context.Context, id string, in domain.SpeakerPatch) (*domain.Speaker, error) {
	f.calls++
	f.lastID = id
	f.lastPatch = in
	return f.speaker, f.err
}

func (f *fakeSpeakerService) Delete(_ context.Context, id string) error {
	f.calls++
	f.lastID = id
	return f.err
}

type fakeAgendaService struct {
	items      []*domain.AgendaItem
	err        error
	lastFilter domain.AgendaFilter
}

func (f *fakeAgendaService) List(_ context.Context, filter domain.AgendaFilter) ([]*domain.AgendaItem, error) {
	f.lastFilter = filter
	return f.items, f.err
}

func (f *fakeAgendaService) Get(context.Context, string) (*domain.AgendaItem, error) {
	return nil, f.err
}

func (f *fakeAgendaService) Create(context.Context, domain.AgendaItemPatch) (*domain.AgendaItem, error) {
	return nil, f.err
}

func (f *fakeAgendaService) Update(context.Context, string, domain.AgendaItemPatch) (*domain.AgendaItem, error) {
	return nil, f.err
}

func (f *fakeAgendaService) Delete(context.Context, string) error { return f.err }

type fakeSponsorService struct {
	sponsors   []*domain.Sponsor
	err        error
	lastFilter domain.SponsorFilter
}

func (f *fakeSponsorService) List(_ context.Context, filter domain.SponsorFilter) ([]*domain.Sponsor, error) {
	f.lastFilter = filter
	return f.sponsors, f.err
}

func (f *fakeSponsorService) Get(context.Context, string) (*domain.Sponsor, error) { return nil, f.err }

func (f *fakeSponsorService) Create(context.Context, domain.SponsorPatch) (*domain.Sponsor, error) {
	return nil, f.err
}

func (f *fakeSponsorService) Update(context.Context, string, domain.SponsorPatch) (*domain.Sponsor, error) {
	return nil, f.err
}

func (f *fakeSponsorService) Delete(context.Context, string) error { return f.err }

type fakeGalleryService struct {
	images     []*domain.GalleryImage
	err        error
	lastFilter domain.GalleryFilter
}

func (f *fakeGalleryService) List(_ context.Context, filter domain.GalleryFilter) ([]*domain.GalleryImage, error) {
	f.lastFilter = filter
	return f.images, f.err
}

func (f *fakeGalleryService) Get(context.Context, string) (*domain.GalleryImage, error) {
	return nil, f.err
}

func (f *fakeGalleryService) Create(context.Context, domain.GalleryImagePatch) (*domain.GalleryImage, error) {
	return nil, f.err
}

func (f *fakeGalleryService) Update(context.Context, string, domain.GalleryImagePatch) (*domain.GalleryImage, error) {
	return nil, f.err
}

func (f *fakeGalleryService) Delete(context.Context, string) error { return f.err }

type fakeVenueService struct {
	venue     *domain.Venue
	err       error
	lastPatch domain.VenuePatch
	lastYear  string
}

func (f *fakeVenueService) GetByYear(_ context.Context, yearID string) (*domain.Venue, error) {
	f.lastYear = yearID
	return f.venue, f.err
}

func (f *fakeVenueService) Upsert(_ context.Context, in domain.VenuePatch) (*domain.Venue, error) {
	f.lastPatch = in
	return f.venue, f.err
}

func (f *fakeVenueService) Delete(context.Context, string) error { return f.err }

type fakeMediaService struct {
	url        string
	err        error
	lastFile   domain.MediaFile
	lastBody   []byte
	lastFolder string
	deleted    string
}

func (f *fakeMediaService) Upload(_ context.Context, file domain.MediaFile, folder string) (string, error) {
	f.lastFile = file
	f.lastFolder = folder
	if file.Body != nil {
		f.lastBody, _ = io.ReadAll(file.Body)
	}
	return f.url, f.err
}

func (f *fakeMediaService) Delete(_ context.Context, url string) error {
	f.deleted = url
	return f.err
}

type fakeDashboardService struct {
	dashboard *domain.Dashboard
	err       error
	lastYear  string
}

func (f *fakeDashboardService) Get(_ context.Context, yearID string) (*domain.Dashboard, error) {
	f.lastYear = yearID
	return f.dashboard, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }
