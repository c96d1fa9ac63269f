package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"communityday/internal/domain"
)

type dashboardFakes struct {
	speakers   *fakeSpeakerRepo
	agenda     *fakeAgendaRepo
	gallery    *fakeGalleryRepo
	sponsors   *fakeSponsorRepo
	organizers *fakeOrganizerRepo
	volunteers *fakeVolunteerRepo
	venue      *fakeVenueRepo
	contact    *fakeContactRepo
	settings   *fakeSettingsRepo
}

func newDashboardFakes() *dashboardFakes {
	return &dashboardFakes{
		speakers:   newFakeSpeakerRepo(),
		agenda:     newFakeAgendaRepo(),
		gallery:    newFakeGalleryRepo(),
		sponsors:   newFakeSponsorRepo(),
		organizers: &fakeOrganizerRepo{},
		volunteers: &fakeVolunteerRepo{},
		venue:      &fakeVenueRepo{},
		contact:    &fakeContactRepo{},
		settings:   &fakeSettingsRepo{},
	}
}

func (f *dashboardFakes) service() domain.DashboardService {
	return NewDashboardService(DashboardSources{
		Speakers:   f.speakers,
		Agenda:     f.agenda,
		Gallery:    f.gallery,
		Sponsors:   f.sponsors,
		Organizers: f.organizers,
		Volunteers: f.volunteers,
		Venue:      f.venue,
		Contact:    f.contact,
		Settings:   f.settings,
	}, discardLogger(), testTimeout)
}

func TestDashboardService_EmptyYear(t *testing.T) {
	defer goleak.VerifyNone(t)

	d, err := newDashboardFakes().service().Get(context.Background(), otherYearID)
	require.NoError(t, err)
	assert.Equal(t, otherYearID, d.YearID)
	assert.Equal(t, domain.DashboardStats{}, d.Stats)
	assert.NotNil(t, d.RecentActivity)
	assert.Empty(t, d.RecentActivity)
	assert.Equal(t, domain.CompletionStatus{}, d.CompletionStatus)
}

func TestDashboardService_RequiresYear(t *testing.T) {
	for _, yearID := range []string{"", "2025"} {
		f := newDashboardFakes()
		f.speakers.countErr = errors.New("must not be queried")
		_, err := f.service().Get(context.Background(), yearID)
		require.ErrorIs(t, err, domain.ErrInvalidInput, "yearID %q", yearID)
	}
}

func TestDashboardService_FailingQueriesDegrade(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newDashboardFakes()
	f.speakers.count = 4
	f.agenda.countErr = errors.New("agenda table locked")
	f.gallery.count = 12
	f.sponsors.count = 3
	f.organizers.count = 5
	f.volunteers.count = 9
	f.venue.countErr = errors.New("timeout")
	f.contact.count = 1
	f.settings.count = 1
	f.sponsors.recentErr = errors.New("boom")
	f.speakers.recent = []*domain.Speaker{{ID: "sp-1", Name: "Ada", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}}

	d, err := f.service().Get(context.Background(), testYearID)
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{
		Speakers: 4, Agenda: 0, Gallery: 12, Sponsors: 3, Organizers: 5, Volunteers: 9, Venue: 0, Contact: 1, Settings: 1,
	}, d.Stats)
	assert.Equal(t, domain.CompletionStatus{
		Venue: false, Contact: true, Settings: true, Speakers: true, Sponsors: true, Agenda: false,
	}, d.CompletionStatus)
	require.Len(t, d.RecentActivity, 1)
	assert.Equal(t, domain.ActivitySpeaker, d.RecentActivity[0].Type)
}

func TestDashboardService_RecentActivity(t *testing.T) {
	defer goleak.VerifyNone(t)

	at := func(day int) time.Time { return time.Date(2025, 3, day, 12, 0, 0, 0, time.UTC) }
	f := newDashboardFakes()
	f.speakers.recent = []*domain.Speaker{
		{ID: "sp-1", Name: "Ada", CreatedAt: at(10)},
		{ID: "sp-2", Name: "Grace", CreatedAt: at(5)},
		{ID: "sp-3", Name: "Linus", CreatedAt: at(1)},
	}
	f.agenda.recent = []*domain.AgendaItem{
		{ID: "ag-1", TitleEn: "", TitleFr: "Ouverture", CreatedAt: at(9)},
		{ID: "ag-2", TitleEn: "Keynote", CreatedAt: at(5)},
	}
	f.gallery.recent = []*domain.GalleryImage{
		{ID: "ga-1", Caption: nil, CreatedAt: at(20)},
		{ID: "ga-2", Caption: strPtr("Crowd"), CreatedAt: at(8)},
	}
	f.sponsors.recent = []*domain.Sponsor{
		{ID: "so-1", Name: "AWS", CreatedAt: at(5)},
		{ID: "so-2", Name: "", CreatedAt: at(30)},
	}

	d, err := f.service().Get(context.Background(), testYearID)
	require.NoError(t, err)

	ids := make([]string, 0, len(d.RecentActivity))
	for _, item := range d.RecentActivity {
		ids = append(ids, item.ID)
	}
	// Untitled rows (ga-1, so-2) are dropped; equal timestamps keep speakers, agenda, gallery, sponsors order.
	assert.Equal(t, []string{"sp-1", "ag-1", "ga-2", "sp-2", "ag-2", "so-1"}, ids)
	assert.Equal(t, "Ouverture", d.RecentActivity[1].Title)
	assert.Equal(t, domain.ActivityAgenda, d.RecentActivity[1].Type)
	for i := 1; i < len(d.RecentActivity); i++ {
		assert.False(t, d.RecentActivity[i].CreatedAt.After(d.RecentActivity[i-1].CreatedAt))
	}
}

func TestMergeActivity_Truncates(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	group := make([]domain.ActivityItem, 0, 9)
	for i := range 9 {
		group = append(group, domain.ActivityItem{ID: string(rune('a' + i)), Title: "t", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	got := mergeActivity(group)
	require.Len(t, got, maxRecentActivity)
	assert.Equal(t, "i", got[0].ID)
	assert.Equal(t, "d", got[5].ID)
}
