package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"communityday/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

const testTimeout = 5 * time.Second

const (
	testYearID  = "5b0c2e7a-3d4f-4a1b-9e8c-7f6a5d4c3b21"
	otherYearID = "9e4d3c2b-1a0f-4e8d-b7c6-5a4f3e2d1c0b"
)

func strPtr(s string) *string { return &s }

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	nextID    int
	getErr    error
	createErr error
	updateErr error
	deleted   []string
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[string]*domain.User)}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) { return len(f.byID), nil }

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		// Return a copy so tests can mutate without affecting stored
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeYearRepo implements domain.YearRepository for tests.
type fakeYearRepo struct {
	years     []*domain.Year
	latestErr error
	createErr error
}

func (f *fakeYearRepo) List(ctx context.Context) ([]*domain.Year, error) { return f.years, nil }

func (f *fakeYearRepo) GetByID(ctx context.Context, id string) (*domain.Year, error) {
	for _, y := range f.years {
		if y.ID == id {
			return y, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeYearRepo) Latest(ctx context.Context) (*domain.Year, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	if len(f.years) == 0 {
		return nil, domain.ErrNotFound
	}
	return f.years[len(f.years)-1], nil
}

func (f *fakeYearRepo) Create(ctx context.Context, y *domain.Year) error {
	if f.createErr != nil {
		return f.createErr
	}
	y.ID = "year-" + y.Name
	f.years = append(f.years, y)
	return nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) Hash(password string) (string, error) { return "hash-" + password, nil }

func (fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err      error
	identity domain.Identity
	expiry   time.Duration
}

func (f *fakeTokenIssuer) Issue(identity domain.Identity, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.identity, f.expiry = identity, expiry
	return "token-" + identity.UserID, nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	sent []*domain.WelcomeMessageEmailData
	err  error
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}

// fakeMediaService implements domain.MediaService for tests and records deletes.
type fakeMediaService struct {
	mu        sync.Mutex
	deleted   []string
	deleteErr error
}

func (f *fakeMediaService) Upload(ctx context.Context, file domain.MediaFile, folder string) (string, error) {
	return "https://cdn.example.com/" + folder + "/" + file.Filename, nil
}

func (f *fakeMediaService) Delete(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return f.deleteErr
}

// fakeObjectStore implements domain.ObjectStore for tests.
type fakeObjectStore struct {
	putKeys     []string
	putTypes    []string
	deletedKeys []string
	putErr      error
}

func (f *fakeObjectStore) PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.putKeys = append(f.putKeys, key)
	f.putTypes = append(f.putTypes, contentType)
	return nil
}

func (f *fakeObjectStore) DeleteObject(ctx context.Context, key string) error {
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}

// fakeSpeakerRepo implements domain.SpeakerRepository in memory.
type fakeSpeakerRepo struct {
	byID      map[string]*domain.Speaker
	createErr error
	count     int
	countErr  error
	recent    []*domain.Speaker
	recentErr error
}

func newFakeSpeakerRepo(speakers ...*domain.Speaker) *fakeSpeakerRepo {
	f := &fakeSpeakerRepo{byID: make(map[string]*domain.Speaker)}
	for _, s := range speakers {
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeSpeakerRepo) CountByYear(ctx context.Context, yearID string) (int, error) {
	return f.count, f.countErr
}

func (f *fakeSpeakerRepo) ListByYear(ctx context.Context, filter domain.SpeakerFilter) ([]*domain.Speaker, error) {
	out := make([]*domain.Speaker, 0)
	for _, s := range f.byID {
		if s.YearID == filter.YearID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSpeakerRepo) ListRecentByYear(ctx context.Context, yearID string, limit int) ([]*domain.Speaker, error) {
	return f.recent, f.recentErr
}

func (f *fakeSpeakerRepo) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	if s, ok := f.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, s *domain.Speaker) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = "speaker-" + strconv.Itoa(len(f.byID)+1)
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSpeakerRepo) Update(ctx context.Context, s *domain.Speaker) error {
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSpeakerRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}
