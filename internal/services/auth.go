package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"communityday/internal/domain"
)

type authService struct {
	userRepo       domain.UserRepository
	yearRepo       domain.YearRepository
	hasher         domain.PasswordHasher
	tokenIssuer    domain.TokenIssuer
	tokenTTL       time.Duration
	contextTimeout time.Duration

	decoyOnce sync.Once
	decoyHash string
}

// decoyPassword is hashed once so logins for unknown emails pay the same
// hashing cost as a wrong password.
const decoyPassword = "communityday-decoy-password"

// NewAuthService creates an AuthService that verifies passwords with hasher and signs sessions with tokenIssuer.
func NewAuthService(userRepo domain.UserRepository, yearRepo domain.YearRepository, hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer, tokenTTL, timeout time.Duration) domain.AuthService {
	return &authService{
		userRepo:       userRepo,
		yearRepo:       yearRepo,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		tokenTTL:       tokenTTL,
		contextTimeout: timeout,
	}
}

// Login returns domain.ErrInvalidCredentials for both an unknown email and a wrong password.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalidf("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = s.hasher.Compare(s.decoy(), password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := s.tokenIssuer.Issue(domain.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	currentYear, err := s.yearRepo.Latest(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get current year: %w", err)
		}
		currentYear = nil
	}

	return &domain.Session{
		Token:       token,
		ExpiresAt:   expiresAt,
		User:        user,
		CurrentYear: currentYear,
	}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *authService) decoy() string {
	s.decoyOnce.Do(func() {
		if h, err := s.hasher.Hash(decoyPassword); err == nil {
			s.decoyHash = h
		}
	})
	return s.decoyHash
}
