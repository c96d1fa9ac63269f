package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityday/internal/domain"
)

const minPasswordLen = 8

type userService struct {
	userRepo       domain.UserRepository
	hasher         domain.PasswordHasher
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewUserService creates a UserService. emailService may be nil, in which case no welcome email is sent.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher, emailService domain.EmailService,
	logger *slog.Logger, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		hasher:         hasher,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *userService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.User, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	users, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, in domain.CreateUserInput) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	role := in.Role
	if role == "" {
		role = domain.RoleEditor
	}
	user := &domain.User{
		Email:  normalizeEmail(in.Email),
		Name:   strings.TrimSpace(in.Name),
		Role:   role,
		Avatar: trimOptional(in.Avatar),
	}
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLen {
		return nil, invalidf("password must be at least %d characters", minPasswordLen)
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.emailService != nil {
		data := &domain.WelcomeMessageEmailData{Email: user.Email, Name: user.Name, Role: user.Role, Language: in.Language}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "welcome email not sent", "user_id", user.ID, "err", err)
		}
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, in domain.UserPatch) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Email.Apply(&user.Email)
	in.Name.Apply(&user.Name)
	in.Role.Apply(&user.Role)
	in.Avatar.ApplyNullable(&user.Avatar)
	user.Email = normalizeEmail(user.Email)
	user.Name = strings.TrimSpace(user.Name)
	user.Avatar = trimOptional(user.Avatar)
	if err := validateUser(user); err != nil {
		return nil, err
	}

	if in.Password.Set {
		if in.Password.Null || len(in.Password.Value) < minPasswordLen {
			return nil, invalidf("password must be at least %d characters", minPasswordLen)
		}
		hash, err := s.hasher.Hash(in.Password.Value)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, actorID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if actorID == id {
		return invalidf("you cannot delete your own account")
	}
	return s.userRepo.Delete(ctx, id)
}

func validateUser(u *domain.User) error {
	if !emailRegexp.MatchString(u.Email) {
		return invalidf("invalid email format")
	}
	if u.Name == "" {
		return invalidf("name is required")
	}
	if !u.Role.Valid() {
		return invalidf("role must be ADMIN or EDITOR")
	}
	return nil
}
