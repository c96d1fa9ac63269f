package domain

import (
	"context"
	"time"
)

// Role is the dashboard permission level of a user.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User represents a dashboard account. Users are global, not scoped to a year.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Avatar       *string   `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(email, name, passwordHash string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Identity is the acting user resolved from a session token.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Session is the result of a successful login.
type Session struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        *User     `json:"user"`
	CurrentYear *Year     `json:"currentYear"`
}

// CreateUserInput holds the fields for creating a user. Language selects the welcome email locale.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     Role
	Avatar   *string
	Language string
}

// UserPatch holds a partial update of a user. Password, when set, is re-hashed.
type UserPatch struct {
	Email    Patch[string] `json:"email"`
	Name     Patch[string] `json:"name"`
	Role     Patch[Role]   `json:"role"`
	Avatar   Patch[string] `json:"avatar"`
	Password Patch[string] `json:"password"`
}

// PasswordHasher hashes and verifies passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (hash string, err error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed session tokens for an identity.
type TokenIssuer interface {
	Issue(identity Identity, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token signature and expiry and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	List(ctx context.Context, params PaginationParams) ([]*User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

// AuthService handles login and session resolution.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Me(ctx context.Context, userID string) (*User, error)
}

// UserService defines admin user management.
type UserService interface {
	List(ctx context.Context, params PaginationParams) (users []*User, total int, err error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, in CreateUserInput) (*User, error)
	Update(ctx context.Context, id string, in UserPatch) (*User, error)
	// Delete removes a user. actorID is the caller; deleting yourself is rejected.
	Delete(ctx context.Context, actorID, id string) error
}
