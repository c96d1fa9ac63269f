package domain

import (
	"context"
	"time"
)

// Year is one edition of the conference. Every content record belongs to exactly one Year.
// swagger:model Year
type Year struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// YearRepository defines the interface for year storage.
type YearRepository interface {
	List(ctx context.Context) ([]*Year, error)
	GetByID(ctx context.Context, id string) (*Year, error)
	// Latest returns the most recently created year, or ErrNotFound when there is none.
	Latest(ctx context.Context) (*Year, error)
	Create(ctx context.Context, year *Year) error
}

// YearService defines the business logic for years.
type YearService interface {
	List(ctx context.Context) ([]*Year, error)
	Get(ctx context.Context, id string) (*Year, error)
	Create(ctx context.Context, name string) (*Year, error)
}

// YearCounter counts the records of one entity that belong to a year.
type YearCounter interface {
	CountByYear(ctx context.Context, yearID string) (int, error)
}
