package domain

import (
	"context"
	"time"
)

// ContactInfo holds the public contact details of an edition. One per year.
// swagger:model ContactInfo
type ContactInfo struct {
	ID        string    `json:"id"`
	YearID    string    `json:"yearId"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	Facebook  *string   `json:"facebook"`
	Twitter   *string   `json:"twitter"`
	LinkedIn  *string   `json:"linkedin"`
	Instagram *string   `json:"instagram"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactInfoPatch holds a partial contact payload.
type ContactInfoPatch struct {
	YearID    Patch[string] `json:"yearId"`
	Email     Patch[string] `json:"email"`
	Phone     Patch[string] `json:"phone"`
	Address   Patch[string] `json:"address"`
	Facebook  Patch[string] `json:"facebook"`
	Twitter   Patch[string] `json:"twitter"`
	LinkedIn  Patch[string] `json:"linkedin"`
	Instagram Patch[string] `json:"instagram"`
}

// ApplyTo writes every set field of p into c.
func (p ContactInfoPatch) ApplyTo(c *ContactInfo) {
	p.YearID.Apply(&c.YearID)
	p.Email.ApplyNullable(&c.Email)
	p.Phone.ApplyNullable(&c.Phone)
	p.Address.ApplyNullable(&c.Address)
	p.Facebook.ApplyNullable(&c.Facebook)
	p.Twitter.ApplyNullable(&c.Twitter)
	p.LinkedIn.ApplyNullable(&c.LinkedIn)
	p.Instagram.ApplyNullable(&c.Instagram)
}

// ContactRepository defines the interface for contact info storage. Upsert is keyed by YearID.
type ContactRepository interface {
	YearCounter
	GetByYear(ctx context.Context, yearID string) (*ContactInfo, error)
	GetByID(ctx context.Context, id string) (*ContactInfo, error)
	Upsert(ctx context.Context, contact *ContactInfo) error
	Delete(ctx context.Context, id string) error
}

// ContactService defines the business logic for contact info.
type ContactService interface {
	GetByYear(ctx context.Context, yearID string) (*ContactInfo, error)
	Upsert(ctx context.Context, in ContactInfoPatch) (*ContactInfo, error)
	Delete(ctx context.Context, id string) error
}
