package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// RenderedEmail is a message ready to hand to a Mailer.
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// EmailTemplateRenderer renders the named message in lang, falling back to
// English when that language has no variant.
type EmailTemplateRenderer interface {
	Render(name, lang string, data any) (*RenderedEmail, error)
}

// WelcomeMessageEmailData holds data for the welcome email sent to a new dashboard user.
type WelcomeMessageEmailData struct {
	Email    string
	Name     string
	Role     Role
	Language string // "en" or "fr"; anything else falls back to "en"
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeMessageEmailData) error
}
