package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityday/internal/domain"
)

type fakeSESClient struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSESClient) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTemplateRenderer_Render(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.WelcomeMessageEmailData{Email: "a@b.com", Name: "Alice", Role: domain.RoleEditor}

	tests := []struct {
		name        string
		lang        string
		wantSubject string
		wantInText  string
	}{
		{"english", "en", "Welcome to the AWS Community Day Cameroon dashboard", "Hello Alice,"},
		{"french", "fr", "Bienvenue sur le tableau de bord AWS Community Day Cameroun", "Bonjour Alice,"},
		{"upper-case language", "FR", "Bienvenue sur le tableau de bord AWS Community Day Cameroun", "Bonjour Alice,"},
		{"unknown language falls back to english", "de", "Welcome to the AWS Community Day Cameroon dashboard", "Hello Alice,"},
		{"empty language", "", "Welcome to the AWS Community Day Cameroon dashboard", "Hello Alice,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := r.Render("welcome", tt.lang, data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, msg.Subject)
			assert.Contains(t, msg.Text, tt.wantInText)
			assert.Contains(t, msg.Text, "EDITOR")
			assert.Contains(t, msg.HTML, "a@b.com")
		})
	}
}

func TestTemplateRenderer_Render_escapes_html(t *testing.T) {
	data := &domain.WelcomeMessageEmailData{Email: "a@b.com", Name: "<b>Eve</b>", Role: domain.RoleAdmin}
	msg, err := NewTemplateRenderer().Render("welcome", "en", data)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<b>Eve</b>")
	assert.Contains(t, msg.HTML, "&lt;b&gt;Eve&lt;/b&gt;")
}

func TestTemplateRenderer_Render_unknown_template(t *testing.T) {
	_, err := NewTemplateRenderer().Render("missing", "en", nil)
	require.Error(t, err)
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSESClient{}
	m := NewSESMailer(client, "noreply@example.com", "Community Day", discardLogger())

	err := m.Send(context.Background(), "to@example.com", "Subject", "<p>hi</p>", "hi")
	require.NoError(t, err)
	require.NotNil(t, client.input)
	assert.Equal(t, "Community Day <noreply@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"to@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Subject", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Equal(t, "hi", aws.ToString(client.input.Message.Body.Text.Data))
}

func TestSESMailer_Send_error(t *testing.T) {
	client := &fakeSESClient{err: errors.New("throttled")}
	m := NewSESMailer(client, "noreply@example.com", "", discardLogger())

	err := m.Send(context.Background(), "to@example.com", "s", "", "t")
	require.Error(t, err)
	assert.Equal(t, "noreply@example.com", aws.ToString(client.input.Source))
	assert.Nil(t, client.input.Message.Body.Html)
}

func TestNewMailer_unknown_provider_is_noop(t *testing.T) {
	m := NewMailer(MailerConfig{Provider: "carrier-pigeon"}, discardLogger())
	_, ok := m.(*noopMailer)
	require.True(t, ok)
	require.NoError(t, m.Send(context.Background(), "a@b.com", "s", "h", "t"))
}
