package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"communityday/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// DefaultLanguage is used when a template has no variant for the requested language.
const DefaultLanguage = "en"

// templateRenderer implements domain.EmailTemplateRenderer over the embedded
// templates. A message named "welcome" in French is made of
// welcome_fr_subject.txt, welcome_fr.html and welcome_fr.txt.
type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses every embedded template once.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{
		html: htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html")),
		text: texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt")),
	}
}

func (r *templateRenderer) Render(name, lang string, data any) (*domain.RenderedEmail, error) {
	base := r.resolve(name, lang)
	if base == "" {
		return nil, fmt.Errorf("email template %q not found", name)
	}

	subject, err := execute(r.text, base+"_subject.txt", data)
	if err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	html, err := execute(r.html, base+".html", data)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	text, err := execute(r.text, base+".txt", data)
	if err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	return &domain.RenderedEmail{
		Subject: strings.TrimSpace(subject),
		HTML:    html,
		Text:    text,
	}, nil
}

// resolve picks name_lang, falling back to name_en. It returns "" when neither exists.
func (r *templateRenderer) resolve(name, lang string) string {
	for _, l := range []string{strings.ToLower(lang), DefaultLanguage} {
		if l == "" {
			continue
		}
		base := name + "_" + l
		if r.html.Lookup(base+".html") != nil && r.text.Lookup(base+".txt") != nil {
			return base
		}
	}
	return ""
}

// executor is satisfied by both *htmltemplate.Template and *texttemplate.Template.
type executor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

func execute(t executor, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
