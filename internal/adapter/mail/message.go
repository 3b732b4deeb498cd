// Package mail renders and delivers transactional email.
package mail

import (
	"bytes"
	"embed"
	"fmt"
	htmltmpl "html/template"
	"net/url"
	texttmpl "text/template"
	"time"
)

//go:embed templates
var templateFS embed.FS

const (
	subjectVerification  = "Email Verification"
	subjectPasswordReset = "Password Reset"
)

// Message is a rendered email ready for delivery.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

type templatePair struct {
	html *htmltmpl.Template
	text *texttmpl.Template
}

// Composer renders the application's emails with links pointing at appURL.
type Composer struct {
	appURL    string
	templates map[string]templatePair
}

// NewComposer parses the embedded templates.
func NewComposer(appURL string) (*Composer, error) {
	c := &Composer{appURL: appURL, templates: make(map[string]templatePair)}
	for _, name := range []string{"verification", "password_reset"} {
		h, err := htmltmpl.ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("mail.NewComposer: parse %s html: %w", name, err)
		}
		t, err := texttmpl.ParseFS(templateFS, "templates/"+name+".txt")
		if err != nil {
			return nil, fmt.Errorf("mail.NewComposer: parse %s text: %w", name, err)
		}
		c.templates[name] = templatePair{html: h.Option("missingkey=error"), text: t.Option("missingkey=error")}
	}
	return c, nil
}

type templateData struct {
	Name      string
	Link      string
	ExpiresIn string
}

// Verification renders the account activation email.
func (c *Composer) Verification(to, name, token string) (*Message, error) {
	link := c.appURL + "/auth/verify?token=" + url.QueryEscape(token)
	return c.render("verification", to, name, subjectVerification, templateData{Name: name, Link: link})
}

// PasswordReset renders the reset link email.
func (c *Composer) PasswordReset(to, name, token string, ttl time.Duration) (*Message, error) {
	link := c.appURL + "/reset-password?token=" + url.QueryEscape(token)
	return c.render("password_reset", to, name, subjectPasswordReset, templateData{
		Name:      name,
		Link:      link,
		ExpiresIn: humanTTL(ttl),
	})
}

func (c *Composer) render(name, to, toName, subject string, data templateData) (*Message, error) {
	pair := c.templates[name]

	var html, text bytes.Buffer
	if err := pair.html.ExecuteTemplate(&html, "base", data); err != nil {
		return nil, fmt.Errorf("mail.render %s html: %w", name, err)
	}
	if err := pair.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("mail.render %s text: %w", name, err)
	}

	return &Message{
		To:      to,
		ToName:  toName,
		Subject: subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

func humanTTL(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	case d >= time.Minute:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	default:
		return d.String()
	}
}
