package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendGridSender delivers email through the SendGrid v3 API.
type SendGridSender struct {
	key  string
	host string
	from *sgmail.Email
}

// NewSendGridSender creates a sender. An empty host uses the public API.
func NewSendGridSender(key, fromName, fromAddress, host string) *SendGridSender {
	if host == "" {
		host = sendgridHost
	}
	return &SendGridSender{
		key:  key,
		host: host,
		from: sgmail.NewEmail(fromName, fromAddress),
	}
}

func (s *SendGridSender) prepare(msg *Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.To))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(
		sgmail.NewContent("text/plain", msg.Text),
		sgmail.NewContent("text/html", msg.HTML),
	)
	return m
}

// Send delivers msg synchronously. Any non-2xx response is an error.
// The pinned client takes no context, so ctx is only checked before the call.
func (s *SendGridSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mail.SendGridSender.Send: %w", err)
	}

	req := sendgrid.GetRequest(s.key, sendgridEndpoint, s.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.MakeRequest(req)
	if err != nil {
		return fmt.Errorf("mail.SendGridSender.Send: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("mail.SendGridSender.Send: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
