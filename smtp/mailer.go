// Package smtp implements freelearn.Mailer on top of go-mail.
package smtp

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/freelearn"
	"github.com/wneessen/go-mail"
)

// Defaults match Gmail's implicit TLS submission endpoint.
const (
	DefaultHost    = "smtp.gmail.com"
	DefaultPort    = 465
	DefaultTimeout = 30 * time.Second
)

// Ensure Mailer implements freelearn.Mailer at compile time.
var _ freelearn.Mailer = (*Mailer)(nil)

// Mailer sends messages through an authenticated SMTP server.
// Port 465 uses implicit TLS; any other port requires STARTTLS.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithHost sets the SMTP server host. Defaults to DefaultHost.
func WithHost(host string) Option {
	return func(m *Mailer) {
		m.host = host
	}
}

// WithPort sets the SMTP server port. Defaults to DefaultPort.
func WithPort(port int) Option {
	return func(m *Mailer) {
		m.port = port
	}
}

// WithTimeout sets the connection timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Mailer) {
		m.timeout = d
	}
}

// NewMailer creates a Mailer authenticating with username and password.
func NewMailer(username, password string, opts ...Option) *Mailer {
	m := &Mailer{
		host:     DefaultHost,
		port:     DefaultPort,
		username: username,
		password: password,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send delivers msg. The message is validated before any connection is made.
func (m *Mailer) Send(ctx context.Context, msg *freelearn.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if m.username == "" || m.password == "" {
		return freelearn.Errorf(freelearn.EINVALID, "smtp credentials required")
	}

	mm, err := NewMsg(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.host, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("sending mail via %s:%d: %w", m.host, m.port, err)
	}
	return nil
}

func (m *Mailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTimeout(m.timeout),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
	}
	if m.port == DefaultPort {
		return append(opts, mail.WithSSL())
	}
	return append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
}

// NewMsg builds the MIME message for msg. When a plain-text alternative is
// present the message is multipart/alternative with the HTML part last.
func NewMsg(msg *freelearn.Message) (*mail.Msg, error) {
	mm := mail.NewMsg()
	if err := mm.From(msg.From); err != nil {
		return nil, freelearn.Errorf(freelearn.EINVALID, "invalid sender %q: %v", msg.From, err)
	}
	if err := mm.To(msg.To); err != nil {
		return nil, freelearn.Errorf(freelearn.EINVALID, "invalid recipient %q: %v", msg.To, err)
	}
	mm.Subject(msg.Subject)
	mm.SetDate()
	mm.SetMessageID()

	if msg.Text != "" {
		mm.SetBodyString(mail.TypeTextPlain, msg.Text)
		mm.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	} else {
		mm.SetBodyString(mail.TypeTextHTML, msg.HTML)
	}
	return mm, nil
}
