package freelearn

import "context"

// Message is a mail ready to be sent.
type Message struct {
	From    string
	To      string
	Subject string

	// HTML is the primary body.
	HTML string

	// Text is an optional plain-text alternative.
	Text string
}

// Validate returns an error if the message is missing required fields.
func (m *Message) Validate() error {
	if m.From == "" {
		return Errorf(EINVALID, "message sender required")
	}
	if m.To == "" {
		return Errorf(EINVALID, "message recipient required")
	}
	if m.Subject == "" {
		return Errorf(EINVALID, "message subject required")
	}
	if m.HTML == "" {
		return Errorf(EINVALID, "message body required")
	}
	return nil
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
