package destination

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/benny779/Logger/core"
)

// Message is one notification handed to the external Mailer.
type Message struct {
	ID      string // unique message id
	From    string
	To      []string
	Subject string
	Body    string
}

// Mailer is the external notification transport. Implementations own the
// actual SMTP session; the destination only builds messages.
type Mailer interface {
	Send(m *Message) error
}

// Mail delivers log entries as notification messages.
type Mail struct {
	state
	from   string
	to     []string
	mailer Mailer
}

// MailConfig holds configuration for the mail destination.
type MailConfig struct {
	From string
	To   []string
	// Mailer is the transport collaborator. Required.
	Mailer Mailer
	// MinimumLevel is the severity filter (default: Error).
	MinimumLevel core.Level
}

// NewMail creates a mail destination.
func NewMail(id string, cfg MailConfig) (*Mail, error) {
	m := &Mail{from: cfg.From, to: cfg.To, mailer: cfg.Mailer}
	if err := m.state.init(id, cfg.MinimumLevel, core.ErrorLevel); err != nil {
		return nil, err
	}
	if m.mailer == nil {
		return nil, core.Configf("mail destination requires a mailer")
	}
	if m.from == "" {
		return nil, core.Configf("mail destination requires a sender address")
	}
	if len(m.to) == 0 {
		return nil, core.Configf("mail destination requires at least one recipient")
	}
	return m, nil
}

// Write builds a notification for the entry and hands it to the mailer.
func (m *Mail) Write(e *core.Entry) {
	ident := core.Identity()
	msg := &Message{
		ID:      uuid.NewString(),
		From:    m.from,
		To:      append([]string(nil), m.to...),
		Subject: fmt.Sprintf("%s on %s: %s", ident.App, ident.Host, e.Level.Category()),
		Body:    e.Line,
	}
	m.record(Attempt(func() error {
		return m.mailer.Send(msg)
	}))
}
