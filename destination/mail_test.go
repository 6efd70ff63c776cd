package destination

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benny779/Logger/core"
)

type fakeMailer struct {
	sent []*Message
	err  error
}

func (f *fakeMailer) Send(m *Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func TestMail_Validation(t *testing.T) {
	mailer := &fakeMailer{}

	if _, err := NewMail("mail", MailConfig{From: "app@x", To: []string{"ops@x"}}); err == nil {
		t.Error("expected error without mailer")
	}
	if _, err := NewMail("mail", MailConfig{To: []string{"ops@x"}, Mailer: mailer}); err == nil {
		t.Error("expected error without sender")
	}
	if _, err := NewMail("mail", MailConfig{From: "app@x", Mailer: mailer}); err == nil {
		t.Error("expected error without recipients")
	}
	if _, err := NewMail("", MailConfig{From: "app@x", To: []string{"ops@x"}, Mailer: mailer}); err == nil {
		t.Error("expected error for empty identifier")
	}
	if _, err := NewMail("mail", MailConfig{From: "app@x", To: []string{"ops@x"}, Mailer: mailer}); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestMail_BuildsMessage(t *testing.T) {
	mailer := &fakeMailer{}
	m, err := NewMail("mail", MailConfig{From: "app@x", To: []string{"ops@x", "dev@x"}, Mailer: mailer})
	if err != nil {
		t.Fatalf("NewMail error = %v", err)
	}

	line := "2026-02-18 13:00:00.000 [CRT] database unreachable"
	m.Write(&core.Entry{Time: time.Now(), Level: core.CriticalLevel, Line: line})

	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.ID == "" {
		t.Error("message has no id")
	}
	if msg.From != "app@x" || len(msg.To) != 2 {
		t.Errorf("addressing = %q -> %v", msg.From, msg.To)
	}
	if !strings.HasSuffix(msg.Subject, ": Error") {
		t.Errorf("Subject = %q, want category suffix", msg.Subject)
	}
	if msg.Body != line {
		t.Errorf("Body = %q", msg.Body)
	}
}

func TestMail_UniqueMessageIDs(t *testing.T) {
	mailer := &fakeMailer{}
	m, _ := NewMail("mail", MailConfig{From: "app@x", To: []string{"ops@x"}, Mailer: mailer})

	e := &core.Entry{Time: time.Now(), Level: core.ErrorLevel, Line: "x"}
	m.Write(e)
	m.Write(e)

	if mailer.sent[0].ID == mailer.sent[1].ID {
		t.Error("message ids not unique")
	}
}

func TestMail_TransportFailureIsAbsorbed(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp 451")}
	m, _ := NewMail("mail", MailConfig{From: "app@x", To: []string{"ops@x"}, Mailer: mailer})

	m.Write(&core.Entry{Time: time.Now(), Level: core.ErrorLevel, Line: "x"})
	if got := m.Stats().Discarded; got != 1 {
		t.Errorf("Discarded = %d, want 1", got)
	}
}

func TestMail_DefaultMinimumLevel(t *testing.T) {
	m, _ := NewMail("mail", MailConfig{From: "app@x", To: []string{"ops@x"}, Mailer: &fakeMailer{}})
	if m.MinimumLevel() != core.ErrorLevel {
		t.Errorf("MinimumLevel() = %v, want Error", m.MinimumLevel())
	}
}
