package notify

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"
)

func testLead() LeadData {
	return LeadData{
		Name:    "Jo",
		Email:   "jo@x.com",
		Phone:   "9876543210",
		Course:  "Web Dev",
		Message: "Evening batch please",
	}
}

func capturingMailer(sent *[]*gomail.Message) *Mailer {
	return &Mailer{
		from:       "noreply@neon.example",
		adminEmail: "admin@neon.example",
		adminPhone: "+91 9876543210",
		send: func(m *gomail.Message) error {
			*sent = append(*sent, m)
			return nil
		},
	}
}

func TestMailer_SendAdminNotification(t *testing.T) {
	var sent []*gomail.Message
	m := capturingMailer(&sent)

	res := m.SendAdminNotification(testLead())
	if !res.Success() || res.Status != StatusSent {
		t.Fatalf("expected sent, got %+v", res)
	}
	if res.MessageID == "" {
		t.Fatal("expected a message id")
	}
	if res.Recipient != "admin@neon.example" {
		t.Fatalf("wrong recipient: %q", res.Recipient)
	}
	if len(sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sent))
	}

	if got := sent[0].GetHeader("Subject"); len(got) != 1 || got[0] != "New Lead: Jo - Web Dev" {
		t.Fatalf("wrong subject: %v", got)
	}
	if got := sent[0].GetHeader("To"); len(got) != 1 || got[0] != "admin@neon.example" {
		t.Fatalf("wrong To header: %v", got)
	}
}

func TestAdminTemplateContainsFields(t *testing.T) {
	var body bytes.Buffer
	err := adminEmailTmpl.Execute(&body, adminEmailData{Lead: testLead(), SubmittedAt: "01 Jan 2026 10:00 IST"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Jo", "jo@x.com", "9876543210", "Web Dev", "Evening batch please", "01 Jan 2026 10:00 IST"} {
		if !strings.Contains(body.String(), want) {
			t.Fatalf("admin email body missing %q", want)
		}
	}
}

func TestAdminTemplateOmitsEmptyMessage(t *testing.T) {
	lead := testLead()
	lead.Message = ""

	var body bytes.Buffer
	if err := adminEmailTmpl.Execute(&body, adminEmailData{Lead: lead}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body.String(), "Message:") {
		t.Fatal("message block should be omitted when empty")
	}
}

func TestThankYouTemplateContent(t *testing.T) {
	var body bytes.Buffer
	err := thankYouEmailTmpl.Execute(&body, thankYouEmailData{Lead: testLead(), AdminPhone: "+91 9000000000"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Hi Jo", "Web Dev", "30% OFF", "+91 9000000000"} {
		if !strings.Contains(body.String(), want) {
			t.Fatalf("thank-you body missing %q", want)
		}
	}
}

func TestMailer_SendThankYouEmail(t *testing.T) {
	var sent []*gomail.Message
	m := capturingMailer(&sent)

	res := m.SendThankYouEmail(testLead())
	if res.Status != StatusSent {
		t.Fatalf("expected sent, got %+v", res)
	}
	if res.Recipient != "jo@x.com" {
		t.Fatalf("thank-you email must go to the submitter, got %q", res.Recipient)
	}
	if got := sent[0].GetHeader("To"); len(got) != 1 || got[0] != "jo@x.com" {
		t.Fatalf("wrong To header: %v", got)
	}
}

func TestMailer_SendFailureIsContained(t *testing.T) {
	m := &Mailer{
		from:       "noreply@neon.example",
		adminEmail: "admin@neon.example",
		send:       func(*gomail.Message) error { return errors.New("relay unreachable") },
	}

	res := m.SendAdminNotification(testLead())
	if res.Success() || res.Status != StatusFailed {
		t.Fatalf("expected failed outcome, got %+v", res)
	}
	if res.Err == nil || !strings.Contains(res.Err.Error(), "relay unreachable") {
		t.Fatalf("expected wrapped relay error, got %v", res.Err)
	}
}
