package notify

import "log"

// LeadData is the read-only snapshot of a submission that notification
// senders receive. It is passed by value and never refers back to the
// stored record.
type LeadData struct {
	Name    string
	Email   string
	Phone   string
	Course  string
	Message string
}

// Status tells what actually happened to a delivery attempt. Skipped
// means dummy mode logged the message without delivering anything; it
// is deliberately distinct from a real send.
type Status string

const (
	StatusSent    Status = "sent"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result is the outcome of one delivery attempt. Senders always return
// a Result; failures never escape past the sender boundary.
type Result struct {
	Channel   string
	Recipient string
	Status    Status
	MessageID string
	Err       error
}

func (r Result) Success() bool {
	return r.Status != StatusFailed
}

// Dispatcher fans a lead out to every enabled notification channel in
// detached goroutines. Callers return immediately; outcomes are only
// logged. There is no cancellation: in-flight attempts run to
// completion or failure even during shutdown.
type Dispatcher struct {
	mailer *Mailer
	sms    *SMSSender
}

func NewDispatcher(mailer *Mailer, sms *SMSSender) *Dispatcher {
	return &Dispatcher{mailer: mailer, sms: sms}
}

func (d *Dispatcher) Dispatch(lead LeadData) {
	if d.mailer != nil {
		go func() { logResult(d.mailer.SendAdminNotification(lead)) }()
		go func() { logResult(d.mailer.SendThankYouEmail(lead)) }()
	}
	if d.sms != nil {
		go func() { logResult(d.sms.SendAdminSMS(lead)) }()
		go func() { logResult(d.sms.SendLeadSMS(lead)) }()
	}
}

func logResult(r Result) {
	switch r.Status {
	case StatusSent:
		log.Printf("%s notification sent to %s (message id %s)", r.Channel, r.Recipient, r.MessageID)
	case StatusSkipped:
		log.Printf("%s notification skipped for %s (dummy mode, nothing delivered)", r.Channel, r.Recipient)
	default:
		log.Printf("%s notification failed for %s: %v", r.Channel, r.Recipient, r.Err)
	}
}
