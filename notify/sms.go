package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YuvarajaDev/NoeonApi/config"
)

const channelSMS = "sms"

// ErrProviderUnavailable means the SMS channel has no usable carrier
// configured. It is logged, never surfaced to HTTP callers.
var ErrProviderUnavailable = errors.New("SMS provider not configured")

const (
	msg91APIURL    = "https://api.msg91.com/api/v5/flow/"
	fast2smsAPIURL = "https://www.fast2sms.com/dev/bulkV2"
)

// SMSSender delivers short text messages through a pluggable carrier.
// Supported carriers: "dummy" (logs only), "msg91" and "fast2sms".
type SMSSender struct {
	provider    string
	senderID    string
	adminPhone  string
	msg91Key    string
	fast2smsKey string

	client      *http.Client
	msg91URL    string
	fast2smsURL string
}

func NewSMSSender(cfg config.Config) *SMSSender {
	return &SMSSender{
		provider:    cfg.SMSProvider,
		senderID:    cfg.SMSSenderID,
		adminPhone:  cfg.AdminPhone,
		msg91Key:    cfg.MSG91APIKey,
		fast2smsKey: cfg.Fast2SMSAPIKey,
		client:      &http.Client{Timeout: 10 * time.Second},
		msg91URL:    msg91APIURL,
		fast2smsURL: fast2smsAPIURL,
	}
}

// SendAdminSMS alerts the admin phone about a new submission.
func (s *SMSSender) SendAdminSMS(lead LeadData) Result {
	text := fmt.Sprintf("New Lead from %s for %s. Contact: %s", lead.Name, lead.Course, lead.Phone)
	return s.deliver(s.adminPhone, text)
}

// SendLeadSMS sends a confirmation text to the submitter.
func (s *SMSSender) SendLeadSMS(lead LeadData) Result {
	text := fmt.Sprintf("Thank you %s for showing interest in %s. We will contact you soon! - Neon Computer Education", lead.Name, lead.Course)
	return s.deliver(lead.Phone, text)
}

func (s *SMSSender) deliver(to, text string) Result {
	res := Result{Channel: channelSMS, Recipient: to}

	switch s.provider {
	case "dummy":
		// Nothing is delivered in dummy mode. The outcome says so
		// explicitly instead of claiming a real send.
		log.Printf("SMS (dummy mode) to %s: %s", to, text)
		res.Status = StatusSkipped
		res.MessageID = uuid.NewString()
	case "msg91":
		if err := s.sendMSG91(to, text); err != nil {
			res.Status = StatusFailed
			res.Err = err
			return res
		}
		res.Status = StatusSent
		res.MessageID = uuid.NewString()
	case "fast2sms":
		if err := s.sendFast2SMS(to, text); err != nil {
			res.Status = StatusFailed
			res.Err = err
			return res
		}
		res.Status = StatusSent
		res.MessageID = uuid.NewString()
	default:
		res.Status = StatusFailed
		res.Err = ErrProviderUnavailable
	}
	return res
}

type msg91Message struct {
	Message string   `json:"message"`
	To      []string `json:"to"`
}

type msg91Request struct {
	Sender  string         `json:"sender"`
	Route   string         `json:"route"`
	Country string         `json:"country"`
	SMS     []msg91Message `json:"sms"`
}

func (s *SMSSender) sendMSG91(to, text string) error {
	payload, err := json.Marshal(msg91Request{
		Sender:  s.senderID,
		Route:   "4",
		Country: "91",
		SMS:     []msg91Message{{Message: text, To: []string{to}}},
	})
	if err != nil {
		return fmt.Errorf("msg91: marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.msg91URL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("msg91: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authkey", s.msg91Key)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("msg91: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("msg91: received status code %d", resp.StatusCode)
	}
	return nil
}

func (s *SMSSender) sendFast2SMS(to, text string) error {
	params := url.Values{}
	params.Set("authorization", s.fast2smsKey)
	params.Set("sender_id", s.senderID)
	params.Set("message", text)
	params.Set("language", "english")
	params.Set("route", "p")
	params.Set("numbers", strings.TrimPrefix(to, "+91"))

	resp, err := s.client.PostForm(s.fast2smsURL, params)
	if err != nil {
		return fmt.Errorf("fast2sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fast2sms: received status code %d", resp.StatusCode)
	}
	return nil
}
