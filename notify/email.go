package notify

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/YuvarajaDev/NoeonApi/config"
)

const channelEmail = "email"

// Mailer sends the admin alert and the thank-you email over an
// authenticated SMTP relay.
type Mailer struct {
	from       string
	adminEmail string
	adminPhone string
	send       func(*gomail.Message) error
}

// NewMailer builds a Mailer from the configured relay settings.
func NewMailer(cfg config.Config) *Mailer {
	d := gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword)
	d.SSL = cfg.EmailPort == 465
	// Relays in the field often run self-signed certificates.
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return &Mailer{
		from:       cfg.EmailFrom,
		adminEmail: cfg.AdminEmail,
		adminPhone: cfg.AdminPhone,
		send:       func(m *gomail.Message) error { return d.DialAndSend(m) },
	}
}

// SendAdminNotification alerts the configured admin address about a new
// submission. All failures are folded into the Result.
func (m *Mailer) SendAdminNotification(lead LeadData) Result {
	res := Result{Channel: channelEmail, Recipient: m.adminEmail}

	var body bytes.Buffer
	data := adminEmailData{Lead: lead, SubmittedAt: time.Now().Format("02 Jan 2006 15:04 MST")}
	if err := adminEmailTmpl.Execute(&body, data); err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("render admin email: %w", err)
		return res
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New Lead: %s - %s", lead.Name, lead.Course))
	msg.SetBody("text/html", body.String())

	if err := m.send(msg); err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("send admin email: %w", err)
		return res
	}
	res.Status = StatusSent
	res.MessageID = uuid.NewString()
	return res
}

// SendThankYouEmail sends the promotional thank-you message to the
// submitter's own address.
func (m *Mailer) SendThankYouEmail(lead LeadData) Result {
	res := Result{Channel: channelEmail, Recipient: lead.Email}

	var body bytes.Buffer
	data := thankYouEmailData{Lead: lead, AdminPhone: m.adminPhone}
	if err := thankYouEmailTmpl.Execute(&body, data); err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("render thank-you email: %w", err)
		return res
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", lead.Email)
	msg.SetHeader("Subject", "Thank You for Your Interest - Neon Computer Education")
	msg.SetBody("text/html", body.String())

	if err := m.send(msg); err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("send thank-you email: %w", err)
		return res
	}
	res.Status = StatusSent
	res.MessageID = uuid.NewString()
	return res
}

type adminEmailData struct {
	Lead        LeadData
	SubmittedAt string
}

type thankYouEmailData struct {
	Lead       LeadData
	AdminPhone string
}

var adminEmailTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #00d4ff, #a855f7); color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #0284c7; }
    .value { margin-top: 5px; padding: 10px; background: white; border-left: 3px solid #00d4ff; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Lead Received!</h1>
      <p>Someone is interested in your courses</p>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">Name:</div>
        <div class="value">{{.Lead.Name}}</div>
      </div>
      <div class="field">
        <div class="label">Email:</div>
        <div class="value">{{.Lead.Email}}</div>
      </div>
      <div class="field">
        <div class="label">Phone:</div>
        <div class="value">{{.Lead.Phone}}</div>
      </div>
      <div class="field">
        <div class="label">Course Interested In:</div>
        <div class="value">{{.Lead.Course}}</div>
      </div>
      {{if .Lead.Message}}
      <div class="field">
        <div class="label">Message:</div>
        <div class="value">{{.Lead.Message}}</div>
      </div>
      {{end}}
      <div class="field">
        <div class="label">Submitted At:</div>
        <div class="value">{{.SubmittedAt}}</div>
      </div>
    </div>
    <div class="footer">
      <p>This is an automated notification from Neon Computer Education</p>
    </div>
  </div>
</body>
</html>`))

var thankYouEmailTmpl = template.Must(template.New("thankyou").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #00d4ff, #a855f7); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .highlight { background: white; padding: 20px; border-left: 4px solid #00d4ff; margin: 20px 0; }
    .cta-button { display: inline-block; background: linear-gradient(135deg, #00d4ff, #a855f7); color: white; padding: 15px 30px; text-decoration: none; border-radius: 25px; margin: 20px 0; font-weight: bold; }
    .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Welcome to Neon Computer Education!</h1>
    </div>
    <div class="content">
      <h2>Hi {{.Lead.Name}},</h2>
      <p>Thank you for your interest in our <strong>{{.Lead.Course}}</strong> course!</p>

      <div class="highlight">
        <h3>Special Offer: Up to 30% OFF!</h3>
        <p>As a new inquiry, you're eligible for our limited-time discount on all courses.</p>
      </div>

      <p>Our team will contact you within 24 hours to discuss:</p>
      <ul>
        <li>Course details and curriculum</li>
        <li>Batch timings and schedules</li>
        <li>Your special discount offer</li>
        <li>Any questions you might have</li>
      </ul>

      <h3>Why Choose Neon Computer Education?</h3>
      <ul>
        <li>Expert instructors with industry experience</li>
        <li>Hands-on practical training</li>
        <li>Placement assistance</li>
        <li>Flexible timing options</li>
        <li>Industry-recognized certification</li>
      </ul>

      <center>
        <a href="tel:{{.AdminPhone}}" class="cta-button">Call Us: {{.AdminPhone}}</a>
      </center>

      <p>Looking forward to helping you achieve your career goals!</p>

      <p>Best Regards,<br>
      <strong>Team Neon Computer Education</strong></p>
    </div>
    <div class="footer">
      <p>Neon Computer Education | Main Street, Tech City | Pin: 123456</p>
      <p>Email: info@neoncomputereducation.com | Phone: {{.AdminPhone}}</p>
    </div>
  </div>
</body>
</html>`))
