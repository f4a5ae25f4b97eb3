package alert

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/tsawler/chartwatch/model"
)

// ErrNotConfigured is returned by Send when the mailer is missing
// credentials or addresses.
var ErrNotConfigured = errors.New("email alerts not configured")

// Mailer sends change alerts over SMTP.
type Mailer struct {
	// Host and Port locate the SMTP server. Gmail uses smtp.gmail.com:587.
	Host string
	Port int

	// Username and Password authenticate via AUTH PLAIN. For Gmail this
	// is the account address and an app password.
	Username string
	Password string

	// From and To are the envelope addresses. From defaults to Username.
	From string
	To   string

	// AppURL, when set, is appended to the body as a details link.
	AppURL string

	// send allows tests to intercept the SMTP call.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

	// now allows tests to pin the detection timestamp.
	now func() time.Time
}

// NewGmail returns a Mailer preconfigured for Gmail's submission port.
func NewGmail(address, appPassword, recipient string) *Mailer {
	return &Mailer{
		Host:     "smtp.gmail.com",
		Port:     587,
		Username: address,
		Password: appPassword,
		To:       recipient,
	}
}

// Configured reports whether the mailer has everything it needs to send.
func (m *Mailer) Configured() bool {
	return m.Host != "" && m.Username != "" && m.Password != "" && m.To != ""
}

// Send emails a summary of result. It returns ErrNotConfigured when the
// mailer is incomplete and does nothing when the result has no changes.
func (m *Mailer) Send(result model.ComparisonResult) error {
	if !m.Configured() {
		return ErrNotConfigured
	}
	if !result.HasChanges() {
		return nil
	}

	from := m.From
	if from == "" {
		from = m.Username
	}

	subject := fmt.Sprintf("Airport Diagram Alert: %s has %d change(s) in cycle %s",
		result.AirportCode, result.Summary.TotalChanges, result.NewCycle)
	body := m.body(result)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", m.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)

	sendMail := m.send
	if sendMail == nil {
		sendMail = smtp.SendMail
	}
	if err := sendMail(addr, auth, from, []string{m.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("sending alert for %s: %w", result.AirportCode, err)
	}
	return nil
}

func (m *Mailer) body(result model.ComparisonResult) string {
	now := m.now
	if now == nil {
		now = time.Now
	}

	var b strings.Builder
	b.WriteString("Airport Diagram Change Alert\n")
	b.WriteString("=============================\n\n")
	fmt.Fprintf(&b, "Airport: %s\n", result.AirportCode)
	fmt.Fprintf(&b, "Cycle: %s → %s\n", result.OldCycle, result.NewCycle)
	fmt.Fprintf(&b, "Detected: %s\n\n", now().UTC().Format("2006-01-02 15:04 UTC"))

	if len(result.TaxiwayChanges) > 0 {
		fmt.Fprintf(&b, "TAXIWAY CHANGES (%d):\n", len(result.TaxiwayChanges))
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, c := range result.TaxiwayChanges {
			fmt.Fprintf(&b, "  * %s: %s\n", c.Kind, c.Description)
		}
		b.WriteString("\n")
	}

	if len(result.RunwayChanges) > 0 {
		fmt.Fprintf(&b, "RUNWAY CHANGES (%d):\n", len(result.RunwayChanges))
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, c := range result.RunwayChanges {
			fmt.Fprintf(&b, "  * %s: %s\n", c.Kind, c.Description)
		}
		b.WriteString("\n")
	}

	if len(result.GeometryChanges) > 0 {
		fmt.Fprintf(&b, "GEOMETRY CHANGES (%d):\n", len(result.GeometryChanges))
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, c := range result.GeometryChanges {
			fmt.Fprintf(&b, "  * %s: %s\n", c.Kind, c.Description)
		}
		b.WriteString("\n")
	}

	if m.AppURL != "" {
		fmt.Fprintf(&b, "\nView details: %s\n", m.AppURL)
	}

	b.WriteString("\n---\nThis alert was sent by chartwatch.\n")
	return b.String()
}
