package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/leadcapture/internal/entity"
)

var leadTemplate = template.Must(template.New("lead").Parse(`<p>You have a new WhatsApp lead.</p>
<ul>
  <li><b>Name:</b> {{if .Name}}{{.Name}}{{else}}(unknown){{end}}</li>
  <li><b>Phone:</b> {{.Phone}}</li>
  <li><b>Received:</b> {{.Timestamp}}</li>
</ul>
<blockquote>{{.Message}}</blockquote>
`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// NotifyNewLead tells a tenant owner that a lead came in.
func (s *EmailSender) NotifyNewLead(to string, lead *entity.Lead) error {
	m, err := s.buildLeadMessage(to, lead)
	if err != nil {
		return err
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send lead email: %w", err)
	}
	return nil
}

func (s *EmailSender) buildLeadMessage(to string, lead *entity.Lead) (*gomail.Message, error) {
	data := LeadEmailData{
		Name:      lead.Name,
		Phone:     lead.Phone,
		Message:   lead.Message,
		Timestamp: lead.Timestamp.Format(time.RFC1123),
	}

	var body bytes.Buffer
	if err := leadTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render lead email: %w", err)
	}

	subject := "New lead"
	if lead.Phone != "" {
		subject = fmt.Sprintf("New lead from %s", lead.Phone)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())
	return m, nil
}
