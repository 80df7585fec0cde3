package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"it-helpdesk-be/internal/entity"
)

type IEmailService interface {
	SendEscalation(feedback *entity.Feedback) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	escalateTo  string
}

func NewEmailService(host string, port int, username, password, senderName, escalateTo string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		escalateTo:  escalateTo,
	}
}

// SendEscalation notifies the support mailbox about low-rated or
// escalation-type feedback.
func (s *emailService) SendEscalation(feedback *entity.Feedback) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", s.escalateTo)
	m.SetHeader("Subject", fmt.Sprintf("Helpdesk feedback needs attention (%s)", feedback.Type))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Feedback flagged for review</h2>
			<p><b>Feature</b>: %s</p>
			<p><b>Type</b>: %s</p>
			<p><b>Rating</b>: %d/5</p>
			<p><b>Submitted</b>: %s</p>
			<hr/>
			<p>%s</p>
		</div>
	`, feedback.Feature, feedback.Type, feedback.Rating, feedback.CreatedAt.Format("2006-01-02 15:04"), feedback.Content)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send escalation for %s: %v\n", feedback.Id, err)
		return err
	}

	fmt.Printf("[MAILER] Escalation sent for feedback %s\n", feedback.Id)
	return nil
}
