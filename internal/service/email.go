package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendOrderCreatedNotification(ctx context.Context, to, tenantName, houseTitle string) error {
	body := fmt.Sprintf("Hello,\n\n%s has requested to rent your listing %q. Please review and confirm the order.\n\nHomelet", tenantName, houseTitle)
	return s.send(to, fmt.Sprintf("New rental request for %s", houseTitle), body)
}

func (s *emailService) SendOrderConfirmedNotification(ctx context.Context, to, houseTitle string) error {
	body := fmt.Sprintf("Hello,\n\nYour rental order for %q has been confirmed by the landlord.\n\nHomelet", houseTitle)
	return s.send(to, fmt.Sprintf("Rental order confirmed - %s", houseTitle), body)
}

func (s *emailService) SendTerminationRequestedNotification(ctx context.Context, to, requesterName, houseTitle, reason string) error {
	body := fmt.Sprintf("Hello,\n\n%s has requested to terminate the rental of %q.", requesterName, houseTitle)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nPlease approve or reject the request.\n\nHomelet"
	return s.send(to, fmt.Sprintf("Termination requested - %s", houseTitle), body)
}

func (s *emailService) SendLeaseEndingReminder(ctx context.Context, to, houseTitle, endDate string) error {
	body := fmt.Sprintf("Hello,\n\nYour lease for %q ends on %s. Contact your landlord if you would like to extend it.\n\nHomelet", houseTitle, endDate)
	return s.send(to, fmt.Sprintf("Lease ending soon - %s", houseTitle), body)
}

func (s *emailService) SendTerminationResolvedNotification(ctx context.Context, to, houseTitle string, approved bool, feedback string) error {
	outcome := "rejected"
	if approved {
		outcome = "approved"
	}
	body := fmt.Sprintf("Hello,\n\nYour termination request for %q has been %s.", houseTitle, outcome)
	if feedback != "" {
		body += fmt.Sprintf("\n\nFeedback: %s", feedback)
	}
	body += "\n\nHomelet"
	return s.send(to, fmt.Sprintf("Termination request %s - %s", outcome, houseTitle), body)
}
