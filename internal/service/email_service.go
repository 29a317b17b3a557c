package service

import (
	"fmt"

	"github.com/hoangnm/air-platform/config"
	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"
)

// EmailService sends transactional notifications over SMTP. Every call site
// treats delivery as best-effort: errors are logged and swallowed, never
// propagated to the request.
type EmailService interface {
	SendWelcome(to, userName, companyName string) error
	SendReportReady(to, managerName, companyName, shareSlug string) error
	SendSurveyReminder(to, employeeName, companyName string) error
}

type smtpEmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	if cfg.SMTP.Host == "" {
		log.Warn().Msg("SMTP_HOST is not set. Email notifications will be skipped.")
	}
	return &smtpEmailService{cfg: cfg}
}

func (s *smtpEmailService) SendWelcome(to, userName, companyName string) error {
	subject := fmt.Sprintf("Welcome to AIR - %s Registration Complete", companyName)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>%s is now registered on the AIR platform. Invite your team from the dashboard to start the AI-readiness survey.</p>",
		userName, companyName,
	)
	return s.send(to, subject, body)
}

func (s *smtpEmailService) SendReportReady(to, managerName, companyName, shareSlug string) error {
	subject := fmt.Sprintf("AI Readiness Report Ready - %s", companyName)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>The AI-readiness report for %s is ready. Public share link: /share/%s</p>",
		managerName, companyName, shareSlug,
	)
	return s.send(to, subject, body)
}

func (s *smtpEmailService) SendSurveyReminder(to, employeeName, companyName string) error {
	subject := fmt.Sprintf("Reminder: complete your AI readiness survey - %s", companyName)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your AI-readiness survey for %s is still waiting. It only takes a few minutes to finish.</p>",
		employeeName, companyName,
	)
	return s.send(to, subject, body)
}

func (s *smtpEmailService) send(to, subject, htmlBody string) error {
	if s.cfg.SMTP.Host == "" {
		log.Debug().Str("to", to).Str("subject", subject).Msg("SMTP not configured, skipping email")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SMTP.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.SMTP.Host, s.cfg.SMTP.Port, s.cfg.SMTP.Username, s.cfg.SMTP.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
