package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"github.com/redmonkez12/go-task-api/internal/config"
	"github.com/redmonkez12/go-task-api/internal/logging"
)

const layout = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4F46E5; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
        .content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
        .button { display: inline-block; background-color: #4F46E5; color: white !important; padding: 12px 30px; text-decoration: none; border-radius: 5px; margin: 20px 0; }
        .footer { margin-top: 30px; font-size: 12px; color: #666; text-align: center; }
    </style>
</head>
<body>
    <div class="header"><h1>{{template "title" .}}</h1></div>
    <div class="content">{{template "content" .}}</div>
    <div class="footer"><p>&copy; 2026 Task Tracker. All rights reserved.</p></div>
</body>
</html>
`

const welcomeContent = `
{{define "title"}}Welcome!{{end}}
{{define "content"}}
    <h2>Your account is ready</h2>
    <p>You signed up as {{.Email}}. Start organising your tasks:</p>
    <a href="{{.Link}}" class="button" style="color: white !important;">Open Task Tracker</a>
{{end}}
`

const passwordChangedContent = `
{{define "title"}}Password changed{{end}}
{{define "content"}}
    <h2>Your password was changed</h2>
    <p>The password of {{.Email}} was just reset.</p>
    <p style="margin-top: 30px;">If this wasn't you, reset it again right away at <a href="{{.Link}}">{{.Link}}</a>.</p>
{{end}}
`

var (
	welcomeTemplate         = template.Must(template.Must(template.New("welcome").Parse(layout)).Parse(welcomeContent))
	passwordChangedTemplate = template.Must(template.Must(template.New("passwordChanged").Parse(layout)).Parse(passwordChangedContent))
)

// sendTimeout bounds the whole SMTP exchange, dial included
const sendTimeout = 30 * time.Second

// SendFunc delivers a rendered HTML message
type SendFunc func(to, subject, body string) error

// Service sends account emails over SMTP. Every Notify method returns
// immediately and delivers in the background; a Service without an SMTP
// host only logs.
type Service struct {
	smtpHost     string
	smtpPort     string
	smtpUser     string
	smtpPassword string
	fromEmail    string
	frontendURL  string
	timeout      time.Duration
	send         SendFunc
	logger       *logging.Logger
}

func NewService(cfg config.EmailConfig, logger *logging.Logger) *Service {
	s := &Service{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUser:     cfg.SMTPUser,
		smtpPassword: cfg.SMTPPassword,
		fromEmail:    cfg.SMTPUser,
		frontendURL:  cfg.FrontendURL,
		timeout:      sendTimeout,
		logger:       logger,
	}
	s.send = s.sendEmail
	return s
}

// WithSender replaces SMTP delivery
func (s *Service) WithSender(send SendFunc) *Service {
	s.send = send
	return s
}

func (s *Service) enabled() bool {
	return s.smtpHost != ""
}

// NotifySignUp sends the welcome email
func (s *Service) NotifySignUp(ctx context.Context, toEmail string) {
	s.dispatch(ctx, toEmail, "Welcome to Task Tracker", welcomeTemplate, s.frontendURL)
}

// NotifyPasswordChanged tells the owner their password was reset
func (s *Service) NotifyPasswordChanged(ctx context.Context, toEmail string) {
	s.dispatch(ctx, toEmail, "Your password was changed", passwordChangedTemplate, s.frontendURL+"/reset-password")
}

func (s *Service) dispatch(_ context.Context, toEmail, subject string, tmpl *template.Template, link string) {
	if !s.enabled() {
		s.logger.Debug("smtp not configured, skipping email", "email", toEmail, "subject", subject)
		return
	}

	body, err := render(tmpl, toEmail, link)
	if err != nil {
		s.logger.Error("failed to render email template", "template", tmpl.Name(), "error", err.Error())
		return
	}

	go func() {
		if err := s.send(toEmail, subject, body); err != nil {
			s.logger.Warn("failed to send email", "email", toEmail, "subject", subject, "error", err.Error())
			return
		}
		s.logger.Info("email sent", "email", toEmail, "subject", subject)
	}()
}

func render(tmpl *template.Template, toEmail, link string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Email string
		Link  string
	}{
		Email: toEmail,
		Link:  link,
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

func (s *Service) sendEmail(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		s.fromEmail, to, subject, body,
	))

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(s.smtpHost, s.smtpPort), s.timeout)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	if err := conn.SetDeadline(time.Now().Add(s.timeout)); err != nil {
		_ = conn.Close()
		return fmt.Errorf("set smtp deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, s.smtpHost)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.smtpHost}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if s.smtpUser != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(smtp.PlainAuth("", s.smtpUser, s.smtpPassword, s.smtpHost)); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err := client.Mail(s.fromEmail); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}

	return client.Quit()
}
