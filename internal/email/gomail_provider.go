package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// GomailProvider реализует Provider поверх gomail
type GomailProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

// NewGomailProvider создает SMTP провайдер
func NewGomailProvider(config *SMTPConfig, renderer TemplateRenderer) *GomailProvider {
	return &GomailProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

// Send отправляет email сообщение
func (p *GomailProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.Body)

	return p.dialer.DialAndSend(m)
}

// SendTemplate отправляет email по шаблону
func (p *GomailProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	body, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(&Email{
		To:      to,
		Subject: subject,
		Body:    body,
	})
}

// Close закрывает соединение с провайдером.
// gomail открывает соединение на каждую отправку, закрывать нечего.
func (p *GomailProvider) Close() error {
	return nil
}
