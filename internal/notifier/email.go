package notifier

import (
	"context"

	"github.com/cmvn/prestamos-gota-a-gota/config"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"gopkg.in/mail.v2"
)

type EmailProvider struct {
	cfg config.SMTPConfig
}

func NewEmailProvider(cfg config.SMTPConfig) *EmailProvider {
	return &EmailProvider{cfg: cfg}
}

func (p *EmailProvider) Send(ctx context.Context, destino, titulo, mensaje string, metadata entity.JSONMap) error {
	message := mail.NewMessage()

	message.SetHeader("From", p.cfg.FromEmail)
	message.SetHeader("To", destino)
	message.SetHeader("Subject", titulo)

	message.SetBody("text/plain", mensaje)

	dialer := mail.NewDialer(p.cfg.Host, p.cfg.Port, p.cfg.Username, p.cfg.Password)
	dialer.StartTLSPolicy = mail.MandatoryStartTLS

	return dialer.DialAndSend(message)
}
