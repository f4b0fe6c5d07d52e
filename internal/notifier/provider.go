// Package notifier contains the outbound delivery providers and the
// factory that selects one per notification channel.
package notifier

import (
	"context"

	"github.com/cmvn/prestamos-gota-a-gota/config"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

// Provider delivers one message to one destination. Implementations must
// convert every transport failure into a returned error; Send never
// panics and never leaks provider-specific error types to callers.
type Provider interface {
	Send(ctx context.Context, destino, titulo, mensaje string, metadata entity.JSONMap) error
}

// Factory maps a notification channel to a concrete provider.
type Factory struct {
	testMode  bool
	providers map[entity.CanalNotificacion]Provider
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		testMode: cfg.App.Environment == "test",
		providers: map[entity.CanalNotificacion]Provider{
			entity.CanalEmail:    NewEmailProvider(cfg.SMTP),
			entity.CanalSMS:      NewSMSProvider(cfg.Twilio),
			entity.CanalWhatsApp: NewWhatsAppProvider(cfg.WhatsApp),
			entity.CanalTelegram: NewTelegramProvider(cfg.Telegram.BotToken),
			entity.CanalPush:     NewMockProvider(), // push has no real integration yet
		},
	}
}

// Resolve returns the provider for canal. In test mode every channel
// resolves to the mock. Unknown channels also degrade to the mock
// instead of failing.
func (f *Factory) Resolve(canal entity.CanalNotificacion) Provider {
	if f.testMode {
		return NewMockProvider()
	}
	if p, ok := f.providers[canal]; ok {
		return p
	}
	return NewMockProvider()
}
