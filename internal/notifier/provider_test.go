package notifier

import (
	"context"
	"testing"

	"github.com/cmvn/prestamos-gota-a-gota/config"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(environment string) *config.Config {
	return &config.Config{
		SMTP: config.SMTPConfig{
			Host:      "smtp.example.com",
			Port:      587,
			Username:  "notifier",
			Password:  "secret",
			FromEmail: "no-reply@example.com",
		},
		Twilio: config.TwilioConfig{
			AccountSID:  "AC123",
			AuthToken:   "token",
			PhoneNumber: "+10000000000",
		},
		WhatsApp: config.WhatsAppConfig{Token: "token", PhoneID: "12345"},
		Telegram: config.TelegramConfig{BotToken: "bot-token"},
		App:      config.AppConfig{Environment: environment},
	}
}

func TestFactoryResolve(t *testing.T) {
	factory := NewFactory(testConfig("production"))

	tests := []struct {
		name  string
		canal entity.CanalNotificacion
		want  interface{}
	}{
		{name: "email resolves to smtp provider", canal: entity.CanalEmail, want: &EmailProvider{}},
		{name: "sms resolves to twilio provider", canal: entity.CanalSMS, want: &SMSProvider{}},
		{name: "whatsapp resolves to graph provider", canal: entity.CanalWhatsApp, want: &WhatsAppProvider{}},
		{name: "telegram resolves to bot provider", canal: entity.CanalTelegram, want: &TelegramProvider{}},
		{name: "push falls back to mock", canal: entity.CanalPush, want: &MockProvider{}},
		{name: "unknown channel falls back to mock", canal: entity.CanalNotificacion("fax"), want: &MockProvider{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := factory.Resolve(tt.canal)
			require.NotNil(t, provider)
			assert.IsType(t, tt.want, provider)
		})
	}
}

func TestFactoryResolveTestMode(t *testing.T) {
	factory := NewFactory(testConfig("test"))

	for _, canal := range entity.Canales() {
		provider := factory.Resolve(canal)
		assert.IsType(t, &MockProvider{}, provider, "canal %s should resolve to mock in test mode", canal)
	}
}

func TestMockProviderAlwaysSucceeds(t *testing.T) {
	provider := NewMockProvider()

	err := provider.Send(context.Background(), "user@example.com", "titulo", "mensaje", entity.JSONMap{"k": "v"})
	assert.NoError(t, err)

	err = provider.Send(context.Background(), "", "", "", nil)
	assert.NoError(t, err)
}
