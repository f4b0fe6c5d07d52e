package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmvn/prestamos-gota-a-gota/config"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

// WhatsAppProvider sends messages through the WhatsApp Business
// (Facebook Graph) API.
type WhatsAppProvider struct {
	cfg    config.WhatsAppConfig
	client *http.Client
}

func NewWhatsAppProvider(cfg config.WhatsAppConfig) *WhatsAppProvider {
	return &WhatsAppProvider{
		cfg:    cfg,
		client: &http.Client{},
	}
}

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

func (p *WhatsAppProvider) Send(ctx context.Context, destino, titulo, mensaje string, metadata entity.JSONMap) error {
	endpoint := fmt.Sprintf("https://graph.facebook.com/v17.0/%s/messages", p.cfg.PhoneID)

	reqBody := whatsAppRequest{
		MessagingProduct: "whatsapp",
		To:               destino,
		Type:             "text",
		Text:             whatsAppText{Body: titulo + "\n" + mensaje},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp API error: %s", resp.Status)
	}

	return nil
}
