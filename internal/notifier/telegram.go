package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

// TelegramProvider sends messages through the Telegram Bot API.
type TelegramProvider struct {
	token  string
	client *http.Client
}

func NewTelegramProvider(token string) *TelegramProvider {
	return &TelegramProvider{
		token:  token,
		client: &http.Client{},
	}
}

type telegramRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func (p *TelegramProvider) Send(ctx context.Context, destino, titulo, mensaje string, metadata entity.JSONMap) error {
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", p.token)

	reqBody := telegramRequest{
		ChatID:    destino,
		Text:      fmt.Sprintf("*%s*\n%s", titulo, mensaje),
		ParseMode: "Markdown",
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
