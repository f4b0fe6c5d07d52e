package notifier

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cmvn/prestamos-gota-a-gota/config"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

// SMSProvider sends text messages through the Twilio REST API.
type SMSProvider struct {
	cfg    config.TwilioConfig
	client *http.Client
}

func NewSMSProvider(cfg config.TwilioConfig) *SMSProvider {
	return &SMSProvider{
		cfg:    cfg,
		client: &http.Client{},
	}
}

func (p *SMSProvider) Send(ctx context.Context, destino, titulo, mensaje string, metadata entity.JSONMap) error {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", p.cfg.AccountSID)

	params := url.Values{}
	params.Set("To", destino)
	params.Set("From", p.cfg.PhoneNumber)
	params.Set("Body", titulo+"\n"+mensaje)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(p.cfg.AccountSID, p.cfg.AuthToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("twilio API error: %s", resp.Status)
	}

	return nil
}
