package notifier

import (
	"context"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"github.com/sirupsen/logrus"
)

// MockProvider reports success for every message. It backs the test
// environment and the channels without a real integration.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(ctx context.Context, destino, titulo, mensaje string, metadata entity.JSONMap) error {
	logrus.WithFields(logrus.Fields{
		"destino": destino,
		"titulo":  titulo,
	}).Info("mock notification sent")
	return nil
}
