package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"github.com/redis/go-redis/v9"
)

// CacheRepository keeps hot cliente records in Redis so route listings
// do not hit Postgres on every lookup.
type CacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheRepository(client *redis.Client, ttl time.Duration) *CacheRepository {
	return &CacheRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *CacheRepository) SetCliente(ctx context.Context, cliente *entity.Cliente) error {
	data, err := json.Marshal(cliente)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, clienteKey(cliente.ID), data, r.ttl).Err()
}

func (r *CacheRepository) GetCliente(ctx context.Context, id int64) (*entity.Cliente, error) {
	data, err := r.client.Get(ctx, clienteKey(id)).Result()
	if err != nil {
		return nil, err
	}

	var cliente entity.Cliente
	if err := json.Unmarshal([]byte(data), &cliente); err != nil {
		return nil, err
	}

	return &cliente, nil
}

func (r *CacheRepository) DeleteCliente(ctx context.Context, id int64) error {
	return r.client.Del(ctx, clienteKey(id)).Err()
}

func clienteKey(id int64) string {
	return fmt.Sprintf("cliente:%d", id)
}
