package service

import (
	"context"
	"fmt"

	repository "github.com/cmvn/prestamos-gota-a-gota/internal/database/postgres"
	"github.com/cmvn/prestamos-gota-a-gota/internal/database/redis"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"github.com/sirupsen/logrus"
)

type CreateClienteRequest struct {
	Cedula    string `json:"cedula" binding:"required,min=5,max=20"`
	Nombre    string `json:"nombre" binding:"required,min=1,max=100"`
	Apellido  string `json:"apellido" binding:"required,min=1,max=100"`
	Telefono  string `json:"telefono" binding:"required,min=7,max=20"`
	Direccion string `json:"direccion" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
}

type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Apellido  *string `json:"apellido,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Activo    *bool   `json:"activo,omitempty"`
}

type clienteService struct {
	clienteRepo repository.ClienteRepository
	cache       *redis.CacheRepository
}

func NewClienteService(clienteRepo repository.ClienteRepository, cache *redis.CacheRepository) ClienteService {
	return &clienteService{
		clienteRepo: clienteRepo,
		cache:       cache,
	}
}

func (s *clienteService) CreateCliente(ctx context.Context, req *CreateClienteRequest) (*entity.Cliente, error) {
	cliente := &entity.Cliente{
		Cedula:    req.Cedula,
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Email:     req.Email,
	}

	if err := s.clienteRepo.Create(ctx, cliente); err != nil {
		return nil, err
	}

	return cliente, nil
}

func (s *clienteService) GetCliente(ctx context.Context, id int64) (*entity.Cliente, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCliente(ctx, id); err == nil {
			return cached, nil
		}
	}

	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCliente(ctx, cliente); err != nil {
			logrus.WithError(err).Warn("failed to cache cliente")
		}
	}

	return cliente, nil
}

func (s *clienteService) GetClienteByCedula(ctx context.Context, cedula string) (*entity.Cliente, error) {
	return s.clienteRepo.GetByCedula(ctx, cedula)
}

func (s *clienteService) GetAllClientes(ctx context.Context, limit, offset int) ([]*entity.Cliente, error) {
	clientes, err := s.clienteRepo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get clientes: %w", err)
	}
	return clientes, nil
}

func (s *clienteService) UpdateCliente(ctx context.Context, id int64, req *UpdateClienteRequest) (*entity.Cliente, error) {
	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		cliente.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		cliente.Apellido = *req.Apellido
	}
	if req.Telefono != nil {
		cliente.Telefono = *req.Telefono
	}
	if req.Direccion != nil {
		cliente.Direccion = *req.Direccion
	}
	if req.Email != nil {
		cliente.Email = *req.Email
	}
	if req.Activo != nil {
		cliente.Activo = *req.Activo
	}

	if err := s.clienteRepo.Update(ctx, cliente); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.DeleteCliente(ctx, id); err != nil {
			logrus.WithError(err).Warn("failed to invalidate cliente cache")
		}
	}

	return cliente, nil
}

func (s *clienteService) DeleteCliente(ctx context.Context, id int64) error {
	if err := s.clienteRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.DeleteCliente(ctx, id); err != nil {
			logrus.WithError(err).Warn("failed to invalidate cliente cache")
		}
	}

	return nil
}
