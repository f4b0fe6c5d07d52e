package service

import (
	"context"

	repository "github.com/cmvn/prestamos-gota-a-gota/internal/database/postgres"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type CreateRutaRequest struct {
	Nombre      string  `json:"nombre" binding:"required,min=1,max=100"`
	Zona        string  `json:"zona" binding:"required,min=1,max=100"`
	CobradorID  int64   `json:"cobrador_id" binding:"required"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type UpdateRutaRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Zona        *string `json:"zona,omitempty"`
	CobradorID  *int64  `json:"cobrador_id,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Activa      *bool   `json:"activa,omitempty"`
}

type rutaService struct {
	rutaRepo    repository.RutaRepository
	usuarioRepo repository.UsuarioRepository
}

func NewRutaService(rutaRepo repository.RutaRepository, usuarioRepo repository.UsuarioRepository) RutaService {
	return &rutaService{
		rutaRepo:    rutaRepo,
		usuarioRepo: usuarioRepo,
	}
}

func (s *rutaService) CreateRuta(ctx context.Context, req *CreateRutaRequest) (*entity.Ruta, error) {
	if _, err := s.usuarioRepo.GetByID(ctx, req.CobradorID); err != nil {
		return nil, entity.ErrCobradorNotFound
	}

	ruta := &entity.Ruta{
		Nombre:      req.Nombre,
		Zona:        req.Zona,
		CobradorID:  req.CobradorID,
		Descripcion: req.Descripcion,
	}

	if err := s.rutaRepo.Create(ctx, ruta); err != nil {
		return nil, err
	}

	return ruta, nil
}

func (s *rutaService) GetRuta(ctx context.Context, id int64) (*entity.Ruta, error) {
	return s.rutaRepo.GetByID(ctx, id)
}

func (s *rutaService) GetRutasByCobrador(ctx context.Context, cobradorID int64) ([]*entity.Ruta, error) {
	return s.rutaRepo.GetByCobrador(ctx, cobradorID)
}

func (s *rutaService) UpdateRuta(ctx context.Context, id int64, req *UpdateRutaRequest) (*entity.Ruta, error) {
	ruta, err := s.rutaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CobradorID != nil {
		if _, err := s.usuarioRepo.GetByID(ctx, *req.CobradorID); err != nil {
			return nil, entity.ErrCobradorNotFound
		}
		ruta.CobradorID = *req.CobradorID
	}
	if req.Nombre != nil {
		ruta.Nombre = *req.Nombre
	}
	if req.Zona != nil {
		ruta.Zona = *req.Zona
	}
	if req.Descripcion != nil {
		ruta.Descripcion = req.Descripcion
	}
	if req.Activa != nil {
		ruta.Activa = *req.Activa
	}

	if err := s.rutaRepo.Update(ctx, ruta); err != nil {
		return nil, err
	}

	return ruta, nil
}

func (s *rutaService) DeleteRuta(ctx context.Context, id int64) error {
	return s.rutaRepo.Delete(ctx, id)
}
