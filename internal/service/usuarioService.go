package service

import (
	"context"
	"errors"

	repository "github.com/cmvn/prestamos-gota-a-gota/internal/database/postgres"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
	"github.com/cmvn/prestamos-gota-a-gota/pkg/auth"
)

type RegisterUsuarioRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Nombre   string `json:"nombre" binding:"required,min=1,max=255"`
	Password string `json:"password" binding:"required,min=8"`
	RolID    int64  `json:"rol_id" binding:"required"`
}

type UpdateUsuarioRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Nombre   *string `json:"nombre,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
	RolID    *int64  `json:"rol_id,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	Usuario     *entity.Usuario `json:"usuario"`
}

type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
	tokens      *auth.TokenManager
}

func NewUsuarioService(usuarioRepo repository.UsuarioRepository, tokens *auth.TokenManager) UsuarioService {
	return &usuarioService{
		usuarioRepo: usuarioRepo,
		tokens:      tokens,
	}
}

func (s *usuarioService) RegisterUsuario(ctx context.Context, req *RegisterUsuarioRequest) (*entity.Usuario, error) {
	if _, err := s.usuarioRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, entity.ErrEmailAlreadyInUse
	} else if !errors.Is(err, entity.ErrUsuarioNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	usuario := &entity.Usuario{
		Email:          req.Email,
		Nombre:         req.Nombre,
		HashedPassword: hash,
		RolID:          req.RolID,
	}

	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

func (s *usuarioService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	usuario, err := s.usuarioRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUsuarioNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(req.Password, usuario.HashedPassword) {
		return nil, entity.ErrInvalidCredentials
	}
	if !usuario.IsActive {
		return nil, entity.ErrInactiveUsuario
	}

	token, err := s.tokens.Issue(usuario.ID, usuario.RolID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Usuario:     usuario,
	}, nil
}

func (s *usuarioService) GetUsuario(ctx context.Context, id int64) (*entity.Usuario, error) {
	return s.usuarioRepo.GetByID(ctx, id)
}

func (s *usuarioService) GetAllUsuarios(ctx context.Context, limit, offset int) ([]*entity.Usuario, error) {
	return s.usuarioRepo.GetAll(ctx, limit, offset)
}

func (s *usuarioService) UpdateUsuario(ctx context.Context, id int64, req *UpdateUsuarioRequest) (*entity.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != usuario.Email {
		if _, err := s.usuarioRepo.GetByEmail(ctx, *req.Email); err == nil {
			return nil, entity.ErrEmailAlreadyInUse
		} else if !errors.Is(err, entity.ErrUsuarioNotFound) {
			return nil, err
		}
		usuario.Email = *req.Email
	}
	if req.Nombre != nil {
		usuario.Nombre = *req.Nombre
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		usuario.HashedPassword = hash
	}
	if req.RolID != nil {
		usuario.RolID = *req.RolID
	}
	if req.IsActive != nil {
		usuario.IsActive = *req.IsActive
	}

	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

func (s *usuarioService) DeleteUsuario(ctx context.Context, id int64) error {
	return s.usuarioRepo.Delete(ctx, id)
}
