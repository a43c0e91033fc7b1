package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"
	"github.com/DoukeUCB/A-Todo-Gas/internal/config"
	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"
	"github.com/DoukeUCB/A-Todo-Gas/internal/model"
	"github.com/DoukeUCB/A-Todo-Gas/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UsuarioService interface {
	Registrar(ctx context.Context, req dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewUsuarioService(repo repository.UsuarioRepository, cfg *config.Config) UsuarioService {
	return &usuarioService{repo: repo, cfg: cfg}
}

// ── Registrar ────────────────────────────────────────────────────────────────
// CI check, then email check, then entity validation, then persistence.
// The password is validated as plaintext and hashed just before the save so
// an empty password cannot hide behind a non-empty hash.

func (s *usuarioService) Registrar(ctx context.Context, req dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error) {
	porCI, err := s.repo.FindByCI(ctx, req.CI)
	if err != nil {
		return nil, apierror.Storage(err, "Error al verificar el CI")
	}
	if porCI != nil {
		return nil, apierror.Duplicate(fmt.Sprintf("Ya existe un usuario con el CI: %s", req.CI))
	}

	porEmail, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Storage(err, "Error al verificar el email")
	}
	if porEmail != nil {
		return nil, apierror.Duplicate(fmt.Sprintf("Ya existe un usuario con el email: %s", req.Email))
	}

	u := &model.Usuario{
		FullName: req.FullName,
		CI:       req.CI,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Storage(err, "Error al procesar la contraseña")
	}
	u.Password = string(hash)

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Duplicate("Ya existe un usuario con ese CI o email")
		}
		return nil, apierror.Storage(err, "Error al guardar el usuario")
	}

	return usuarioToResponse(u), nil
}

// ── Login ────────────────────────────────────────────────────────────────────

func (s *usuarioService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.repo.FindByCI(ctx, req.CI)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar el usuario")
	}
	if u == nil {
		return nil, apierror.Unauthorized("Usuario no encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("Contraseña incorrecta")
	}

	token, err := s.generateToken(u)
	if err != nil {
		return nil, apierror.Storage(err, "Error al generar el token")
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        *usuarioToResponse(u),
	}, nil
}

// ── Lecturas / Actualizar / Eliminar ────────────────────────────────────────

func (s *usuarioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar el usuario")
	}
	if u == nil {
		return nil, apierror.NotFound("Usuario no encontrado")
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar el usuario")
	}
	if u == nil {
		return nil, apierror.NotFound("Usuario no encontrado")
	}

	// Patch a copy so a rejected update leaves the loaded entity untouched.
	usr := *u
	if req.FullName != "" {
		usr.FullName = req.FullName
	}
	if req.Email != "" {
		usr.Email = req.Email
	}
	if req.Phone != "" {
		usr.Phone = req.Phone
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apierror.Storage(err, "Error al procesar la contraseña")
		}
		usr.Password = string(hash)
	}

	if err := usr.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Duplicate("Ya existe un usuario con ese email")
		}
		return nil, apierror.Storage(err, "No se pudo actualizar el usuario")
	}
	return usuarioToResponse(&usr), nil
}

func (s *usuarioService) Eliminar(ctx context.Context, id uuid.UUID) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Storage(err, "Error al buscar el usuario")
	}
	if u == nil {
		return apierror.NotFound("Usuario no encontrado")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Storage(err, "No se pudo eliminar el usuario")
	}
	return nil
}

func (s *usuarioService) generateToken(u *model.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"ci":      u.CI,
		"role":    u.Role,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:       u.ID.String(),
		FullName: u.FullName,
		CI:       u.CI,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}
