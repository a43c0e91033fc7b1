package service_test

import (
	"context"
	"testing"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"
	"github.com/DoukeUCB/A-Todo-Gas/internal/config"
	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"
	"github.com/DoukeUCB/A-Todo-Gas/internal/model"
	"github.com/DoukeUCB/A-Todo-Gas/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildUsuarioSvc() (service.UsuarioService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 2}
	return service.NewUsuarioService(repo, cfg), repo
}

func registrarUsuarioReq() dto.RegistrarUsuarioRequest {
	return dto.RegistrarUsuarioRequest{
		FullName: "María Fernández",
		CI:       "1234567",
		Email:    "maria@example.com",
		Phone:    "591 70000000",
		Password: "secreta123",
		Role:     model.RolConductor,
	}
}

func TestRegistrarUsuario_HasheaPassword(t *testing.T) {
	svc, repo := buildUsuarioSvc()

	resp, err := svc.Registrar(context.Background(), registrarUsuarioReq())
	require.NoError(t, err)
	assert.Equal(t, "1234567", resp.CI)

	stored := repo.users[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secreta123")))
}

func TestRegistrarUsuario_CIDuplicado(t *testing.T) {
	svc, repo := buildUsuarioSvc()

	_, err := svc.Registrar(context.Background(), registrarUsuarioReq())
	require.NoError(t, err)

	req := registrarUsuarioReq()
	req.Email = "otra@example.com"
	_, err = svc.Registrar(context.Background(), req)
	assert.ErrorContains(t, err, "Ya existe un usuario con el CI: 1234567")
	assert.True(t, apierror.IsKind(err, apierror.KindDuplicate))
	assert.Equal(t, 1, repo.saves)
}

func TestRegistrarUsuario_EmailDuplicado(t *testing.T) {
	svc, _ := buildUsuarioSvc()

	_, err := svc.Registrar(context.Background(), registrarUsuarioReq())
	require.NoError(t, err)

	req := registrarUsuarioReq()
	req.CI = "7654321"
	_, err = svc.Registrar(context.Background(), req)
	assert.ErrorContains(t, err, "Ya existe un usuario con el email: maria@example.com")
}

func TestRegistrarUsuario_CINoNumerico(t *testing.T) {
	svc, repo := buildUsuarioSvc()

	req := registrarUsuarioReq()
	req.CI = "12A4567"
	_, err := svc.Registrar(context.Background(), req)
	assert.ErrorContains(t, err, "El CI es requerido y debe contener solo números")
	assert.Zero(t, repo.saves)
}

func TestRegistrarUsuario_RolInvalido(t *testing.T) {
	svc, repo := buildUsuarioSvc()

	req := registrarUsuarioReq()
	req.Role = "admin"
	_, err := svc.Registrar(context.Background(), req)
	assert.ErrorContains(t, err, `El rol debe ser "conductor" o "gasolinera"`)
	assert.Zero(t, repo.saves)
}

func TestLogin_OK(t *testing.T) {
	svc, _ := buildUsuarioSvc()

	_, err := svc.Registrar(context.Background(), registrarUsuarioReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{CI: "1234567", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 2*3600, resp.ExpiresIn)
	assert.Equal(t, "1234567", resp.User.CI)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	svc, _ := buildUsuarioSvc()

	_, err := svc.Registrar(context.Background(), registrarUsuarioReq())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{CI: "1234567", Password: "equivocada"})
	assert.ErrorContains(t, err, "Contraseña incorrecta")
	assert.True(t, apierror.IsKind(err, apierror.KindUnauthorized))
}

func TestLogin_UsuarioNoEncontrado(t *testing.T) {
	svc, _ := buildUsuarioSvc()

	_, err := svc.Login(context.Background(), dto.LoginRequest{CI: "0000000", Password: "x"})
	assert.ErrorContains(t, err, "Usuario no encontrado")
	assert.True(t, apierror.IsKind(err, apierror.KindUnauthorized))
}

func TestActualizarUsuario_RehashDePassword(t *testing.T) {
	svc, repo := buildUsuarioSvc()

	created, err := svc.Registrar(context.Background(), registrarUsuarioReq())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Actualizar(context.Background(), id, dto.ActualizarUsuarioRequest{Password: "nueva456"})
	require.NoError(t, err)

	stored := repo.users[id]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("nueva456")))
}

func TestActualizarUsuario_PatchRechazadoNoMuta(t *testing.T) {
	svc, repo := buildUsuarioSvc()

	created, err := svc.Registrar(context.Background(), registrarUsuarioReq())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Actualizar(context.Background(), id, dto.ActualizarUsuarioRequest{Email: "sin-arroba"})
	require.Error(t, err)

	// The stored user keeps its original email after the rejected patch.
	stored := repo.users[id]
	require.NotNil(t, stored)
	assert.Equal(t, "maria@example.com", stored.Email)
}

func TestActualizarUsuario_NoEncontrado(t *testing.T) {
	svc, _ := buildUsuarioSvc()

	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarUsuarioRequest{FullName: "Otro"})
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestEliminarUsuario_NoEncontrado(t *testing.T) {
	svc, _ := buildUsuarioSvc()

	err := svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "Usuario no encontrado")
}
