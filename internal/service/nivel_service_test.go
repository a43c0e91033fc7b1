package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"
	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"
	"github.com/DoukeUCB/A-Todo-Gas/internal/model"
	"github.com/DoukeUCB/A-Todo-Gas/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNivelSvc(t *testing.T) (service.NivelService, *stubNivelRepo, *stubSurtidorRepo, *stubGasolineraRepo) {
	t.Helper()
	nivelRepo := &stubNivelRepo{}
	surtidorRepo := newStubSurtidorRepo()
	gasolineraRepo := newStubGasolineraRepo()
	svc := service.NewNivelService(nivelRepo, surtidorRepo, gasolineraRepo)
	return svc, nivelRepo, surtidorRepo, gasolineraRepo
}

func seedSurtidor(t *testing.T, repo *stubSurtidorRepo, number int) *model.Surtidor {
	t.Helper()
	s := &model.Surtidor{GasolineraID: uuid.New(), Number: number}
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestRegistrarNivel_OK(t *testing.T) {
	svc, nivelRepo, surtidorRepo, _ := buildNivelSvc(t)
	s := seedSurtidor(t, surtidorRepo, 1)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarNivelRequest{
		SurtidorID: s.ID.String(),
		Percentage: 72.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 72.5, resp.Percentage)
	assert.Equal(t, 1, nivelRepo.saves)

	// Timestamps go out normalized to UTC, RFC 3339.
	saved := nivelRepo.niveles[0]
	assert.Equal(t, saved.RecordedAt.UTC().Format(time.RFC3339), resp.RecordedAt)
}

func TestRegistrarNivel_FueraDeRango(t *testing.T) {
	svc, nivelRepo, surtidorRepo, _ := buildNivelSvc(t)
	s := seedSurtidor(t, surtidorRepo, 1)

	for _, pct := range []float64{-1, 100.01, 250} {
		_, err := svc.Registrar(context.Background(), dto.RegistrarNivelRequest{
			SurtidorID: s.ID.String(),
			Percentage: pct,
		})
		assert.ErrorContains(t, err, "El porcentaje debe estar entre 0 y 100")
		assert.True(t, apierror.IsKind(err, apierror.KindOutOfRange))
	}
	assert.Zero(t, nivelRepo.saves)
}

func TestRegistrarNivel_BordesPermitidos(t *testing.T) {
	svc, nivelRepo, surtidorRepo, _ := buildNivelSvc(t)
	s := seedSurtidor(t, surtidorRepo, 1)

	for _, pct := range []float64{0, 100} {
		_, err := svc.Registrar(context.Background(), dto.RegistrarNivelRequest{
			SurtidorID: s.ID.String(),
			Percentage: pct,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, nivelRepo.saves)
}

func TestRegistrarNivel_SurtidorNoEncontrado(t *testing.T) {
	svc, nivelRepo, _, _ := buildNivelSvc(t)

	_, err := svc.Registrar(context.Background(), dto.RegistrarNivelRequest{
		SurtidorID: uuid.NewString(),
		Percentage: 50,
	})
	assert.ErrorContains(t, err, "Surtidor no encontrado")
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
	assert.Zero(t, nivelRepo.saves)
}

func TestUltimoNivel_SinHistorial(t *testing.T) {
	svc, _, surtidorRepo, _ := buildNivelSvc(t)
	s := seedSurtidor(t, surtidorRepo, 1)

	resp, err := svc.UltimoNivel(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestUltimoNivel_MaximoRecordedAt(t *testing.T) {
	svc, nivelRepo, surtidorRepo, _ := buildNivelSvc(t)
	s := seedSurtidor(t, surtidorRepo, 1)

	base := time.Now()
	for i, pct := range []float64{30, 80, 55} {
		nivelRepo.niveles = append(nivelRepo.niveles, model.NivelCombustible{
			ID:         uuid.New(),
			SurtidorID: s.ID,
			Percentage: pct,
			RecordedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	resp, err := svc.UltimoNivel(context.Background(), s.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 55.0, resp.Percentage)
}

func TestHistorial_MasRecientePrimero(t *testing.T) {
	svc, nivelRepo, surtidorRepo, _ := buildNivelSvc(t)
	s := seedSurtidor(t, surtidorRepo, 1)

	base := time.Now()
	for i, pct := range []float64{30, 80, 55} {
		nivelRepo.niveles = append(nivelRepo.niveles, model.NivelCombustible{
			ID:         uuid.New(),
			SurtidorID: s.ID,
			Percentage: pct,
			RecordedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	resp, err := svc.Historial(context.Background(), s.ID)
	require.NoError(t, err)
	require.Len(t, resp, 3)
	assert.Equal(t, 55.0, resp[0].Percentage)
	assert.Equal(t, 30.0, resp[2].Percentage)
}

func TestCrearSurtidor_EstacionNoExiste(t *testing.T) {
	svc, _, _, _ := buildNivelSvc(t)

	_, err := svc.CrearSurtidor(context.Background(), uuid.New(), dto.CrearSurtidorRequest{Number: 1})
	assert.ErrorContains(t, err, "Gasolinera no encontrada")
}

func TestCrearSurtidor_NumeroDuplicadoEnEstacion(t *testing.T) {
	svc, _, _, gasolineraRepo := buildNivelSvc(t)
	station := seedEstacion(t, gasolineraRepo, true, 1000)

	_, err := svc.CrearSurtidor(context.Background(), station.ID, dto.CrearSurtidorRequest{Number: 2})
	require.NoError(t, err)

	_, err = svc.CrearSurtidor(context.Background(), station.ID, dto.CrearSurtidorRequest{Number: 2})
	assert.ErrorContains(t, err, "Ya existe un surtidor con ese número en la estación")
	assert.True(t, apierror.IsKind(err, apierror.KindDuplicate))
}

func TestListarSurtidores_OrdenPorNumero(t *testing.T) {
	svc, _, _, gasolineraRepo := buildNivelSvc(t)
	station := seedEstacion(t, gasolineraRepo, true, 1000)

	for _, n := range []int{3, 1, 2} {
		_, err := svc.CrearSurtidor(context.Background(), station.ID, dto.CrearSurtidorRequest{Number: n})
		require.NoError(t, err)
	}

	resp, err := svc.ListarSurtidores(context.Background(), station.ID)
	require.NoError(t, err)
	require.Len(t, resp, 3)
	assert.Equal(t, 1, resp[0].Number)
	assert.Equal(t, 3, resp[2].Number)
}
