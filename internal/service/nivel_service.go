package service

import (
	"context"
	"errors"
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"
	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"
	"github.com/DoukeUCB/A-Todo-Gas/internal/model"
	"github.com/DoukeUCB/A-Todo-Gas/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NivelService interface {
	// Registrar rejects out-of-range percentages before resolving the
	// dispenser; nothing is persisted on any failure.
	Registrar(ctx context.Context, req dto.RegistrarNivelRequest) (*dto.NivelResponse, error)
	// Historial returns every reading for a dispenser, newest first.
	Historial(ctx context.Context, surtidorID uuid.UUID) ([]dto.NivelResponse, error)
	// UltimoNivel returns the reading with the maximum recordedAt, or
	// (nil, nil) when the dispenser has no history.
	UltimoNivel(ctx context.Context, surtidorID uuid.UUID) (*dto.NivelResponse, error)
	CrearSurtidor(ctx context.Context, stationID uuid.UUID, req dto.CrearSurtidorRequest) (*dto.SurtidorResponse, error)
	ListarSurtidores(ctx context.Context, stationID uuid.UUID) ([]dto.SurtidorResponse, error)
}

type nivelService struct {
	repo           repository.NivelCombustibleRepository
	surtidorRepo   repository.SurtidorRepository
	gasolineraRepo repository.GasolineraRepository
}

func NewNivelService(
	repo repository.NivelCombustibleRepository,
	surtidorRepo repository.SurtidorRepository,
	gasolineraRepo repository.GasolineraRepository,
) NivelService {
	return &nivelService{repo: repo, surtidorRepo: surtidorRepo, gasolineraRepo: gasolineraRepo}
}

func (s *nivelService) Registrar(ctx context.Context, req dto.RegistrarNivelRequest) (*dto.NivelResponse, error) {
	if req.Percentage < 0 || req.Percentage > 100 {
		return nil, apierror.OutOfRange("El porcentaje debe estar entre 0 y 100")
	}

	surtidorID, err := uuid.Parse(req.SurtidorID)
	if err != nil {
		return nil, apierror.Validation("Se debe seleccionar un surtidor")
	}
	surtidor, err := s.surtidorRepo.FindByID(ctx, surtidorID)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar el surtidor")
	}
	if surtidor == nil {
		return nil, apierror.NotFound("Surtidor no encontrado")
	}

	nivel := &model.NivelCombustible{
		SurtidorID: surtidorID,
		Percentage: req.Percentage,
		RecordedAt: time.Now(),
	}
	if err := nivel.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, nivel); err != nil {
		return nil, apierror.Storage(err, "Error al guardar el nivel de combustible")
	}
	return nivelToResponse(nivel), nil
}

func (s *nivelService) Historial(ctx context.Context, surtidorID uuid.UUID) ([]dto.NivelResponse, error) {
	niveles, err := s.repo.FindBySurtidorID(ctx, surtidorID)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar niveles de combustible")
	}
	resp := make([]dto.NivelResponse, 0, len(niveles))
	for i := range niveles {
		resp = append(resp, *nivelToResponse(&niveles[i]))
	}
	return resp, nil
}

func (s *nivelService) UltimoNivel(ctx context.Context, surtidorID uuid.UUID) (*dto.NivelResponse, error) {
	n, err := s.repo.FindUltimo(ctx, surtidorID)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar el último nivel")
	}
	if n == nil {
		return nil, nil
	}
	return nivelToResponse(n), nil
}

func (s *nivelService) CrearSurtidor(ctx context.Context, stationID uuid.UUID, req dto.CrearSurtidorRequest) (*dto.SurtidorResponse, error) {
	station, err := s.gasolineraRepo.FindByID(ctx, stationID)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar la gasolinera")
	}
	if station == nil {
		return nil, apierror.NotFound("Gasolinera no encontrada")
	}

	surtidor := &model.Surtidor{GasolineraID: stationID, Number: req.Number}
	if err := surtidor.Validate(); err != nil {
		return nil, err
	}
	if err := s.surtidorRepo.Create(ctx, surtidor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Duplicate("Ya existe un surtidor con ese número en la estación")
		}
		return nil, apierror.Storage(err, "Error al guardar el surtidor")
	}
	return surtidorToResponse(surtidor), nil
}

func (s *nivelService) ListarSurtidores(ctx context.Context, stationID uuid.UUID) ([]dto.SurtidorResponse, error) {
	surtidores, err := s.surtidorRepo.FindByGasolineraID(ctx, stationID)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar surtidores por estación")
	}
	resp := make([]dto.SurtidorResponse, 0, len(surtidores))
	for i := range surtidores {
		resp = append(resp, *surtidorToResponse(&surtidores[i]))
	}
	return resp, nil
}

func nivelToResponse(n *model.NivelCombustible) *dto.NivelResponse {
	return &dto.NivelResponse{
		ID:         n.ID.String(),
		SurtidorID: n.SurtidorID.String(),
		Percentage: n.Percentage,
		RecordedAt: n.RecordedAt.UTC().Format(time.RFC3339),
	}
}

func surtidorToResponse(s *model.Surtidor) *dto.SurtidorResponse {
	return &dto.SurtidorResponse{
		ID:           s.ID.String(),
		GasolineraID: s.GasolineraID.String(),
		Number:       s.Number,
	}
}
