package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"
	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"
	"github.com/DoukeUCB/A-Todo-Gas/internal/model"
	"github.com/DoukeUCB/A-Todo-Gas/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Disponibles cache: short TTL, dropped on every station write.
const (
	disponiblesCacheKey = "stations:available"
	disponiblesCacheTTL = 30 * time.Second
)

type GasolineraService interface {
	// Registrar is the owner-registration flow: one station per user and per
	// address, gates evaluated in that order before the schedule and the
	// entity invariants.
	Registrar(ctx context.Context, req dto.RegistrarGasolineraRequest) (*dto.GasolineraResponse, error)
	// Crear is the full-record flow keyed by station number and manager CI.
	Crear(ctx context.Context, req dto.CrearGasolineraRequest) (*dto.GasolineraResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.GasolineraResponse, error)
	ObtenerPorManagerCI(ctx context.Context, managerCI string) (*dto.GasolineraResponse, error)
	Listar(ctx context.Context) ([]dto.GasolineraResponse, error)
	// Disponibles returns stations with available == true and fuel left,
	// source order preserved; empty list when none qualify.
	Disponibles(ctx context.Context) ([]dto.GasolineraResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarGasolineraRequest) (*dto.GasolineraResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type gasolineraService struct {
	repo repository.GasolineraRepository
	rdb  *redis.Client
}

func NewGasolineraService(repo repository.GasolineraRepository, rdb *redis.Client) GasolineraService {
	return &gasolineraService{repo: repo, rdb: rdb}
}

// ── Registrar ────────────────────────────────────────────────────────────────
// Gate order matters for error-message determinism:
// ownership → address → schedule → field validation. No gate failure reaches
// the save; a concurrent duplicate that slips past both lookups is caught by
// the unique constraints and reported as the same duplicate failure.

func (s *gasolineraService) Registrar(ctx context.Context, req dto.RegistrarGasolineraRequest) (*dto.GasolineraResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apierror.Validation("userId inválido")
	}

	existente, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apierror.Storage(err, "Error al verificar la gasolinera del usuario")
	}
	if existente != nil {
		return nil, apierror.Duplicate("El usuario ya tiene una gasolinera registrada")
	}

	porDireccion, err := s.repo.FindByAddress(ctx, req.Address)
	if err != nil {
		return nil, apierror.Storage(err, "Error al verificar la dirección")
	}
	if porDireccion != nil {
		return nil, apierror.Duplicate("Ya existe una gasolinera registrada en esta dirección")
	}

	if !model.HorarioValido(req.OpenTime, req.CloseTime) {
		return nil, apierror.InvalidSchedule("La hora de cierre debe ser posterior a la hora de apertura")
	}

	g := &model.Gasolinera{
		UserID:    userID,
		Name:      req.Name,
		Address:   req.Address,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		Available: true,
	}
	if err := g.Validate(); err != nil {
		return nil, apierror.ValidationWrap("Datos de gasolinera inválidos", err)
	}

	if err := s.repo.Create(ctx, g); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Duplicate("El usuario ya tiene una gasolinera registrada o la dirección ya está ocupada")
		}
		return nil, apierror.Storage(err, "Error al guardar la gasolinera")
	}

	s.invalidateDisponibles(ctx)
	return gasolineraToResponse(g), nil
}

// ── Crear ────────────────────────────────────────────────────────────────────
// Duplicate checks come first so their messages name the violated field; the
// entity's own validation error propagates unwrapped.

func (s *gasolineraService) Crear(ctx context.Context, req dto.CrearGasolineraRequest) (*dto.GasolineraResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apierror.Validation("userId inválido")
	}

	porNumero, err := s.repo.FindByStationNumber(ctx, req.StationNumber)
	if err != nil {
		return nil, apierror.Storage(err, "Error al verificar el número de estación")
	}
	if porNumero != nil {
		return nil, apierror.Duplicate(fmt.Sprintf("Ya existe una gasolinera con el número: %d", req.StationNumber))
	}

	porManager, err := s.repo.FindByManagerCI(ctx, req.ManagerCI)
	if err != nil {
		return nil, apierror.Storage(err, "Error al verificar el CI del administrador")
	}
	if porManager != nil {
		return nil, apierror.Duplicate(fmt.Sprintf("El administrador con CI: %s ya tiene una gasolinera asignada", req.ManagerCI))
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	g := &model.Gasolinera{
		StationNumber: &req.StationNumber,
		Name:          req.Name,
		Address:       req.Address,
		OpenTime:      req.OpenTime,
		CloseTime:     req.CloseTime,
		ManagerCI:     &req.ManagerCI,
		UserID:        userID,
		CurrentLevel:  req.CurrentLevel,
		Available:     available,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, g); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Duplicate("Ya existe una gasolinera con esos datos únicos")
		}
		return nil, apierror.Storage(err, "Error al guardar la gasolinera")
	}

	s.invalidateDisponibles(ctx)
	return gasolineraToResponse(g), nil
}

// ── Lecturas ─────────────────────────────────────────────────────────────────

func (s *gasolineraService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.GasolineraResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar la gasolinera")
	}
	if g == nil {
		return nil, apierror.NotFound("Gasolinera no encontrada")
	}
	return gasolineraToResponse(g), nil
}

func (s *gasolineraService) ObtenerPorManagerCI(ctx context.Context, managerCI string) (*dto.GasolineraResponse, error) {
	g, err := s.repo.FindByManagerCI(ctx, managerCI)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar la gasolinera")
	}
	if g == nil {
		return nil, apierror.NotFound("No se encontró gasolinera para este administrador")
	}
	return gasolineraToResponse(g), nil
}

func (s *gasolineraService) Listar(ctx context.Context) ([]dto.GasolineraResponse, error) {
	stations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apierror.Storage(err, "Error al obtener las gasolineras")
	}
	resp := make([]dto.GasolineraResponse, 0, len(stations))
	for i := range stations {
		resp = append(resp, *gasolineraToResponse(&stations[i]))
	}
	return resp, nil
}

func (s *gasolineraService) Disponibles(ctx context.Context) ([]dto.GasolineraResponse, error) {
	if cached := s.cachedDisponibles(ctx); cached != nil {
		return cached, nil
	}

	stations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apierror.Storage(err, "Error al obtener las gasolineras disponibles")
	}

	resp := make([]dto.GasolineraResponse, 0, len(stations))
	for i := range stations {
		st := &stations[i]
		if st.Available && st.CurrentLevel.IsPositive() {
			resp = append(resp, *gasolineraToResponse(st))
		}
	}

	s.storeDisponibles(ctx, resp)
	return resp, nil
}

// ── Actualizar / Eliminar ────────────────────────────────────────────────────

func (s *gasolineraService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarGasolineraRequest) (*dto.GasolineraResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar la gasolinera")
	}
	if g == nil {
		return nil, apierror.NotFound("Gasolinera no encontrada")
	}

	// Patch a copy so a rejected update leaves the loaded entity untouched.
	st := *g
	if req.Name != "" {
		st.Name = req.Name
	}
	if req.Address != "" {
		st.Address = req.Address
	}
	if req.OpenTime != "" {
		st.OpenTime = req.OpenTime
	}
	if req.CloseTime != "" {
		st.CloseTime = req.CloseTime
	}
	if req.CurrentLevel != nil {
		st.CurrentLevel = *req.CurrentLevel
	}
	if req.Available != nil {
		st.Available = *req.Available
	}

	// openTime < closeTime must hold after any patch, including one that
	// changes only one of the two times.
	if err := st.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &st); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Duplicate("La dirección ya está ocupada por otra gasolinera")
		}
		return nil, apierror.Storage(err, "No se pudo actualizar la gasolinera")
	}

	s.invalidateDisponibles(ctx)
	return gasolineraToResponse(&st), nil
}

func (s *gasolineraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Storage(err, "Error al buscar la gasolinera")
	}
	if g == nil {
		return apierror.NotFound("Gasolinera no encontrada")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Storage(err, "No se pudo eliminar la gasolinera")
	}
	s.invalidateDisponibles(ctx)
	return nil
}

// ── Cache helpers ────────────────────────────────────────────────────────────
// All best-effort: a cache miss or redis outage falls through to the DB.

func (s *gasolineraService) cachedDisponibles(ctx context.Context) []dto.GasolineraResponse {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, disponiblesCacheKey).Result()
	if err != nil {
		return nil
	}
	var cached []dto.GasolineraResponse
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil
	}
	return cached
}

func (s *gasolineraService) storeDisponibles(ctx context.Context, resp []dto.GasolineraResponse) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, disponiblesCacheKey, data, disponiblesCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo cachear las gasolineras disponibles")
	}
}

func (s *gasolineraService) invalidateDisponibles(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, disponiblesCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache de disponibles")
	}
}

func gasolineraToResponse(g *model.Gasolinera) *dto.GasolineraResponse {
	resp := &dto.GasolineraResponse{
		ID:           g.ID.String(),
		Name:         g.Name,
		Address:      g.Address,
		OpenTime:     g.OpenTime,
		CloseTime:    g.CloseTime,
		UserID:       g.UserID.String(),
		CurrentLevel: g.CurrentLevel,
		Available:    g.Available,
		TicketCount:  g.TicketCount,
		CreatedAt:    g.CreatedAt.UTC().Format(time.RFC3339),
	}
	if g.StationNumber != nil {
		resp.StationNumber = *g.StationNumber
	}
	if g.ManagerCI != nil {
		resp.ManagerCI = *g.ManagerCI
	}
	return resp
}
