package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/DoukeUCB/A-Todo-Gas/internal/apierror"
	"github.com/DoukeUCB/A-Todo-Gas/internal/dto"
	"github.com/DoukeUCB/A-Todo-Gas/internal/infra"
	"github.com/DoukeUCB/A-Todo-Gas/internal/model"
	"github.com/DoukeUCB/A-Todo-Gas/internal/repository"
	"github.com/DoukeUCB/A-Todo-Gas/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketService interface {
	Crear(ctx context.Context, req dto.CrearTicketRequest) (*dto.TicketResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.TicketResponse, error)
	// ListarPorCI returns the user's tickets, newest first.
	ListarPorCI(ctx context.Context, ci string) ([]dto.TicketResponse, error)
	// ListarPorEstacion returns a station's tickets ascending by ticket number.
	ListarPorEstacion(ctx context.Context, stationID uuid.UUID) ([]dto.TicketResponse, error)
	// ReciboPDF returns the path of the receipt PDF for a ticket, rendering it
	// on demand when the worker has not produced it yet.
	ReciboPDF(ctx context.Context, id uuid.UUID) (string, error)
}

type ticketService struct {
	repo           repository.TicketRepository
	gasolineraRepo repository.GasolineraRepository
	usuarioRepo    repository.UsuarioRepository
	dispatcher     *worker.Dispatcher
	pdfStoragePath string
}

func NewTicketService(
	repo repository.TicketRepository,
	gasolineraRepo repository.GasolineraRepository,
	usuarioRepo repository.UsuarioRepository,
	dispatcher *worker.Dispatcher,
	pdfStoragePath string,
) TicketService {
	return &ticketService{
		repo:           repo,
		gasolineraRepo: gasolineraRepo,
		usuarioRepo:    usuarioRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ────────────────────────────────────────────────────────────────────
// Gates: station exists → station available → enough fuel. The ticket number
// comes from an atomic per-station counter increment inside the same
// transaction as the insert, so two concurrent creations cannot share a
// number; a rolled-back insert also rolls the counter back.

func (s *ticketService) Crear(ctx context.Context, req dto.CrearTicketRequest) (*dto.TicketResponse, error) {
	stationID, err := uuid.Parse(req.StationID)
	if err != nil {
		return nil, apierror.Validation("stationId inválido")
	}

	station, err := s.gasolineraRepo.FindByID(ctx, stationID)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar la gasolinera")
	}
	if station == nil {
		return nil, apierror.NotFound("Gasolinera no encontrada")
	}
	if !station.Available {
		return nil, apierror.Unavailable("La gasolinera no está disponible")
	}
	if req.RequestedLiters.IsPositive() && req.RequestedLiters.GreaterThan(station.CurrentLevel) {
		return nil, apierror.InsufficientFuel("La gasolinera no tiene combustible suficiente")
	}

	var ticket model.Ticket
	txErr := runTx(ctx, s.gasolineraRepo.DB(), func(tx *gorm.DB) error {
		num, err := s.gasolineraRepo.IncrementTicketCount(ctx, tx, station.ID)
		if err != nil {
			return err
		}

		ticket = model.Ticket{
			CI:              req.CI,
			Plate:           strings.ToUpper(req.Plate),
			TicketNumber:    num,
			StationID:       station.ID,
			StationName:     station.Name,
			RequestedLiters: req.RequestedLiters,
		}
		if err := ticket.Validate(); err != nil {
			return err
		}
		return s.repo.Create(ctx, tx, &ticket)
	})
	if txErr != nil {
		var ae *apierror.Error
		if errors.As(txErr, &ae) {
			return nil, ae
		}
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, apierror.Duplicate("Número de ticket duplicado para la estación")
		}
		return nil, apierror.Storage(txErr, "Error al crear el ticket")
	}

	// Receipt mailing is best effort and never blocks the creation path.
	s.enqueueReceipt(ctx, &ticket)

	return ticketToResponse(&ticket), nil
}

func (s *ticketService) enqueueReceipt(ctx context.Context, t *model.Ticket) {
	if s.dispatcher == nil {
		return
	}
	payload := worker.TicketReceiptPayload{TicketID: t.ID.String()}
	if u, err := s.usuarioRepo.FindByCI(ctx, t.CI); err == nil && u != nil {
		payload.ToEmail = u.Email
	}
	_ = s.dispatcher.EnqueueTicketReceipt(ctx, payload)
}

// ── Lecturas ─────────────────────────────────────────────────────────────────

func (s *ticketService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.TicketResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Storage(err, "Error al buscar el ticket")
	}
	if t == nil {
		return nil, apierror.NotFound("Ticket no encontrado")
	}
	return ticketToResponse(t), nil
}

func (s *ticketService) ListarPorCI(ctx context.Context, ci string) ([]dto.TicketResponse, error) {
	tickets, err := s.repo.FindByUserCI(ctx, ci)
	if err != nil {
		return nil, apierror.Storage(err, "Error al obtener los tickets")
	}
	return ticketsToResponse(tickets), nil
}

func (s *ticketService) ListarPorEstacion(ctx context.Context, stationID uuid.UUID) ([]dto.TicketResponse, error) {
	tickets, err := s.repo.FindByStationID(ctx, stationID)
	if err != nil {
		return nil, apierror.Storage(err, "Error al obtener los tickets")
	}
	return ticketsToResponse(tickets), nil
}

func (s *ticketService) ReciboPDF(ctx context.Context, id uuid.UUID) (string, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", apierror.Storage(err, "Error al buscar el ticket")
	}
	if t == nil {
		return "", apierror.NotFound("Ticket no encontrado")
	}

	path := infra.TicketPDFPath(t, s.pdfStoragePath)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	path, err = infra.GenerateTicketPDF(t, s.pdfStoragePath)
	if err != nil {
		return "", apierror.Storage(err, "Error al generar el recibo")
	}
	return path, nil
}

func ticketsToResponse(tickets []model.Ticket) []dto.TicketResponse {
	resp := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, *ticketToResponse(&tickets[i]))
	}
	return resp
}

func ticketToResponse(t *model.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:              t.ID.String(),
		CI:              t.CI,
		Plate:           t.Plate,
		TicketNumber:    t.TicketNumber,
		StationID:       t.StationID.String(),
		StationName:     t.StationName,
		RequestedLiters: t.RequestedLiters,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
