package repository

import (
	"context"

	"github.com/DoukeUCB/A-Todo-Gas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketRepository interface {
	// Create persists a ticket inside the caller's transaction so the number
	// assignment and the insert commit together.
	Create(ctx context.Context, tx *gorm.DB, t *model.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error)
	// FindByUserCI returns the user's tickets, newest first.
	FindByUserCI(ctx context.Context, ci string) ([]model.Ticket, error)
	// FindByStationID returns the station's tickets ordered by ticket number.
	FindByStationID(ctx context.Context, stationID uuid.UUID) ([]model.Ticket, error)
}

type ticketRepo struct{ db *gorm.DB }

func NewTicketRepository(db *gorm.DB) TicketRepository { return &ticketRepo{db: db} }

func (r *ticketRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Ticket) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(t).Error
}

func (r *ticketRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	var t model.Ticket
	return oneOrNil(&t, r.db.WithContext(ctx).First(&t, id).Error)
}

func (r *ticketRepo) FindByUserCI(ctx context.Context, ci string) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.WithContext(ctx).Where("ci = ?", ci).Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepo) FindByStationID(ctx context.Context, stationID uuid.UUID) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.WithContext(ctx).Where("station_id = ?", stationID).Order("ticket_number ASC").Find(&tickets).Error
	return tickets, err
}
