package repository

import (
	"context"

	"github.com/DoukeUCB/A-Todo-Gas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SurtidorRepository interface {
	Create(ctx context.Context, s *model.Surtidor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Surtidor, error)
	FindByGasolineraID(ctx context.Context, stationID uuid.UUID) ([]model.Surtidor, error)
}

type surtidorRepo struct{ db *gorm.DB }

func NewSurtidorRepository(db *gorm.DB) SurtidorRepository { return &surtidorRepo{db: db} }

func (r *surtidorRepo) Create(ctx context.Context, s *model.Surtidor) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *surtidorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Surtidor, error) {
	var s model.Surtidor
	return oneOrNil(&s, r.db.WithContext(ctx).First(&s, id).Error)
}

func (r *surtidorRepo) FindByGasolineraID(ctx context.Context, stationID uuid.UUID) ([]model.Surtidor, error) {
	var surtidores []model.Surtidor
	err := r.db.WithContext(ctx).Where("gasolinera_id = ?", stationID).Order("number ASC").Find(&surtidores).Error
	return surtidores, err
}
