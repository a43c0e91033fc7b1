package repository

import (
	"context"

	"github.com/DoukeUCB/A-Todo-Gas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NivelCombustibleRepository interface {
	Save(ctx context.Context, n *model.NivelCombustible) error
	// FindBySurtidorID returns the full history for a dispenser, newest first.
	FindBySurtidorID(ctx context.Context, surtidorID uuid.UUID) ([]model.NivelCombustible, error)
	// FindUltimo returns the reading with the maximum RecordedAt, or nil when
	// the dispenser has no history.
	FindUltimo(ctx context.Context, surtidorID uuid.UUID) (*model.NivelCombustible, error)
}

type nivelRepo struct{ db *gorm.DB }

func NewNivelCombustibleRepository(db *gorm.DB) NivelCombustibleRepository {
	return &nivelRepo{db: db}
}

func (r *nivelRepo) Save(ctx context.Context, n *model.NivelCombustible) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *nivelRepo) FindBySurtidorID(ctx context.Context, surtidorID uuid.UUID) ([]model.NivelCombustible, error) {
	var niveles []model.NivelCombustible
	err := r.db.WithContext(ctx).
		Where("surtidor_id = ?", surtidorID).
		Order("recorded_at DESC").
		Find(&niveles).Error
	return niveles, err
}

func (r *nivelRepo) FindUltimo(ctx context.Context, surtidorID uuid.UUID) (*model.NivelCombustible, error) {
	var n model.NivelCombustible
	return oneOrNil(&n, r.db.WithContext(ctx).
		Where("surtidor_id = ?", surtidorID).
		Order("recorded_at DESC").
		First(&n).Error)
}
