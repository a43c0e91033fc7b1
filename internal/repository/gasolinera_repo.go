package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DoukeUCB/A-Todo-Gas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GasolineraRepository is the persistence port for stations. Finders return
// (nil, nil) when no record matches so duplicate checks read naturally;
// uniqueness conflicts on write surface as gorm.ErrDuplicatedKey.
type GasolineraRepository interface {
	Create(ctx context.Context, g *model.Gasolinera) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Gasolinera, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Gasolinera, error)
	FindByAddress(ctx context.Context, address string) (*model.Gasolinera, error)
	FindByStationNumber(ctx context.Context, n int) (*model.Gasolinera, error)
	FindByManagerCI(ctx context.Context, ci string) (*model.Gasolinera, error)
	FindAll(ctx context.Context) ([]model.Gasolinera, error)
	Update(ctx context.Context, g *model.Gasolinera) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementTicketCount bumps the per-station counter atomically and
	// returns the new value. Runs inside the caller's transaction.
	IncrementTicketCount(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type gasolineraRepo struct{ db *gorm.DB }

func NewGasolineraRepository(db *gorm.DB) GasolineraRepository { return &gasolineraRepo{db: db} }

func (r *gasolineraRepo) DB() *gorm.DB { return r.db }

func (r *gasolineraRepo) Create(ctx context.Context, g *model.Gasolinera) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gasolineraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Gasolinera, error) {
	var g model.Gasolinera
	return oneOrNil(&g, r.db.WithContext(ctx).First(&g, id).Error)
}

func (r *gasolineraRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Gasolinera, error) {
	var g model.Gasolinera
	return oneOrNil(&g, r.db.WithContext(ctx).Where("user_id = ?", userID).First(&g).Error)
}

func (r *gasolineraRepo) FindByAddress(ctx context.Context, address string) (*model.Gasolinera, error) {
	var g model.Gasolinera
	return oneOrNil(&g, r.db.WithContext(ctx).Where("address = ?", address).First(&g).Error)
}

func (r *gasolineraRepo) FindByStationNumber(ctx context.Context, n int) (*model.Gasolinera, error) {
	var g model.Gasolinera
	return oneOrNil(&g, r.db.WithContext(ctx).Where("station_number = ?", n).First(&g).Error)
}

func (r *gasolineraRepo) FindByManagerCI(ctx context.Context, ci string) (*model.Gasolinera, error) {
	var g model.Gasolinera
	return oneOrNil(&g, r.db.WithContext(ctx).Where("manager_ci = ?", ci).First(&g).Error)
}

func (r *gasolineraRepo) FindAll(ctx context.Context) ([]model.Gasolinera, error) {
	var stations []model.Gasolinera
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&stations).Error
	return stations, err
}

func (r *gasolineraRepo) Update(ctx context.Context, g *model.Gasolinera) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *gasolineraRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Gasolinera{}, id).Error
}

func (r *gasolineraRepo) IncrementTicketCount(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int, error) {
	if tx == nil {
		tx = r.db
	}
	var n int
	err := tx.WithContext(ctx).
		Raw("UPDATE gasolineras SET ticket_count = ticket_count + 1, updated_at = NOW() WHERE id = ? RETURNING ticket_count", id).
		Scan(&n).Error
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("gasolinera %s no existe", id)
	}
	return n, nil
}

// oneOrNil maps gorm.ErrRecordNotFound to a nil record with no error.
func oneOrNil[T any](record *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}
