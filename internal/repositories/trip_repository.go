package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripwise/internal/models/db_models"
)

type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) error
	// FindByIdForOwner returns nil, nil when the trip does not exist or
	// belongs to someone else.
	FindByIdForOwner(ctx context.Context, id, ownerId string) (*dbm.Trip, error)
	ListByOwner(ctx context.Context, ownerId string, page, pageSize int) ([]dbm.Trip, int64, error)
	ListAll(ctx context.Context, page, pageSize int) ([]dbm.Trip, int64, error)
	Save(ctx context.Context, trip *dbm.Trip) error
	DeleteForOwner(ctx context.Context, id, ownerId string) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByIdForOwner(ctx context.Context, id, ownerId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerId).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerId string, page, pageSize int) ([]dbm.Trip, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("owner_id = ?", ownerId), page, pageSize)
}

func (r *tripRepository) ListAll(ctx context.Context, page, pageSize int) ([]dbm.Trip, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx), page, pageSize)
}

func (r *tripRepository) list(ctx context.Context, scope *gorm.DB, page, pageSize int) ([]dbm.Trip, int64, error) {
	var total int64
	if err := scope.Session(&gorm.Session{}).Model(&dbm.Trip{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trips []dbm.Trip
	err := scope.Session(&gorm.Session{}).
		Order("updated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}

	return trips, total, nil
}

func (r *tripRepository) Save(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) DeleteForOwner(ctx context.Context, id, ownerId string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerId).
		Delete(&dbm.Trip{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
