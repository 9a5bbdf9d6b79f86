package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	dbm "wayfarer/internal/models/db_models"
)

type ShareRepository interface {
	FindByTripID(ctx context.Context, tripID uuid.UUID) (*dbm.SharedTrip, error)
	FindPublicByShareID(ctx context.Context, shareID string) (*dbm.SharedTrip, error)
	Insert(ctx context.Context, share *dbm.SharedTrip) error
}

type shareRepository struct {
	db *gorm.DB
}

func NewShareRepository(db *gorm.DB) ShareRepository {
	return &shareRepository{db: db}
}

func (r *shareRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) (*dbm.SharedTrip, error) {

	var share dbm.SharedTrip
	err := r.db.WithContext(ctx).First(&share, "trip_id = ?", tripID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &share, nil
}

func (r *shareRepository) FindPublicByShareID(ctx context.Context, shareID string) (*dbm.SharedTrip, error) {

	var share dbm.SharedTrip
	err := r.db.WithContext(ctx).
		Where("share_id = ? AND is_public = ?", shareID, true).
		First(&share).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &share, nil
}

func (r *shareRepository) Insert(ctx context.Context, share *dbm.SharedTrip) error {
	return r.db.WithContext(ctx).Create(share).Error
}

// IsUniqueViolation reports whether err is the storage layer rejecting a
// duplicate row on a unique index. Two concurrent share requests for one
// trip both try to insert; the loser sees this and should refetch the
// winner's record instead of failing.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}

	// sqlite used by the test suite reports the constraint in the message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
