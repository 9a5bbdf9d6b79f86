package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "wayfarer/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *dbm.User) error
	FindByID(ctx context.Context, id string) (*dbm.User, error)
	FindByEmail(ctx context.Context, email string) (*dbm.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *dbm.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*dbm.User, error) {

	var user dbm.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {

	var user dbm.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
