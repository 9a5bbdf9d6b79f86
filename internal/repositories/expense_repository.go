package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wayfarer/internal/models/db_models"
)

type ExpenseRepository interface {
	Insert(ctx context.Context, expense *dbm.Expense) error
	FindByID(ctx context.Context, expenseID uuid.UUID) (*dbm.Expense, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.Expense, error)
	Delete(ctx context.Context, expenseID uuid.UUID) error
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Insert(ctx context.Context, expense *dbm.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) FindByID(ctx context.Context, expenseID uuid.UUID) (*dbm.Expense, error) {

	var expense dbm.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", expenseID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &expense, nil
}

func (r *expenseRepository) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.Expense, error) {

	var expenses []dbm.Expense
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("expense_date ASC NULLS LAST, created_at ASC").
		Find(&expenses).Error

	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *expenseRepository) Delete(ctx context.Context, expenseID uuid.UUID) error {

	result := r.db.WithContext(ctx).
		Where("id = ?", expenseID).
		Delete(&dbm.Expense{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
