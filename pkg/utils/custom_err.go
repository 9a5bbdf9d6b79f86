package utils

import "errors"

var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrStopNotFound       = errors.New("stop not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrShareNotFound      = errors.New("shared trip not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
)
