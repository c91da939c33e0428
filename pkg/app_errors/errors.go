package apperrors

import "errors"

var (
	ErrInvalidSeatFormat   = errors.New("invalid seat number format")
	ErrInvalidTimeFormat   = errors.New("invalid time format")
	ErrInvalidDate         = errors.New("travel date cannot be in the past")
	ErrSeatAlreadyReserved = errors.New("the seat is already reserved")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTrainNotFound       = errors.New("train not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
