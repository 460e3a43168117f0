package amm

import "errors"

var (
	ErrZeroAmount             = errors.New("amount must be greater than zero")
	ErrReservesEmpty          = errors.New("pool reserves are empty")
	ErrSlippageExceeded       = errors.New("output below minimum")
	ErrPoolUnderflow          = errors.New("debit exceeds pool reserve")
	ErrUnauthorized           = errors.New("caller is not the pool owner")
	ErrInsufficientFeeBalance = errors.New("insufficient admin fee balance")
	ErrReserveOverflow        = errors.New("reserve overflow")
	ErrInvalidSide            = errors.New("invalid asset side")
	ErrInvalidFeeSchedule     = errors.New("invalid fee schedule")
)
