package service

import "errors"

var (
	ErrSeedingDisabled = errors.New("no Ethereum RPC endpoint configured")
	ErrReserveTooLarge = errors.New("pair reserve does not fit in 64 bits")
	ErrZeroPairAddress = errors.New("pair address cannot be the zero address")
)
