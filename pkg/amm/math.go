// Package amm implements a two-asset constant-product market maker whose swap
// fee is taken from the output side and split between liquidity and the pool
// owner.
package amm

import (
	"fmt"
	"math/bits"

	"github.com/holiman/uint256"
)

// Quote is the full breakdown of a swap against a given pair of reserves.
type Quote struct {
	InputSide   Side   `json:"input_side"`
	InputAmount uint64 `json:"input_amount"`
	RawOutput   uint64 `json:"raw_output"`
	TotalFee    uint64 `json:"total_fee"`
	AdminFee    uint64 `json:"admin_fee"`
	Output      uint64 `json:"output"`
}

// LiquidityFee is the part of the fee that stays in the output reserve.
func (q Quote) LiquidityFee() uint64 {
	return q.TotalFee - q.AdminFee
}

// Debit is the amount leaving the output-side reserve.
func (q Quote) Debit() uint64 {
	return q.Output + q.AdminFee
}

// GetAmountOut returns floor(reserveOut * amountIn / (reserveIn + amountIn)).
// The product is taken in 256 bits so it cannot overflow.
func GetAmountOut(amountIn, reserveIn, reserveOut uint64) uint64 {
	var num, den uint256.Int
	// num = reserveOut * amountIn
	num.SetUint64(reserveOut)
	num.Mul(&num, new(uint256.Int).SetUint64(amountIn))
	// den = reserveIn + amountIn
	den.SetUint64(reserveIn)
	den.Add(&den, new(uint256.Int).SetUint64(amountIn))
	// result <= reserveOut, fits in 64 bits
	return num.Div(&num, &den).Uint64()
}

// SplitFee charges fees on rawOutput and returns the total fee and the owner's
// share of it. Each division floors, in this order.
func SplitFee(rawOutput uint64, fees FeeSchedule) (totalFee, adminFee uint64) {
	if fees.SwapFeeBps == 0 {
		return 0, 0
	}
	var t uint256.Int
	// totalFee = rawOutput * swapFeeBps / 10000
	t.SetUint64(rawOutput)
	t.Mul(&t, new(uint256.Int).SetUint64(fees.SwapFeeBps))
	t.Div(&t, uint256.NewInt(BasisPoints))
	totalFee = t.Uint64()

	// adminFee = totalFee * adminFeeBps / swapFeeBps
	t.Mul(&t, new(uint256.Int).SetUint64(fees.AdminFeeBps))
	t.Div(&t, new(uint256.Int).SetUint64(fees.SwapFeeBps))
	adminFee = t.Uint64()
	return totalFee, adminFee
}

// ComputeSwap prices a swap of amountIn against reserveIn/reserveOut without
// touching any state. It performs every check a committed swap performs, so a
// nil error means the same swap would succeed against the same reserves.
func ComputeSwap(amountIn, reserveIn, reserveOut, minOut uint64, fees FeeSchedule) (Quote, error) {
	if amountIn == 0 {
		return Quote{}, ErrZeroAmount
	}
	if reserveIn == 0 || reserveOut == 0 {
		return Quote{}, ErrReservesEmpty
	}
	if err := fees.Validate(); err != nil {
		return Quote{}, err
	}

	raw := GetAmountOut(amountIn, reserveIn, reserveOut)
	totalFee, adminFee := SplitFee(raw, fees)
	q := Quote{
		InputAmount: amountIn,
		RawOutput:   raw,
		TotalFee:    totalFee,
		AdminFee:    adminFee,
		Output:      raw - totalFee,
	}

	if q.Output < minOut {
		return Quote{}, fmt.Errorf("%w: got %d, want at least %d", ErrSlippageExceeded, q.Output, minOut)
	}
	debit, carry := bits.Add64(q.Output, q.AdminFee, 0)
	if carry != 0 || reserveOut < debit {
		return Quote{}, fmt.Errorf("%w: reserve %d, debit %d", ErrPoolUnderflow, reserveOut, debit)
	}
	if _, carry := bits.Add64(reserveIn, amountIn, 0); carry != 0 {
		return Quote{}, fmt.Errorf("%w: reserve %d + input %d", ErrReserveOverflow, reserveIn, amountIn)
	}
	return q, nil
}
