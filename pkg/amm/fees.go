package amm

import "fmt"

// BasisPoints is 100% expressed in basis points.
const BasisPoints = 10_000

// FeeSchedule configures how much of a swap's output is charged as fee and how
// much of that fee is set aside for the pool owner. AdminFeeBps is measured
// as a fraction of SwapFeeBps, not of the swap amount.
type FeeSchedule struct {
	SwapFeeBps  uint64 `json:"swap_fee_bps"`
	AdminFeeBps uint64 `json:"admin_fee_bps"`
}

var (
	// DefaultFees charges 0.30% with a third of it going to the owner.
	DefaultFees = FeeSchedule{SwapFeeBps: 30, AdminFeeBps: 10}
	// LowAdminFees charges 0.30% with a sixth of it going to the owner.
	LowAdminFees = FeeSchedule{SwapFeeBps: 30, AdminFeeBps: 5}
)

// NewFeeSchedule returns a validated fee schedule.
func NewFeeSchedule(swapFeeBps, adminFeeBps uint64) (FeeSchedule, error) {
	f := FeeSchedule{SwapFeeBps: swapFeeBps, AdminFeeBps: adminFeeBps}
	if err := f.Validate(); err != nil {
		return FeeSchedule{}, err
	}
	return f, nil
}

// Validate rejects schedules where the admin share could exceed the total fee.
func (f FeeSchedule) Validate() error {
	if f.SwapFeeBps >= BasisPoints {
		return fmt.Errorf("%w: swap fee %d bps must be below %d", ErrInvalidFeeSchedule, f.SwapFeeBps, BasisPoints)
	}
	if f.AdminFeeBps > f.SwapFeeBps {
		return fmt.Errorf("%w: admin fee %d bps exceeds swap fee %d bps", ErrInvalidFeeSchedule, f.AdminFeeBps, f.SwapFeeBps)
	}
	return nil
}
