package amm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAmountOut(t *testing.T) {
	testCases := []struct {
		name       string
		amountIn   uint64
		reserveIn  uint64
		reserveOut uint64
		expected   uint64
	}{
		{"balanced", 10_000_000, 1_000_000_000, 1_000_000_000, 9_900_990},
		{"small", 1_000, 1_000_000, 1_000_000, 999},
		{"dust rounds to zero", 1, 1_000_000_000, 1, 0},
		// 2^63 * 2^62 overflows 64 bits but not the 256-bit intermediate
		{"wide product", 1 << 62, 1 << 62, 1 << 63, 1 << 62},
		{"max reserves", math.MaxUint64 / 2, math.MaxUint64 / 2, math.MaxUint64, math.MaxUint64 / 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetAmountOut(tc.amountIn, tc.reserveIn, tc.reserveOut))
		})
	}
}

func TestSplitFee(t *testing.T) {
	total, admin := SplitFee(9_900_990, DefaultFees)
	assert.Equal(t, uint64(29_702), total)
	assert.Equal(t, uint64(9_900), admin)

	total, admin = SplitFee(9_900_990, LowAdminFees)
	assert.Equal(t, uint64(29_702), total)
	assert.Equal(t, uint64(4_950), admin)

	total, admin = SplitFee(9_900_990, FeeSchedule{})
	assert.Zero(t, total)
	assert.Zero(t, admin)

	// below 334 base units a 30 bps fee floors to zero
	total, admin = SplitFee(333, DefaultFees)
	assert.Zero(t, total)
	assert.Zero(t, admin)
}

func TestSplitFee_AdminNeverExceedsTotal(t *testing.T) {
	raws := []uint64{0, 1, 333, 334, 9_900_990, 123_456_789_012, math.MaxUint64}
	for swapBps := uint64(0); swapBps <= 100; swapBps++ {
		for adminBps := uint64(0); adminBps <= swapBps; adminBps++ {
			fees, err := NewFeeSchedule(swapBps, adminBps)
			require.NoError(t, err)
			for _, raw := range raws {
				total, admin := SplitFee(raw, fees)
				require.LessOrEqual(t, admin, total, "swap=%d admin=%d raw=%d", swapBps, adminBps, raw)
				require.LessOrEqual(t, total, raw)
			}
		}
	}
}

func TestFeeSchedule_Validate(t *testing.T) {
	_, err := NewFeeSchedule(30, 40)
	require.ErrorIs(t, err, ErrInvalidFeeSchedule)

	_, err = NewFeeSchedule(BasisPoints, 0)
	require.ErrorIs(t, err, ErrInvalidFeeSchedule)

	f, err := NewFeeSchedule(30, 30)
	require.NoError(t, err)
	assert.Equal(t, FeeSchedule{SwapFeeBps: 30, AdminFeeBps: 30}, f)

	require.NoError(t, DefaultFees.Validate())
	require.NoError(t, LowAdminFees.Validate())
}

func TestComputeSwap(t *testing.T) {
	testCases := []struct {
		name        string
		amountIn    uint64
		reserveIn   uint64
		reserveOut  uint64
		minOut      uint64
		fees        FeeSchedule
		expected    Quote
		expectedErr error
	}{
		{
			name:       "reference swap",
			amountIn:   10_000_000,
			reserveIn:  1_000_000_000,
			reserveOut: 1_000_000_000,
			fees:       DefaultFees,
			expected: Quote{
				InputAmount: 10_000_000,
				RawOutput:   9_900_990,
				TotalFee:    29_702,
				AdminFee:    9_900,
				Output:      9_871_288,
			},
		},
		{
			name:       "min out met exactly",
			amountIn:   10_000_000,
			reserveIn:  1_000_000_000,
			reserveOut: 1_000_000_000,
			minOut:     9_871_288,
			fees:       DefaultFees,
			expected: Quote{
				InputAmount: 10_000_000,
				RawOutput:   9_900_990,
				TotalFee:    29_702,
				AdminFee:    9_900,
				Output:      9_871_288,
			},
		},
		{
			name:        "min out checked after fees",
			amountIn:    10_000_000,
			reserveIn:   1_000_000_000,
			reserveOut:  1_000_000_000,
			minOut:      9_871_289,
			fees:        DefaultFees,
			expectedErr: ErrSlippageExceeded,
		},
		{
			name:        "zero amount",
			reserveIn:   1,
			reserveOut:  1,
			fees:        DefaultFees,
			expectedErr: ErrZeroAmount,
		},
		{
			name:        "zero amount wins over empty reserves",
			fees:        DefaultFees,
			expectedErr: ErrZeroAmount,
		},
		{
			name:        "empty input reserve",
			amountIn:    1,
			reserveOut:  1_000,
			fees:        DefaultFees,
			expectedErr: ErrReservesEmpty,
		},
		{
			name:        "empty output reserve",
			amountIn:    1,
			reserveIn:   1_000,
			fees:        DefaultFees,
			expectedErr: ErrReservesEmpty,
		},
		{
			name:        "admin fee above swap fee",
			amountIn:    10_000_000,
			reserveIn:   1_000_000_000,
			reserveOut:  1_000_000_000,
			fees:        FeeSchedule{SwapFeeBps: 30, AdminFeeBps: 31},
			expectedErr: ErrInvalidFeeSchedule,
		},
		{
			name:        "input reserve overflow",
			amountIn:    10,
			reserveIn:   math.MaxUint64 - 5,
			reserveOut:  1_000,
			fees:        DefaultFees,
			expectedErr: ErrReserveOverflow,
		},
		{
			name:        "dust output below minimum",
			amountIn:    1,
			reserveIn:   1_000_000_000,
			reserveOut:  1,
			minOut:      1,
			fees:        DefaultFees,
			expectedErr: ErrSlippageExceeded,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ComputeSwap(tc.amountIn, tc.reserveIn, tc.reserveOut, tc.minOut, tc.fees)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, Quote{}, q)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, q)
			assert.Equal(t, tc.expected.TotalFee-tc.expected.AdminFee, q.LiquidityFee())
		})
	}
}

func TestComputeSwap_DebitBelowReserve(t *testing.T) {
	reserves := []uint64{1, 7, 1_000, 1_000_000_007, math.MaxUint64 / 3}
	amounts := []uint64{1, 3, 999, 1_000_000, math.MaxUint64 / 3}
	for _, rIn := range reserves {
		for _, rOut := range reserves {
			for _, in := range amounts {
				q, err := ComputeSwap(in, rIn, rOut, 0, DefaultFees)
				require.NoError(t, err)
				require.Less(t, q.Debit(), rOut, "in=%d rIn=%d rOut=%d", in, rIn, rOut)
				require.Equal(t, q.RawOutput-q.TotalFee, q.Output)
			}
		}
	}
}
