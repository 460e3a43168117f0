package handler

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mem-vault/mem-coin/pkg/amm"
)

// spotPricePlaces is the number of decimal places of PoolView.SpotPrice.
const spotPricePlaces = 18

// PoolView is the JSON form of a pool. Amounts are base-10 strings.
type PoolView struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	SwapFeeBps  uint64 `json:"swap_fee_bps"`
	AdminFeeBps uint64 `json:"admin_fee_bps"`
	ReserveA    string `json:"reserve_a"`
	ReserveB    string `json:"reserve_b"`
	AdminFeeA   string `json:"admin_fee_a"`
	AdminFeeB   string `json:"admin_fee_b"`
	// SpotPrice is reserve_b / reserve_a, empty while reserve_a is zero.
	SpotPrice string `json:"spot_price,omitempty"`
}

func newPoolView(s amm.State) PoolView {
	return PoolView{
		ID:          s.ID.Hex(),
		Owner:       s.Owner.Hex(),
		SwapFeeBps:  s.Fees.SwapFeeBps,
		AdminFeeBps: s.Fees.AdminFeeBps,
		ReserveA:    formatAmount(s.ReserveA),
		ReserveB:    formatAmount(s.ReserveB),
		AdminFeeA:   formatAmount(s.AdminFeeA),
		AdminFeeB:   formatAmount(s.AdminFeeB),
		SpotPrice:   spotPrice(s.ReserveA, s.ReserveB),
	}
}

func spotPrice(reserveA, reserveB uint64) string {
	if reserveA == 0 {
		return ""
	}
	a := decimal.NewFromBigInt(new(big.Int).SetUint64(reserveA), 0)
	b := decimal.NewFromBigInt(new(big.Int).SetUint64(reserveB), 0)
	return b.DivRound(a, spotPricePlaces).String()
}

// QuoteView is the JSON form of a swap quote.
type QuoteView struct {
	InputSide    string `json:"input_side"`
	AmountIn     string `json:"amount_in"`
	RawOutput    string `json:"raw_output"`
	TotalFee     string `json:"total_fee"`
	AdminFee     string `json:"admin_fee"`
	LiquidityFee string `json:"liquidity_fee"`
	AmountOut    string `json:"amount_out"`
}

func newQuoteView(q amm.Quote) QuoteView {
	return QuoteView{
		InputSide:    q.InputSide.String(),
		AmountIn:     formatAmount(q.InputAmount),
		RawOutput:    formatAmount(q.RawOutput),
		TotalFee:     formatAmount(q.TotalFee),
		AdminFee:     formatAmount(q.AdminFee),
		LiquidityFee: formatAmount(q.LiquidityFee()),
		AmountOut:    formatAmount(q.Output),
	}
}

func formatAmount(v uint64) string {
	return strconv.FormatUint(v, 10)
}
