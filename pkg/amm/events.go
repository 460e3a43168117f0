package amm

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// SwapEvent describes a committed swap.
type SwapEvent struct {
	Caller       common.Address `json:"caller"`
	PoolID       common.Hash    `json:"pool_id"`
	InputSide    Side           `json:"input_side"`
	InputAmount  uint64         `json:"input_amount"`
	OutputAmount uint64         `json:"output_amount"`
	AdminFee     uint64         `json:"admin_fee"`
	Time         time.Time      `json:"time"`
}

// EventSink receives swap events. Publishing is advisory; implementations
// must not block the caller for long and cannot fail the swap.
type EventSink interface {
	PublishSwap(SwapEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(SwapEvent)

func (f EventSinkFunc) PublishSwap(e SwapEvent) { f(e) }
