// Package events provides swap event sinks.
package events

import (
	"log/slog"

	"github.com/mem-vault/mem-coin/pkg/amm"
)

// LogSink writes swap events to a logger.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) PublishSwap(e amm.SwapEvent) {
	s.logger.Info("swap",
		"pool", e.PoolID.Hex(),
		"caller", e.Caller.Hex(),
		"side", e.InputSide.String(),
		"in", e.InputAmount,
		"out", e.OutputAmount,
		"admin_fee", e.AdminFee,
	)
}

// Fanout publishes every event to each of its sinks in order.
type Fanout []amm.EventSink

func (f Fanout) PublishSwap(e amm.SwapEvent) {
	for _, s := range f {
		if s != nil {
			s.PublishSwap(e)
		}
	}
}
