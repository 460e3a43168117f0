// Package store persists swap events asynchronously.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mem-vault/mem-coin/pkg/amm"
)

// Writer saves a single swap record.
type Writer interface {
	SaveSwap(rec *SwapRecord) error
}

// Store queues swap events and writes them on a background goroutine. A full
// queue drops the event; swaps never wait on the database.
type Store struct {
	ctx    context.Context
	logger *slog.Logger
	swaps  chan *SwapRecord
	writer Writer
	wg     sync.WaitGroup
}

func NewStore(ctx context.Context, logger *slog.Logger, w Writer, queue int) *Store {
	return &Store{
		ctx:    ctx,
		logger: logger,
		swaps:  make(chan *SwapRecord, queue),
		writer: w,
	}
}

func (s *Store) Start() {
	s.wg.Add(1)
	go s.store()
}

// Wait blocks until the background goroutine exits after ctx is cancelled.
func (s *Store) Wait() {
	s.wg.Wait()
}

func (s *Store) store() {
	defer s.wg.Done()
	for {
		select {
		case rec := <-s.swaps:
			s.save(rec)
		case <-s.ctx.Done():
			// drain what is already queued
			for {
				select {
				case rec := <-s.swaps:
					s.save(rec)
				default:
					return
				}
			}
		}
	}
}

func (s *Store) save(rec *SwapRecord) {
	if err := s.writer.SaveSwap(rec); err != nil {
		s.logger.Error("save swap", "pool", rec.PoolId, "err", err)
	}
}

func (s *Store) PublishSwap(e amm.SwapEvent) {
	select {
	case s.swaps <- newSwapRecord(e):
	default:
		s.logger.Warn("swap queue full, dropping event", "pool", e.PoolID.Hex())
	}
}
