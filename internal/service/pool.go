package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mem-vault/mem-coin/internal/eth"
	"github.com/mem-vault/mem-coin/internal/events"
	"github.com/mem-vault/mem-coin/internal/metrics"
	"github.com/mem-vault/mem-coin/internal/registry"
	"github.com/mem-vault/mem-coin/pkg/amm"
)

// PoolService creates pools and routes trades and fee withdrawals to them.
type PoolService struct {
	BaseService
	registry *registry.Registry
	fees     amm.FeeSchedule
	sink     amm.EventSink
	metrics  *metrics.Metrics
	chain    eth.StorageReader
}

// Options holds the optional collaborators of a PoolService.
type Options struct {
	// Sink receives swap events of every pool created by the service.
	Sink amm.EventSink
	// Metrics is updated on every swap and withdrawal when set.
	Metrics *metrics.Metrics
	// Chain enables SeedPool.
	Chain eth.StorageReader
}

func NewPoolService(logger *slog.Logger, reg *registry.Registry, fees amm.FeeSchedule, opts Options) (*PoolService, error) {
	if err := fees.Validate(); err != nil {
		return nil, err
	}
	sink := opts.Sink
	if opts.Metrics != nil {
		if sink != nil {
			sink = events.Fanout{sink, opts.Metrics}
		} else {
			sink = opts.Metrics
		}
	}
	return &PoolService{
		BaseService: BaseService{logger: logger},
		registry:    reg,
		fees:        fees,
		sink:        sink,
		metrics:     opts.Metrics,
		chain:       opts.Chain,
	}, nil
}

// Fees returns the schedule applied to new pools.
func (s *PoolService) Fees() amm.FeeSchedule {
	return s.fees
}

// CreatePool registers a new pool owned by owner. Either amount may be zero.
func (s *PoolService) CreatePool(ctx context.Context, owner common.Address, amountA, amountB uint64) (*amm.Pool, error) {
	var opts []amm.Option
	if s.sink != nil {
		opts = append(opts, amm.WithEventSink(s.sink))
	}
	p, err := amm.NewPool(s.registry.NextID(owner), owner, amountA, amountB, s.fees, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.registry.Add(p); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.Pools.Set(float64(s.registry.Len()))
	}
	s.logger.Info("pool created", "pool", p.ID().Hex(), "owner", owner.Hex(), "a", amountA, "b", amountB)
	return p, nil
}

// SeedPool creates a pool funded with the current reserves of a Uniswap V2
// pair: reserve0 becomes asset A and reserve1 asset B.
func (s *PoolService) SeedPool(ctx context.Context, owner, pair common.Address) (*amm.Pool, error) {
	if s.chain == nil {
		return nil, ErrSeedingDisabled
	}
	if pair == (common.Address{}) {
		return nil, ErrZeroPairAddress
	}
	st, err := eth.ReadPair(ctx, s.chain, pair)
	if err != nil {
		return nil, fmt.Errorf("read pair %s: %w", pair.Hex(), err)
	}
	if !st.Reserve0.IsUint64() || !st.Reserve1.IsUint64() {
		return nil, fmt.Errorf("%w: reserve0=%s reserve1=%s", ErrReserveTooLarge, st.Reserve0, st.Reserve1)
	}
	s.logger.Debug("pair loaded", "pair", pair.Hex(), "block", st.Block, "token0", st.Token0.Hex(), "token1", st.Token1.Hex())
	return s.CreatePool(ctx, owner, st.Reserve0.Uint64(), st.Reserve1.Uint64())
}

func (s *PoolService) Pool(id common.Hash) (*amm.Pool, error) {
	return s.registry.Get(id)
}

func (s *PoolService) Pools() []*amm.Pool {
	return s.registry.List()
}

// Quote previews a swap without executing it.
func (s *PoolService) Quote(ctx context.Context, id common.Hash, side amm.Side, amountIn uint64) (amm.Quote, error) {
	p, err := s.registry.Get(id)
	if err != nil {
		return amm.Quote{}, err
	}
	return p.Quote(amountIn, side, 0)
}

// Swap executes a trade of amountIn on side against pool id.
func (s *PoolService) Swap(ctx context.Context, caller common.Address, id common.Hash, side amm.Side, amountIn, minOut uint64) (amm.Quote, error) {
	p, err := s.registry.Get(id)
	if err != nil {
		return amm.Quote{}, err
	}

	start := time.Now()
	q, err := p.Swap(caller, amountIn, side, minOut)
	if s.metrics != nil {
		s.metrics.SwapDuration.Observe(time.Since(start).Seconds())
		s.metrics.ObserveSwap(side, err)
	}
	if err != nil {
		s.logger.Debug("swap rejected", "pool", id.Hex(), "caller", caller.Hex(), "side", side.String(), "in", amountIn, "min_out", minOut, "err", err)
		return amm.Quote{}, err
	}
	s.logger.Debug("swap executed", "pool", id.Hex(), "side", side.String(), "in", amountIn, "out", q.Output, "admin_fee", q.AdminFee)
	return q, nil
}

// Fund adds owner liquidity to pool id.
func (s *PoolService) Fund(ctx context.Context, caller common.Address, id common.Hash, amountA, amountB uint64) error {
	p, err := s.registry.Get(id)
	if err != nil {
		return err
	}
	if err := p.Fund(caller, amountA, amountB); err != nil {
		return err
	}
	s.logger.Info("pool funded", "pool", id.Hex(), "a", amountA, "b", amountB)
	return nil
}

// WithdrawAdminFee pays amount of the side's accumulated admin fee to the
// pool owner.
func (s *PoolService) WithdrawAdminFee(ctx context.Context, caller common.Address, id common.Hash, side amm.Side, amount uint64) (uint64, error) {
	p, err := s.registry.Get(id)
	if err != nil {
		return 0, err
	}
	got, err := p.WithdrawAdminFee(caller, side, amount)
	if err != nil {
		s.logger.Debug("withdrawal rejected", "pool", id.Hex(), "caller", caller.Hex(), "side", side.String(), "amount", amount, "err", err)
		return 0, err
	}
	if s.metrics != nil {
		s.metrics.AdminFeeWithdrawn.WithLabelValues(side.String()).Add(float64(got))
	}
	s.logger.Info("admin fee withdrawn", "pool", id.Hex(), "side", side.String(), "amount", got)
	return got, nil
}
