package amm

import (
	"fmt"
	"math/bits"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Pool holds two reserves and the owner's fee balances for each asset.
// All methods are safe for concurrent use; each state change runs under a
// single lock so swaps are totally ordered.
type Pool struct {
	id    common.Hash
	owner common.Address
	fees  FeeSchedule
	sink  EventSink
	now   func() time.Time

	mu        sync.Mutex
	reserves  [2]uint64
	adminFees [2]uint64
}

// Option configures a Pool.
type Option func(*Pool)

// WithEventSink sets the sink that receives swap events.
func WithEventSink(s EventSink) Option {
	return func(p *Pool) { p.sink = s }
}

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(p *Pool) { p.now = now }
}

// NewPool creates a pool funded with reserveA and reserveB. Either amount may
// be zero, in which case the pool cannot be swapped against until funded.
func NewPool(id common.Hash, owner common.Address, reserveA, reserveB uint64, fees FeeSchedule, opts ...Option) (*Pool, error) {
	if err := fees.Validate(); err != nil {
		return nil, err
	}
	p := &Pool{
		id:       id,
		owner:    owner,
		fees:     fees,
		now:      time.Now,
		reserves: [2]uint64{reserveA, reserveB},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Pool) ID() common.Hash { return p.id }
func (p *Pool) Owner() common.Address { return p.owner }
func (p *Pool) Fees() FeeSchedule { return p.fees }

// Quote prices a swap against the current reserves without committing it.
func (p *Pool) Quote(amountIn uint64, in Side, minOut uint64) (Quote, error) {
	if !in.Valid() {
		return Quote{}, ErrInvalidSide
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quoteLocked(amountIn, in, minOut)
}

func (p *Pool) quoteLocked(amountIn uint64, in Side, minOut uint64) (Quote, error) {
	q, err := ComputeSwap(amountIn, p.reserves[in], p.reserves[in.Other()], minOut, p.fees)
	if err != nil {
		return Quote{}, err
	}
	q.InputSide = in
	return q, nil
}

// Swap trades amountIn of the in asset for the other asset. The whole input
// is added to the input reserve; the output and the owner's fee leave the
// output reserve, and the owner's fee is credited to the output-side fee
// balance. On error nothing changes.
func (p *Pool) Swap(caller common.Address, amountIn uint64, in Side, minOut uint64) (Quote, error) {
	if !in.Valid() {
		return Quote{}, ErrInvalidSide
	}

	p.mu.Lock()
	q, err := p.quoteLocked(amountIn, in, minOut)
	if err != nil {
		p.mu.Unlock()
		return Quote{}, err
	}
	out := in.Other()
	p.reserves[in] += q.InputAmount
	p.reserves[out] -= q.Debit()
	p.adminFees[out] += q.AdminFee
	p.mu.Unlock()

	if p.sink != nil {
		p.sink.PublishSwap(SwapEvent{
			Caller:       caller,
			PoolID:       p.id,
			InputSide:    in,
			InputAmount:  q.InputAmount,
			OutputAmount: q.Output,
			AdminFee:     q.AdminFee,
			Time:         p.now(),
		})
	}
	return q, nil
}

// WithdrawAdminFee moves amount out of the owner's fee balance for side.
// Reserves are never touched.
func (p *Pool) WithdrawAdminFee(caller common.Address, side Side, amount uint64) (uint64, error) {
	if caller != p.owner {
		return 0, ErrUnauthorized
	}
	if !side.Valid() {
		return 0, ErrInvalidSide
	}
	if amount == 0 {
		return 0, ErrZeroAmount
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if amount > p.adminFees[side] {
		return 0, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientFeeBalance, amount, p.adminFees[side])
	}
	p.adminFees[side] -= amount
	return amount, nil
}

// Fund adds liquidity to both reserves. Only the owner may fund a pool.
func (p *Pool) Fund(caller common.Address, amountA, amountB uint64) error {
	if caller != p.owner {
		return ErrUnauthorized
	}
	if amountA == 0 && amountB == 0 {
		return ErrZeroAmount
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	a, carryA := bits.Add64(p.reserves[SideA], amountA, 0)
	b, carryB := bits.Add64(p.reserves[SideB], amountB, 0)
	if carryA != 0 || carryB != 0 {
		return ErrReserveOverflow
	}
	p.reserves[SideA], p.reserves[SideB] = a, b
	return nil
}

// Reserve returns the tradable balance of side.
func (p *Pool) Reserve(side Side) uint64 {
	if !side.Valid() {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reserves[side]
}

// Reserves returns both tradable balances read at the same instant.
func (p *Pool) Reserves() (a, b uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reserves[SideA], p.reserves[SideB]
}

// AdminFee returns the owner's accumulated fee for side.
func (p *Pool) AdminFee(side Side) uint64 {
	if !side.Valid() {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.adminFees[side]
}

func (p *Pool) AdminFees() (a, b uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.adminFees[SideA], p.adminFees[SideB]
}

// State is a point-in-time copy of a pool.
type State struct {
	ID        common.Hash    `json:"id"`
	Owner     common.Address `json:"owner"`
	Fees      FeeSchedule    `json:"fees"`
	ReserveA  uint64         `json:"reserve_a"`
	ReserveB  uint64         `json:"reserve_b"`
	AdminFeeA uint64         `json:"admin_fee_a"`
	AdminFeeB uint64         `json:"admin_fee_b"`
}

// Snapshot returns a consistent copy of every field.
func (p *Pool) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return State{
		ID:        p.id,
		Owner:     p.owner,
		Fees:      p.fees,
		ReserveA:  p.reserves[SideA],
		ReserveB:  p.reserves[SideB],
		AdminFeeA: p.adminFees[SideA],
		AdminFeeB: p.adminFees[SideB],
	}
}
