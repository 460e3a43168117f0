// Package registry keeps the live pools of a process keyed by pool id.
package registry

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/mem-vault/mem-coin/pkg/amm"
)

var (
	ErrPoolNotFound = errors.New("pool not found")
	ErrPoolExists   = errors.New("pool already registered")
)

// Registry maps pool ids to pools. Each pool guards its own state; the
// registry lock only protects the map.
type Registry struct {
	mu    sync.RWMutex
	nonce uint64
	pools map[common.Hash]*amm.Pool
}

func New() *Registry {
	return &Registry{pools: make(map[common.Hash]*amm.Pool)}
}

// NextID derives a fresh pool id as keccak256(owner || nonce).
func (r *Registry) NextID(owner common.Address) common.Hash {
	r.mu.Lock()
	n := r.nonce
	r.nonce++
	r.mu.Unlock()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	return crypto.Keccak256Hash(owner.Bytes(), buf[:])
}

// Add registers p under its id.
func (r *Registry) Add(p *amm.Pool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pools[p.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrPoolExists, p.ID().Hex())
	}
	r.pools[p.ID()] = p
	return nil
}

func (r *Registry) Get(id common.Hash) (*amm.Pool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pools[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPoolNotFound, id.Hex())
	}
	return p, nil
}

// List returns every pool ordered by id.
func (r *Registry) List() []*amm.Pool {
	r.mu.RLock()
	out := make([]*amm.Pool, 0, len(r.pools))
	for _, p := range r.pools {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().Cmp(out[j].ID()) < 0
	})
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pools)
}
