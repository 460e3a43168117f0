package eth

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Storage slots of a UniswapV2Pair:
//
//	slot 6: token0
//	slot 7: token1
//	slot 8: [ 32 bits blockTimestampLast | 112 bits reserve1 | 112 bits reserve0 ]
const (
	slotToken0   = 6
	slotToken1   = 7
	slotReserves = 8
)

// StorageReader is the subset of ethclient.Client used to read pair storage.
type StorageReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error)
}

// PairState is a pair's tokens and reserves at a block.
type PairState struct {
	Block    uint64
	Token0   common.Address
	Token1   common.Address
	Reserve0 *big.Int
	Reserve1 *big.Int
}

// ReadPair loads token addresses and reserves of a Uniswap V2 pair at the
// latest block.
func ReadPair(ctx context.Context, c StorageReader, pair common.Address) (*PairState, error) {
	bn, err := c.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("block number: %w", err)
	}
	blockNum := new(big.Int).SetUint64(bn)

	b0, err := readSlot(ctx, c, pair, blockNum, slotToken0)
	if err != nil {
		return nil, err
	}
	b1, err := readSlot(ctx, c, pair, blockNum, slotToken1)
	if err != nil {
		return nil, err
	}
	br, err := readSlot(ctx, c, pair, blockNum, slotReserves)
	if err != nil {
		return nil, err
	}
	reserve0, reserve1 := parseReserves(br)

	return &PairState{
		Block:    bn,
		Token0:   common.BytesToAddress(b0),
		Token1:   common.BytesToAddress(b1),
		Reserve0: reserve0,
		Reserve1: reserve1,
	}, nil
}

func readSlot(ctx context.Context, c StorageReader, pair common.Address, blockNum *big.Int, slot uint64) ([]byte, error) {
	key := common.BigToHash(new(big.Int).SetUint64(slot))
	b, err := c.StorageAt(ctx, pair, key, blockNum)
	if err != nil {
		return nil, fmt.Errorf("storageAt slot %d (pair %s, block %s): %w",
			slot, pair.Hex(), blockNum.String(), err)
	}
	return b, nil
}

// parseReserves unpacks the two uint112 reserves from the big-endian 256-bit
// storage word.
func parseReserves(b []byte) (reserve0, reserve1 *big.Int) {
	v := new(big.Int).SetBytes(b)
	one := big.NewInt(1)
	mask112 := new(big.Int).Sub(new(big.Int).Lsh(one, 112), one)

	reserve0 = new(big.Int).And(v, mask112)
	tmp := new(big.Int).Rsh(v, 112)
	reserve1 = new(big.Int).And(tmp, mask112)
	return
}
