package eth

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

type fakeEth struct {
	blockNumber uint64
	// storage[address][positionHash] = 32-byte value
	storage map[common.Address]map[common.Hash][]byte
}

func (f *fakeEth) BlockNumber(ctx context.Context) (hexutil.Uint64, error) {
	return hexutil.Uint64(f.blockNumber), nil
}

func (f *fakeEth) GetStorageAt(ctx context.Context, addr common.Address, position common.Hash, _ gethrpc.BlockNumberOrHash) (hexutil.Bytes, error) {
	if m, ok := f.storage[addr]; ok {
		if v, ok2 := m[position]; ok2 {
			return hexutil.Bytes(v), nil
		}
	}
	return hexutil.Bytes(make([]byte, 32)), nil
}

func newInprocEthClient(t *testing.T, fe *fakeEth) *ethclient.Client {
	t.Helper()
	srv := gethrpc.NewServer()
	if err := srv.RegisterName("eth", fe); err != nil {
		t.Fatalf("register rpc service: %v", err)
	}
	return ethclient.NewClient(gethrpc.DialInProc(srv))
}

func packReserves(r0, r1 *big.Int, ts uint32) []byte {
	v := new(big.Int).SetUint64(uint64(ts))
	v.Lsh(v, 112)
	v.Or(v, r1)
	v.Lsh(v, 112)
	v.Or(v, r0)
	return common.BigToHash(v).Bytes()
}

func TestReadPair(t *testing.T) {
	token0 := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	token1 := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	pair := common.HexToAddress("0x0000000000000000000000000000000000000abc")

	// reserve1 uses all 112 bits to make sure the mask is applied
	r1 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1))
	fe := &fakeEth{
		blockNumber: 77,
		storage: map[common.Address]map[common.Hash][]byte{
			pair: {
				common.BigToHash(big.NewInt(slotToken0)):   common.LeftPadBytes(token0.Bytes(), 32),
				common.BigToHash(big.NewInt(slotToken1)):   common.LeftPadBytes(token1.Bytes(), 32),
				common.BigToHash(big.NewInt(slotReserves)): packReserves(big.NewInt(1_000_000), r1, 0xffffffff),
			},
		},
	}
	ec := newInprocEthClient(t, fe)
	defer ec.Close()

	st, err := ReadPair(context.Background(), ec, pair)
	if err != nil {
		t.Fatalf("ReadPair error: %v", err)
	}
	if st.Block != 77 {
		t.Fatalf("unexpected block: %d", st.Block)
	}
	if st.Token0 != token0 || st.Token1 != token1 {
		t.Fatalf("unexpected tokens: %s %s", st.Token0.Hex(), st.Token1.Hex())
	}
	if st.Reserve0.Cmp(big.NewInt(1_000_000)) != 0 {
		t.Fatalf("unexpected reserve0: %s", st.Reserve0)
	}
	if st.Reserve1.Cmp(r1) != 0 {
		t.Fatalf("unexpected reserve1: %s", st.Reserve1)
	}
}

func TestReadPair_EmptyStorage(t *testing.T) {
	ec := newInprocEthClient(t, &fakeEth{blockNumber: 1})
	defer ec.Close()

	st, err := ReadPair(context.Background(), ec, common.HexToAddress("0x01"))
	if err != nil {
		t.Fatalf("ReadPair error: %v", err)
	}
	if st.Reserve0.Sign() != 0 || st.Reserve1.Sign() != 0 {
		t.Fatalf("expected zero reserves, got %s %s", st.Reserve0, st.Reserve1)
	}
}
