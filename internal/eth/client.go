// Package eth reads Uniswap V2 pair state from an Ethereum node.
package eth

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
)

// dialTimeout bounds the initial connection to the node.
const dialTimeout = 15 * time.Second

// Dial connects to the node at url. The returned client satisfies
// StorageReader.
func Dial(ctx context.Context, url string) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	return ethclient.DialContext(ctx, url)
}

var _ StorageReader = (*ethclient.Client)(nil)
