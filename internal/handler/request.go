package handler

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gofiber/fiber/v3"

	"github.com/mem-vault/mem-coin/pkg/amm"
)

// CallerHeader carries the identity of the calling principal. It is expected
// to be set by an authenticating gateway in front of the service.
const CallerHeader = "X-Caller"

func parseCaller(c fiber.Ctx) (common.Address, error) {
	v := strings.TrimSpace(c.Get(CallerHeader))
	if v == "" {
		return common.Address{}, ErrCallerRequired
	}
	if !common.IsHexAddress(v) {
		return common.Address{}, ErrInvalidCaller
	}
	return common.HexToAddress(v), nil
}

func parsePoolID(c fiber.Ctx) (common.Hash, error) {
	b, err := hexutil.Decode(c.Params("id"))
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, ErrInvalidPoolID
	}
	return common.BytesToHash(b), nil
}

// parseAmount parses a base-10 amount. An empty string is zero when optional
// is set and an error otherwise.
func parseAmount(s string, optional bool) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if optional {
			return 0, nil
		}
		return 0, ErrInvalidAmountFormat
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmountFormat
	}
	return v, nil
}

func parseSide(s string) (amm.Side, error) {
	side, err := amm.ParseSide(s)
	if err != nil {
		return 0, ErrInvalidSideBadRequest
	}
	return side, nil
}
