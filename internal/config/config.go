package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mem-vault/mem-coin/pkg/amm"
)

type Config struct {
	Addr        string
	RPCEndpoint string
	MySQLDSN    string
	LogLevel    string
	LogFormat   string
	Fees        amm.FeeSchedule
	EventQueue  int
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	swapFee, err := uintEnv("SWAP_FEE_BPS", amm.DefaultFees.SwapFeeBps)
	if err != nil {
		return nil, err
	}
	adminFee, err := uintEnv("ADMIN_FEE_BPS", amm.DefaultFees.AdminFeeBps)
	if err != nil {
		return nil, err
	}
	fees, err := amm.NewFeeSchedule(swapFee, adminFee)
	if err != nil {
		return nil, err
	}

	queue := 1024
	if v := os.Getenv("EVENT_QUEUE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQueueSize, v)
		}
		queue = n
	}

	cfg := &Config{
		Addr:        addr,
		RPCEndpoint: os.Getenv("ETH_RPC_URL"),
		MySQLDSN:    os.Getenv("MYSQL_DSN"),
		LogLevel:    logLevel,
		LogFormat:   os.Getenv("LOG_FORMAT"),
		Fees:        fees,
		EventQueue:  queue,
	}

	return cfg, nil
}

func uintEnv(key string, def uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidFeeBps, key, v)
	}
	return n, nil
}
