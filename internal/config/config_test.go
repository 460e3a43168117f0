package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mem-vault/mem-coin/pkg/amm"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ADDR", "LOG_LEVEL", "LOG_FORMAT", "ETH_RPC_URL", "MYSQL_DSN", "SWAP_FEE_BPS", "ADMIN_FEE_BPS", "EVENT_QUEUE_SIZE"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":1337", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, amm.DefaultFees, cfg.Fees)
	assert.Equal(t, 1024, cfg.EventQueue)
	assert.Empty(t, cfg.RPCEndpoint)
	assert.Empty(t, cfg.MySQLDSN)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":8080")
	t.Setenv("ETH_RPC_URL", "http://localhost:8545")
	t.Setenv("SWAP_FEE_BPS", "30")
	t.Setenv("ADMIN_FEE_BPS", "5")
	t.Setenv("EVENT_QUEUE_SIZE", "16")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8545", cfg.RPCEndpoint)
	assert.Equal(t, amm.LowAdminFees, cfg.Fees)
	assert.Equal(t, 16, cfg.EventQueue)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := []struct {
		key, value string
		want       error
	}{
		{"SWAP_FEE_BPS", "abc", ErrInvalidFeeBps},
		{"ADMIN_FEE_BPS", "-1", ErrInvalidFeeBps},
		{"ADMIN_FEE_BPS", "31", amm.ErrInvalidFeeSchedule},
		{"EVENT_QUEUE_SIZE", "0", ErrInvalidQueueSize},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := FromEnv()
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
