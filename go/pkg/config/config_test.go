package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, ":9001", cfg.ListenAddr)
	require.Equal(t, "127.0.0.1:50051", cfg.PlatformAddr)
	require.Equal(t, 5, cfg.IdlePoolCapacity)
	require.EqualValues(t, 1000, cfg.MaxConcurrentStreams)
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "scaler-*.yaml")
	require.NoError(t, err)
	_, err = f.WriteString("listen_addr: \":9999\"\nidle_pool_capacity: 8\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cfg, err := LoadFile(f.Name())
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.ListenAddr)
	require.Equal(t, 8, cfg.IdlePoolCapacity)
	// Unset fields retain compiled defaults.
	require.Equal(t, "127.0.0.1:50051", cfg.PlatformAddr)
}

func TestLoadFileEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestApplyEnvOverridesListenAddr(t *testing.T) {
	t.Setenv("SCALER_LISTEN_ADDR", ":7000")
	t.Setenv("SCALER_IDLE_POOL_CAPACITY", "12")

	cfg := Default()
	ApplyEnv(cfg)
	require.Equal(t, ":7000", cfg.ListenAddr)
	require.Equal(t, 12, cfg.IdlePoolCapacity)
}
