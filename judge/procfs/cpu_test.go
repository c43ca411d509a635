package procfs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadCPUTimeMs_OnSelf(t *testing.T) {
	t.Setenv("CLK_TCK", "")
	clockTicksOnce = resetOnce()
	ms, err := ReadCPUTimeMs(os.Getpid())
	require.NoError(t, err)
	require.GreaterOrEqual(t, ms, uint64(0))
}

func TestReadCPUTimeMs_MissingPidIsVanished(t *testing.T) {
	_, err := ReadCPUTimeMs(maxUnusedPid)
	require.ErrorIs(t, err, ErrVanished)
}
