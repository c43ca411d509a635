package procfs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPeakMemoryMB_OnSelf(t *testing.T) {
	mb, err := ReadPeakMemoryMB(os.Getpid())
	require.NoError(t, err)
	require.GreaterOrEqual(t, mb, uint64(0))
}

func TestReadPeakMemoryMB_MissingPidIsVanished(t *testing.T) {
	_, err := ReadPeakMemoryMB(maxUnusedPid)
	require.ErrorIs(t, err, ErrVanished)
}
