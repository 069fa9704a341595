package profilers

import (
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"runtime/pprof"
	"testing"
)

func TestWriteHeapProfile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "heap.prof")
	require.NoError(t, WriteHeapProfile(filename))
	info, err := os.Stat(filename)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	require.Error(t, WriteHeapProfile(filepath.Join(t.TempDir(), "missing", "heap.prof")))
}

func TestStartCPUProfile(t *testing.T) {
	require.NoError(t, StartCPUProfile(""))

	filename := filepath.Join(t.TempDir(), "cpu.prof")
	require.NoError(t, StartCPUProfile(filename))
	pprof.StopCPUProfile()
	_, err := os.Stat(filename)
	require.NoError(t, err)
}
