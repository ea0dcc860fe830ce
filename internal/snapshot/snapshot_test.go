//go:build linux

package snapshot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/framesnap/framesnap/pkg/v4l2/device"
	"github.com/stretchr/testify/require"
)

func TestRunMissingDevice(t *testing.T) {
	err := Run(filepath.Join(t.TempDir(), "video0"))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRunNotADevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := Run(path)
	require.ErrorIs(t, err, device.ErrNotDevice)
}
