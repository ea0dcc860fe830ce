//go:build linux

package device

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "video9"))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOpenNotADevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(path, []byte("not a device"), 0644))

	_, err := Open(path)
	require.ErrorIs(t, err, ErrNotDevice)
}

func TestOpenNotV4L2(t *testing.T) {
	// a character device that answers no V4L2 ioctls
	if _, err := os.Stat("/dev/null"); err != nil {
		t.Skip("no /dev/null")
	}

	_, err := Open("/dev/null")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotDevice)
}

func TestFourCCName(t *testing.T) {
	require.Equal(t, "YUV 4:2:2", FourCCName(V4L2_PIX_FMT_YUYV))
	require.Equal(t, "Motion-JPEG", FourCCName(V4L2_PIX_FMT_MJPEG))
	require.Equal(t, "H264", FourCCName('H'|'2'<<8|'6'<<16|'4'<<24))
}
