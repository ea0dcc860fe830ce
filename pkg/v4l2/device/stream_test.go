//go:build linux

package device

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckIndex(t *testing.T) {
	s := &Stream{pool: &Pool{bufs: make([][]byte, 4)}}

	require.NoError(t, s.checkIndex(0))
	require.NoError(t, s.checkIndex(3))
	require.ErrorIs(t, s.checkIndex(4), ErrIndexOutOfRange)
	require.ErrorIs(t, s.checkIndex(5), ErrIndexOutOfRange)
}

func TestCaptureRequiresStreaming(t *testing.T) {
	s := &Stream{pool: &Pool{}}

	_, _, err := s.Capture()
	require.ErrorIs(t, err, ErrNotStreaming)
}

func TestStopRequiresStreaming(t *testing.T) {
	s := &Stream{pool: &Pool{}}

	require.ErrorIs(t, s.Stop(), ErrNotStreaming)
}

func TestRequeueValidatesIndex(t *testing.T) {
	s := &Stream{pool: &Pool{bufs: make([][]byte, 4)}, state: stateStreaming}

	require.ErrorIs(t, s.Requeue(5), ErrIndexOutOfRange)
}
