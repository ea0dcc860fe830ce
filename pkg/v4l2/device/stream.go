//go:build linux

package device

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"github.com/framesnap/framesnap/pkg/ioctl"
)

var (
	ErrStreaming       = errors.New("v4l2: already streaming")
	ErrNotStreaming    = errors.New("v4l2: not streaming")
	ErrIndexOutOfRange = errors.New("v4l2: buffer index out of range")
)

type streamState uint8

const (
	stateIdle streamState = iota
	stateQueued
	stateStreaming
)

// Stream drives the queued/streaming buffer exchange. A buffer belongs to
// the driver while queued and to the caller between Capture and the
// following Requeue; holding a reference past the requeue races against
// the hardware writing the next frame.
type Stream struct {
	fd    int
	pool  *Pool
	state streamState
}

func NewStream(d *Device, p *Pool) *Stream {
	return &Stream{fd: d.fd, pool: p}
}

// Start enqueues every buffer, then turns streaming on. A failed enqueue
// aborts before stream-on: the device must never start with buffers
// missing from its queue.
func (s *Stream) Start() error {
	if s.state != stateIdle {
		return ErrStreaming
	}

	for i := 0; i < s.pool.Count(); i++ {
		if err := s.queue(uint32(i)); err != nil {
			return fmt.Errorf("v4l2: queue buffer %d: %w", i, err)
		}
	}
	s.state = stateQueued

	typ := uint32(V4L2_BUF_TYPE_VIDEO_CAPTURE)
	if err := ioctl.Ioctl(s.fd, VIDIOC_STREAMON, unsafe.Pointer(&typ)); err != nil {
		s.state = stateIdle
		return fmt.Errorf("v4l2: stream on: %w", err)
	}
	s.state = stateStreaming

	return nil
}

// Capture waits for the driver to hand back a filled buffer, retrying the
// non-blocking dequeue while nothing is ready yet. The returned slice
// aliases the mapped buffer and is valid only until Requeue(index).
func (s *Stream) Capture() (index int, data []byte, err error) {
	if s.state != stateStreaming {
		return 0, nil, ErrNotStreaming
	}

	dq := v4l2_buffer{
		typ:    V4L2_BUF_TYPE_VIDEO_CAPTURE,
		memory: V4L2_MEMORY_MMAP,
	}
	for {
		err = ioctl.Ioctl(s.fd, VIDIOC_DQBUF, unsafe.Pointer(&dq))
		if err == nil {
			break
		}
		if errors.Is(err, syscall.EAGAIN) {
			continue
		}
		return 0, nil, fmt.Errorf("v4l2: dequeue: %w", err)
	}

	if err = s.checkIndex(dq.index); err != nil {
		return 0, nil, err
	}

	return int(dq.index), s.pool.Buffer(int(dq.index))[:dq.bytesused], nil
}

// Requeue gives a dequeued buffer back to the driver's free queue. Data
// read from the buffer must be consumed or copied before calling.
func (s *Stream) Requeue(index int) error {
	if err := s.checkIndex(uint32(index)); err != nil {
		return err
	}
	if err := s.queue(uint32(index)); err != nil {
		return fmt.Errorf("v4l2: requeue buffer %d: %w", index, err)
	}
	return nil
}

// Stop turns streaming off. Valid only while streaming.
func (s *Stream) Stop() error {
	if s.state != stateStreaming {
		return ErrNotStreaming
	}

	typ := uint32(V4L2_BUF_TYPE_VIDEO_CAPTURE)
	if err := ioctl.Ioctl(s.fd, VIDIOC_STREAMOFF, unsafe.Pointer(&typ)); err != nil {
		return fmt.Errorf("v4l2: stream off: %w", err)
	}
	s.state = stateIdle

	return nil
}

func (s *Stream) queue(i uint32) error {
	qb := v4l2_buffer{
		index:  i,
		typ:    V4L2_BUF_TYPE_VIDEO_CAPTURE,
		memory: V4L2_MEMORY_MMAP,
	}
	return ioctl.Ioctl(s.fd, VIDIOC_QBUF, unsafe.Pointer(&qb))
}

// checkIndex guards against the driver handing back an index the pool
// never mapped. That is a protocol violation, not a condition to retry.
func (s *Stream) checkIndex(i uint32) error {
	if int(i) >= s.pool.Count() {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, s.pool.Count())
	}
	return nil
}
