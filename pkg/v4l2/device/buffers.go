//go:build linux

package device

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"github.com/framesnap/framesnap/pkg/ioctl"
)

const DefaultBuffers = 4

// Below two buffers the driver cannot fill one while the other is read,
// so capture would stall the device.
const minBuffers = 2

var (
	ErrMmapUnsupported     = errors.New("v4l2: device does not support memory mapping")
	ErrInsufficientBuffers = errors.New("v4l2: insufficient buffer memory")
)

// Pool owns the kernel-shared capture buffers mapped into the process.
// It is either fully mapped or released, never partial. Buffer indexes are
// assigned by the driver at provisioning time and stay stable until
// Release.
type Pool struct {
	fd   int
	bufs [][]byte
}

// Provision asks the driver for count mmap buffers and maps every granted
// one read-write. An existing pool is released first. Any failure rolls
// back the mappings made so far before reporting.
func (d *Device) Provision(count uint32) (*Pool, error) {
	if d.pool != nil {
		if err := d.pool.Release(); err != nil {
			return nil, err
		}
		d.pool = nil
	}

	rb := v4l2_requestbuffers{
		count:  count,
		typ:    V4L2_BUF_TYPE_VIDEO_CAPTURE,
		memory: V4L2_MEMORY_MMAP,
	}
	if err := ioctl.Ioctl(d.fd, VIDIOC_REQBUFS, unsafe.Pointer(&rb)); err != nil {
		if errors.Is(err, syscall.EINVAL) {
			return nil, fmt.Errorf("%w: %s", ErrMmapUnsupported, d.path)
		}
		return nil, fmt.Errorf("v4l2: request buffers: %w", err)
	}

	p := &Pool{fd: d.fd, bufs: make([][]byte, 0, rb.count)}

	// The driver may grant fewer buffers than requested.
	if rb.count < minBuffers {
		_ = p.free()
		return nil, fmt.Errorf("%w: granted %d, need %d", ErrInsufficientBuffers, rb.count, minBuffers)
	}

	for i := uint32(0); i < rb.count; i++ {
		qb := v4l2_buffer{
			index:  i,
			typ:    V4L2_BUF_TYPE_VIDEO_CAPTURE,
			memory: V4L2_MEMORY_MMAP,
		}
		if err := ioctl.Ioctl(d.fd, VIDIOC_QUERYBUF, unsafe.Pointer(&qb)); err != nil {
			_ = p.Release()
			return nil, fmt.Errorf("v4l2: query buffer %d: %w", i, err)
		}

		b, err := syscall.Mmap(d.fd, int64(qb.offset), int(qb.length),
			syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
		if err != nil {
			_ = p.Release()
			return nil, fmt.Errorf("v4l2: mmap buffer %d: %w", i, err)
		}

		p.bufs = append(p.bufs, b)
	}

	d.pool = p
	return p, nil
}

func (p *Pool) Count() int { return len(p.bufs) }

// Buffer returns the mapped region for index i. The contents are valid
// only between a dequeue of i and the following requeue.
func (p *Pool) Buffer(i int) []byte { return p.bufs[i] }

// Release unmaps every buffer and returns them to the driver.
func (p *Pool) Release() error {
	var errs []error
	for _, b := range p.bufs {
		if err := syscall.Munmap(b); err != nil {
			errs = append(errs, err)
		}
	}
	p.bufs = nil

	if err := p.free(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// free gives the kernel-side buffers back (REQBUFS with count zero).
func (p *Pool) free() error {
	rb := v4l2_requestbuffers{
		typ:    V4L2_BUF_TYPE_VIDEO_CAPTURE,
		memory: V4L2_MEMORY_MMAP,
	}
	return ioctl.Ioctl(p.fd, VIDIOC_REQBUFS, unsafe.Pointer(&rb))
}
