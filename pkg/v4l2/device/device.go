//go:build linux

// Package device talks to a V4L2 video capture device: format negotiation,
// memory-mapped buffer exchange and the streaming state machine.
package device

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"github.com/framesnap/framesnap/pkg/ioctl"
)

var (
	ErrNotDevice  = errors.New("v4l2: not a character device")
	ErrNotCapture = errors.New("v4l2: not a video capture device")
)

// Device owns one open capture session. All buffer math uses the
// driver-negotiated geometry, never the requested one.
type Device struct {
	path string
	fd   int

	width  uint32
	height uint32
	stride uint32
	size   uint32
	fourCC uint32
	cspace uint32

	pool *Pool
}

// Open checks that path is a character device, opens it non-blocking and
// requires the video capture capability.
func Open(path string) (*Device, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("v4l2: %w", err)
	}
	if fi.Mode()&os.ModeCharDevice == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotDevice, path)
	}

	fd, err := syscall.Open(path, syscall.O_RDWR|syscall.O_NONBLOCK|syscall.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("v4l2: open %s: %w", path, err)
	}

	c := v4l2_capability{}
	if err = ioctl.Ioctl(fd, VIDIOC_QUERYCAP, unsafe.Pointer(&c)); err != nil {
		_ = syscall.Close(fd)
		return nil, fmt.Errorf("v4l2: query capabilities %s: %w", path, err)
	}

	if c.capabilities&V4L2_CAP_VIDEO_CAPTURE == 0 {
		_ = syscall.Close(fd)
		return nil, fmt.Errorf("%w: %s", ErrNotCapture, path)
	}

	return &Device{path: path, fd: fd}, nil
}

type Capability struct {
	Driver  string
	Card    string
	BusInfo string
	Version string
}

func (d *Device) Capability() (*Capability, error) {
	c := v4l2_capability{}
	if err := ioctl.Ioctl(d.fd, VIDIOC_QUERYCAP, unsafe.Pointer(&c)); err != nil {
		return nil, fmt.Errorf("v4l2: query capabilities: %w", err)
	}
	return &Capability{
		Driver:  ioctl.Str(c.driver[:]),
		Card:    ioctl.Str(c.card[:]),
		BusInfo: ioctl.Str(c.bus_info[:]),
		Version: fmt.Sprintf("%d.%d.%d", byte(c.version>>16), byte(c.version>>8), byte(c.version)),
	}, nil
}

// ListFormats enumerates the pixel formats the device can capture.
func (d *Device) ListFormats() ([]uint32, error) {
	var items []uint32

	for i := uint32(0); ; i++ {
		fd := v4l2_fmtdesc{
			index: i,
			typ:   V4L2_BUF_TYPE_VIDEO_CAPTURE,
		}
		if err := ioctl.Ioctl(d.fd, VIDIOC_ENUM_FMT, unsafe.Pointer(&fd)); err != nil {
			if !errors.Is(err, syscall.EINVAL) {
				return nil, err
			}
			break
		}

		items = append(items, fd.pixelformat)
	}

	return items, nil
}

// SetFormat requests YUYV with a Rec.709 colorspace at the given size. The
// driver is free to adjust, so the returned geometry is stored and wins.
func (d *Device) SetFormat(width, height uint32) error {
	f := v4l2_format{
		typ: V4L2_BUF_TYPE_VIDEO_CAPTURE,
		pix: v4l2_pix_format{
			width:       width,
			height:      height,
			pixelformat: V4L2_PIX_FMT_YUYV,
			field:       V4L2_FIELD_NONE,
			colorspace:  V4L2_COLORSPACE_REC709,
		},
	}
	if err := ioctl.Ioctl(d.fd, VIDIOC_S_FMT, unsafe.Pointer(&f)); err != nil {
		return fmt.Errorf("v4l2: set format: %w", err)
	}

	d.width = f.pix.width
	d.height = f.pix.height
	d.fourCC = f.pix.pixelformat
	d.cspace = f.pix.colorspace

	// Buggy drivers report a stride or image size below the geometric
	// minimum. Clamp upward, never down.
	d.stride = f.pix.bytesperline
	if min := d.width * 2; d.stride < min {
		d.stride = min
	}
	d.size = f.pix.sizeimage
	if min := d.stride * d.height; d.size < min {
		d.size = min
	}

	return nil
}

func (d *Device) Path() string       { return d.path }
func (d *Device) Width() uint32      { return d.width }
func (d *Device) Height() uint32     { return d.height }
func (d *Device) Stride() uint32     { return d.stride }
func (d *Device) ImageSize() uint32  { return d.size }
func (d *Device) FourCC() uint32     { return d.fourCC }
func (d *Device) Colorspace() uint32 { return d.cspace }

// Close releases the pool, if still provisioned, and the device session.
func (d *Device) Close() error {
	var err error
	if d.pool != nil {
		err = d.pool.Release()
		d.pool = nil
	}
	return errors.Join(err, syscall.Close(d.fd))
}
