//go:build 386 || arm

package device

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/videodev2.h

const (
	VIDIOC_QUERYCAP = 0x80685600
	VIDIOC_ENUM_FMT = 0xc0405602
	VIDIOC_S_FMT    = 0xc0cc5605
	VIDIOC_REQBUFS  = 0xc0145608
	VIDIOC_QUERYBUF = 0xc0445609

	VIDIOC_QBUF      = 0xc044560f
	VIDIOC_DQBUF     = 0xc0445611
	VIDIOC_STREAMON  = 0x40045612
	VIDIOC_STREAMOFF = 0x40045613
)

const (
	V4L2_BUF_TYPE_VIDEO_CAPTURE = 1
	V4L2_FIELD_NONE             = 1
	V4L2_MEMORY_MMAP            = 1
)

type v4l2_capability struct { // size 104
	driver       [16]byte
	card         [32]byte
	bus_info     [32]byte
	version      uint32
	capabilities uint32
	device_caps  uint32
	reserved     [3]uint32
}

type v4l2_format struct { // size 204
	typ uint32          // offset 0, size 4
	pix v4l2_pix_format // offset 4, size 48
	_   [152]byte       // filler
}

type v4l2_pix_format struct { // size 48
	width        uint32 // offset 0
	height       uint32 // offset 4
	pixelformat  uint32 // offset 8
	field        uint32 // offset 12
	bytesperline uint32 // offset 16
	sizeimage    uint32 // offset 20
	colorspace   uint32 // offset 24
	priv         uint32 // offset 28
	flags        uint32 // offset 32
	ycbcr_enc    uint32 // offset 36
	quantization uint32 // offset 40
	xfer_func    uint32 // offset 44
}

type v4l2_requestbuffers struct { // size 20
	count        uint32
	typ          uint32
	memory       uint32
	capabilities uint32
	flags        uint8
	reserved     [3]uint8
}

type v4l2_buffer struct { // size 68
	index     uint32        // offset 0
	typ       uint32        // offset 4
	bytesused uint32        // offset 8
	flags     uint32        // offset 12
	field     uint32        // offset 16
	_         [8]byte       // offset 20 (struct timeval)
	timecode  v4l2_timecode // offset 28, size 16
	sequence  uint32        // offset 44
	memory    uint32        // offset 48
	offset    uint32        // offset 52 (union m)
	length    uint32        // offset 56
	_         [8]byte       // filler
}

type v4l2_timecode struct { // size 16
	typ      uint32
	flags    uint32
	frames   uint8
	seconds  uint8
	minutes  uint8
	hours    uint8
	userbits [4]uint8
}

type v4l2_fmtdesc struct { // size 64
	index       uint32
	typ         uint32
	flags       uint32
	description [32]byte
	pixelformat uint32
	mbus_code   uint32
	reserved    [3]uint32
}
