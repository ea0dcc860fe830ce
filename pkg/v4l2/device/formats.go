package device

const (
	V4L2_PIX_FMT_YUYV  = 'Y' | 'U'<<8 | 'Y'<<16 | 'V'<<24
	V4L2_PIX_FMT_MJPEG = 'M' | 'J'<<8 | 'P'<<16 | 'G'<<24
)

const (
	V4L2_CAP_VIDEO_CAPTURE = 0x00000001
	V4L2_CAP_STREAMING     = 0x04000000
)

const V4L2_COLORSPACE_REC709 = 1

type Format struct {
	FourCC uint32
	Name   string
}

var Formats = []Format{
	{V4L2_PIX_FMT_YUYV, "YUV 4:2:2"},
	{V4L2_PIX_FMT_MJPEG, "Motion-JPEG"},
}

// FourCCName returns the human name for known formats, the raw four
// character code otherwise.
func FourCCName(fourCC uint32) string {
	for _, f := range Formats {
		if f.FourCC == fourCC {
			return f.Name
		}
	}
	return string([]byte{byte(fourCC), byte(fourCC >> 8), byte(fourCC >> 16), byte(fourCC >> 24)})
}
