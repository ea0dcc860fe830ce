package ioctl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestEncoding(t *testing.T) {
	// #define VIDIOC_QUERYCAP _IOR('V', 0, struct v4l2_capability)
	require.Equal(t, uintptr(0x80685600), IOR('V', 0, 104))
	// #define VIDIOC_STREAMON _IOW('V', 18, int)
	require.Equal(t, uintptr(0x40045612), IOW('V', 18, 4))
	// #define VIDIOC_REQBUFS _IOWR('V', 8, struct v4l2_requestbuffers)
	require.Equal(t, uintptr(0xc0145608), IORW('V', 8, 20))
}

func TestStr(t *testing.T) {
	require.Equal(t, "uvcvideo", Str([]byte{'u', 'v', 'c', 'v', 'i', 'd', 'e', 'o', 0, 0, 0}))
	require.Equal(t, "abc", Str([]byte("abc")))
}
