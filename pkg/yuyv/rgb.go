// Package yuyv converts packed YUYV 4:2:2 frames to RGB24 and adjusts
// their contrast.
package yuyv

// Converter expands packed YUYV into RGB24, three bytes per luma sample.
// The output frame is allocated on first use and reused while the input
// size stays the same.
type Converter struct {
	frame []byte
}

// Convert transforms src into an RGB24 frame of len(src)/2*3 bytes. The
// returned slice is owned by the Converter and overwritten by the next
// call.
func (c *Converter) Convert(src []byte) []byte {
	if size := len(src) / 2 * 3; len(c.frame) != size {
		c.frame = make([]byte, size)
	}

	// a trailing lone byte has no slot in the output frame
	for i := 0; i+1 < len(src); i += 2 {
		// Bytes Y0 U Y1 V encode a pixel pair sharing one chroma pair.
		// Which neighbour holds U and which holds V depends on the
		// position inside the 4-byte group.
		uOff, vOff := -1, -1
		if i%4 == 0 {
			uOff = 1
		} else {
			vOff = 1
		}

		y := src[i]
		u := chroma(src, i+uOff)
		v := chroma(src, i+vOff)

		// Studio swing to full range, then YPbPr to RGB.
		// https://linuxtv.org/downloads/v4l-dvb-apis/colorspaces.html
		Y := 255 * float64(int(y)-16) / 219
		Pb := 255 * float64(int(u)-128) / 224
		Pr := 255 * float64(int(v)-128) / 224

		j := i / 2 * 3
		c.frame[j] = clamp(Y + 1.402*Pr)
		c.frame[j+1] = clamp(Y - 0.344*Pb - 0.714*Pr)
		c.frame[j+2] = clamp(Y + 1.772*Pb)
	}

	return c.frame
}

// chroma reads the chroma byte at i, substituting the neutral value when
// the pair partner falls outside the frame.
func chroma(src []byte, i int) byte {
	if i > 0 && i < len(src) {
		return src[i]
	}
	return 0x80
}

// clamp truncates toward zero, then saturates to [0, 255]. The order
// matters for output bytes at the range edges.
func clamp(x float64) byte {
	r := int(x)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}
