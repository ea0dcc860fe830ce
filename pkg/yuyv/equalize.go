package yuyv

import (
	"math"
)

// EqualizeLuma flattens the luma histogram in place, leaving chroma bytes
// untouched. Classic equalization over the cumulative distribution:
// https://en.wikipedia.org/wiki/Histogram_equalization
func EqualizeLuma(buf []byte) {
	var hist [256]int

	n := 0
	for i := 0; i < len(buf); i += 2 {
		hist[buf[i]]++
		n++
	}

	var cdf [256]int
	sum := 0
	cdfMin := 0
	for v := 0; v < 256; v++ {
		sum += hist[v]
		cdf[v] = sum
		if cdfMin == 0 && sum > 0 {
			cdfMin = sum
		}
	}

	// Every sample in the lowest occupied bin: the remap would divide by
	// zero, and a single-level image has no contrast to stretch.
	if n == cdfMin {
		return
	}

	for i := 0; i < len(buf); i += 2 {
		v := buf[i]
		buf[i] = byte(math.Round(float64(cdf[v]-cdfMin) / float64(n-cdfMin) * 255))
	}
}
