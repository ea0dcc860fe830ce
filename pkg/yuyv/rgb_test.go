package yuyv

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertBlack(t *testing.T) {
	var c Converter
	// black-level luma, neutral chroma
	rgb := c.Convert([]byte{0x10, 0x80, 0x10, 0x80})
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0}, rgb)
}

func TestConvertWhite(t *testing.T) {
	var c Converter
	// white-level luma, neutral chroma
	rgb := c.Convert([]byte{0xEB, 0x80, 0xEB, 0x80})
	require.Equal(t, []byte{255, 255, 255, 255, 255, 255}, rgb)
}

func TestConvertClamps(t *testing.T) {
	var c Converter

	// Overdriven luma and chroma saturate instead of wrapping. The first
	// pixel's V read lands before the buffer and substitutes neutral.
	rgb := c.Convert([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	require.Equal(t, []byte{255, 228, 255, 255, 125, 255}, rgb)

	// Underdriven values saturate at zero.
	rgb = c.Convert([]byte{0x00, 0x00, 0x00, 0x00})
	require.Equal(t, []byte{0, 31, 0, 0, 135, 0}, rgb)
}

func TestConvertNeutralChromaAtEdges(t *testing.T) {
	var c Converter

	// A single pixel pair byte short of its V sample: the out-of-bounds
	// chroma read substitutes neutral gray instead of touching adjacent
	// memory, so white-level luma still comes out white.
	rgb := c.Convert([]byte{0xEB, 0x80})
	require.Equal(t, []byte{255, 255, 255}, rgb)
}

func TestConvertDeterministic(t *testing.T) {
	src := make([]byte, 1280*2)
	rnd := rand.New(rand.NewSource(1))
	rnd.Read(src)

	var c1, c2 Converter
	a := c1.Convert(src)
	b := c2.Convert(src)
	require.Equal(t, a, b)

	// repeat on the same converter
	b = append([]byte(nil), b...)
	require.Equal(t, b, c1.Convert(src))
}

func TestConvertReusesFrame(t *testing.T) {
	var c Converter

	a := c.Convert(make([]byte, 8))
	b := c.Convert(make([]byte, 8))
	require.Len(t, a, 12)
	require.Same(t, &a[0], &b[0])

	// a new input size reallocates
	d := c.Convert(make([]byte, 4))
	require.Len(t, d, 6)
}
