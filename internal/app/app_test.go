package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfString(t *testing.T) {
	tests := []struct {
		name     string
		conf     string
		expected []byte
	}{
		{
			name:     "nested key",
			conf:     "snapshot.device=/dev/video1",
			expected: []byte("{snapshot: {device: /dev/video1}}"),
		},
		{
			name:     "log level",
			conf:     "log.level=trace",
			expected: []byte("{log: {level: trace}}"),
		},
		{
			name:     "single segment is not a conf string",
			conf:     "device=/dev/video1",
			expected: nil,
		},
		{
			name:     "no equals sign",
			conf:     "framesnap.yaml",
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, parseConfString(tc.conf))
		})
	}
}

func TestLoadConfigMerge(t *testing.T) {
	configs = [][]byte{
		[]byte("snapshot: {width: 640, height: 480}"),
		[]byte("{snapshot: {height: 720}}"),
	}
	defer func() { configs = nil }()

	var cfg struct {
		Mod struct {
			Width  int `yaml:"width"`
			Height int `yaml:"height"`
		} `yaml:"snapshot"`
	}
	LoadConfig(&cfg)

	require.Equal(t, 640, cfg.Mod.Width)
	require.Equal(t, 720, cfg.Mod.Height) // later sources win
}
