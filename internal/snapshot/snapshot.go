//go:build linux

// Package snapshot grabs a single frame from a V4L2 capture device and
// persists it as an RGB24 dump.
package snapshot

import (
	"fmt"
	"os"

	"github.com/framesnap/framesnap/internal/app"
	"github.com/framesnap/framesnap/pkg/v4l2/device"
	"github.com/framesnap/framesnap/pkg/yuyv"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

type config struct {
	Device   string `yaml:"device"`
	Width    uint32 `yaml:"width"`
	Height   uint32 `yaml:"height"`
	Buffers  uint32 `yaml:"buffers"`
	Equalize bool   `yaml:"equalize"`
	Output   string `yaml:"output"`
	Raw      string `yaml:"raw"`
}

// Run captures one frame from the configured device, converts it to RGB24
// and writes it to the output path. devicePath, when not empty, overrides
// the configured device.
func Run(devicePath string) error {
	var cfg struct {
		Mod config `yaml:"snapshot"`
	}
	cfg.Mod = config{
		Device:  "/dev/video0",
		Width:   1280,
		Height:  1024,
		Buffers: device.DefaultBuffers,
		Output:  "frame.rgb",
	}
	app.LoadConfig(&cfg)

	log = app.GetLogger("snapshot")

	mod := cfg.Mod
	if devicePath != "" {
		mod.Device = devicePath
	}

	dev, err := device.Open(mod.Device)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			log.Warn().Err(err).Msg("close device")
		}
	}()

	if c, err := dev.Capability(); err == nil {
		log.Info().
			Str("driver", c.Driver).Str("card", c.Card).
			Str("bus", c.BusInfo).Str("version", c.Version).
			Msg("device")
	}

	if formats, err := dev.ListFormats(); err == nil {
		for _, fourCC := range formats {
			log.Debug().Str("format", device.FourCCName(fourCC)).Msg("supported format")
		}
	}

	if err = dev.SetFormat(mod.Width, mod.Height); err != nil {
		return err
	}
	log.Info().
		Uint32("width", dev.Width()).Uint32("height", dev.Height()).
		Uint32("stride", dev.Stride()).Uint32("size", dev.ImageSize()).
		Str("format", device.FourCCName(dev.FourCC())).
		Msg("negotiated format")

	pool, err := dev.Provision(mod.Buffers)
	if err != nil {
		return err
	}
	log.Debug().Int("buffers", pool.Count()).Msg("pool mapped")

	raw, err := captureOne(dev, pool)
	if err != nil {
		return err
	}

	if mod.Equalize {
		yuyv.EqualizeLuma(raw)
	}

	if mod.Raw != "" {
		if err = os.WriteFile(mod.Raw, raw, 0644); err != nil {
			return fmt.Errorf("snapshot: write %s: %w", mod.Raw, err)
		}
		log.Info().Str("path", mod.Raw).Int("bytes", len(raw)).Msg("raw frame saved")
	}

	var conv yuyv.Converter
	frame := conv.Convert(raw)

	if err = os.WriteFile(mod.Output, frame, 0644); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", mod.Output, err)
	}
	log.Info().Str("path", mod.Output).Int("bytes", len(frame)).Msg("frame saved")

	return nil
}

// captureOne round-trips the pool through the device once and returns an
// owned copy of the filled buffer.
func captureOne(dev *device.Device, pool *device.Pool) ([]byte, error) {
	stream := device.NewStream(dev, pool)
	if err := stream.Start(); err != nil {
		return nil, err
	}

	index, data, err := stream.Capture()
	if err != nil {
		_ = stream.Stop()
		return nil, err
	}

	raw := make([]byte, len(data))
	copy(raw, data)

	// The mapped buffer goes back to the driver as soon as the bytes are
	// copied out. Failing to requeue loses nothing already captured.
	if err = stream.Requeue(index); err != nil {
		log.Warn().Err(err).Msg("requeue buffer")
	}

	if err = stream.Stop(); err != nil {
		return nil, err
	}

	return raw, nil
}
