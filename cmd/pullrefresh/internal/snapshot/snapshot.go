// Package snapshot drives a container through a pull and rasterizes the
// resulting frame.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-drift/pullrefresh/cmd/pullrefresh/internal/config"
	rerrors "github.com/go-drift/pullrefresh/pkg/errors"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/refresh"
	rtesting "github.com/go-drift/pullrefresh/pkg/testing"
)

// settleTimeout bounds the frames pumped after a release.
const settleTimeout = 5 * time.Second

// Options describes the simulated gesture.
type Options struct {
	Size graphics.Size
	// Pull is the finger travel in device pixels.
	Pull float64
	// Steps is the number of move events; zero uses the tester default.
	Steps int
	// Release lifts the finger and lets the settle animation finish.
	Release bool
}

// Capture builds a container from cfg, mounts it at opts.Size and pulls
// it from the top edge. A panic raised by the container or its content
// is reported and returned as an error.
func Capture(cfg config.Config, opts Options) (_ *refresh.Container, err error) {
	defer rerrors.RecoverWithCallback("snapshot.Capture", func(r any) {
		err = fmt.Errorf("capture panicked: %v", r)
	})
	if opts.Size.Width <= 0 || opts.Size.Height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", opts.Size.Width, opts.Size.Height)
	}
	tester := rtesting.NewTester()
	defer tester.Cleanup()

	c, err := cfg.NewContainer(tester.Scheduler(), nil)
	if err != nil {
		return nil, err
	}
	tester.Mount(c, opts.Size)

	steps := opts.Steps
	if steps <= 0 {
		steps = rtesting.DefaultDragSteps
	}
	start := graphics.Offset{X: float64(opts.Size.Width) / 2, Y: 1}
	delta := graphics.Offset{Y: opts.Pull}
	id, err := tester.Hold(start, delta, steps)
	if err != nil {
		return nil, err
	}
	if !opts.Release {
		return c, nil
	}
	if err := tester.SendPointerUp(start.Add(delta), id); err != nil {
		return nil, err
	}
	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		return nil, err
	}
	return c, nil
}

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
