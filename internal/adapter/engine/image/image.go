// Package image converts raster images to single-page PDFs through
// ImageMagick at a configured density.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/bnema/pdfbatch/internal/adapter/engine"
	"github.com/bnema/pdfbatch/internal/domain"
	"github.com/bnema/pdfbatch/internal/infrastructure/logger"
	"github.com/bnema/pdfbatch/internal/port"
)

const stderrTailLines = 10

// Engine shells out to ImageMagick. Invocations share no renderer state,
// so the adapter is safe for concurrent use without serialization.
type Engine struct {
	dpi     int
	timeout time.Duration

	lookupOnce sync.Once
	argv       []string
	lookupErr  error
}

func New(dpi int, timeout time.Duration) port.Engine {
	return &Engine{dpi: dpi, timeout: timeout}
}

// lookup prefers the ImageMagick 6 `convert` entry point and falls back
// to `magick convert` for ImageMagick 7 installs.
func (e *Engine) lookup() ([]string, error) {
	e.lookupOnce.Do(func() {
		if path, err := exec.LookPath("convert"); err == nil {
			e.argv = []string{path}
			return
		}
		if path, err := exec.LookPath("magick"); err == nil {
			e.argv = []string{path, "convert"}
			return
		}
		e.lookupErr = errors.New("ImageMagick 'convert' (or 'magick convert') not found")
	})
	return e.argv, e.lookupErr
}

func (e *Engine) Convert(ctx context.Context, src, dest string) error {
	if err := engine.ValidatePath(src); err != nil {
		return domain.NewConvError(domain.KindIOFailure, "invalid source path", err)
	}
	if err := engine.ValidatePath(dest); err != nil {
		return domain.NewConvError(domain.KindIOFailure, "invalid destination path", err)
	}

	argv, err := e.lookup()
	if err != nil {
		return domain.NewConvError(domain.KindEngineFailure, err.Error(), err)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	args := append(argv[1:],
		src,
		"-units", "PixelsPerInch",
		"-density", strconv.Itoa(e.dpi),
		dest,
	)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.Stderr = &stderr

	logger.Debug().Str("src", src).Int("dpi", e.dpi).Msg("invoking imagemagick")

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.NewConvError(domain.KindTimeout, "imagemagick exceeded job timeout", ctx.Err())
		}
		msg := "imagemagick exited with an error"
		if tail := engine.StderrTail(stderr.String(), stderrTailLines); tail != "" {
			msg = fmt.Sprintf("%s: %s", msg, tail)
		}
		return domain.NewConvError(domain.KindEngineFailure, msg, err)
	}
	return nil
}
