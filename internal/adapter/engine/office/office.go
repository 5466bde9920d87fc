// Package office converts word-processor, presentation and spreadsheet
// documents to PDF through a headless LibreOffice instance.
package office

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/pdfbatch/internal/adapter/engine"
	"github.com/bnema/pdfbatch/internal/domain"
	"github.com/bnema/pdfbatch/internal/infrastructure/logger"
	"github.com/bnema/pdfbatch/internal/port"
)

const stderrTailLines = 20

// Engine shells out to soffice. The soffice user profile holds a
// process-level lock that does not support concurrent conversions, so
// every invocation runs under an internal mutex; callers may treat the
// adapter as safe from any goroutine.
type Engine struct {
	mu      sync.Mutex
	timeout time.Duration

	lookupOnce sync.Once
	binary     string
	lookupErr  error
}

func New(timeout time.Duration) port.Engine {
	return &Engine{timeout: timeout}
}

func (e *Engine) Convert(ctx context.Context, src, dest string) error {
	if err := engine.ValidatePath(src); err != nil {
		return domain.NewConvError(domain.KindIOFailure, "invalid source path", err)
	}
	if err := engine.ValidatePath(dest); err != nil {
		return domain.NewConvError(domain.KindIOFailure, "invalid destination path", err)
	}

	e.lookupOnce.Do(func() {
		e.binary, e.lookupErr = exec.LookPath("soffice")
	})
	if e.lookupErr != nil {
		return domain.NewConvError(domain.KindEngineFailure, "LibreOffice 'soffice' not found", e.lookupErr)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	// soffice picks the output file name itself, so convert into a
	// scratch directory next to dest and rename afterwards. Keeping the
	// scratch dir on the same filesystem keeps the rename atomic.
	scratch, err := os.MkdirTemp(filepath.Dir(dest), ".pdfbatch-office-*")
	if err != nil {
		return domain.NewConvError(domain.KindIOFailure, "create scratch directory", err)
	}
	defer os.RemoveAll(scratch)

	filter := "pdf"
	if domain.IsSpreadsheet(src) {
		// Calc export renders one worksheet per page.
		filter = "pdf:calc_pdf_Export"
	}

	args := []string{
		"--headless",
		"--norestore",
		"--nolockcheck",
		"--convert-to", filter,
		"--outdir", scratch,
		src,
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stderr = &stderr

	logger.Debug().Str("src", src).Str("filter", filter).Msg("invoking soffice")

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.NewConvError(domain.KindTimeout, "soffice exceeded job timeout", ctx.Err())
		}
		msg := "soffice exited with an error"
		if tail := engine.StderrTail(stderr.String(), stderrTailLines); tail != "" {
			msg = fmt.Sprintf("%s: %s", msg, tail)
		}
		return domain.NewConvError(domain.KindEngineFailure, msg, err)
	}

	produced, err := locateProduced(scratch, src)
	if err != nil {
		return domain.NewConvError(domain.KindEngineFailure, "soffice produced no PDF (input may be corrupt or unsupported)", err)
	}

	if err := os.Rename(produced, dest); err != nil {
		return domain.NewConvError(domain.KindIOFailure, "move converted PDF into place", err)
	}
	return nil
}

// locateProduced finds the PDF soffice wrote into the scratch directory.
// It usually matches the source stem, but soffice occasionally normalizes
// names, so any single produced PDF is accepted as a fallback.
func locateProduced(scratch, src string) (string, error) {
	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	expected := filepath.Join(scratch, stem+".pdf")
	if _, err := os.Stat(expected); err == nil {
		return expected, nil
	}

	matches, err := filepath.Glob(filepath.Join(scratch, "*.pdf"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no PDF in output directory for %s", base)
	}
	return matches[0], nil
}
