package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/pdfbatch/internal/domain"
)

// OutputResolver computes destination PDF paths for one batch. It must
// be driven from a single goroutine, once per job, in discovery order,
// strictly before any dispatch: the claimed-name table is what makes
// flatten collision numbering deterministic and race-free. Claims are
// independent of disk state, so two jobs can never resolve to the same
// destination even when the output directory already holds files.
type OutputResolver struct {
	outputRoot string
	flatten    bool
	claimed    map[string]bool
	counters   map[string]int
}

func NewOutputResolver(outputRoot string, flatten bool) *OutputResolver {
	return &OutputResolver{
		outputRoot: outputRoot,
		flatten:    flatten,
		claimed:    make(map[string]bool),
		counters:   make(map[string]int),
	}
}

// Resolve returns the destination path for relPath and guarantees its
// parent directory exists before any engine writes to it.
func (r *OutputResolver) Resolve(relPath string) (string, error) {
	var dest string
	if r.flatten {
		dest = r.resolveFlat(relPath)
	} else {
		dest = filepath.Join(r.outputRoot, withPdfExt(relPath))
		r.claimed[dest] = true
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", domain.NewConvError(domain.KindIOFailure, "create output directory", err)
	}
	return dest, nil
}

// resolveFlat places the file directly under the output root, numbering
// duplicates as "name.pdf", "name (1).pdf", "name (2).pdf", … in
// discovery order. The counter loop also steps over claims made by
// literal source names like "name (1).xlsx", so numbering stays
// collision-free for the whole batch.
func (r *OutputResolver) resolveFlat(relPath string) string {
	base := withPdfExt(filepath.Base(relPath))
	candidate := filepath.Join(r.outputRoot, base)
	if !r.claimed[candidate] {
		r.claimed[candidate] = true
		return candidate
	}

	stem := strings.TrimSuffix(base, ".pdf")
	n := r.counters[base]
	if n == 0 {
		n = 1
	}
	for {
		candidate = filepath.Join(r.outputRoot, fmt.Sprintf("%s (%d).pdf", stem, n))
		if !r.claimed[candidate] {
			r.counters[base] = n + 1
			r.claimed[candidate] = true
			return candidate
		}
		n++
	}
}

func withPdfExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
}
