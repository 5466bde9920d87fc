// Package pdfcopy passes existing PDFs through to the output tree,
// validating structure first so corrupt files surface as typed failures
// instead of silently copied garbage.
package pdfcopy

import (
	"context"
	"io"
	"os"

	"github.com/gen2brain/go-fitz"

	"github.com/bnema/pdfbatch/internal/adapter/engine"
	"github.com/bnema/pdfbatch/internal/domain"
	"github.com/bnema/pdfbatch/internal/port"
)

type Engine struct{}

func New() port.Engine {
	return &Engine{}
}

func (e *Engine) Convert(ctx context.Context, src, dest string) error {
	if err := engine.ValidatePath(src); err != nil {
		return domain.NewConvError(domain.KindIOFailure, "invalid source path", err)
	}
	if err := engine.ValidatePath(dest); err != nil {
		return domain.NewConvError(domain.KindIOFailure, "invalid destination path", err)
	}
	if err := ctx.Err(); err != nil {
		return domain.NewConvError(domain.KindTimeout, "cancelled before copy", err)
	}

	info, err := os.Stat(src)
	if err != nil {
		return domain.NewConvError(domain.KindIOFailure, "stat source", err)
	}
	if info.Size() == 0 {
		return domain.NewConvError(domain.KindCorruptInput, "PDF is empty", nil)
	}

	if err := validate(src); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return domain.NewConvError(domain.KindIOFailure, "open source", err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return domain.NewConvError(domain.KindIOFailure, "create destination", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return domain.NewConvError(domain.KindIOFailure, "copy PDF", err)
	}
	if err := out.Close(); err != nil {
		return domain.NewConvError(domain.KindIOFailure, "flush destination", err)
	}
	return nil
}

// validate opens the document with MuPDF; a file that cannot be opened
// or has no pages is treated as corrupt input.
func validate(src string) error {
	doc, err := fitz.New(src)
	if err != nil {
		return domain.NewConvError(domain.KindCorruptInput, "PDF failed structural validation", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return domain.NewConvError(domain.KindCorruptInput, "PDF has no pages", nil)
	}
	return nil
}
