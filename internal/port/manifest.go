package port

import "github.com/bnema/pdfbatch/internal/domain"

// Manifest records finished runs for later auditing. Recording is
// best-effort: implementations return errors for the caller to log, but
// a manifest failure never fails the batch.
type Manifest interface {
	RecordRun(batch *domain.Batch, report *domain.Report) error
	Close() error
}
