package port

import "context"

// Engine converts one source file into one destination PDF. Adapters are
// constructed with their own parameters (image DPI, office timeout) so
// the scheduler sees a uniform capability. Implementations must be
// idempotent for a fixed (src, dest): re-invocation overwrites any prior
// partial output. Errors should be *domain.ConvError so the job boundary
// can classify them.
type Engine interface {
	Convert(ctx context.Context, src, dest string) error
}
