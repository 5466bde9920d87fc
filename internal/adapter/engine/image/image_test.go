package image

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdfbatch/internal/domain"
)

func TestConvert_RejectsInvalidPaths(t *testing.T) {
	e := New(200, time.Minute)

	err := e.Convert(context.Background(), "", "/tmp/out.pdf")
	require.Error(t, err)
	assert.Equal(t, domain.KindIOFailure, domain.AsConvError(err).Kind)

	err = e.Convert(context.Background(), "/tmp/pic.png", "/tmp/out\x00.pdf")
	require.Error(t, err)
	assert.Equal(t, domain.KindIOFailure, domain.AsConvError(err).Kind)
}
