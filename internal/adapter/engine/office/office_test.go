package office

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pdfbatch/internal/domain"
)

func TestConvert_RejectsInvalidPaths(t *testing.T) {
	e := New(time.Minute)

	err := e.Convert(context.Background(), "", "/tmp/out.pdf")
	require.Error(t, err)
	assert.Equal(t, domain.KindIOFailure, domain.AsConvError(err).Kind)

	err = e.Convert(context.Background(), "/tmp/in\x00.docx", "/tmp/out.pdf")
	require.Error(t, err)
	assert.Equal(t, domain.KindIOFailure, domain.AsConvError(err).Kind)
}

func TestLocateProduced_MatchesStem(t *testing.T) {
	scratch := t.TempDir()
	expected := filepath.Join(scratch, "report.pdf")
	require.NoError(t, os.WriteFile(expected, []byte("%PDF"), 0644))

	got, err := locateProduced(scratch, "/in/report.docx")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestLocateProduced_FallsBackToAnyPdf(t *testing.T) {
	// soffice occasionally normalizes the output name; any single PDF in
	// the private scratch dir is ours.
	scratch := t.TempDir()
	renamed := filepath.Join(scratch, "REPORT_1.pdf")
	require.NoError(t, os.WriteFile(renamed, []byte("%PDF"), 0644))

	got, err := locateProduced(scratch, "/in/report.docx")
	require.NoError(t, err)
	assert.Equal(t, renamed, got)
}

func TestLocateProduced_NothingProduced(t *testing.T) {
	_, err := locateProduced(t.TempDir(), "/in/report.docx")
	assert.Error(t, err)
}
