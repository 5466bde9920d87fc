package display

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/pdfbatch/internal/domain"
)

func TestSummary(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Summary(&buf, &domain.Report{
		Total:     3,
		Succeeded: 2,
		Failed:    1,
		Failures: []domain.Failure{
			{RelPath: "readme.txt", Kind: domain.KindUnsupportedFormat, Message: "unsupported file type: .txt"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "converted 2/3 files")
	assert.Contains(t, out, "1 failed:")
	assert.Contains(t, out, "readme.txt [UnsupportedFormat]: unsupported file type: .txt")
}

func TestSummary_AllSucceeded(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Summary(&buf, &domain.Report{Total: 2, Succeeded: 2})

	out := buf.String()
	assert.Contains(t, out, "converted 2/2 files")
	assert.NotContains(t, out, "failed")
}

func TestBanner(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Banner(&buf, "/in", "/out", true, 200)

	out := buf.String()
	assert.Contains(t, out, "/in")
	assert.Contains(t, out, "/out")
	assert.Contains(t, out, "flatten")
	assert.Contains(t, out, "200")
}
