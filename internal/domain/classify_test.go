package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Category
	}{
		{"docx", "report.docx", CategoryOffice},
		{"doc", "old/report.doc", CategoryOffice},
		{"pptx", "slides.pptx", CategoryOffice},
		{"xlsx", "sheet.xlsx", CategoryOffice},
		{"xlsm", "macro.xlsm", CategoryOffice},
		{"csv", "data.csv", CategoryOffice},
		{"jpg", "photo.jpg", CategoryImage},
		{"jpeg", "photo.jpeg", CategoryImage},
		{"png", "dir/shot.png", CategoryImage},
		{"webp", "pic.webp", CategoryImage},
		{"tiff", "scan.tiff", CategoryImage},
		{"bmp", "bitmap.bmp", CategoryImage},
		{"pdf", "existing.pdf", CategoryPdf},
		{"uppercase extension", "REPORT.DOCX", CategoryOffice},
		{"mixed case pdf", "File.Pdf", CategoryPdf},
		{"text file", "readme.txt", CategoryUnsupported},
		{"no extension", "Makefile", CategoryUnsupported},
		{"dotfile", ".gitignore", CategoryUnsupported},
		{"pdf in the middle of the name", "not.pdf.txt", CategoryUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestIsSpreadsheet(t *testing.T) {
	assert.True(t, IsSpreadsheet("a.xlsx"))
	assert.True(t, IsSpreadsheet("a.XLS"))
	assert.True(t, IsSpreadsheet("a.xlsm"))
	assert.False(t, IsSpreadsheet("a.csv"))
	assert.False(t, IsSpreadsheet("a.docx"))
}
