package domain

import (
	"path/filepath"
	"strings"
)

var officeExtensions = map[string]bool{
	".doc":  true,
	".docx": true,
	".ppt":  true,
	".pptx": true,
	".xls":  true,
	".xlsx": true,
	".xlsm": true,
	".csv":  true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// Classify maps a path to its conversion category by extension,
// case-insensitively. Unrecognized extensions classify as unsupported;
// callers record those as failed jobs rather than dropping them.
func Classify(path string) Category {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case officeExtensions[ext]:
		return CategoryOffice
	case imageExtensions[ext]:
		return CategoryImage
	case ext == ".pdf":
		return CategoryPdf
	default:
		return CategoryUnsupported
	}
}

// IsSpreadsheet reports whether the file should render with the Calc
// export filter (one worksheet per page).
func IsSpreadsheet(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls", ".xlsx", ".xlsm":
		return true
	}
	return false
}
