// Package loader reads the source report files into raw string tables. The
// pipeline itself never touches the filesystem; everything goes through here.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Read loads the file at path into raw rows. The format is chosen by file
// extension: .csv or .xlsx.
func Read(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}
