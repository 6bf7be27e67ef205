// Package extract pulls raw text out of article files. It knows
// nothing about normalization or classification; it returns the text
// as found plus failures typed so a corpus run can skip a bad
// document and keep going.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
)

// UnsupportedFormatError reports a file whose extension has no
// registered extractor.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q: %s", e.Ext, e.Path)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return internalerr.ErrUnsupportedFormat
}

// LoadError reports a file with a supported extension that could not
// be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Supported extensions, lowercase with dot.
var extractors = map[string]func(string) (string, error){
	".txt":  extractTXT,
	".pdf":  extractPDF,
	".docx": extractDOCX,
	".html": extractHTML,
	".htm":  extractHTML,
}

// Supported reports whether the file's extension has an extractor.
func Supported(path string) bool {
	_, ok := extractors[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extract returns the raw text content of the file. Unknown
// extensions yield *UnsupportedFormatError; read or parse failures
// yield *LoadError.
func Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := extractors[ext]
	if !ok {
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
	text, err := fn(path)
	if err != nil {
		return "", &LoadError{Path: path, Err: err}
	}
	return text, nil
}

// DocumentID derives a stable article identifier from a file path:
// the base name with the extension removed.
func DocumentID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
