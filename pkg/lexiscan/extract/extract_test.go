package extract

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/lexiscan/pkg/lexiscan/internalerr"
)

func TestExtractTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.txt")
	if err := os.WriteFile(path, []byte("epistemic uncertainty in risk assessment"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "epistemic uncertainty in risk assessment" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract("article.epub")

	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedFormatError, got %v", err)
	}
	if unsupported.Ext != ".epub" {
		t.Errorf("unexpected extension %q", unsupported.Ext)
	}
	if !errors.Is(err, internalerr.ErrUnsupportedFormat) {
		t.Error("UnsupportedFormatError should unwrap to ErrUnsupportedFormat")
	}
}

func TestExtractMissingFileIsLoadError(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.txt"))

	var load *LoadError
	if !errors.As(err, &load) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("LoadError should unwrap to the underlying cause")
	}
}

func TestExtractDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = w.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>epistemic</w:t></w:r><w:r><w:t>risk</w:t></w:r></w:p></w:body></w:document>`))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	text, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(text, "epistemic") || !strings.Contains(text, "risk") {
		t.Errorf("docx text missing content: %q", text)
	}
	// Adjacent runs must not fuse into one word.
	if strings.Contains(text, "epistemicrisk") {
		t.Errorf("adjacent text runs fused: %q", text)
	}
}

func TestExtractDOCXWithoutDocumentPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	if _, err := zw.Create("other.xml"); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := Extract(path); err == nil {
		t.Error("docx without word/document.xml should fail")
	}
}

func TestExtractHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.html")
	page := `<html><head><style>body { color: red }</style></head>` +
		`<body><h1>Epistemic Risk</h1><p>The assessment.</p>` +
		`<script>var ignored = 1;</script></body></html>`
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(text, "Epistemic Risk") || !strings.Contains(text, "assessment") {
		t.Errorf("html text missing content: %q", text)
	}
	if strings.Contains(text, "ignored") || strings.Contains(text, "color") {
		t.Errorf("script/style content leaked: %q", text)
	}
}

func TestDocumentID(t *testing.T) {
	cases := map[string]string{
		"/data/articles/smith-2023.pdf": "smith-2023",
		"review.final.docx":             "review.final",
		"plain":                         "plain",
	}
	for path, want := range cases {
		if got := DocumentID(path); got != want {
			t.Errorf("DocumentID(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestSupported(t *testing.T) {
	if !Supported("a.txt") || !Supported("b.PDF") || !Supported("c.docx") || !Supported("d.html") {
		t.Error("expected txt/pdf/docx/html to be supported")
	}
	if Supported("e.epub") || Supported("f") {
		t.Error("unexpected extension reported as supported")
	}
}
