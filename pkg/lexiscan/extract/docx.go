package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX reads the OOXML document body plus headers and footers
// as a zip of XML parts and collects their character data. Paragraph
// structure is irrelevant downstream, so everything is joined with
// spaces.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	var sb strings.Builder
	found := false
	for _, f := range zr.File {
		if !isDocxTextPart(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		text, err := xmlCharData(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		if f.Name == "word/document.xml" {
			found = true
		}
	}
	if !found {
		return "", fmt.Errorf("no word/document.xml part")
	}
	return sb.String(), nil
}

func isDocxTextPart(name string) bool {
	return name == "word/document.xml" ||
		strings.HasPrefix(name, "word/header") ||
		strings.HasPrefix(name, "word/footer")
}

// xmlCharData concatenates the character data of an XML stream,
// separating runs with spaces so adjacent <w:t> elements don't fuse
// into one word.
func xmlCharData(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var buf bytes.Buffer
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if cd, ok := token.(xml.CharData); ok {
			buf.Write(cd)
			buf.WriteByte(' ')
		}
	}
	return buf.String(), nil
}
