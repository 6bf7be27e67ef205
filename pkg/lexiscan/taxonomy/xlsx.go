package taxonomy

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
)

// LoadXLSX loads a taxonomy from an OOXML workbook. Each worksheet is
// one module (the sheet name is the module name); column A holds the
// category label and column B the comma-separated keywords. A header
// row whose first cell reads "category" is skipped.
//
// The workbook is read directly as a zip of XML parts: sheet names
// from xl/workbook.xml, the r:id→part mapping from the workbook rels,
// cell text from xl/sharedStrings.xml and xl/worksheets/sheetN.xml.
func LoadXLSX(path string) (*Taxonomy, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer zr.Close()

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}

	shared, err := readSharedStrings(parts["xl/sharedStrings.xml"])
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", path, err)
	}

	sheets, err := readWorkbookSheets(parts)
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", path, err)
	}

	tax := New()
	for _, sheet := range sheets {
		part, ok := parts[sheet.target]
		if !ok {
			continue
		}
		rows, err := readSheetRows(part, shared)
		if err != nil {
			return nil, fmt.Errorf("workbook %s sheet %s: %w", path, sheet.name, err)
		}
		for i, row := range rows {
			if len(row) < 2 {
				continue
			}
			category := strings.TrimSpace(row[0])
			if category == "" {
				continue
			}
			if i == 0 && strings.EqualFold(category, "category") {
				continue
			}
			tax.AddCategory(sheet.name, category, row[1])
		}
	}
	if err := tax.Validate(); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return tax, nil
}

type sheetRef struct {
	name   string
	target string // zip part path, e.g. xl/worksheets/sheet1.xml
}

// readWorkbookSheets resolves the ordered sheet list to zip part
// paths via the workbook relationships part.
func readWorkbookSheets(parts map[string]*zip.File) ([]sheetRef, error) {
	wbPart, ok := parts["xl/workbook.xml"]
	if !ok {
		return nil, fmt.Errorf("missing xl/workbook.xml")
	}

	var workbook struct {
		Sheets struct {
			Sheet []struct {
				Name string `xml:"name,attr"`
				RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
			} `xml:"sheet"`
		} `xml:"sheets"`
	}
	if err := decodePart(wbPart, &workbook); err != nil {
		return nil, err
	}

	targets := make(map[string]string)
	if relsPart, ok := parts["xl/_rels/workbook.xml.rels"]; ok {
		var rels struct {
			Relationship []struct {
				ID     string `xml:"Id,attr"`
				Target string `xml:"Target,attr"`
			} `xml:"Relationship"`
		}
		if err := decodePart(relsPart, &rels); err != nil {
			return nil, err
		}
		for _, rel := range rels.Relationship {
			targets[rel.ID] = path.Join("xl", rel.Target)
		}
	}

	refs := make([]sheetRef, 0, len(workbook.Sheets.Sheet))
	for i, s := range workbook.Sheets.Sheet {
		target, ok := targets[s.RID]
		if !ok {
			// No rels part: fall back to the conventional layout.
			target = fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)
		}
		refs = append(refs, sheetRef{name: s.Name, target: target})
	}
	return refs, nil
}

// readSharedStrings collects the text of every <si> entry, including
// rich-text runs, by concatenating character data.
func readSharedStrings(part *zip.File) ([]string, error) {
	if part == nil {
		return nil, nil
	}
	rc, err := part.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var strs []string
	var buf bytes.Buffer
	depth := 0
	decoder := xml.NewDecoder(rc)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "si" {
				depth = 1
				buf.Reset()
			} else if depth > 0 {
				depth++
			}
		case xml.CharData:
			if depth > 0 {
				buf.Write(t)
			}
		case xml.EndElement:
			if depth > 0 {
				depth--
				if depth == 0 && t.Name.Local == "si" {
					strs = append(strs, buf.String())
				}
			}
		}
	}
	return strs, nil
}

// readSheetRows returns the sheet's cell text as rows of columns,
// resolving shared-string references.
func readSheetRows(part *zip.File, shared []string) ([][]string, error) {
	var sheet struct {
		SheetData struct {
			Row []struct {
				C []struct {
					R  string `xml:"r,attr"`
					T  string `xml:"t,attr"`
					V  string `xml:"v"`
					IS struct {
						T string `xml:"t"`
					} `xml:"is"`
				} `xml:"c"`
			} `xml:"row"`
		} `xml:"sheetData"`
	}
	if err := decodePart(part, &sheet); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.SheetData.Row))
	for _, row := range sheet.SheetData.Row {
		var cols []string
		for i, c := range row.C {
			col := columnIndex(c.R)
			if col < 0 {
				col = i
			}
			for len(cols) <= col {
				cols = append(cols, "")
			}
			switch c.T {
			case "s":
				idx, err := strconv.Atoi(strings.TrimSpace(c.V))
				if err == nil && idx >= 0 && idx < len(shared) {
					cols[col] = shared[idx]
				}
			case "inlineStr":
				cols[col] = c.IS.T
			default:
				cols[col] = c.V
			}
		}
		rows = append(rows, cols)
	}
	return rows, nil
}

// columnIndex converts the letter part of a cell reference ("B12")
// to a zero-based column index. Returns -1 for an empty reference.
func columnIndex(ref string) int {
	n := 0
	seen := false
	for _, r := range ref {
		if r < 'A' || r > 'Z' {
			break
		}
		n = n*26 + int(r-'A') + 1
		seen = true
	}
	if !seen {
		return -1
	}
	return n - 1
}

func decodePart(part *zip.File, v interface{}) error {
	rc, err := part.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return xml.NewDecoder(rc).Decode(v)
}
