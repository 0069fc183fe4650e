package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"sort"
	"strings"
)

type docxExtractor struct{}

func (docxExtractor) Format() Format { return FormatWord }

// Extract parses a .docx archive: paragraphs and tables come from
// word/document.xml in body order, images from word/media/*.
func (docxExtractor) Extract(data []byte) (Content, error) {
	zr, err := openArchive(data)
	if err != nil {
		return nil, &ExtractionError{Format: FormatWord, Err: err}
	}

	doc, err := readArchiveFile(zr, "word/document.xml")
	if err != nil {
		return nil, &ExtractionError{Format: FormatWord, Err: err}
	}

	paragraphs, tables, err := parseDocxBody(doc)
	if err != nil {
		return nil, &ExtractionError{Format: FormatWord, Err: err}
	}

	pictures, err := collectDocxMedia(zr)
	if err != nil {
		return nil, &ExtractionError{Format: FormatWord, Err: err}
	}

	return &WordContent{
		Paragraphs: paragraphs,
		Tables:     tables,
		Pictures:   pictures,
	}, nil
}

// parseDocxBody walks word/document.xml. Paragraphs inside tables belong to
// their table cells, so tblDepth gates the top-level paragraph list.
func parseDocxBody(doc []byte) ([]string, []Table, error) {
	decoder := xml.NewDecoder(bytes.NewReader(doc))

	var paragraphs []string
	var tables []Table

	var paragraph strings.Builder
	inParagraph := false
	inText := false

	tblDepth := 0
	var rows [][]string
	var row []string
	var cell strings.Builder

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
				if tblDepth == 1 {
					rows = nil
				}
			case "tr":
				if tblDepth == 1 {
					row = nil
				}
			case "tc":
				if tblDepth == 1 {
					cell.Reset()
				}
			case "p":
				if tblDepth == 0 {
					inParagraph = true
					paragraph.Reset()
				}
			case "t":
				inText = true
			}

		case xml.CharData:
			if !inText {
				continue
			}
			if tblDepth > 0 {
				cell.Write(t)
			} else if inParagraph {
				paragraph.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if tblDepth == 0 && inParagraph {
					inParagraph = false
					text := strings.TrimSpace(paragraph.String())
					if text != "" {
						paragraphs = append(paragraphs, text)
					}
				}
			case "tc":
				if tblDepth == 1 {
					row = append(row, strings.TrimSpace(cell.String()))
					cell.Reset()
				}
			case "tr":
				if tblDepth == 1 && len(row) > 0 {
					rows = append(rows, row)
					row = nil
				}
			case "tbl":
				tblDepth--
				if tblDepth == 0 && len(rows) > 0 {
					tables = append(tables, Table{Number: len(tables) + 1, Rows: rows})
					rows = nil
				}
			}
		}
	}

	return paragraphs, tables, nil
}

// collectDocxMedia gathers embedded images from word/media/, ordered by entry
// name and deduplicated by payload.
func collectDocxMedia(zr *zip.Reader) ([]Image, error) {
	var names []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/media/") {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)

	seen := make(map[string]bool)
	var pictures []Image
	for _, name := range names {
		payload, err := readArchiveFile(zr, name)
		if err != nil {
			return nil, err
		}
		img, ok := mediaImage(name, payload)
		if !ok || seen[img.Base64] {
			continue
		}
		seen[img.Base64] = true
		pictures = append(pictures, img)
	}
	return pictures, nil
}
