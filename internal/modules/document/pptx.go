package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

type pptxExtractor struct{}

func (pptxExtractor) Format() Format { return FormatSlideshow }

var slideNameRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Extract parses a .pptx archive slide by slide. Slides are ordered by their
// number in the archive entry name, not by archive order.
func (pptxExtractor) Extract(data []byte) (Content, error) {
	zr, err := openArchive(data)
	if err != nil {
		return nil, &ExtractionError{Format: FormatSlideshow, Err: err}
	}

	type slideEntry struct {
		number int
		name   string
	}
	var entries []slideEntry
	for _, f := range zr.File {
		m := slideNameRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, slideEntry{number: n, name: f.Name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].number < entries[j].number })

	var slides []Slide
	for i, entry := range entries {
		doc, err := readArchiveFile(zr, entry.name)
		if err != nil {
			return nil, &ExtractionError{Format: FormatSlideshow, Err: err}
		}

		texts, embeds := parseSlide(doc)

		images, err := resolveSlideImages(zr, entry.name, embeds)
		if err != nil {
			return nil, &ExtractionError{Format: FormatSlideshow, Err: err}
		}

		slides = append(slides, Slide{
			Number: i + 1,
			Texts:  texts,
			Images: images,
		})
	}

	return &SlideshowContent{Slides: slides}, nil
}

// parseSlide walks one slide document. Each shape (p:sp) yields one text item
// built from its a:t runs; each picture (p:pic) yields the relationship id of
// its a:blip.
func parseSlide(doc []byte) (texts []string, embeds []string) {
	decoder := xml.NewDecoder(bytes.NewReader(doc))

	var shape strings.Builder
	inShape := false
	inPic := false
	inText := false

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				inShape = true
				shape.Reset()
			case "pic":
				inPic = true
			case "blip":
				if !inPic {
					continue
				}
				for _, attr := range t.Attr {
					if attr.Name.Local == "embed" {
						embeds = append(embeds, attr.Value)
					}
				}
			case "t":
				if inShape {
					inText = true
				}
			}

		case xml.CharData:
			if inText {
				shape.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				if inText {
					inText = false
					shape.WriteByte(' ')
				}
			case "sp":
				if inShape {
					inShape = false
					text := strings.TrimSpace(shape.String())
					if text != "" {
						texts = append(texts, text)
					}
				}
			case "pic":
				inPic = false
			}
		}
	}

	return texts, embeds
}

// relationship mirrors one <Relationship> entry of a slide .rels part.
type relationship struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
}

type relationships struct {
	Entries []relationship `xml:"Relationship"`
}

// resolveSlideImages maps blip relationship ids through the slide's .rels
// part to ppt/media payloads.
func resolveSlideImages(zr *zip.Reader, slideName string, embeds []string) ([]Image, error) {
	if len(embeds) == 0 {
		return nil, nil
	}

	base := strings.TrimPrefix(slideName, "ppt/slides/")
	relsName := "ppt/slides/_rels/" + base + ".rels"
	relsData, err := readArchiveFile(zr, relsName)
	if err != nil {
		// A slide referencing images without a rels part is malformed but
		// still summarizable from its text.
		return nil, nil
	}

	var rels relationships
	if err := xml.Unmarshal(relsData, &rels); err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels.Entries))
	for _, rel := range rels.Entries {
		targets[rel.ID] = rel.Target
	}

	var images []Image
	for _, embed := range embeds {
		target, ok := targets[embed]
		if !ok {
			continue
		}
		// Targets are relative to ppt/slides/, typically "../media/image1.png".
		name := "ppt/" + strings.TrimPrefix(target, "../")
		payload, err := readArchiveFile(zr, name)
		if err != nil {
			continue
		}
		img, ok := mediaImage(name, payload)
		if ok {
			images = append(images, img)
		}
	}
	return images, nil
}
