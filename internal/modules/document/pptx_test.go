package document

import (
	"errors"
	"reflect"
	"testing"
)

func slideXML(texts ...string) []byte {
	body := `<?xml version="1.0"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>`
	for _, t := range texts {
		body += `<p:sp><p:txBody><a:p><a:r><a:t>` + t + `</a:t></a:r></a:p></p:txBody></p:sp>`
	}
	body += `</p:spTree></p:cSld></p:sld>`
	return []byte(body)
}

func TestPptxExtractSlideOrder(t *testing.T) {
	// Entry order deliberately scrambled; slide numbers in the names win.
	data := buildZip(t, map[string][]byte{
		"ppt/slides/slide10.xml": slideXML("tenth"),
		"ppt/slides/slide2.xml":  slideXML("second"),
		"ppt/slides/slide1.xml":  slideXML("first"),
	})

	content, err := pptxExtractor{}.Extract(data)
	if err != nil {
		t.Fatal(err)
	}
	sc, ok := content.(*SlideshowContent)
	if !ok {
		t.Fatalf("got %T", content)
	}

	if len(sc.Slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(sc.Slides))
	}
	var texts []string
	for i, slide := range sc.Slides {
		if slide.Number != i+1 {
			t.Errorf("slide %d has Number %d", i, slide.Number)
		}
		texts = append(texts, slide.Texts...)
	}
	want := []string{"first", "second", "tenth"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("slide texts = %v, want %v", texts, want)
	}
}

func TestPptxExtractShapeTextJoined(t *testing.T) {
	slide := []byte(`<?xml version="1.0"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>
    <p:sp><p:txBody>
      <a:p><a:r><a:t>Hello</a:t></a:r><a:r><a:t>World</a:t></a:r></a:p>
    </p:txBody></p:sp>
  </p:spTree></p:cSld></p:sld>`)
	data := buildZip(t, map[string][]byte{"ppt/slides/slide1.xml": slide})

	content, err := pptxExtractor{}.Extract(data)
	if err != nil {
		t.Fatal(err)
	}
	sc := content.(*SlideshowContent)
	if len(sc.Slides) != 1 || len(sc.Slides[0].Texts) != 1 {
		t.Fatalf("slides = %+v", sc.Slides)
	}
	if got := sc.Slides[0].Texts[0]; got != "Hello World" {
		t.Fatalf("shape text = %q, want %q", got, "Hello World")
	}
}

func TestPptxExtractImages(t *testing.T) {
	slide := []byte(`<?xml version="1.0"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:cSld><p:spTree>
    <p:sp><p:txBody><a:p><a:r><a:t>With image</a:t></a:r></a:p></p:txBody></p:sp>
    <p:pic><p:blipFill><a:blip r:embed="rId2"/></p:blipFill></p:pic>
  </p:spTree></p:cSld></p:sld>`)
	rels := []byte(`<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId2" Type="image" Target="../media/image1.png"/>
</Relationships>`)
	data := buildZip(t, map[string][]byte{
		"ppt/slides/slide1.xml":            slide,
		"ppt/slides/_rels/slide1.xml.rels": rels,
		"ppt/media/image1.png":             tinyPNG,
	})

	content, err := pptxExtractor{}.Extract(data)
	if err != nil {
		t.Fatal(err)
	}
	sc := content.(*SlideshowContent)
	if len(sc.Slides[0].Images) != 1 {
		t.Fatalf("got %d images, want 1", len(sc.Slides[0].Images))
	}
	if sc.Slides[0].Images[0].Format != "png" {
		t.Fatalf("image format = %q, want png", sc.Slides[0].Images[0].Format)
	}
	if !sc.HasImages() {
		t.Fatal("HasImages() should be true")
	}
}

func TestPptxExtractMissingRelsKeepsText(t *testing.T) {
	slide := []byte(`<?xml version="1.0"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:cSld><p:spTree>
    <p:sp><p:txBody><a:p><a:r><a:t>Orphan</a:t></a:r></a:p></p:txBody></p:sp>
    <p:pic><p:blipFill><a:blip r:embed="rId9"/></p:blipFill></p:pic>
  </p:spTree></p:cSld></p:sld>`)
	data := buildZip(t, map[string][]byte{"ppt/slides/slide1.xml": slide})

	content, err := pptxExtractor{}.Extract(data)
	if err != nil {
		t.Fatal(err)
	}
	sc := content.(*SlideshowContent)
	if len(sc.Slides[0].Images) != 0 {
		t.Fatalf("unresolvable embeds should yield no images, got %d", len(sc.Slides[0].Images))
	}
	if sc.Slides[0].Texts[0] != "Orphan" {
		t.Fatalf("text lost: %v", sc.Slides[0].Texts)
	}
}

func TestPptxExtractNotAZip(t *testing.T) {
	_, err := pptxExtractor{}.Extract([]byte("nope"))
	var extraction *ExtractionError
	if !errors.As(err, &extraction) {
		t.Fatalf("got %v, want ExtractionError", err)
	}
	if extraction.Format != FormatSlideshow {
		t.Fatalf("Format = %s, want %s", extraction.Format, FormatSlideshow)
	}
}
