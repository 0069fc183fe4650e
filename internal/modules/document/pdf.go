package document

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type pdfExtractor struct{}

func (pdfExtractor) Format() Format { return FormatPDF }

// Extract pulls per-page text out of the PDF content streams and rasterizes
// every page to a PNG at doubled resolution so layout-heavy pages survive as
// images even when their text does not.
func (pdfExtractor) Extract(data []byte) (Content, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, &ExtractionError{Format: FormatPDF, Err: fmt.Errorf("pdfcpu read: %w", err)}
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText == "" {
			// Empty pages stay out of the text list but keep their page image.
			continue
		}
		pages = append(pages, pageText)
	}

	images, err := rasterizePages(data)
	if err != nil {
		return nil, &ExtractionError{Format: FormatPDF, Err: err}
	}

	return &PDFContent{
		Pages:      pages,
		TotalPages: ctx.PageCount,
		PageImages: images,
	}, nil
}

// rasterizePages renders each page to PNG via mupdf. 144 DPI doubles the
// default 72 DPI page resolution.
func rasterizePages(data []byte) ([]Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("mupdf open: %w", err)
	}
	defer doc.Close()

	var images []Image
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.ImageDPI(n, 144)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", n+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", n+1, err)
		}

		bounds := img.Bounds()
		images = append(images, Image{
			Base64:    base64.StdEncoding.EncodeToString(buf.Bytes()),
			Format:    "png",
			SizeBytes: bounds.Dx() * bounds.Dy() * 4,
		})
	}
	return images, nil
}

func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	stream, err := io.ReadAll(r)
	if err != nil || len(stream) == 0 {
		return ""
	}
	return parseContentStream(stream)
}

var pdfLiteralRe = regexp.MustCompile(`\(([^)]*)\)`)

// parseContentStream walks the text-showing operators of one page's content
// stream: Tj and TJ show text, ' shows text on a new line, Td/TD reposition
// and T* advances to the next line.
func parseContentStream(stream []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(stream, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFLiteral(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				if text := decodePDFLiteral(m[1]); text != "" {
					sb.WriteByte('\n')
					sb.WriteString(text)
				}
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return normalizePDFText(sb.String())
}

// decodePDFLiteral resolves the escape sequences of a PDF string literal,
// including octal byte escapes.
func decodePDFLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] < '0' || raw[i] > '7' {
				sb.WriteByte(raw[i])
				continue
			}
			val := int(raw[i] - '0')
			for j := 0; j < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; j++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}

// normalizePDFText collapses whitespace runs and drops non-printable runes.
func normalizePDFText(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
