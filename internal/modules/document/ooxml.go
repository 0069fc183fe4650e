package document

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"path"
	"strings"
)

// openArchive opens an OOXML container held in memory.
func openArchive(data []byte) (*zip.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	return zr, nil
}

// readArchiveFile reads one named entry from an OOXML container.
func readArchiveFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", name, err)
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}

// mediaImage converts an embedded media payload into an Image. Unknown
// payloads are skipped by returning ok=false.
func mediaImage(name string, payload []byte) (Image, bool) {
	format := imageFormat(name, payload)
	if format == "" || len(payload) == 0 {
		return Image{}, false
	}
	return Image{
		Base64:    base64.StdEncoding.EncodeToString(payload),
		Format:    format,
		SizeBytes: len(payload),
	}, true
}

// imageFormat determines the image format from magic bytes, falling back to
// the media entry's file extension.
func imageFormat(name string, payload []byte) string {
	switch {
	case bytes.HasPrefix(payload, []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case bytes.HasPrefix(payload, []byte("\xff\xd8\xff")):
		return "jpeg"
	case bytes.HasPrefix(payload, []byte("GIF8")):
		return "gif"
	case bytes.HasPrefix(payload, []byte("BM")):
		return "bmp"
	case len(payload) >= 12 && bytes.Equal(payload[0:4], []byte("RIFF")) && bytes.Equal(payload[8:12], []byte("WEBP")):
		return "webp"
	}

	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "png":
		return "png"
	case "jpg", "jpeg":
		return "jpeg"
	case "gif":
		return "gif"
	case "bmp":
		return "bmp"
	case "webp":
		return "webp"
	}
	return ""
}
