// Package format provides file format detection for the dieline pipeline.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// CDR indicates a CorelDRAW drawing.
	CDR
	// SVG indicates a Scalable Vector Graphics document.
	SVG
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case CDR:
		return "CDR"
	case SVG:
		return "SVG"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case CDR:
		return ".cdr"
	case SVG:
		return ".svg"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".cdr":
		return CDR
	case ".svg":
		return SVG
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from magic bytes alone
// (zip-wrapped CDR needs DetectFromReader).
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// Legacy CDR is a RIFF container with a CDR fourcc at offset 8,
	// e.g. "RIFF....CDRC" for CorelDRAW 12.
	if len(data) >= 11 &&
		data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F' &&
		data[8] == 'C' && data[9] == 'D' && data[10] == 'R' {
		return CDR
	}

	if detectSVGMagic(data) {
		return SVG
	}

	return Unknown
}

// detectSVGMagic checks if the data looks like an SVG document: an <svg
// root, optionally behind an XML declaration, doctype, or comments.
func detectSVGMagic(data []byte) bool {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}

	head := strings.ToUpper(string(data[start:min(start+512, len(data))]))
	if strings.HasPrefix(head, "<SVG") {
		return true
	}
	if strings.HasPrefix(head, "<?XML") || strings.HasPrefix(head, "<!DOCTYPE") || strings.HasPrefix(head, "<!--") {
		return strings.Contains(head, "<SVG")
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// DetectFromReader inspects the content to determine format. This is more
// reliable than extension-based detection and recognizes zip-wrapped CDR
// files (CorelDRAW X4 and newer), which DetectFromMagic cannot.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if f := DetectFromMagic(magic); f != Unknown {
		return f, nil
	}

	// ZIP magic: PK\x03\x04
	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive for the markers of a zip-wrapped
// CorelDRAW file: a Corel mimetype entry or the embedded RIFF payload.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if f.Name == "mimetype" {
			rc, err := f.Open()
			if err == nil {
				data := make([]byte, 256)
				n, _ := rc.Read(data)
				rc.Close()
				if strings.Contains(string(data[:n]), "corel") {
					return CDR, nil
				}
			}
		}
	}

	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "riffData.cdr") || strings.HasPrefix(f.Name, "content/") && strings.HasSuffix(f.Name, ".cdr") {
			return CDR, nil
		}
	}

	return Unknown, nil
}
