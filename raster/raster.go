// Package raster finds embedded and linked bitmap content in an SVG
// document, persists it for audit, and strips it from the tree so the
// downstream color stages see pure vector content.
package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/dieline/svgdom"
)

// Recognizer turns image bytes into text. Wired to the OCR package when
// text audit of extracted rasters is wanted; nil disables it.
type Recognizer interface {
	Recognize(img []byte) (string, error)
}

// Options controls extraction side effects.
type Options struct {
	// SaveDir is the directory payloads are written to, created on demand.
	// Empty disables saving; raster elements are still removed.
	SaveDir string

	// Recognizer, when set, runs OCR over each decoded payload and records
	// the text in the metadata file.
	Recognizer Recognizer
}

// Payload describes one extracted raster.
type Payload struct {
	Index     int
	Path      string
	MIME      string
	Size      int
	Width     int
	Height    int
	Reference string // external href, when the image was not embedded
}

// Result reports what an extraction pass did.
type Result struct {
	Removed  int
	Saved    int
	Payloads []Payload
	Warnings []string
}

// Extract removes every image element and every element carrying a
// data:image href from the document. With a save directory configured,
// embedded payloads are base64-decoded to raster_NNN.<ext> files with a
// raster_NNN_metadata.txt companion, and external references are recorded
// as raster_NNN_reference.txt. Undecodable payloads are reported as
// warnings; the element is removed either way.
func Extract(doc *svgdom.Document, opts Options) (*Result, error) {
	res := &Result{}

	var targets []*svgdom.Element
	doc.Walk(func(e *svgdom.Element) bool {
		if e == doc.Root {
			return false
		}
		if e.Tag == "image" {
			targets = append(targets, e)
			return false
		}
		if href, ok := e.Href(); ok && strings.HasPrefix(href, "data:image/") {
			targets = append(targets, e)
		}
		return false
	})

	if opts.SaveDir != "" && len(targets) > 0 {
		if err := os.MkdirAll(opts.SaveDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating raster directory: %w", err)
		}
	}

	for _, e := range targets {
		if opts.SaveDir != "" {
			if err := save(e, opts, res); err != nil {
				return nil, err
			}
		}
		e.Detach()
		res.Removed++
	}

	return res, nil
}

func save(e *svgdom.Element, opts Options, res *Result) error {
	href, ok := e.Href()
	if !ok || href == "" {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s element has no href, nothing to save", e.Tag))
		return nil
	}

	index := res.Saved + 1

	if !strings.HasPrefix(href, "data:image/") {
		p, err := saveReference(e, href, opts.SaveDir, index)
		if err != nil {
			return err
		}
		res.Saved++
		res.Payloads = append(res.Payloads, p)
		return nil
	}

	mime, data, err := decodeDataURL(href)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("raster payload on %s: %v", e.Tag, err))
		return nil
	}

	p := Payload{
		Index: index,
		MIME:  mime,
		Size:  len(data),
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		p.Width = cfg.Width
		p.Height = cfg.Height
	}

	p.Path = filepath.Join(opts.SaveDir, fmt.Sprintf("raster_%03d.%s", index, extensionFor(mime)))
	if err := os.WriteFile(p.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p.Path, err)
	}

	var text string
	if opts.Recognizer != nil {
		text, err = opts.Recognizer.Recognize(data)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("OCR on raster_%03d: %v", index, err))
			text = ""
		}
	}

	metaPath := filepath.Join(opts.SaveDir, fmt.Sprintf("raster_%03d_metadata.txt", index))
	if err := os.WriteFile(metaPath, []byte(metadata(e, p, text)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", metaPath, err)
	}

	res.Saved++
	res.Payloads = append(res.Payloads, p)
	return nil
}

func saveReference(e *svgdom.Element, href, dir string, index int) (Payload, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Image reference: %s\n", href)
	b.WriteString("Element attributes:\n")
	for _, a := range e.Attrs() {
		fmt.Fprintf(&b, "  %s: %s\n", a.Name, a.Value)
	}

	path := filepath.Join(dir, fmt.Sprintf("raster_%03d_reference.txt", index))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return Payload{}, fmt.Errorf("writing %s: %w", path, err)
	}
	return Payload{Index: index, Path: path, Reference: href}, nil
}

// decodeDataURL splits a data:image/...;base64,... URL into its MIME type
// and decoded payload.
func decodeDataURL(href string) (string, []byte, error) {
	header, payload, ok := strings.Cut(href, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URL has no payload separator")
	}
	mime := strings.TrimPrefix(strings.SplitN(header, ";", 2)[0], "data:")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some exporters omit padding.
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return "", nil, fmt.Errorf("decoding base64 payload: %w", err)
	}
	return mime, data, nil
}

func extensionFor(mime string) string {
	m := strings.ToLower(mime)
	switch {
	case strings.Contains(m, "png"):
		return "png"
	case strings.Contains(m, "jpeg"), strings.Contains(m, "jpg"):
		return "jpg"
	case strings.Contains(m, "gif"):
		return "gif"
	case strings.Contains(m, "svg"):
		return "svg"
	case strings.Contains(m, "webp"):
		return "webp"
	case strings.Contains(m, "bmp"):
		return "bmp"
	case strings.Contains(m, "tiff"):
		return "tiff"
	}
	return "bin"
}

func metadata(e *svgdom.Element, p Payload, ocrText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "MIME type: %s\n", p.MIME)
	fmt.Fprintf(&b, "File size: %d bytes\n", p.Size)
	if p.Width > 0 && p.Height > 0 {
		fmt.Fprintf(&b, "Dimensions: %dx%d\n", p.Width, p.Height)
	}
	b.WriteString("Element attributes:\n")
	for _, a := range e.Attrs() {
		if strings.HasSuffix(a.Name, "href") {
			continue
		}
		fmt.Fprintf(&b, "  %s: %s\n", a.Name, a.Value)
	}
	if ocrText != "" {
		b.WriteString("Recognized text:\n")
		b.WriteString(ocrText)
		if !strings.HasSuffix(ocrText, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}
