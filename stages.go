package dieline

import (
	"path/filepath"
	"strings"

	"github.com/tsawler/dieline/bijection"
	"github.com/tsawler/dieline/raster"
	"github.com/tsawler/dieline/shapes"
	"github.com/tsawler/dieline/svgdom"
	"github.com/tsawler/dieline/transform"
)

// The *File functions run one pipeline stage on an existing SVG file. Each
// parses the input, applies the transform, and writes the result to out;
// an empty out derives the conventional suffixed name next to the input.

// VectorsFile removes raster content from the SVG at in, saving payloads to
// rasterDir (empty disables saving), and writes the vector-only result.
func VectorsFile(in, out, rasterDir string) (*raster.Result, error) {
	doc, err := svgdom.ParseFile(in)
	if err != nil {
		return nil, err
	}
	res, err := raster.Extract(doc, raster.Options{SaveDir: rasterDir})
	if err != nil {
		return nil, err
	}
	return res, doc.WriteFile(stageOutput(in, out, "_vectors"))
}

// OutlinesFile strips fills and converts strokes to black outlines,
// writing the extracted color data to colorDir (empty disables it).
func OutlinesFile(in, out, colorDir string) (*transform.ColorData, error) {
	doc, err := svgdom.ParseFile(in)
	if err != nil {
		return nil, err
	}
	cd := transform.RemoveColors(doc)
	if err := doc.WriteFile(stageOutput(in, out, "_outlines")); err != nil {
		return nil, err
	}
	if colorDir != "" {
		if err := cd.Write(colorDir); err != nil {
			return nil, err
		}
	}
	return cd, nil
}

// GreyscaleFile maps every color in the SVG at in to greyscale with the
// given thresholds.
func GreyscaleFile(in, out string, blackThreshold, whiteThreshold int) (transform.Stats, error) {
	if err := validateThresholds(blackThreshold, whiteThreshold); err != nil {
		return transform.Stats{}, err
	}
	doc, err := svgdom.ParseFile(in)
	if err != nil {
		return transform.Stats{}, err
	}
	stats := transform.Greyscale(doc, blackThreshold, whiteThreshold)
	return stats, doc.WriteFile(stageOutput(in, out, "_greyscale"))
}

// InvertFile replaces every color in the SVG at in with its complement.
func InvertFile(in, out string) (int, error) {
	doc, err := svgdom.ParseFile(in)
	if err != nil {
		return 0, err
	}
	n := transform.Invert(doc)
	return n, doc.WriteFile(stageOutput(in, out, "_inverted"))
}

// BlackWhiteFile collapses every color in the SVG at in to pure black or
// pure white.
func BlackWhiteFile(in, out string) (int, error) {
	doc, err := svgdom.ParseFile(in)
	if err != nil {
		return 0, err
	}
	n := transform.BlackWhite(doc)
	return n, doc.WriteFile(stageOutput(in, out, "_bw"))
}

// BijectionFile compares the greyscale SVG at greyPath with the inverted
// SVG at invPath and writes the document of perfect black/white complement
// elements.
func BijectionFile(greyPath, invPath, out string) (bijection.Stats, error) {
	grey, err := svgdom.ParseFile(greyPath)
	if err != nil {
		return bijection.Stats{}, err
	}
	inv, err := svgdom.ParseFile(invPath)
	if err != nil {
		return bijection.Stats{}, err
	}
	doc, stats := bijection.Extract(grey, inv)
	return stats, doc.WriteFile(stageOutput(greyPath, out, "_bijectionBW"))
}

// GeometricFile prunes the SVG at in down to basic die-line geometry.
func GeometricFile(in, out string) (shapes.Stats, error) {
	doc, err := svgdom.ParseFile(in)
	if err != nil {
		return shapes.Stats{}, err
	}
	stats := shapes.Filter(doc, shapes.DefaultConfig())
	return stats, doc.WriteFile(stageOutput(in, out, "_geometric"))
}

// stageOutput derives the output path for a stage: the input's base name
// with any earlier stage suffix stripped, plus the stage's own suffix.
func stageOutput(in, out, suffix string) string {
	if out != "" {
		return out
	}
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	for _, s := range []string{"_vectors", "_outlines", "_greyscale", "_inverted", "_bw", "_bijectionBW"} {
		base = strings.TrimSuffix(base, s)
	}
	return filepath.Join(filepath.Dir(in), base+suffix+".svg")
}
