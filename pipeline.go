package dieline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/dieline/bijection"
	"github.com/tsawler/dieline/convert"
	"github.com/tsawler/dieline/format"
	"github.com/tsawler/dieline/ocr"
	"github.com/tsawler/dieline/raster"
	"github.com/tsawler/dieline/shapes"
	"github.com/tsawler/dieline/svgdom"
	"github.com/tsawler/dieline/transform"
)

var (
	// ErrInvalidThresholds is returned when the greyscale thresholds are
	// out of range or the black threshold is not below the white one.
	ErrInvalidThresholds = errors.New("black threshold must be in [0, 255] and strictly below white threshold")

	// ErrUnsupportedFormat is returned for inputs that are neither
	// CorelDRAW files nor SVG documents.
	ErrUnsupportedFormat = errors.New("unsupported input format: want CDR or SVG")
)

// Result holds the artifact paths and per-stage statistics of a completed
// run. Paths are empty for stages whose side files were switched off.
type Result struct {
	// Source
	Source string
	Format format.Format

	// Derived documents
	Converted string // CDR converted to SVG; empty when the input was SVG
	Vectors   string
	Outlines  string
	Greyscale string
	Inverted  string
	BW        string
	Bijection string
	Geometric string

	// Side-file directories
	RasterDir string
	ColorDir  string

	// Per-stage statistics
	Rasters        *raster.Result
	GreyscaleStats transform.Stats
	InvertedCount  int
	BWCount        int
	BijectionStats bijection.Stats
	ShapeStats     shapes.Stats
}

// Run executes the full decomposition: format detection, CDR conversion if
// needed, raster extraction, outline stripping, greyscale mapping,
// inversion, black/white collapse, bijection extraction, and geometric
// filtering. Every stage writes its artifact before the next one runs, so
// a failure leaves all completed artifacts in place and nothing partial.
// Run does not mutate the Pipeline; warnings raised during processing are
// returned alongside the result.
func (p *Pipeline) Run(ctx context.Context) (*Result, []Warning, error) {
	warnings := append([]Warning(nil), p.warnings...)
	warnf := func(stage, format string, args ...any) {
		warnings = append(warnings, Warning{Stage: stage, Message: fmt.Sprintf(format, args...)})
	}

	if p.err != nil {
		return nil, warnings, p.err
	}
	if err := validateThresholds(p.options.blackThreshold, p.options.whiteThreshold); err != nil {
		return nil, warnings, err
	}

	input, err := filepath.Abs(p.filename)
	if err != nil {
		return nil, warnings, err
	}
	if _, err := os.Stat(input); err != nil {
		return nil, warnings, fmt.Errorf("input file: %w", err)
	}

	f, err := detectFormat(input)
	if err != nil {
		return nil, warnings, err
	}
	if f != format.CDR && f != format.SVG {
		return nil, warnings, fmt.Errorf("%s: %w", p.filename, ErrUnsupportedFormat)
	}

	outDir := p.options.outDir
	if outDir == "" {
		outDir = filepath.Dir(input)
	} else if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, warnings, fmt.Errorf("creating output directory: %w", err)
	}

	res := &Result{Source: input, Format: f}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	artifact := func(suffix string) string {
		return filepath.Join(outDir, base+suffix+".svg")
	}

	svgPath := input
	if f == format.CDR {
		conv := p.options.converter
		if conv == nil {
			if conv, err = convert.Find(); err != nil {
				return nil, warnings, err
			}
		}
		if svgPath, err = conv.ToSVG(ctx, input, outDir); err != nil {
			return nil, warnings, err
		}
		res.Converted = svgPath
	}

	doc, err := svgdom.ParseFile(svgPath)
	if err != nil {
		return nil, warnings, err
	}

	// Raster extraction produces the vector-only baseline every later
	// stage starts from.
	rasterOpts := raster.Options{}
	if p.options.saveRasters {
		rasterOpts.SaveDir = filepath.Join(outDir, base+"_extracted_rasters")
	}
	if p.options.ocrRasters {
		client, err := ocr.New()
		if err != nil {
			warnf("raster", "OCR unavailable: %v", err)
		} else {
			defer client.Close()
			rasterOpts.Recognizer = client
		}
	}
	res.Rasters, err = raster.Extract(doc, rasterOpts)
	if err != nil {
		return nil, warnings, err
	}
	for _, w := range res.Rasters.Warnings {
		warnf("raster", "%s", w)
	}
	if p.options.saveRasters && res.Rasters.Saved > 0 {
		res.RasterDir = rasterOpts.SaveDir
	}
	res.Vectors = artifact("_vectors")
	if err := doc.WriteFile(res.Vectors); err != nil {
		return nil, warnings, err
	}

	// Outline-only derivative plus the extracted color side files.
	outlineDoc := doc.Clone()
	colorData := transform.RemoveColors(outlineDoc)
	res.Outlines = artifact("_outlines")
	if err := outlineDoc.WriteFile(res.Outlines); err != nil {
		return nil, warnings, err
	}
	if p.options.saveColorData {
		res.ColorDir = filepath.Join(outDir, base+"_extracted_colors")
		if err := colorData.Write(res.ColorDir); err != nil {
			return nil, warnings, err
		}
	}

	// Greyscale, then its two children: inversion and the strict collapse.
	greyDoc := doc.Clone()
	res.GreyscaleStats = transform.Greyscale(greyDoc, p.options.blackThreshold, p.options.whiteThreshold)
	res.Greyscale = artifact("_greyscale")
	if err := greyDoc.WriteFile(res.Greyscale); err != nil {
		return nil, warnings, err
	}

	invDoc := greyDoc.Clone()
	res.InvertedCount = transform.Invert(invDoc)
	res.Inverted = artifact("_inverted")
	if err := invDoc.WriteFile(res.Inverted); err != nil {
		return nil, warnings, err
	}

	bwDoc := greyDoc.Clone()
	res.BWCount = transform.BlackWhite(bwDoc)
	res.BW = artifact("_bw")
	if err := bwDoc.WriteFile(res.BW); err != nil {
		return nil, warnings, err
	}

	// Bijection over the greyscale/inverted pair, then the shape filter.
	bijDoc, bijStats := bijection.Extract(greyDoc, invDoc)
	res.BijectionStats = bijStats
	res.Bijection = artifact("_bijectionBW")
	if err := bijDoc.WriteFile(res.Bijection); err != nil {
		return nil, warnings, err
	}

	geoDoc := bijDoc.Clone()
	res.ShapeStats = shapes.Filter(geoDoc, shapes.DefaultConfig())
	res.Geometric = artifact("_geometric")
	if err := geoDoc.WriteFile(res.Geometric); err != nil {
		return nil, warnings, err
	}

	return res, warnings, nil
}

// PDF converts the input drawing to PDF via the external converter and
// returns the output path. This is a standalone terminal operation; it does
// not run the SVG pipeline.
func (p *Pipeline) PDF(ctx context.Context) (string, []Warning, error) {
	if p.err != nil {
		return "", p.warnings, p.err
	}

	conv := p.options.converter
	if conv == nil {
		var err error
		if conv, err = convert.Find(); err != nil {
			return "", p.warnings, err
		}
	}

	out, err := conv.ToPDF(ctx, p.filename, p.options.outDir)
	if err != nil {
		return "", p.warnings, err
	}
	return out, p.warnings, nil
}

func validateThresholds(black, white int) error {
	if black < 0 || white > 255 || black >= white {
		return ErrInvalidThresholds
	}
	return nil
}

// detectFormat sniffs content first and falls back to the file extension
// for formats the magic probe cannot name.
func detectFormat(path string) (format.Format, error) {
	fh, err := os.Open(path)
	if err != nil {
		return format.Unknown, err
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return format.Unknown, err
	}

	f, err := format.DetectFromReader(fh, info.Size())
	if err != nil || f == format.Unknown {
		if byExt := format.Detect(path); byExt != format.Unknown {
			return byExt, nil
		}
	}
	return f, err
}
