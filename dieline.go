// Package dieline provides a fluent API for decomposing CorelDRAW and SVG
// packaging drawings into die-line analysis artifacts: vector-only,
// outline-only, greyscale, inverted, black/white, bijection, and geometric
// SVG derivatives.
//
// Basic usage:
//
//	result, warnings, err := dieline.Open("box.cdr").Run(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", dieline.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := dieline.Open("box.cdr").
//	    Thresholds(40, 210).
//	    OutDir("artifacts").
//	    DiscardRasters().
//	    Run(ctx)
//
// For single transforms on an existing SVG, the stage functions
// (GreyscaleFile, InvertFile, and so on) and the lower-level subpackages
// are also available.
package dieline

import (
	"github.com/tsawler/dieline/convert"
)

// Open prepares a decomposition pipeline for the given CDR or SVG file and
// returns a Pipeline for fluent configuration. Nothing is read until a
// terminal operation like Run is called.
//
// Example:
//
//	result, warnings, err := dieline.Open("box.cdr").Run(ctx)
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Pipeline provides a fluent interface for configuring and running a
// die-line decomposition. Each configuration method returns a new Pipeline
// instance, making it safe for concurrent use and allowing method chaining.
type Pipeline struct {
	// Source
	filename string

	// Configuration
	options pipelineOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Pipeline with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		filename: p.filename,
		options:  p.options.clone(),
		err:      p.err,
		warnings: append([]Warning(nil), p.warnings...),
	}
}

// Thresholds sets the greyscale luminance cut points: colors at or below
// black become pure black, colors at or above white become pure white.
// Both must lie in [0, 255] with black strictly below white; an invalid
// pair surfaces as ErrInvalidThresholds from the terminal operation.
func (p *Pipeline) Thresholds(black, white int) *Pipeline {
	np := p.clone()
	np.options.blackThreshold = black
	np.options.whiteThreshold = white
	return np
}

// OutDir places all derived artifacts in dir instead of alongside the
// input. The directory is created if needed.
func (p *Pipeline) OutDir(dir string) *Pipeline {
	np := p.clone()
	np.options.outDir = dir
	return np
}

// DiscardRasters skips persisting extracted raster payloads. Raster
// elements are still removed from the vector output.
func (p *Pipeline) DiscardRasters() *Pipeline {
	np := p.clone()
	np.options.saveRasters = false
	return np
}

// DiscardColorData skips writing the color_data.json and color_summary.txt
// side files produced by the outline stage.
func (p *Pipeline) DiscardColorData() *Pipeline {
	np := p.clone()
	np.options.saveColorData = false
	return np
}

// OCRRasters runs text recognition over each extracted raster and records
// the result in the raster metadata files. Requires a build with the ocr
// tag; otherwise a warning is emitted and extraction proceeds without it.
func (p *Pipeline) OCRRasters() *Pipeline {
	np := p.clone()
	np.options.ocrRasters = true
	return np
}

// WithConverter uses the given converter for CDR conversion instead of
// discovering LibreOffice on the PATH.
func (p *Pipeline) WithConverter(c *convert.Converter) *Pipeline {
	np := p.clone()
	np.options.converter = c
	return np
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRun is a helper that wraps a terminal operation and panics if the
// error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	result := dieline.MustRun(dieline.Open("box.cdr").Run(ctx))
func MustRun[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
