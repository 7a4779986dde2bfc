// Package transform applies whole-document color rewrites: greyscale
// quantization, color inversion, hard black/white reduction, and fill
// removal for outline-only output. Every transform edits the document in
// place and reports what it touched; nothing here does file I/O except the
// color-data writers.
package transform

import (
	"github.com/tsawler/dieline/colors"
	"github.com/tsawler/dieline/svgdom"
)

// Stats summarizes a greyscale pass. Changed counts elements with at
// least one rewritten color; ToBlack and ToWhite count the individual
// colors snapped to an extreme.
type Stats struct {
	Changed int
	ToBlack int
	ToWhite int
}

// Greyscale rewrites every color in the document (presentation attributes,
// style declarations, gradient stops) to its luminance grey, snapping dark
// colors to pure black and light colors to pure white at the given
// thresholds. Running it twice with the same thresholds is a no-op the
// second time.
func Greyscale(doc *svgdom.Document, blackThreshold, whiteThreshold int) Stats {
	var stats Stats
	stats.Changed = doc.Walk(func(e *svgdom.Element) bool {
		changed := false
		e.RewriteColors(func(_, value string) string {
			token, class := colors.ToGreyscale(value, blackThreshold, whiteThreshold)
			if token == value {
				return value
			}
			changed = true
			switch class {
			case colors.ToBlack:
				stats.ToBlack++
			case colors.ToWhite:
				stats.ToWhite++
			}
			return token
		})
		return changed
	})
	return stats
}

// Invert replaces every color with its RGB complement and returns the
// number of elements changed. Unparseable tokens are left alone.
func Invert(doc *svgdom.Document) int {
	return doc.Walk(func(e *svgdom.Element) bool {
		return e.RewriteColors(colorFunc(colors.Invert))
	})
}

// BlackWhite collapses every color to pure black or pure white and returns
// the number of elements changed. Only pure black survives as black;
// everything else, greys included, becomes white.
func BlackWhite(doc *svgdom.Document) int {
	return doc.Walk(func(e *svgdom.Element) bool {
		return e.RewriteColors(colorFunc(colors.ToBW))
	})
}

func colorFunc(fn func(string) string) func(string, string) string {
	return func(_, value string) string {
		return fn(value)
	}
}
