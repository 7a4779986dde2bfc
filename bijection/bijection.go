// Package bijection compares a greyscale document with its inverted
// counterpart and keeps only the elements whose colors are exact
// black/white complements of each other. Those elements survive both a
// luminance collapse and a channel inversion as pure extremes, which makes
// them the strongest die-line candidates.
package bijection

import (
	"strings"

	"github.com/tsawler/dieline/colors"
	"github.com/tsawler/dieline/svgdom"
)

// graphicsTags are the element types that carry color and participate in
// the comparison. Everything else passes through untouched.
var graphicsTags = map[string]bool{
	"rect":     true,
	"circle":   true,
	"ellipse":  true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
	"path":     true,
	"text":     true,
	"tspan":    true,
	"g":        true,
	"use":      true,
	"image":    true,
}

// fingerprintAttrs is the fixed ordered attribute subset that identifies an
// element across the two documents. Color attributes are deliberately
// excluded; they are what differs between the sides.
var fingerprintAttrs = []string{
	"id", "class", "x", "y", "cx", "cy", "r", "rx", "ry",
	"width", "height", "d", "points",
}

// styleColorKeys are the style declarations compared per element.
var styleColorKeys = []string{"fill", "stroke", "color", "stop-color"}

// Stats summarizes a bijection extraction.
type Stats struct {
	Total        int
	Retained     int
	Removed      int
	BlackToWhite int
	WhiteToBlack int
}

// Fingerprint derives the lookup key for an element: its tag plus the
// identity and geometry attributes that are stable across color transforms.
// Two elements with identical geometry collide; the first one indexed wins,
// an accepted approximation rather than a guarantee.
func Fingerprint(e *svgdom.Element) string {
	parts := []string{e.Tag}
	for _, attr := range fingerprintAttrs {
		if v := e.AttrValue(attr); v != "" {
			parts = append(parts, attr+":"+v)
		}
	}
	return strings.Join(parts, "|")
}

func buildIndex(doc *svgdom.Document) map[string]*svgdom.Element {
	index := map[string]*svgdom.Element{}
	doc.Walk(func(e *svgdom.Element) bool {
		if !graphicsTags[e.Tag] {
			return false
		}
		key := Fingerprint(e)
		if _, ok := index[key]; !ok {
			index[key] = e
		}
		return false
	})
	return index
}

// Extract builds the bijection document: a clone of the greyscale document
// pruned down to elements whose fill, stroke, and style colors form perfect
// black/white complement pairs with the matching element in the inverted
// document. Elements missing from either side are removed along with their
// subtrees.
func Extract(grey, inverted *svgdom.Document) (*svgdom.Document, Stats) {
	out := grey.Clone()
	greyIndex := buildIndex(grey)
	invIndex := buildIndex(inverted)

	var stats Stats
	out.Walk(func(e *svgdom.Element) bool {
		if e == out.Root || !graphicsTags[e.Tag] {
			return false
		}
		stats.Total++

		key := Fingerprint(e)
		greyEl := greyIndex[key]
		invEl := invIndex[key]
		if greyEl == nil || invEl == nil {
			stats.Removed++
			e.Detach()
			return true
		}

		pair := comparePair(greyEl, invEl)
		if !pair.retained {
			stats.Removed++
			e.Detach()
			return true
		}

		stats.Retained++
		if pair.blackToWhite {
			stats.BlackToWhite++
		}
		if pair.whiteToBlack {
			stats.WhiteToBlack++
		}
		return false
	})

	return out, stats
}

type pairing struct {
	retained     bool
	blackToWhite bool
	whiteToBlack bool
}

// comparePair checks every color slot on the two elements. The element is
// retained when at least one slot forms a complement pair and no slot is a
// non-complementary mismatch.
func comparePair(greyEl, invEl *svgdom.Element) pairing {
	var p pairing
	matched := false
	mismatched := false

	check := func(gv, iv string) {
		if gv == "" {
			gv = "none"
		}
		if iv == "" {
			iv = "none"
		}
		if gv == "none" && iv == "none" {
			return
		}
		switch {
		case colors.IsBlack(gv) && colors.IsWhite(iv):
			matched = true
			p.blackToWhite = true
		case colors.IsWhite(gv) && colors.IsBlack(iv):
			matched = true
			p.whiteToBlack = true
		default:
			mismatched = true
		}
	}

	check(greyEl.AttrValue("fill"), invEl.AttrValue("fill"))
	check(greyEl.AttrValue("stroke"), invEl.AttrValue("stroke"))

	for _, key := range styleColorKeys {
		gv, gok := greyEl.StyleValue(key)
		iv, iok := invEl.StyleValue(key)
		if gok || iok {
			check(gv, iv)
		}
	}

	// An element with no color slots at all (both sides bare) still
	// survives: there is nothing contradicting the bijection.
	p.retained = !mismatched && (matched || bare(greyEl) && bare(invEl))
	return p
}

func bare(e *svgdom.Element) bool {
	if v := e.AttrValue("fill"); v != "" && v != "none" {
		return false
	}
	if v := e.AttrValue("stroke"); v != "" && v != "none" {
		return false
	}
	for _, key := range styleColorKeys {
		if v, ok := e.StyleValue(key); ok && v != "none" {
			return false
		}
	}
	return true
}
