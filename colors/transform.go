package colors

import (
	"fmt"
	"math"
	"strings"
)

// Classification describes what a greyscale conversion did to a token.
type Classification int

const (
	// Unchanged means the token stayed grey (or was a sentinel/fallback).
	Unchanged Classification = iota
	// ToBlack means the token collapsed to pure black.
	ToBlack
	// ToWhite means the token collapsed to pure white.
	ToWhite
)

func (c Classification) String() string {
	switch c {
	case ToBlack:
		return "to-black"
	case ToWhite:
		return "to-white"
	default:
		return "unchanged"
	}
}

// greyFallback is the token substituted for colors that cannot be parsed
// during greyscale conversion.
const greyFallback = "#808080"

// ToGreyscale maps a color token to its greyscale equivalent using BT.709
// luminance, collapsing near-black and near-white values to the pure
// extremes: luminance <= blackThreshold becomes #000000, luminance >=
// whiteThreshold becomes #ffffff, anything between becomes the rounded
// grey #gggggg. Tokens that are already grey are only reclassified against
// the thresholds. rgba() tokens keep their alpha component verbatim.
// Sentinels pass through; unparseable tokens degrade to #808080.
func ToGreyscale(token string, blackThreshold, whiteThreshold int) (string, Classification) {
	if IsSentinel(token) {
		return token, Unchanged
	}

	if IsGreyscale(token) {
		// Already grey. Only 6-digit hex greys carry enough precision to
		// reclassify against the thresholds; the rest stay as they are.
		if len(token) == 7 {
			if c, ok := parseHex(token); ok {
				switch {
				case int(c.R) <= blackThreshold && c.R > 0:
					return "#000000", ToBlack
				case int(c.R) >= whiteThreshold && c.R < 255:
					return "#ffffff", ToWhite
				}
			}
		}
		return token, Unchanged
	}

	c, alpha, f, ok := parse(token)
	if !ok {
		return greyFallback, Unchanged
	}

	lum := Luminance(c)
	grey := int(math.Round(math.Min(255, math.Max(0, lum))))

	if f == formRGBA {
		switch {
		case lum <= float64(blackThreshold):
			return fmt.Sprintf("rgba(0, 0, 0, %s)", alpha), ToBlack
		case lum >= float64(whiteThreshold):
			return fmt.Sprintf("rgba(255, 255, 255, %s)", alpha), ToWhite
		}
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", grey, grey, grey, alpha), Unchanged
	}

	switch {
	case lum <= float64(blackThreshold):
		return "#000000", ToBlack
	case lum >= float64(whiteThreshold):
		return "#ffffff", ToWhite
	}
	return fmt.Sprintf("#%02x%02x%02x", grey, grey, grey), Unchanged
}

// ToBW collapses a token to strict black or white: pure black stays black,
// everything else (any grey included) becomes pure white. This is a binary
// collapse, not a thresholded luminance mapping; unparseable tokens become
// white. Sentinels pass through.
func ToBW(token string) string {
	if IsSentinel(token) {
		return token
	}
	if IsBlack(token) {
		return "#000000"
	}
	if c, ok := Parse(token); ok && c == (RGB{}) {
		return "#000000"
	}
	return "#ffffff"
}

// Invert maps a token to its 255-complement per channel. Hex and rgb()/
// rgba() tokens keep their syntax (alpha untouched); named colors use the
// complementary-name table, falling back to the hex complement of their
// table RGB value. Tokens that cannot be inverted are returned unchanged.
func Invert(token string) string {
	if IsSentinel(token) {
		return token
	}

	c, alpha, f, ok := parse(token)
	if !ok {
		return token
	}
	inv := RGB{255 - c.R, 255 - c.G, 255 - c.B}

	switch f {
	case formHex:
		return inv.Hex()
	case formRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", inv.R, inv.G, inv.B)
	case formRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", inv.R, inv.G, inv.B, alpha)
	default:
		if name, ok := complementNames[strings.ToLower(token)]; ok {
			return name
		}
		return inv.Hex()
	}
}
