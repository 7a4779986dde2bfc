// Package colors implements the color model used by the die-line pipeline:
// parsing of SVG/CSS color tokens, BT.709 luminance, and the greyscale,
// black/white, and inversion transforms applied to them.
//
// Tokens arrive as raw attribute strings (hex, rgb(), rgba(), or a closed
// set of named colors). Sentinel non-colors (none, transparent, inherit,
// currentColor) pass through every transform unchanged, and no function in
// this package fails on malformed input; each transform degrades to a
// documented fallback instead.
package colors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as a lowercase 6-digit hex token.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the perceptual brightness of c in [0,255] using the
// ITU-R BT.709 coefficients.
func Luminance(c RGB) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

var (
	rgbRe  = regexp.MustCompile(`^rgb\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rgbaRe = regexp.MustCompile(`^rgba\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*([0-9.]+)\s*\)$`)
)

// form records which syntax a token used, so transforms can render their
// result in the same syntax.
type form int

const (
	formHex form = iota
	formRGB
	formRGBA
	formName
)

// IsSentinel reports whether token is a non-color that every transform must
// pass through unchanged. The empty string counts as a sentinel.
func IsSentinel(token string) bool {
	switch token {
	case "", "none", "transparent", "inherit", "currentColor":
		return true
	}
	return false
}

// Parse parses a color token into an RGB triple. It accepts 3- and 6-digit
// hex, rgb(), rgba() (alpha discarded), and the named colors in this
// package's table. ok is false for sentinels and unparseable tokens.
func Parse(token string) (c RGB, ok bool) {
	c, _, _, ok = parse(token)
	return c, ok
}

// parse is the full-fidelity parser: it also reports the token's syntactic
// form and, for rgba(), the verbatim alpha component.
func parse(token string) (c RGB, alpha string, f form, ok bool) {
	if IsSentinel(token) {
		return RGB{}, "", formHex, false
	}
	switch {
	case strings.HasPrefix(token, "#"):
		c, ok = parseHex(token)
		return c, "", formHex, ok
	case strings.HasPrefix(token, "rgb"):
		if m := rgbRe.FindStringSubmatch(token); m != nil {
			return RGB{channel(m[1]), channel(m[2]), channel(m[3])}, "", formRGB, true
		}
		if m := rgbaRe.FindStringSubmatch(token); m != nil {
			return RGB{channel(m[1]), channel(m[2]), channel(m[3])}, m[4], formRGBA, true
		}
		return RGB{}, "", formRGB, false
	default:
		c, ok = namedColors[strings.ToLower(token)]
		return c, "", formName, ok
	}
}

// parseHex parses #rgb and #rrggbb tokens.
func parseHex(token string) (RGB, bool) {
	h := strings.TrimPrefix(token, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
}

// channel converts a decimal channel string, clamping to 255. The regexps
// guarantee digits only, so oversized values are the only failure mode.
func channel(s string) uint8 {
	v, err := strconv.Atoi(s)
	if err != nil || v > 255 {
		return 255
	}
	return uint8(v)
}

// IsGreyscale reports whether token is already a pure grey: componentwise
// equal hex or rgb() channels, or one of the recognized grey names.
func IsGreyscale(token string) bool {
	switch {
	case strings.HasPrefix(token, "#"):
		h := strings.TrimPrefix(token, "#")
		if len(h) == 3 {
			return h[0] == h[1] && h[1] == h[2]
		}
		if len(h) == 6 {
			return h[0:2] == h[2:4] && h[2:4] == h[4:6]
		}
		return false
	case strings.HasPrefix(token, "rgb"):
		if m := rgbRe.FindStringSubmatch(token); m != nil {
			return m[1] == m[2] && m[2] == m[3]
		}
		return false
	default:
		switch strings.ToLower(token) {
		case "black", "white", "gray", "grey":
			return true
		}
		return false
	}
}

// normalize lowercases a token and strips interior spaces, for set
// membership tests that must tolerate "rgb(0, 0, 0)" vs "rgb(0,0,0)".
func normalize(token string) string {
	return strings.ReplaceAll(strings.ToLower(token), " ", "")
}

// IsBlack reports whether token is one of the recognized pure-black forms.
func IsBlack(token string) bool {
	switch normalize(token) {
	case "#000000", "#000", "black", "rgb(0,0,0)", "rgba(0,0,0,1)":
		return true
	}
	return false
}

// IsWhite reports whether token is one of the recognized pure-white forms.
func IsWhite(token string) bool {
	switch normalize(token) {
	case "#ffffff", "#fff", "white", "rgb(255,255,255)", "rgba(255,255,255,1)":
		return true
	}
	return false
}
