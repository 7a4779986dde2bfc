package svgdom

import "strings"

// ColorKeys are the attribute and style-declaration names that carry a
// color value and participate in the color transforms.
var ColorKeys = []string{"fill", "stroke", "stop-color", "color"}

// StyleKeys are the declaration names recognized inside a style attribute.
// Anything else found in a style attribute is preserved verbatim.
var StyleKeys = []string{
	"fill", "stroke", "stop-color", "color",
	"opacity", "fill-opacity", "stroke-opacity", "stroke-width",
	"stroke-dasharray", "stroke-linecap", "stroke-linejoin",
}

// styleDecl is one declaration of a style attribute. raw preserves the
// declaration's original text so untouched declarations round-trip exactly.
type styleDecl struct {
	raw   string
	key   string
	value string
}

func parseStyle(s string) []styleDecl {
	var decls []styleDecl
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d := styleDecl{raw: part}
		if i := strings.IndexByte(part, ':'); i >= 0 {
			d.key = strings.TrimSpace(part[:i])
			d.value = strings.TrimSpace(part[i+1:])
		}
		decls = append(decls, d)
	}
	return decls
}

func formatStyle(decls []styleDecl) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.raw
	}
	return strings.Join(parts, ";")
}

// StyleValue returns the value of a declaration inside the element's style
// attribute.
func (e *Element) StyleValue(key string) (string, bool) {
	style, ok := e.Attr("style")
	if !ok {
		return "", false
	}
	for _, d := range parseStyle(style) {
		if d.key == key {
			return d.value, true
		}
	}
	return "", false
}

// SetStyleValue rewrites the named declaration inside the style attribute,
// preserving the order and text of every other declaration. If the key is
// absent it is appended; if the element has no style attribute one is
// created.
func (e *Element) SetStyleValue(key, value string) {
	style, _ := e.Attr("style")
	decls := parseStyle(style)

	found := false
	for i, d := range decls {
		if d.key == key {
			decls[i] = styleDecl{raw: key + ":" + value, key: key, value: value}
			found = true
		}
	}
	if !found {
		decls = append(decls, styleDecl{raw: key + ":" + value, key: key, value: value})
	}
	e.SetAttr("style", formatStyle(decls))
}

// RemoveStyleValue deletes the named declaration. When the last declaration
// goes, the style attribute itself is removed.
func (e *Element) RemoveStyleValue(key string) {
	style, ok := e.Attr("style")
	if !ok {
		return
	}
	decls := parseStyle(style)
	kept := decls[:0]
	for _, d := range decls {
		if d.key != key {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", formatStyle(kept))
}

// ColorValue reads a color-bearing value uniformly: a direct attribute if
// present, otherwise the style declaration of the same name.
func (e *Element) ColorValue(key string) (string, bool) {
	if v, ok := e.Attr(key); ok {
		return v, ok
	}
	return e.StyleValue(key)
}

// SetColorValue writes a color-bearing value wherever it currently lives:
// the direct attribute if present, the style declaration if present, and
// the direct attribute if neither exists yet.
func (e *Element) SetColorValue(key, value string) {
	if _, ok := e.Attr(key); ok {
		e.SetAttr(key, value)
		return
	}
	if _, ok := e.StyleValue(key); ok {
		e.SetStyleValue(key, value)
		return
	}
	e.SetAttr(key, value)
}

// RewriteColors applies fn to every color-bearing value on the element:
// each direct attribute in ColorKeys and each style declaration whose key
// is in ColorKeys. fn returns the replacement value; returning the input
// unchanged leaves the element untouched. RewriteColors reports whether
// anything was rewritten.
func (e *Element) RewriteColors(fn func(key, value string) string) bool {
	changed := false

	for _, key := range ColorKeys {
		if v, ok := e.Attr(key); ok {
			if nv := fn(key, v); nv != v {
				e.SetAttr(key, nv)
				changed = true
			}
		}
	}

	if style, ok := e.Attr("style"); ok {
		decls := parseStyle(style)
		styleChanged := false
		for i, d := range decls {
			if !isColorKey(d.key) {
				continue
			}
			if nv := fn(d.key, d.value); nv != d.value {
				decls[i] = styleDecl{raw: d.key + ":" + nv, key: d.key, value: nv}
				styleChanged = true
			}
		}
		if styleChanged {
			e.SetAttr("style", formatStyle(decls))
			changed = true
		}
	}

	return changed
}

func isColorKey(key string) bool {
	for _, k := range ColorKeys {
		if k == key {
			return true
		}
	}
	return false
}
