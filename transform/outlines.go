package transform

import (
	"fmt"
	"strings"

	"github.com/tsawler/dieline/svgdom"
)

// gradientTags and skipTags mirror what RemoveColors treats as definition
// machinery rather than drawable content.
var gradientTags = map[string]bool{
	"linearGradient": true,
	"radialGradient": true,
}

var outlineSkipTags = map[string]bool{
	"defs":           true,
	"linearGradient": true,
	"radialGradient": true,
	"pattern":        true,
	"stop":           true,
}

// RemoveColors strips fills and opacity from every drawable element while
// preserving stroke outlines: colored strokes become black, zero-width
// strokes get a visible 1px width. Gradient and pattern definitions are
// extracted into the returned ColorData and removed from the document, so
// the result renders as pure black line work.
func RemoveColors(doc *svgdom.Document) *ColorData {
	cd := &ColorData{
		Gradients: map[string]Gradient{},
		Patterns:  map[string]Pattern{},
	}

	for _, defs := range doc.FindAll("defs") {
		for _, child := range defs.Children() {
			id := child.AttrValue("id")
			if id == "" {
				continue
			}
			switch {
			case gradientTags[child.Tag]:
				cd.Gradients[id] = extractGradient(child)
			case child.Tag == "pattern":
				cd.Patterns[id] = extractPattern(child)
			}
		}
	}

	index := 0
	doc.Walk(func(e *svgdom.Element) bool {
		if outlineSkipTags[e.Tag] {
			return false
		}
		if ec, ok := extractElementColors(e, index); ok {
			cd.Elements = append(cd.Elements, ec)
			index++
		}
		return removeColorAttributes(e)
	})

	for _, defs := range doc.FindAll("defs") {
		for _, child := range defs.Children() {
			if gradientTags[child.Tag] || child.Tag == "pattern" {
				child.Detach()
			}
		}
	}

	return cd
}

func extractGradient(e *svgdom.Element) Gradient {
	kind := "radial"
	if e.Tag == "linearGradient" {
		kind = "linear"
	}
	g := Gradient{Type: kind, Attributes: attrMap(e)}

	var collect func(*svgdom.Element)
	collect = func(el *svgdom.Element) {
		for _, child := range el.Children() {
			if child.Tag == "stop" {
				stop := GradientStop{
					Offset:      child.AttrValue("offset"),
					StopColor:   child.AttrValue("stop-color"),
					StopOpacity: child.AttrValue("stop-opacity"),
				}
				if stop.Offset == "" {
					stop.Offset = "0%"
				}
				if v, ok := child.StyleValue("stop-color"); ok && stop.StopColor == "" {
					stop.StopColor = v
				}
				if v, ok := child.StyleValue("stop-opacity"); ok && stop.StopOpacity == "" {
					stop.StopOpacity = v
				}
				g.Stops = append(g.Stops, stop)
			}
			collect(child)
		}
	}
	collect(e)
	return g
}

func extractPattern(e *svgdom.Element) Pattern {
	content, err := svgdom.ElementString(e)
	if err != nil {
		content = ""
	}
	return Pattern{Attributes: attrMap(e), Content: content}
}

func attrMap(e *svgdom.Element) map[string]string {
	m := make(map[string]string, len(e.Attrs()))
	for _, a := range e.Attrs() {
		m[a.Name] = a.Value
	}
	return m
}

// extractElementColors snapshots an element's color-bearing attributes.
// Elements without any color information are skipped.
func extractElementColors(e *svgdom.Element, index int) (ElementColors, bool) {
	ec := ElementColors{
		ElementID: e.AttrValue("id"),
		Tag:       e.Tag,
		Index:     index,
	}
	if ec.ElementID == "" {
		ec.ElementID = fmt.Sprintf("element_%d", index)
	}

	found := false
	if fill := e.AttrValue("fill"); fill != "" && fill != "none" {
		ec.Fill = fill
		found = true
	}
	if stroke := e.AttrValue("stroke"); stroke != "" && stroke != "none" {
		ec.Stroke = stroke
		ec.StrokeWidth = e.AttrValue("stroke-width")
		ec.StrokeOpacity = e.AttrValue("stroke-opacity")
		found = true
	}
	if opacity := e.AttrValue("opacity"); opacity != "" {
		ec.Opacity = opacity
		found = true
	}
	if fo := e.AttrValue("fill-opacity"); fo != "" {
		ec.FillOpacity = fo
		found = true
	}

	styleColors := map[string]string{}
	for _, key := range []string{"fill", "stroke", "opacity", "fill-opacity", "stroke-opacity", "stroke-width"} {
		if v, ok := e.StyleValue(key); ok && v != "none" {
			styleColors[key] = v
		}
	}
	if len(styleColors) > 0 {
		ec.Style = styleColors
		found = true
	}

	return ec, found
}

// removeColorAttributes does the actual stripping: fills and opacity go,
// strokes survive as black outlines with a visible width.
func removeColorAttributes(e *svgdom.Element) bool {
	changed := false

	for _, attr := range []string{"fill", "fill-opacity", "opacity"} {
		if _, ok := e.Attr(attr); ok {
			e.RemoveAttr(attr)
			changed = true
		}
	}

	if stroke, ok := e.Attr("stroke"); ok && stroke != "none" && stroke != "transparent" {
		if stroke != "#000000" {
			e.SetAttr("stroke", "#000000")
			changed = true
		}
		if w := e.AttrValue("stroke-width"); w == "" || w == "0" {
			e.SetAttr("stroke-width", "1px")
			changed = true
		}
	}

	if style, ok := e.Attr("style"); ok {
		if rewritten := rewriteOutlineStyle(style); rewritten != style {
			if rewritten == "" {
				e.RemoveAttr("style")
			} else {
				e.SetAttr("style", rewritten)
			}
			changed = true
		}
	}

	return changed
}

func rewriteOutlineStyle(style string) string {
	var kept []string
	for _, decl := range strings.Split(style, ";") {
		if strings.TrimSpace(decl) == "" {
			continue
		}
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			kept = append(kept, decl)
			continue
		}
		key := strings.TrimSpace(k)
		value := strings.TrimSpace(v)

		switch key {
		case "fill", "fill-opacity", "opacity":
			// dropped
		case "stroke":
			if value == "none" || value == "transparent" {
				kept = append(kept, decl)
			} else {
				kept = append(kept, "stroke:#000000")
			}
		case "stroke-width":
			if value == "0" || value == "0px" {
				kept = append(kept, "stroke-width:1px")
			} else {
				kept = append(kept, decl)
			}
		default:
			kept = append(kept, decl)
		}
	}
	return strings.Join(kept, ";")
}
