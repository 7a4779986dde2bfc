package svgdom

import "testing"

func TestSetStyleValuePreservesOrder(t *testing.T) {
	e := NewElement("rect")
	e.SetAttr("style", "fill:red;stroke:blue")

	e.SetStyleValue("fill", "#000000")

	if got := e.AttrValue("style"); got != "fill:#000000;stroke:blue" {
		t.Errorf("style = %q, want fill:#000000;stroke:blue", got)
	}
}

func TestSetStyleValueAppendsMissingKey(t *testing.T) {
	e := NewElement("rect")
	e.SetAttr("style", "stroke:blue")

	e.SetStyleValue("fill", "none")

	if got := e.AttrValue("style"); got != "stroke:blue;fill:none" {
		t.Errorf("style = %q, want stroke:blue;fill:none", got)
	}
}

func TestRemoveStyleValueDropsEmptyAttribute(t *testing.T) {
	e := NewElement("rect")
	e.SetAttr("style", "fill:red")

	e.RemoveStyleValue("fill")

	if _, ok := e.Attr("style"); ok {
		t.Error("style attribute should be removed once its last declaration goes")
	}
}

func TestRemoveStyleValueKeepsOthers(t *testing.T) {
	e := NewElement("rect")
	e.SetAttr("style", "fill:red;stroke-width:2;stroke:blue")

	e.RemoveStyleValue("fill")

	if got := e.AttrValue("style"); got != "stroke-width:2;stroke:blue" {
		t.Errorf("style = %q, want stroke-width:2;stroke:blue", got)
	}
}

func TestStyleValueWhitespaceTolerant(t *testing.T) {
	e := NewElement("rect")
	e.SetAttr("style", " fill : red ; stroke : blue ")

	if v, ok := e.StyleValue("fill"); !ok || v != "red" {
		t.Errorf("StyleValue(fill) = (%q, %v), want (red, true)", v, ok)
	}

	// Untouched declarations keep their original text.
	e.SetStyleValue("fill", "#ffffff")
	if got := e.AttrValue("style"); got != "fill:#ffffff; stroke : blue " {
		t.Errorf("style = %q, untouched declaration was rewritten", got)
	}
}

func TestColorValueUnifiesAttrAndStyle(t *testing.T) {
	e := NewElement("path")
	e.SetAttr("fill", "#111111")
	e.SetAttr("style", "stroke:green")

	if v, _ := e.ColorValue("fill"); v != "#111111" {
		t.Errorf("ColorValue(fill) = %q, want #111111", v)
	}
	if v, _ := e.ColorValue("stroke"); v != "green" {
		t.Errorf("ColorValue(stroke) = %q, want green", v)
	}

	e.SetColorValue("fill", "#000000")
	e.SetColorValue("stroke", "#ffffff")

	if got := e.AttrValue("fill"); got != "#000000" {
		t.Errorf("fill attribute = %q, want #000000", got)
	}
	if got := e.AttrValue("style"); got != "stroke:#ffffff" {
		t.Errorf("style = %q, want stroke:#ffffff", got)
	}
}

func TestRewriteColors(t *testing.T) {
	e := NewElement("rect")
	e.SetAttr("fill", "red")
	e.SetAttr("stroke", "none")
	e.SetAttr("style", "stop-color:blue;stroke-width:2")

	seen := map[string]string{}
	changed := e.RewriteColors(func(key, value string) string {
		seen[key] = value
		if value == "none" {
			return value
		}
		return "#000000"
	})

	if !changed {
		t.Fatal("RewriteColors reported no change")
	}
	if len(seen) != 3 {
		t.Errorf("visited %d color values, want 3 (fill, stroke, stop-color)", len(seen))
	}
	if got := e.AttrValue("fill"); got != "#000000" {
		t.Errorf("fill = %q, want #000000", got)
	}
	if got := e.AttrValue("stroke"); got != "none" {
		t.Errorf("stroke = %q, want none (unchanged)", got)
	}
	if got := e.AttrValue("style"); got != "stop-color:#000000;stroke-width:2" {
		t.Errorf("style = %q, want stop-color:#000000;stroke-width:2", got)
	}
}

func TestRewriteColorsNoColorAttrs(t *testing.T) {
	e := NewElement("g")
	if e.RewriteColors(func(_, v string) string { return "#000000" }) {
		t.Error("RewriteColors on element without colors reported a change")
	}
}
