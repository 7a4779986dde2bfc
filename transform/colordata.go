package transform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ColorData is everything RemoveColors strips out of a document, kept in a
// form a reconstruction workflow can reapply.
type ColorData struct {
	Elements  []ElementColors     `json:"elements"`
	Gradients map[string]Gradient `json:"gradients"`
	Patterns  map[string]Pattern  `json:"patterns"`
}

// ElementColors records the color-bearing attributes of one element before
// removal. Index is the element's position in extraction order and doubles
// as a fallback identifier when the element has no id.
type ElementColors struct {
	ElementID     string            `json:"element_id"`
	Tag           string            `json:"tag"`
	Index         int               `json:"index"`
	Fill          string            `json:"fill,omitempty"`
	Stroke        string            `json:"stroke,omitempty"`
	StrokeWidth   string            `json:"stroke_width,omitempty"`
	StrokeOpacity string            `json:"stroke_opacity,omitempty"`
	Opacity       string            `json:"opacity,omitempty"`
	FillOpacity   string            `json:"fill_opacity,omitempty"`
	Style         map[string]string `json:"style,omitempty"`
}

// Gradient is an extracted linearGradient or radialGradient definition.
type Gradient struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
	Stops      []GradientStop    `json:"stops"`
}

// GradientStop is one stop of an extracted gradient. Style-declared colors
// are folded into the same fields as attribute-declared ones.
type GradientStop struct {
	Offset      string `json:"offset"`
	StopColor   string `json:"stop_color,omitempty"`
	StopOpacity string `json:"stop_opacity,omitempty"`
}

// Pattern is an extracted pattern definition: its attributes plus the
// serialized subtree, since pattern content is arbitrary SVG.
type Pattern struct {
	Attributes map[string]string `json:"attributes"`
	Content    string            `json:"content"`
}

// Write saves the color data into dir as color_data.json plus a
// human-readable color_summary.txt. The directory is created if needed.
func (cd *ColorData) Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating color data directory: %w", err)
	}

	data, err := json.MarshalIndent(cd, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding color data: %w", err)
	}
	jsonPath := filepath.Join(dir, "color_data.json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	summaryPath := filepath.Join(dir, "color_summary.txt")
	if err := os.WriteFile(summaryPath, []byte(cd.summary()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", summaryPath, err)
	}
	return nil
}

func (cd *ColorData) summary() string {
	var b strings.Builder
	b.WriteString("=== SVG Color Extraction Summary ===\n\n")
	fmt.Fprintf(&b, "Elements with colors: %d\n", len(cd.Elements))
	fmt.Fprintf(&b, "Gradients extracted: %d\n", len(cd.Gradients))
	fmt.Fprintf(&b, "Patterns extracted: %d\n\n", len(cd.Patterns))

	if len(cd.Gradients) > 0 {
		b.WriteString("Gradients:\n")
		for id, g := range cd.Gradients {
			fmt.Fprintf(&b, "  %s: %s gradient, %d stops\n", id, g.Type, len(g.Stops))
		}
		b.WriteString("\n")
	}

	if len(cd.Patterns) > 0 {
		b.WriteString("Patterns:\n")
		for id := range cd.Patterns {
			fmt.Fprintf(&b, "  %s\n", id)
		}
		b.WriteString("\n")
	}

	b.WriteString("Element colors:\n")
	limit := len(cd.Elements)
	if limit > 10 {
		limit = 10
	}
	for _, e := range cd.Elements[:limit] {
		fmt.Fprintf(&b, "  %s (%s)", e.ElementID, e.Tag)
		if e.Fill != "" {
			fmt.Fprintf(&b, " fill=%s", e.Fill)
		}
		if e.Stroke != "" {
			fmt.Fprintf(&b, " stroke=%s", e.Stroke)
		}
		b.WriteString("\n")
	}
	if len(cd.Elements) > 10 {
		fmt.Fprintf(&b, "  ... and %d more elements\n", len(cd.Elements)-10)
	}
	return b.String()
}
