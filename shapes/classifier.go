package shapes

import (
	"strconv"
	"strings"

	"github.com/tsawler/dieline/svgdom"
)

// Kind is the geometric classification of a graphics element. It is derived
// on demand and never stored on the element.
type Kind int

const (
	// KindOther covers text, images, and unrecognized tags.
	KindOther Kind = iota
	// KindLine is a line element, a 2-point polyline, or an M+L path.
	KindLine
	// KindRectangle is a rect, a 4-corner axis-aligned polygon, or a
	// simple straight-segment path.
	KindRectangle
	// KindSquare is a rect whose width and height match within tolerance.
	KindSquare
	// KindCircle is a circle element (always discarded).
	KindCircle
	// KindEllipse is an ellipse element (always discarded).
	KindEllipse
	// KindPolygon is a polygon or polyline that is not a rectangle or line.
	KindPolygon
	// KindComplexPath is a path with curves, arcs, or too many directives.
	KindComplexPath
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindSquare:
		return "square"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindPolygon:
		return "polygon"
	case KindComplexPath:
		return "complex_path"
	default:
		return "other"
	}
}

// Config holds classifier tuning.
type Config struct {
	// SquareTolerance is the maximum width/height difference (after unit
	// suffixes are stripped) for a rect to count as a square. Unit suffixes
	// are stripped but not converted; mm and px compare as raw numbers.
	SquareTolerance float64

	// MaxSimplePathCommands is the directive-count ceiling under which a
	// curve-free path is accepted as a simple rectangle.
	MaxSimplePathCommands int
}

// DefaultConfig returns the classifier defaults used by the pipeline.
func DefaultConfig() Config {
	return Config{
		SquareTolerance:       0.1,
		MaxSimplePathCommands: 5,
	}
}

// containerTags are structural scaffolding: always preserved, never
// classified.
var containerTags = map[string]bool{
	"svg":      true,
	"g":        true,
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"marker":   true,
	"pattern":  true,
	"symbol":   true,
}

// IsContainer reports whether tag is a structural container element.
func IsContainer(tag string) bool {
	return containerTags[tag]
}

// Classifier decides whether a graphics element is basic die-line geometry.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultConfig()}
}

// Configure replaces the classifier configuration.
func (c *Classifier) Configure(config Config) {
	c.config = config
}

// Classify returns the element's geometric kind and whether the geometric
// filter keeps it. Containers are not meaningful inputs; callers skip them.
func (c *Classifier) Classify(e *svgdom.Element) (Kind, bool) {
	switch e.Tag {
	case "line":
		return KindLine, true

	case "rect":
		if c.isSquare(e.AttrValue("width"), e.AttrValue("height")) {
			return KindSquare, true
		}
		return KindRectangle, true

	case "polyline":
		pts := parsePoints(e.AttrValue("points"))
		if len(pts) == 2 {
			return KindLine, true
		}
		return KindPolygon, false

	case "polygon":
		if isRectanglePolygon(parsePoints(e.AttrValue("points"))) {
			return KindRectangle, true
		}
		return KindPolygon, false

	case "path":
		return c.classifyPath(e.AttrValue("d"))

	case "circle":
		return KindCircle, false
	case "ellipse":
		return KindEllipse, false
	}
	return KindOther, false
}

// isSquare compares rect dimensions within tolerance, falling back to a
// string comparison when the values do not parse as lengths.
func (c *Classifier) isSquare(width, height string) bool {
	w, werr := parseLength(width)
	h, herr := parseLength(height)
	if werr != nil || herr != nil {
		return width == height
	}
	diff := w - h
	if diff < 0 {
		diff = -diff
	}
	return diff < c.config.SquareTolerance
}

// classifyPath runs the structural path heuristic: an M followed by a
// single L is a line; three straight segments after a move (optionally
// closed) are a rectangle; any curve or arc directive discards the path;
// otherwise a short all-straight path passes as a rectangle.
func (c *Classifier) classifyPath(d string) (Kind, bool) {
	if strings.TrimSpace(d) == "" {
		return KindComplexPath, false
	}
	cmds, err := ParsePath(d)
	if err != nil || len(cmds) == 0 {
		return KindComplexPath, false
	}

	seq := letters(cmds)

	if seq == "ML" {
		return KindLine, true
	}

	switch seq {
	case "MHVH", "MHVHZ", "MLLL", "MLLLZ", "MVHV", "MVHVZ":
		return KindRectangle, true
	}

	if hasCurve(cmds) {
		return KindComplexPath, false
	}

	if len(cmds) <= c.config.MaxSimplePathCommands {
		// Short straight-segment path; treated as a simple rectangle.
		return KindRectangle, true
	}
	return KindComplexPath, false
}

// point is a parsed coordinate pair from a points attribute.
type point struct {
	x, y float64
}

// parsePoints normalizes a polygon/polyline points attribute (comma or
// whitespace separated) into coordinate pairs. A trailing unpaired number
// or any unparseable token yields nil.
func parsePoints(points string) []point {
	fields := strings.Fields(strings.ReplaceAll(points, ",", " "))
	if len(fields) == 0 || len(fields)%2 != 0 {
		return nil
	}
	pts := make([]point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil
		}
		pts = append(pts, point{x, y})
	}
	return pts
}

// isRectanglePolygon reports whether 4 points form an axis-aligned
// rectangle: exactly two distinct X values and two distinct Y values.
func isRectanglePolygon(pts []point) bool {
	if len(pts) != 4 {
		return false
	}
	xs := map[float64]bool{}
	ys := map[float64]bool{}
	for _, p := range pts {
		xs[p.x] = true
		ys[p.y] = true
	}
	return len(xs) == 2 && len(ys) == 2
}

// parseLength parses a numeric attribute value, stripping the px, pt, and
// mm unit suffixes. No unit conversion is performed.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for _, suffix := range []string{"px", "pt", "mm"} {
		s = strings.TrimSuffix(s, suffix)
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
