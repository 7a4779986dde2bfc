package dieline

import (
	"strings"
)

// Warning describes a non-fatal condition encountered during a run, such as
// an undecodable raster payload or an unavailable OCR engine. Warnings are
// returned as values rather than logged; the caller decides what to do with
// them.
type Warning struct {
	Stage   string
	Message string
}

func (w Warning) String() string {
	if w.Stage == "" {
		return w.Message
	}
	return w.Stage + ": " + w.Message
}

// FormatWarnings renders warnings one per line for display.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
