package dieline

import "github.com/tsawler/dieline/convert"

// DefaultBlackThreshold and DefaultWhiteThreshold are the luminance cut
// points used when the caller does not supply its own.
const (
	DefaultBlackThreshold = 50
	DefaultWhiteThreshold = 200
)

// pipelineOptions holds configuration for a decomposition run.
type pipelineOptions struct {
	// Greyscale thresholds
	blackThreshold int
	whiteThreshold int

	// Output placement ("" means alongside the input)
	outDir string

	// Side-file switches
	saveRasters   bool
	saveColorData bool
	ocrRasters    bool

	// External converter (nil means discover on PATH when needed)
	converter *convert.Converter
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		blackThreshold: DefaultBlackThreshold,
		whiteThreshold: DefaultWhiteThreshold,
		outDir:         "",
		saveRasters:    true,
		saveColorData:  true,
		ocrRasters:     false,
		converter:      nil,
	}
}

// clone creates a copy of pipelineOptions.
func (o pipelineOptions) clone() pipelineOptions {
	return pipelineOptions{
		blackThreshold: o.blackThreshold,
		whiteThreshold: o.whiteThreshold,
		outDir:         o.outDir,
		saveRasters:    o.saveRasters,
		saveColorData:  o.saveColorData,
		ocrRasters:     o.ocrRasters,
		converter:      o.converter,
	}
}
