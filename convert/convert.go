// Package convert drives a headless office-suite binary (LibreOffice Draw
// by default) to turn proprietary CorelDRAW files into SVG or PDF. The
// process is treated as an opaque file-in/file-out contract: success means
// a zero exit code and the expected output file actually existing.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrConverterNotFound is returned when no usable converter binary is on
// the PATH.
var ErrConverterNotFound = errors.New("office converter not found: install LibreOffice (e.g. apt install libreoffice)")

// candidateBinaries are probed in order by Find.
var candidateBinaries = []string{"libreoffice", "soffice"}

// Converter invokes a headless office binary for format conversion.
type Converter struct {
	// Binary is the absolute path (or PATH-resolvable name) of the
	// converter executable.
	Binary string
}

// Find locates a converter binary on the PATH.
func Find() (*Converter, error) {
	for _, name := range candidateBinaries {
		if path, err := exec.LookPath(name); err == nil {
			return &Converter{Binary: path}, nil
		}
	}
	return nil, ErrConverterNotFound
}

// ToSVG converts input into an SVG file placed in outDir and returns the
// output path. outDir defaults to the input's directory.
func (c *Converter) ToSVG(ctx context.Context, input, outDir string) (string, error) {
	return c.convert(ctx, input, outDir, "svg")
}

// ToPDF converts input into a PDF file placed in outDir and returns the
// output path.
func (c *Converter) ToPDF(ctx context.Context, input, outDir string) (string, error) {
	return c.convert(ctx, input, outDir, "pdf")
}

func (c *Converter) convert(ctx context.Context, input, outDir, format string) (string, error) {
	input, err := filepath.Abs(input)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(input); err != nil {
		return "", fmt.Errorf("input file: %w", err)
	}
	if outDir == "" {
		outDir = filepath.Dir(input)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	expected := filepath.Join(outDir, base+"."+format)

	cmd := exec.CommandContext(ctx, c.Binary,
		"--headless",
		"--convert-to", format,
		"--outdir", outDir,
		input,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	// The binary sometimes exits zero without producing output, so both
	// conditions are checked.
	if _, statErr := os.Stat(expected); runErr != nil || statErr != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag != "" {
			return "", fmt.Errorf("converting %s to %s: %w (%s)", filepath.Base(input), format, errOf(runErr, statErr), diag)
		}
		return "", fmt.Errorf("converting %s to %s: %w", filepath.Base(input), format, errOf(runErr, statErr))
	}

	return expected, nil
}

func errOf(runErr, statErr error) error {
	if runErr != nil {
		return runErr
	}
	return fmt.Errorf("expected output missing: %w", statErr)
}
