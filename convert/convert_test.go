package convert

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// stubConverter writes a shell script that mimics the office binary: it
// creates the expected output file, or fails, depending on mode.
func stubConverter(t *testing.T, mode string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub requires a POSIX shell")
	}

	var script string
	switch mode {
	case "ok":
		script = `#!/bin/sh
outdir=""
while [ $# -gt 1 ]; do
  if [ "$1" = "--outdir" ]; then outdir="$2"; shift; fi
  shift
done
input="$1"
base=$(basename "$input")
echo "converted" > "$outdir/${base%.*}.svg"
`
	case "fail":
		script = `#!/bin/sh
echo "source file could not be loaded" >&2
exit 1
`
	case "silent":
		// Exits zero without writing anything.
		script = `#!/bin/sh
exit 0
`
	}

	path := filepath.Join(t.TempDir(), "soffice-stub")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing stub: %v", err)
	}
	return path
}

func inputFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "box.cdr")
	if err := os.WriteFile(path, []byte("RIFFxxxxCDR"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

func TestToSVG(t *testing.T) {
	c := &Converter{Binary: stubConverter(t, "ok")}
	input := inputFile(t)
	outDir := t.TempDir()

	out, err := c.ToSVG(context.Background(), input, outDir)
	if err != nil {
		t.Fatalf("ToSVG() failed: %v", err)
	}
	if filepath.Base(out) != "box.svg" {
		t.Errorf("output = %q, want box.svg in outdir", out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestConvertFailureCarriesStderr(t *testing.T) {
	c := &Converter{Binary: stubConverter(t, "fail")}

	_, err := c.ToSVG(context.Background(), inputFile(t), t.TempDir())
	if err == nil {
		t.Fatal("ToSVG() succeeded with failing converter")
	}
	if !strings.Contains(err.Error(), "source file could not be loaded") {
		t.Errorf("error %q does not carry the converter diagnostics", err)
	}
}

func TestConvertZeroExitMissingOutput(t *testing.T) {
	c := &Converter{Binary: stubConverter(t, "silent")}

	_, err := c.ToSVG(context.Background(), inputFile(t), t.TempDir())
	if err == nil {
		t.Fatal("ToSVG() succeeded despite missing output file")
	}
	if !strings.Contains(err.Error(), "expected output missing") {
		t.Errorf("error = %q, want missing-output diagnosis", err)
	}
}

func TestConvertMissingInput(t *testing.T) {
	c := &Converter{Binary: stubConverter(t, "ok")}

	_, err := c.ToSVG(context.Background(), filepath.Join(t.TempDir(), "absent.cdr"), "")
	if err == nil {
		t.Fatal("ToSVG() succeeded with missing input")
	}
}
