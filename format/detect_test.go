package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"box.cdr", CDR},
		{"box.CDR", CDR},
		{"box_vectors.svg", SVG},
		{"box.pdf", PDF},
		{"box.png", Unknown},
		{"box", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		f    Format
		s    string
		ext  string
	}{
		{CDR, "CDR", ".cdr"},
		{SVG, "SVG", ".svg"},
		{PDF, "PDF", ".pdf"},
		{Unknown, "Unknown", ""},
	}

	for _, tt := range tests {
		if got := tt.f.String(); got != tt.s {
			t.Errorf("String() = %q, want %q", got, tt.s)
		}
		if got := tt.f.Extension(); got != tt.ext {
			t.Errorf("Extension() = %q, want %q", got, tt.ext)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7\n"), PDF},
		{"riff cdr", []byte("RIFF\x10\x00\x00\x00CDRCvrsn"), CDR},
		{"riff wav", []byte("RIFF\x10\x00\x00\x00WAVEfmt "), Unknown},
		{"bare svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`), SVG},
		{"declared svg", []byte("<?xml version=\"1.0\"?>\n<svg/>"), SVG},
		{"whitespace svg", []byte("\n\n  <svg/>"), SVG},
		{"xml not svg", []byte("<?xml version=\"1.0\"?><root/>"), Unknown},
		{"zip", []byte{0x50, 0x4B, 0x03, 0x04, 0, 0}, Unknown},
		{"short", []byte("RI"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.4 content"), PDF},
		{"riff cdr", []byte("RIFF\x10\x00\x00\x00CDR9vrsn"), CDR},
		{"svg", []byte("<svg/>"), SVG},
		{"zip-wrapped cdr mimetype", nil, CDR},
		{"zip-wrapped cdr riffdata", nil, CDR},
		{"plain zip", nil, Unknown},
		{"garbage", []byte("garbage bytes here"), Unknown},
	}
	tests[3].data = zipArchive(t, map[string]string{"mimetype": "application/x-vnd.corel.draw.document+zip"})
	tests[4].data = zipArchive(t, map[string]string{"content/riffData.cdr": "RIFF"})
	tests[5].data = zipArchive(t, map[string]string{"readme.txt": "hello"})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			got, err := DetectFromReader(r, int64(len(tt.data)))
			if err != nil {
				t.Fatalf("DetectFromReader() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader() = %v, want %v", got, tt.want)
			}
		})
	}
}
