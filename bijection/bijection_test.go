package bijection

import (
	"strings"
	"testing"

	"github.com/tsawler/dieline/svgdom"
)

func mustParse(t *testing.T, src string) *svgdom.Document {
	t.Helper()
	doc, err := svgdom.ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	return doc
}

func TestFingerprintUsesGeometryNotColor(t *testing.T) {
	a := mustParse(t, `<svg><rect x="1" y="2" width="10" height="20" fill="#000000"/></svg>`).FindAll("rect")[0]
	b := mustParse(t, `<svg><rect x="1" y="2" width="10" height="20" fill="#ffffff"/></svg>`).FindAll("rect")[0]
	c := mustParse(t, `<svg><rect x="9" y="2" width="10" height="20" fill="#000000"/></svg>`).FindAll("rect")[0]

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("color difference changed the fingerprint")
	}
	if Fingerprint(a) == Fingerprint(c) {
		t.Error("geometry difference did not change the fingerprint")
	}
}

func TestExtractRetainsComplementPair(t *testing.T) {
	grey := mustParse(t, `<svg>
  <rect x="0" y="0" width="10" height="10" fill="#000000"/>
  <rect x="20" y="0" width="10" height="10" fill="#ffffff" stroke="#000000"/>
</svg>`)
	inv := mustParse(t, `<svg>
  <rect x="0" y="0" width="10" height="10" fill="#ffffff"/>
  <rect x="20" y="0" width="10" height="10" fill="#000000" stroke="#ffffff"/>
</svg>`)

	out, stats := Extract(grey, inv)

	if got := len(out.FindAll("rect")); got != 2 {
		t.Fatalf("retained %d rects, want 2", got)
	}
	if stats.Retained != 2 || stats.Removed != 0 {
		t.Errorf("stats = %+v, want 2 retained, 0 removed", stats)
	}
	if stats.BlackToWhite != 2 || stats.WhiteToBlack != 1 {
		t.Errorf("direction counts = %d/%d, want 2 black-to-white, 1 white-to-black", stats.BlackToWhite, stats.WhiteToBlack)
	}
}

func TestExtractDiscardsMismatch(t *testing.T) {
	grey := mustParse(t, `<svg><rect x="0" y="0" width="10" height="10" fill="#000000"/></svg>`)
	inv := mustParse(t, `<svg><rect x="0" y="0" width="10" height="10" fill="#123456"/></svg>`)

	out, stats := Extract(grey, inv)

	if got := len(out.FindAll("rect")); got != 0 {
		t.Errorf("retained %d rects, want 0 for non-complementary fill", got)
	}
	if stats.Removed != 1 {
		t.Errorf("Removed = %d, want 1", stats.Removed)
	}
}

func TestExtractDiscardsPartialMismatch(t *testing.T) {
	// Fill is a perfect complement, stroke is not: one mismatch discards.
	grey := mustParse(t, `<svg><rect x="0" y="0" width="10" height="10" fill="#000000" stroke="#808080"/></svg>`)
	inv := mustParse(t, `<svg><rect x="0" y="0" width="10" height="10" fill="#ffffff" stroke="#7f7f7f"/></svg>`)

	out, _ := Extract(grey, inv)
	if got := len(out.FindAll("rect")); got != 0 {
		t.Errorf("retained %d rects, want 0", got)
	}
}

func TestExtractDiscardsMissingCounterpart(t *testing.T) {
	grey := mustParse(t, `<svg>
  <rect x="0" y="0" width="10" height="10" fill="#000000"/>
  <line x1="0" y1="0" x2="5" y2="5" stroke="#000000"/>
</svg>`)
	inv := mustParse(t, `<svg><rect x="0" y="0" width="10" height="10" fill="#ffffff"/></svg>`)

	out, stats := Extract(grey, inv)

	if got := len(out.FindAll("line")); got != 0 {
		t.Errorf("retained %d lines with no inverted counterpart, want 0", got)
	}
	if got := len(out.FindAll("rect")); got != 1 {
		t.Errorf("retained %d rects, want 1", got)
	}
	if stats.Removed != 1 || stats.Retained != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestExtractComparesStyleColors(t *testing.T) {
	grey := mustParse(t, `<svg><path d="M0,0 L5,5" style="fill:#000000"/></svg>`)
	inv := mustParse(t, `<svg><path d="M0,0 L5,5" style="fill:#ffffff"/></svg>`)

	out, stats := Extract(grey, inv)

	if got := len(out.FindAll("path")); got != 1 {
		t.Errorf("retained %d paths, want 1 via style bijection", got)
	}
	if stats.BlackToWhite != 1 {
		t.Errorf("BlackToWhite = %d, want 1", stats.BlackToWhite)
	}
}

func TestExtractAcceptsColorSynonyms(t *testing.T) {
	grey := mustParse(t, `<svg><rect x="0" y="0" width="4" height="4" fill="black"/></svg>`)
	inv := mustParse(t, `<svg><rect x="0" y="0" width="4" height="4" fill="rgb(255, 255, 255)"/></svg>`)

	out, _ := Extract(grey, inv)
	if got := len(out.FindAll("rect")); got != 1 {
		t.Errorf("retained %d rects, want 1 for black/white synonyms", got)
	}
}

func TestExtractRemovesSubtree(t *testing.T) {
	grey := mustParse(t, `<svg>
  <g fill="#404040"><rect x="0" y="0" width="2" height="2" fill="#000000"/></g>
</svg>`)
	inv := mustParse(t, `<svg>
  <g fill="#bfbfbf"><rect x="0" y="0" width="2" height="2" fill="#ffffff"/></g>
</svg>`)

	out, _ := Extract(grey, inv)

	// The group fails the bijection, taking its children with it.
	data, err := out.Bytes()
	if err != nil {
		t.Fatalf("Bytes() failed: %v", err)
	}
	if strings.Contains(string(data), "<rect") || strings.Contains(string(data), "<g") {
		t.Errorf("mismatched group subtree survives:\n%s", data)
	}
}

func TestExtractLeavesSourcesIntact(t *testing.T) {
	grey := mustParse(t, `<svg><rect x="0" y="0" width="1" height="1" fill="#123456"/></svg>`)
	inv := mustParse(t, `<svg><rect x="0" y="0" width="1" height="1" fill="#654321"/></svg>`)

	Extract(grey, inv)

	if len(grey.FindAll("rect")) != 1 || len(inv.FindAll("rect")) != 1 {
		t.Error("Extract mutated its input documents")
	}
}
