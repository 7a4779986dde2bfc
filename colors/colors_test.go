package colors

import "testing"

func TestLuminanceEndpoints(t *testing.T) {
	if got := Luminance(RGB{0, 0, 0}); got != 0 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}
	if got := Luminance(RGB{255, 255, 255}); got != 255 {
		t.Errorf("Luminance(white) = %v, want 255", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		token  string
		want   RGB
		wantOK bool
	}{
		{"#ff0000", RGB{255, 0, 0}, true},
		{"#F00", RGB{255, 0, 0}, true},
		{"#abcabc", RGB{0xab, 0xca, 0xbc}, true},
		{"rgb(1, 2, 3)", RGB{1, 2, 3}, true},
		{"rgb(1,2,3)", RGB{1, 2, 3}, true},
		{"rgba(10, 20, 30, 0.5)", RGB{10, 20, 30}, true},
		{"navy", RGB{0, 0, 128}, true},
		{"Teal", RGB{0, 128, 128}, true},
		{"none", RGB{}, false},
		{"", RGB{}, false},
		{"url(#gradient1)", RGB{}, false},
		{"#12", RGB{}, false},
		{"rgb(1,2)", RGB{}, false},
		{"notacolor", RGB{}, false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.token)
		if ok != tt.wantOK {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.token, got, tt.want)
		}
	}
}

func TestIsGreyscale(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"#aaaaaa", true},
		{"#aaa", true},
		{"#abcabc", false},
		{"#123456", false},
		{"rgb(9, 9, 9)", true},
		{"rgb(9, 9, 10)", false},
		{"black", true},
		{"grey", true},
		{"Gray", true},
		{"red", false},
		{"none", false},
	}

	for _, tt := range tests {
		if got := IsGreyscale(tt.token); got != tt.want {
			t.Errorf("IsGreyscale(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestIsBlackIsWhite(t *testing.T) {
	blacks := []string{"#000000", "#000", "black", "rgb(0, 0, 0)", "rgb(0,0,0)", "rgba(0, 0, 0, 1)"}
	for _, token := range blacks {
		if !IsBlack(token) {
			t.Errorf("IsBlack(%q) = false, want true", token)
		}
		if IsWhite(token) {
			t.Errorf("IsWhite(%q) = true, want false", token)
		}
	}

	whites := []string{"#ffffff", "#fff", "white", "rgb(255, 255, 255)", "rgba(255,255,255,1)"}
	for _, token := range whites {
		if !IsWhite(token) {
			t.Errorf("IsWhite(%q) = false, want true", token)
		}
	}

	if IsBlack("none") || IsWhite("none") {
		t.Error("none must be neither black nor white")
	}
	if IsBlack("#010101") {
		t.Error("IsBlack(#010101) = true, want false")
	}
}
