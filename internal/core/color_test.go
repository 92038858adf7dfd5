package core

import "testing"

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in       string
		expected RGB
		wantErr  bool
	}{
		{"red", Red, false},
		{" White ", White, false},
		{"#ff8800", RGB{0xff, 0x88, 0x00}, false},
		{"#FF8800", RGB{0xff, 0x88, 0x00}, false},
		{"#12345", RGB{}, true},
		{"purple-ish", RGB{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRGB(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseRGB(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("ParseRGB(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestRGBScale(t *testing.T) {
	if got := White.Scale(255); got != White {
		t.Errorf("full brightness changed color: %v", got)
	}
	if got := White.Scale(0); got != Black {
		t.Errorf("zero brightness should be black, got %v", got)
	}
	got := RGB{200, 100, 0}.Scale(127)
	if got.R != 100 || got.G != 50 || got.B != 0 {
		t.Errorf("half brightness = %v, expected (100,50,0)", got)
	}
}

func TestHSV(t *testing.T) {
	if got := HSV(0, 255, 255); got != Red {
		t.Errorf("HSV(0) = %v, expected red", got)
	}
	if got := HSV(100, 0, 80); got != (RGB{80, 80, 80}) {
		t.Errorf("zero saturation should be gray, got %v", got)
	}
	if got := HSV(50, 255, 0); got != Black {
		t.Errorf("zero value should be black, got %v", got)
	}
}

func TestRGBText(t *testing.T) {
	var c RGB
	if err := c.UnmarshalText([]byte("cyan")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if c != Cyan {
		t.Errorf("UnmarshalText = %v, expected cyan", c)
	}
	text, _ := c.MarshalText()
	if string(text) != "#00ffff" {
		t.Errorf("MarshalText = %q, expected #00ffff", text)
	}
}
