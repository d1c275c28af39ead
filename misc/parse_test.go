package misc

import (
	"strconv"
	"testing"
)

func TestParsePair(t *testing.T) {
	for _, tc := range []struct {
		input     string
		separator byte
		left      int
		right     int
		ok        bool
	}{
		{input: "", separator: ',', ok: false},
		{input: "10,", separator: ',', ok: false},
		{input: ",10", separator: ',', ok: false},
		{input: "10,20", separator: ',', left: 10, right: 20, ok: true},
		{input: "10,20xy", separator: ',', ok: false},
		{input: "0.5x", separator: 'x', ok: false},
		{input: "400x600", separator: 'x', left: 400, right: 600, ok: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			left, right, err := ParsePair(tc.input, tc.separator, strconv.Atoi)
			if tc.ok != (err == nil) {
				t.Fatalf("ParsePair(%q) error = %v, want ok %t", tc.input, err, tc.ok)
			}
			if tc.ok && (left != tc.left || right != tc.right) {
				t.Errorf("ParsePair(%q) = %d, %d, want %d, %d", tc.input, left, right, tc.left, tc.right)
			}
		})
	}
}

func TestParseDimensions(t *testing.T) {
	width, height, err := ParseDimensions("1000x750")
	if err != nil {
		t.Fatalf("ParseDimensions: %v", err)
	}
	if width != 1000 || height != 750 {
		t.Errorf("ParseDimensions = %dx%d, want 1000x750", width, height)
	}

	for _, bad := range []string{"0x10", "10x0", "-1x10", "10,10", "x"} {
		if _, _, err := ParseDimensions(bad); err == nil {
			t.Errorf("ParseDimensions(%q) succeeded, want error", bad)
		}
	}
}

func TestParseComplex(t *testing.T) {
	point, err := ParseComplex("1.25,-0.0625")
	if err != nil {
		t.Fatalf("ParseComplex: %v", err)
	}
	if point != complex(1.25, -0.0625) {
		t.Errorf("ParseComplex = %v, want (1.25-0.0625i)", point)
	}

	for _, bad := range []string{",-0.0625", "1.25", "NaN,0", "1,Inf"} {
		if _, err := ParseComplex(bad); err == nil {
			t.Errorf("ParseComplex(%q) succeeded, want error", bad)
		}
	}
}
