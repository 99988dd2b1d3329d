package hal

import "testing"

func TestMemFramebufferClearAndPixel(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride %d len %d", fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.ClearRGB(255, 0, 0)
	if got := fb.Pixel(3, 2); got != 0xF800 {
		t.Fatalf("Pixel = %#04x, want 0xf800", got)
	}
	if got := fb.Pixel(4, 0); got != 0 {
		t.Fatalf("out of range Pixel = %#04x", got)
	}
}

func TestMemFramebufferRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.ClearRGB(0, 0, 255)
	img := fb.RGBA(nil)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	c := img.RGBAAt(1, 1)
	if c.R != 0 || c.G != 0 || c.B != 255 || c.A != 255 {
		t.Fatalf("RGBAAt = %+v", c)
	}
	if again := fb.RGBA(img); again != img {
		t.Fatal("RGBA reallocated a matching image")
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, tc := range tests {
		r, g, b := rgb888From565(RGB565(tc.r, tc.g, tc.b))
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("round trip (%d,%d,%d) = (%d,%d,%d)", tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestDisplayModeIdempotent(t *testing.T) {
	log := &lineLog{}
	d := newDisplay(NewFramebuffer(1, 1), log)
	d.SetMode(3)
	d.SetMode(3)
	d.SetMode(0)
	if d.Mode() != 0 {
		t.Fatalf("Mode = %d, want 0", d.Mode())
	}
	if len(log.lines) != 2 || log.lines[0] != "display: mode 3" || log.lines[1] != "display: mode 0" {
		t.Fatalf("log = %q", log.lines)
	}
}
