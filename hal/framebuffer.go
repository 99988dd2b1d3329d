package hal

import (
	"image"
	"sync"
)

// MemFramebuffer is an RGB565 framebuffer held in RAM. Present is a no-op;
// backends that own a panel wrap it and push the buffer out themselves.
type MemFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer allocates a width x height RGB565 buffer.
func NewFramebuffer(width, height int) *MemFramebuffer {
	stride := width * 2
	return &MemFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }
func (f *MemFramebuffer) Present() error      { return nil }

// Lock and Unlock guard Buffer for writers that draw into it directly while
// another goroutine may read it through RGBA or Pixel.
func (f *MemFramebuffer) Lock()   { f.mu.Lock() }
func (f *MemFramebuffer) Unlock() { f.mu.Unlock() }

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Pixel returns the RGB565 value at (x, y), or 0 outside the buffer.
func (f *MemFramebuffer) Pixel(x, y int) uint16 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	off := y*f.stride + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

// RGBA converts the current contents into dst, allocating when dst is nil or
// the wrong size.
func (f *MemFramebuffer) RGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != f.width || dst.Bounds().Dy() != f.height {
		dst = image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for y := 0; y < f.height; y++ {
		src := f.buf[y*f.stride:]
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < f.width; x++ {
			r, g, b := rgb888From565(uint16(src[x*2]) | uint16(src[x*2+1])<<8)
			j := x * 4
			row[j+0] = r
			row[j+1] = g
			row[j+2] = b
			row[j+3] = 0xFF
		}
	}
	return dst
}
