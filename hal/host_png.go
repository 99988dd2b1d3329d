//go:build !tinygo

package hal

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes the framebuffer contents as a PNG image.
func EncodePNG(w io.Writer, fb *MemFramebuffer) error {
	if err := png.Encode(w, fb.RGBA(nil)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the framebuffer to path.
func SavePNG(path string, fb *MemFramebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := EncodePNG(f, fb); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}
