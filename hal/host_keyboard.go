//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// poll forwards this frame's ebiten input. It runs on the game loop from
// hostGame.Update.
func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	keys := []struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyNumpadEnter, KeyEnter},
	}
	for _, kk := range keys {
		if inpututil.IsKeyJustPressed(kk.key) {
			emit(KeyEvent{Code: kk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(kk.key) {
			emit(KeyEvent{Code: kk.code, Press: false})
		}
	}
}
