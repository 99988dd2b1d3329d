//go:build tinygo

package hal

type nullKeyboard struct{}

func (k *nullKeyboard) Events() <-chan KeyEvent { return nil }

type kbdInput struct {
	kbd Keyboard
}

func (in kbdInput) Keyboard() Keyboard { return in.kbd }
