package input

import (
	"github.com/eiannone/keyboard"

	"github.com/Nishj0gi/snake-evolution/pkg/game"
)

// Action is a logical input event; the core never sees raw key codes
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionSelectClassic
	ActionSelectTimeAttack
	ActionSelectSurvival
	ActionConfirm
	ActionRestart
	ActionMenu
	ActionQuit
)

// KeyboardHandler turns key presses into a channel of KeyInput events
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseAction maps a key input to a logical action
func ParseAction(in KeyInput) Action {
	switch in.Key {
	case keyboard.KeyArrowUp:
		return ActionUp
	case keyboard.KeyArrowDown:
		return ActionDown
	case keyboard.KeyArrowLeft:
		return ActionLeft
	case keyboard.KeyArrowRight:
		return ActionRight
	case keyboard.KeyEsc:
		return ActionMenu
	case keyboard.KeySpace:
		return ActionConfirm
	case keyboard.KeyCtrlC:
		return ActionQuit
	}

	switch in.Char {
	case 'w', 'W':
		return ActionUp
	case 's', 'S':
		return ActionDown
	case 'a', 'A':
		return ActionLeft
	case 'd', 'D':
		return ActionRight
	case '1':
		return ActionSelectClassic
	case '2':
		return ActionSelectTimeAttack
	case '3':
		return ActionSelectSurvival
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	}

	return ActionNone
}

// Direction returns the movement delta for a directional action
func Direction(a Action) (dir game.Point, ok bool) {
	switch a {
	case ActionUp:
		return game.DirUp, true
	case ActionDown:
		return game.DirDown, true
	case ActionLeft:
		return game.DirLeft, true
	case ActionRight:
		return game.DirRight, true
	}
	return game.Point{}, false
}
