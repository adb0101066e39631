package internal

import (
	"fmt"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/constants"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/veandco/go-sdl2/sdl"
)

var globalInputProcessor *Processor
var gameControllers []*sdl.GameController
var rawJoysticks []*sdl.Joystick

func InitInputProcessor() {
	globalInputProcessor = NewInputProcessor()

	numJoysticks := sdl.NumJoysticks()
	GetInternalLogger().Debug("Detecting controllers", "joystick_count", numJoysticks)

	for i := 0; i < numJoysticks; i++ {
		if sdl.IsGameController(i) {
			controller := sdl.GameControllerOpen(i)
			if controller == nil {
				GetInternalLogger().Error("Failed to open game controller", "index", i)
				continue
			}
			globalInputProcessor.RegisterGameControllerJoystickIndex(i)
			GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
			gameControllers = append(gameControllers, controller)
			continue
		}

		joystick := sdl.JoystickOpen(i)
		if joystick == nil {
			GetInternalLogger().Debug("Failed to open raw joystick", "index", i)
			continue
		}
		GetInternalLogger().Debug("Opened raw joystick (not a standard game controller)", "index", i, "name", joystick.Name())
		rawJoysticks = append(rawJoysticks, joystick)
	}

	GetInternalLogger().Debug("Controller detection complete",
		"game_controllers", len(gameControllers),
		"raw_joysticks", len(rawJoysticks),
		"total_joysticks", numJoysticks,
	)
}

func GetInputProcessor() *Processor {
	return globalInputProcessor
}

type Processor struct {
	mapping                       *InputMapping
	gameControllerJoystickIndices map[int]bool
	hatStates                     map[uint8]uint8
	eventQueue                    []*Event
}

func NewInputProcessor() *Processor {
	return NewInputProcessorWithMapping(GetInputMapping())
}

func NewInputProcessorWithMapping(mapping *InputMapping) *Processor {
	return &Processor{
		mapping:                       mapping,
		gameControllerJoystickIndices: make(map[int]bool),
		hatStates:                     make(map[uint8]uint8),
	}
}

func (ip *Processor) RegisterGameControllerJoystickIndex(joystickIndex int) {
	ip.gameControllerJoystickIndices[joystickIndex] = true
}

func (ip *Processor) IsGameControllerJoystick(joystickIndex int) bool {
	return ip.gameControllerJoystickIndices[joystickIndex]
}

func (ip *Processor) Mapping() *InputMapping {
	return ip.mapping
}

func buttonEvent(button constants.VirtualButton, pressed bool, source Source, rawCode int) *Event {
	return &Event{
		Button:  button,
		Pressed: pressed,
		Source:  source,
		RawCode: rawCode,
	}
}

// ProcessSDLEvent decodes one SDL event, returning nil for anything unmapped.
func (ip *Processor) ProcessSDLEvent(event sdl.Event) *Event {
	if len(ip.eventQueue) > 0 {
		evt := ip.eventQueue[0]
		ip.eventQueue = ip.eventQueue[1:]
		return evt
	}

	logger := GetInternalLogger()

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		return ip.keyboardEvent(e)
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT || e.Which == sdl.TOUCH_MOUSEID {
			return nil
		}
		return &Event{
			Pressed: e.Type == sdl.MOUSEBUTTONDOWN,
			Source:  SourcePointer,
			RawCode: int(e.Button),
			X:       e.X,
			Y:       e.Y,
		}
	case *sdl.TouchFingerEvent:
		if e.Type == sdl.FINGERMOTION {
			return nil
		}
		w, h := GetWindow().Renderer.GetLogicalSize()
		return &Event{
			Pressed: e.Type == sdl.FINGERDOWN,
			Source:  SourcePointer,
			X:       int32(e.X * float32(w)),
			Y:       int32(e.Y * float32(h)),
		}
	case *sdl.ControllerButtonEvent:
		buttonName := sdl.GameControllerGetStringForButton(sdl.GameControllerButton(e.Button))
		if button, exists := ip.mapping.ControllerButtonMap[sdl.GameControllerButton(e.Button)]; exists {
			if e.Type == sdl.CONTROLLERBUTTONDOWN {
				logger.Debug("Controller button mapped",
					"physical", buttonName,
					"buttonCode", fmt.Sprintf("%s (%d)", buttonName, e.Button),
					"virtualButton", button.GetName())
			}
			return buttonEvent(button, e.Type == sdl.CONTROLLERBUTTONDOWN, SourceController, int(e.Button))
		}
		logger.Debug("Controller button not mapped",
			"button_code", fmt.Sprintf("%s (%d)", buttonName, e.Button))
	case *sdl.JoyButtonEvent:
		// game controllers report their buttons as ControllerButtonEvents too
		if ip.IsGameControllerJoystick(int(e.Which)) {
			return nil
		}
		if button, exists := ip.mapping.JoystickButtonMap[e.Button]; exists {
			logger.Debug("Joy button mapped",
				"button_code", e.Button,
				"virtual_button", button.GetName())
			return buttonEvent(button, e.Type == sdl.JOYBUTTONDOWN, SourceJoystick, int(e.Button))
		}
		logger.Debug("Joy button not mapped", "button_code", e.Button)
	case *sdl.JoyHatEvent:
		return ip.hatEvent(e)
	}
	return nil
}

func (ip *Processor) keyboardEvent(e *sdl.KeyboardEvent) *Event {
	logger := GetInternalLogger()
	code := e.Keysym.Scancode
	pressed := e.Type == sdl.KEYDOWN

	if button, exists := ip.mapping.KeyboardButtonMap[code]; exists {
		return buttonEvent(button, pressed, SourceKeyboard, int(code))
	}

	id, exists := ip.mapping.KeyboardMap[code]
	if !exists {
		logger.Debug("Keyboard input not mapped",
			"scancode", fmt.Sprintf("%s (%d)", sdl.GetScancodeName(code), code),
			"mappingSize", len(ip.mapping.KeyboardMap))
		return nil
	}

	kind := keyboard.KeyUp
	if pressed {
		kind = keyboard.KeyDown
	}
	mod := uint32(e.Keysym.Mod)

	return &Event{
		Key: &keyboard.Event{
			Key:    id,
			Kind:   kind,
			Repeat: e.Repeat != 0,
			Shift:  mod&uint32(sdl.KMOD_SHIFT) != 0,
			Ctrl:   mod&uint32(sdl.KMOD_CTRL) != 0,
			Alt:    mod&uint32(sdl.KMOD_ALT) != 0,
		},
		Pressed: pressed,
		Source:  SourceKeyboard,
		RawCode: int(code),
	}
}

func (ip *Processor) hatEvent(e *sdl.JoyHatEvent) *Event {
	logger := GetInternalLogger()
	previousValue := ip.hatStates[e.Hat]
	ip.hatStates[e.Hat] = e.Value

	if previousValue != sdl.HAT_CENTERED && previousValue != e.Value {
		if button, exists := ip.mapping.JoystickHatMap[previousValue]; exists {
			logger.Debug("Joy hat released", "hat_value", getHatDirectionName(previousValue), "virtual_button", button.GetName())

			// a direct move to another direction releases first and queues the press
			if newButton, exists := ip.mapping.JoystickHatMap[e.Value]; exists && e.Value != sdl.HAT_CENTERED {
				ip.eventQueue = append(ip.eventQueue, buttonEvent(newButton, true, SourceHatSwitch, int(e.Value)))
			}
			return buttonEvent(button, false, SourceHatSwitch, int(previousValue))
		}
	}

	if e.Value != sdl.HAT_CENTERED {
		if button, exists := ip.mapping.JoystickHatMap[e.Value]; exists {
			logger.Debug("Joy hat mapped", "hat_value", getHatDirectionName(e.Value), "virtual_button", button.GetName())
			return buttonEvent(button, true, SourceHatSwitch, int(e.Value))
		}
		logger.Debug("Joy hat not mapped", "hat_value", getHatDirectionName(e.Value))
	}
	return nil
}

// Pending reports whether queued events are waiting for the next ProcessSDLEvent call.
func (ip *Processor) Pending() bool {
	return len(ip.eventQueue) > 0
}

func getHatDirectionName(value uint8) string {
	switch value {
	case sdl.HAT_UP:
		return "Hat Up"
	case sdl.HAT_DOWN:
		return "Hat Down"
	case sdl.HAT_LEFT:
		return "Hat Left"
	case sdl.HAT_RIGHT:
		return "Hat Right"
	case sdl.HAT_LEFTUP:
		return "Hat Left Up"
	case sdl.HAT_LEFTDOWN:
		return "Hat Left Down"
	case sdl.HAT_RIGHTUP:
		return "Hat Right Up"
	case sdl.HAT_RIGHTDOWN:
		return "Hat Right Down"
	default:
		return "Hat Unknown"
	}
}

func CloseAllControllers() {
	for _, controller := range gameControllers {
		if controller != nil {
			controller.Close()
		}
	}
	for _, joystick := range rawJoysticks {
		if joystick != nil {
			joystick.Close()
		}
	}
	gameControllers = nil
	rawJoysticks = nil
}
