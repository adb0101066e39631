package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/constants"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/veandco/go-sdl2/sdl"
)

const MappingPathEnvVar = "INPUT_MAPPING_PATH"

var (
	inputMappingBytes []byte
	inputMappingPath  string
)

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

// SetInputMappingPath names a JSON mapping file; it wins over INPUT_MAPPING_PATH.
func SetInputMappingPath(path string) {
	inputMappingPath = path
}

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceJoystick
	SourceHatSwitch
	SourcePointer
)

// Event is one decoded SDL input. Key is set when a physical key of the keyboard was hit,
// Button when a navigation button was, and X/Y for pointer presses.
type Event struct {
	Button  constants.VirtualButton
	Key     *keyboard.Event
	Pressed bool
	Source  Source
	RawCode int
	X, Y    int32
}

type InputMapping struct {
	// KeyboardMap is keyed by scancode so the on-screen key under the finger matches the
	// physical position regardless of the host layout.
	KeyboardMap map[sdl.Scancode]layout.KeyID

	KeyboardButtonMap map[sdl.Scancode]constants.VirtualButton

	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton

	JoystickButtonMap map[uint8]constants.VirtualButton

	JoystickHatMap map[uint8]constants.VirtualButton
}

type Mapping struct {
	KeyboardMap map[int]string `json:"keyboard_map"`

	KeyboardButtonMap map[int]int `json:"keyboard_button_map"`

	ControllerButtonMap map[int]int `json:"controller_button_map"`

	JoystickButtonMap map[int]int `json:"joystick_button_map"`

	JoystickHatMap map[int]int `json:"joystick_hat_map"`
}

var defaultScancodes = map[sdl.Scancode]layout.KeyID{
	sdl.SCANCODE_GRAVE:        layout.Backquote,
	sdl.SCANCODE_1:            layout.Digit1,
	sdl.SCANCODE_2:            layout.Digit2,
	sdl.SCANCODE_3:            layout.Digit3,
	sdl.SCANCODE_4:            layout.Digit4,
	sdl.SCANCODE_5:            layout.Digit5,
	sdl.SCANCODE_6:            layout.Digit6,
	sdl.SCANCODE_7:            layout.Digit7,
	sdl.SCANCODE_8:            layout.Digit8,
	sdl.SCANCODE_9:            layout.Digit9,
	sdl.SCANCODE_0:            layout.Digit0,
	sdl.SCANCODE_MINUS:        layout.Minus,
	sdl.SCANCODE_EQUALS:       layout.Equal,
	sdl.SCANCODE_BACKSPACE:    layout.Backspace,
	sdl.SCANCODE_TAB:          layout.Tab,
	sdl.SCANCODE_Q:            layout.KeyQ,
	sdl.SCANCODE_W:            layout.KeyW,
	sdl.SCANCODE_E:            layout.KeyE,
	sdl.SCANCODE_R:            layout.KeyR,
	sdl.SCANCODE_T:            layout.KeyT,
	sdl.SCANCODE_Y:            layout.KeyY,
	sdl.SCANCODE_U:            layout.KeyU,
	sdl.SCANCODE_I:            layout.KeyI,
	sdl.SCANCODE_O:            layout.KeyO,
	sdl.SCANCODE_P:            layout.KeyP,
	sdl.SCANCODE_LEFTBRACKET:  layout.BracketLeft,
	sdl.SCANCODE_RIGHTBRACKET: layout.BracketRight,
	sdl.SCANCODE_BACKSLASH:    layout.Backslash,
	sdl.SCANCODE_DELETE:       layout.Delete,
	sdl.SCANCODE_CAPSLOCK:     layout.CapsLock,
	sdl.SCANCODE_A:            layout.KeyA,
	sdl.SCANCODE_S:            layout.KeyS,
	sdl.SCANCODE_D:            layout.KeyD,
	sdl.SCANCODE_F:            layout.KeyF,
	sdl.SCANCODE_G:            layout.KeyG,
	sdl.SCANCODE_H:            layout.KeyH,
	sdl.SCANCODE_J:            layout.KeyJ,
	sdl.SCANCODE_K:            layout.KeyK,
	sdl.SCANCODE_L:            layout.KeyL,
	sdl.SCANCODE_SEMICOLON:    layout.Semicolon,
	sdl.SCANCODE_APOSTROPHE:   layout.Quote,
	sdl.SCANCODE_RETURN:       layout.Enter,
	sdl.SCANCODE_KP_ENTER:     layout.Enter,
	sdl.SCANCODE_LSHIFT:       layout.ShiftLeft,
	sdl.SCANCODE_Z:            layout.KeyZ,
	sdl.SCANCODE_X:            layout.KeyX,
	sdl.SCANCODE_C:            layout.KeyC,
	sdl.SCANCODE_V:            layout.KeyV,
	sdl.SCANCODE_B:            layout.KeyB,
	sdl.SCANCODE_N:            layout.KeyN,
	sdl.SCANCODE_M:            layout.KeyM,
	sdl.SCANCODE_COMMA:        layout.Comma,
	sdl.SCANCODE_PERIOD:       layout.Period,
	sdl.SCANCODE_SLASH:        layout.Slash,
	sdl.SCANCODE_UP:           layout.ArrowUp,
	sdl.SCANCODE_RSHIFT:       layout.ShiftRight,
	sdl.SCANCODE_LCTRL:        layout.ControlLeft,
	sdl.SCANCODE_LGUI:         layout.MetaLeft,
	sdl.SCANCODE_LALT:         layout.AltLeft,
	sdl.SCANCODE_SPACE:        layout.Space,
	sdl.SCANCODE_RALT:         layout.AltRight,
	sdl.SCANCODE_LEFT:         layout.ArrowLeft,
	sdl.SCANCODE_DOWN:         layout.ArrowDown,
	sdl.SCANCODE_RIGHT:        layout.ArrowRight,
	sdl.SCANCODE_RCTRL:        layout.ControlRight,
}

func DefaultInputMapping() *InputMapping {
	keys := make(map[sdl.Scancode]layout.KeyID, len(defaultScancodes))
	for code, id := range defaultScancodes {
		keys[code] = id
	}

	return &InputMapping{
		KeyboardMap: keys,
		KeyboardButtonMap: map[sdl.Scancode]constants.VirtualButton{
			sdl.SCANCODE_ESCAPE: constants.VirtualButtonY,
			sdl.SCANCODE_F1:     constants.VirtualButtonMenu,
			sdl.SCANCODE_F10:    constants.VirtualButtonStart,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonY,
			sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonX,
			sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
			sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
			sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
		},
		JoystickButtonMap: map[uint8]constants.VirtualButton{},
		JoystickHatMap: map[uint8]constants.VirtualButton{
			sdl.HAT_UP:    constants.VirtualButtonUp,
			sdl.HAT_DOWN:  constants.VirtualButtonDown,
			sdl.HAT_LEFT:  constants.VirtualButtonLeft,
			sdl.HAT_RIGHT: constants.VirtualButtonRight,
		},
	}
}

// GetInputMapping returns the mapping from embedded bytes if set, then from the configured
// path or INPUT_MAPPING_PATH, otherwise the default mapping.
func GetInputMapping() *InputMapping {
	logger := GetInternalLogger()

	if len(inputMappingBytes) > 0 {
		mapping, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err == nil {
			logger.Info("Loaded custom input mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom input mapping from bytes, trying file path", "error", err)
	}

	mappingPath := inputMappingPath
	if mappingPath == "" {
		mappingPath = os.Getenv(MappingPathEnvVar)
	}
	if mappingPath != "" {
		mapping, err := LoadInputMappingFromJSON(mappingPath)
		if err == nil {
			logger.Info("Loaded custom input mapping", "path", mappingPath)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", mappingPath, "error", err)
	}
	return DefaultInputMapping()
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

// LoadInputMappingFromBytes overlays the JSON entries on the default mapping.
func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var serializableMapping Mapping
	if err := json.Unmarshal(data, &serializableMapping); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := DefaultInputMapping()

	for code, raw := range serializableMapping.KeyboardMap {
		id := layout.KeyID(raw)
		if _, ok := layout.BaseEN[id]; !ok {
			return nil, fmt.Errorf("scancode %d: %w: %s", code, layout.ErrUnknownKey, raw)
		}
		mapping.KeyboardMap[sdl.Scancode(code)] = id
	}

	for code, button := range serializableMapping.KeyboardButtonMap {
		mapping.KeyboardButtonMap[sdl.Scancode(code)] = constants.VirtualButton(button)
	}

	for button, vb := range serializableMapping.ControllerButtonMap {
		mapping.ControllerButtonMap[sdl.GameControllerButton(button)] = constants.VirtualButton(vb)
	}

	for button, vb := range serializableMapping.JoystickButtonMap {
		mapping.JoystickButtonMap[uint8(button)] = constants.VirtualButton(vb)
	}

	for hat, button := range serializableMapping.JoystickHatMap {
		mapping.JoystickHatMap[uint8(hat)] = constants.VirtualButton(button)
	}

	return mapping, nil
}

// ToJSON converts the InputMapping to JSON bytes in the export format.
// Keys are SDL codes, values are KeyIDs or VirtualButton iota values.
func (im *InputMapping) ToJSON() ([]byte, error) {
	serializableMapping := &Mapping{
		KeyboardMap:         make(map[int]string),
		KeyboardButtonMap:   make(map[int]int),
		ControllerButtonMap: make(map[int]int),
		JoystickButtonMap:   make(map[int]int),
		JoystickHatMap:      make(map[int]int),
	}

	for code, id := range im.KeyboardMap {
		serializableMapping.KeyboardMap[int(code)] = string(id)
	}

	for code, button := range im.KeyboardButtonMap {
		serializableMapping.KeyboardButtonMap[int(code)] = int(button)
	}

	for button, vb := range im.ControllerButtonMap {
		serializableMapping.ControllerButtonMap[int(button)] = int(vb)
	}

	for button, vb := range im.JoystickButtonMap {
		serializableMapping.JoystickButtonMap[int(button)] = int(vb)
	}

	for hat, button := range im.JoystickHatMap {
		serializableMapping.JoystickHatMap[int(hat)] = int(button)
	}

	return json.MarshalIndent(serializableMapping, "", "  ")
}

func (im *InputMapping) SaveToJSON(filePath string) error {
	data, err := im.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal mapping to JSON: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
