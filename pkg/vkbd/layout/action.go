package layout

// ActionKind is the logical operation a key triggers.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionInsert
	ActionEnter
	ActionBackspace
	ActionDelete
	ActionIndent
	ActionShift
	ActionCapsLock
	ActionCtrl
	ActionAlt
	ActionMeta
)

// TabWidth is the number of spaces Tab inserts.
const TabWidth = 4

// Action describes what activating a key does. Width is only set for ActionIndent.
type Action struct {
	Kind  ActionKind
	Width int
}

func (k ActionKind) String() string {
	switch k {
	case ActionInsert:
		return "insert"
	case ActionEnter:
		return "enter"
	case ActionBackspace:
		return "backspace"
	case ActionDelete:
		return "delete"
	case ActionIndent:
		return "indent"
	case ActionShift:
		return "shift"
	case ActionCapsLock:
		return "capslock"
	case ActionCtrl:
		return "ctrl"
	case ActionAlt:
		return "alt"
	case ActionMeta:
		return "meta"
	default:
		return "none"
	}
}

// ActionFor maps a key to its action. Keys absent from the layout map to ActionNone.
func ActionFor(id KeyID) Action {
	switch id {
	case Enter:
		return Action{Kind: ActionEnter}
	case Backspace:
		return Action{Kind: ActionBackspace}
	case Delete:
		return Action{Kind: ActionDelete}
	case Tab:
		return Action{Kind: ActionIndent, Width: TabWidth}
	case Space:
		return Action{Kind: ActionIndent, Width: 1}
	case ShiftLeft, ShiftRight:
		return Action{Kind: ActionShift}
	case CapsLock:
		return Action{Kind: ActionCapsLock}
	case ControlLeft, ControlRight:
		return Action{Kind: ActionCtrl}
	case AltLeft, AltRight:
		return Action{Kind: ActionAlt}
	case MetaLeft:
		return Action{Kind: ActionMeta}
	}
	if _, ok := BaseEN[id]; ok {
		return Action{Kind: ActionInsert}
	}
	return Action{Kind: ActionNone}
}
