package editor

import "fmt"

// Op is an editing operation.
type Op int

const (
	OpInsert Op = iota
	OpEnter
	OpBackspace
	OpDelete
	OpIndent
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpEnter:
		return "enter"
	case OpBackspace:
		return "backspace"
	case OpDelete:
		return "delete"
	case OpIndent:
		return "indent"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Command is one editing operation with its parameters. Glyph is used by OpInsert,
// Width by OpIndent.
type Command struct {
	Op    Op
	Glyph string
	Width int
}

// Apply runs cmd against s. Unknown operations leave s unchanged apart from clamping.
func Apply(s State, cmd Command) State {
	switch cmd.Op {
	case OpInsert:
		return Insert(s, cmd.Glyph)
	case OpEnter:
		return Enter(s)
	case OpBackspace:
		return Backspace(s)
	case OpDelete:
		return Delete(s)
	case OpIndent:
		return IndentInsert(s, cmd.Width)
	}
	return Clamp(s)
}
