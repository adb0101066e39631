// Package editor transforms a text surface's content and caret in response to editing keys.
//
// Every function is pure: it takes the current State and returns the next one. Positions are
// counted in characters (runes), not bytes.
package editor

import (
	"strings"
	"unicode/utf8"
)

// State is the content of a text surface plus its caret or selection.
// When Start == End the caret is a single insertion point.
type State struct {
	Text  string
	Start int
	End   int
}

// Len returns the text length in characters.
func (s State) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// Collapsed reports whether there is no selection.
func (s State) Collapsed() bool {
	return s.Start == s.End
}

// Valid reports whether 0 <= Start <= End <= Len.
func (s State) Valid() bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= s.Len()
}

// At returns a collapsed caret at pos in text.
func At(text string, pos int) State {
	return Clamp(State{Text: text, Start: pos, End: pos})
}

// Clamp forces s back into the valid range. A start past the end collapses onto the end.
func Clamp(s State) State {
	n := s.Len()
	s.Start = min(max(s.Start, 0), n)
	s.End = min(max(s.End, 0), n)
	if s.Start > s.End {
		s.Start = s.End
	}
	return s
}

// Insert replaces the selection (if any) with glyph and collapses the caret after it.
func Insert(s State, glyph string) State {
	s = Clamp(s)
	n := s.Len()

	if s.Collapsed() && s.End == n {
		text := s.Text + glyph
		caret := utf8.RuneCountInString(text)
		return State{Text: text, Start: caret, End: caret}
	}

	runes := []rune(s.Text)
	before := string(runes[:s.Start])
	after := string(runes[s.End:])
	caret := s.Start + utf8.RuneCountInString(glyph)
	return State{Text: before + glyph + after, Start: caret, End: caret}
}

// Enter inserts a newline.
func Enter(s State) State {
	return Insert(s, "\n")
}

// Backspace removes the character before the caret. With a selection the selection is removed
// together with the character preceding it; a selection starting at 0 only loses the selection.
func Backspace(s State) State {
	s = Clamp(s)
	n := s.Len()

	if s.Collapsed() {
		switch s.Start {
		case 0:
			return s
		case n:
			runes := []rune(s.Text)
			return State{Text: string(runes[:n-1]), Start: n - 1, End: n - 1}
		}
	}

	runes := []rune(s.Text)
	if s.Start == 0 {
		return State{Text: string(runes[s.End:]), Start: 0, End: 0}
	}

	caret := s.Start - 1
	return State{Text: string(runes[:caret]) + string(runes[s.End:]), Start: caret, End: caret}
}

// Delete removes the character after the caret, or the selection if there is one.
func Delete(s State) State {
	s = Clamp(s)
	n := s.Len()

	if s.Collapsed() && s.End == n {
		return s
	}

	runes := []rune(s.Text)
	end := s.End
	if s.Collapsed() {
		end++
	}
	return State{Text: string(runes[:s.Start]) + string(runes[end:]), Start: s.Start, End: s.Start}
}

// IndentInsert inserts width spaces the way Insert inserts a glyph.
func IndentInsert(s State, width int) State {
	if width <= 0 {
		return Clamp(s)
	}
	return Insert(s, strings.Repeat(" ", width))
}

// MoveCaret collapses the caret and moves it by delta characters, staying inside the text.
func MoveCaret(s State, delta int) State {
	s = Clamp(s)
	pos := s.End
	if delta < 0 {
		pos = s.Start
	}
	return At(s.Text, pos+delta)
}
