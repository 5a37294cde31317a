package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode is how a command renders its report.
type Mode int

const (
	// ModePlain is line-oriented text for pipes, files and CI logs.
	ModePlain Mode = iota
	// ModeStyled uses lipgloss tables and colours.
	ModeStyled
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// OutputMode picks the rendering for a report written to w.
//
// The report is plain when GAMEDATA_PLAIN=1, CI or NO_COLOR is set, when
// TERM is "dumb", or when w is not a terminal. Buffers are always plain.
func OutputMode(w io.Writer) Mode {
	if plainRequested() {
		return ModePlain
	}
	f, ok := w.(fdWriter)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}
	return ModeStyled
}

// Styled reports whether a report written to w should be styled.
func Styled(w io.Writer) bool {
	return OutputMode(w) == ModeStyled
}

func plainRequested() bool {
	switch {
	case os.Getenv("GAMEDATA_PLAIN") == "1":
		return true
	case os.Getenv("CI") != "":
		return true
	case os.Getenv("NO_COLOR") != "":
		return true
	case os.Getenv("TERM") == "dumb":
		return true
	}
	return false
}
