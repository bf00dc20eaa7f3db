package bapps

import (
	"os"
	"os/exec"

	"github.com/c-bata/go-prompt"
)

// restoringParser wraps prompt.PosixParser to leave the terminal in cooked
// mode on TearDown. go-prompt tears the parser down before running a line,
// so promptui questions asked by the completer read a sane terminal.
type restoringParser struct {
	*prompt.PosixParser
}

// TearDown should be called after stopping input
func (t *restoringParser) TearDown() error {
	err := t.PosixParser.TearDown()
	RestoreTerminal()
	return err
}

func newRestoringParser() *restoringParser {
	return &restoringParser{
		PosixParser: prompt.NewStandardInputParser(),
	}
}

// RestoreTerminal turns raw mode off and echo back on.
func RestoreTerminal() {
	rawModeOff := exec.Command("/bin/stty", "-raw", "echo")
	rawModeOff.Stdin = os.Stdin
	_ = rawModeOff.Run()
}
