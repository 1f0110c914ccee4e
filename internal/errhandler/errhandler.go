package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, terminal.InterruptErr) ||
		strings.Contains(err.Error(), "interrupt")
}

// Message turns err into the line shown to the user.
func Message(err error) string {
	return capitalize(err.Error())
}

// HandleError prints err and exits. A cancelled prompt exits 0.
func HandleError(err error) {
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Message(err))
	os.Exit(1)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
