package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		switch {
		case errors.Is(err, errAborted):
			// Declined confirmations and reported conflicts have already
			// said what they need to say.
		case errors.Is(err, huh.ErrUserAborted):
			// Ctrl-C inside a prompt.
		default:
			fmt.Fprintln(os.Stderr, styled(errorStyle, "spawn error: ")+err.Error())
		}
		os.Exit(1)
	}
}
