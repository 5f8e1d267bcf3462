package types

import (
	"fmt"
	"strings"
)

// InteractiveMode determines when toss prompts before removing
type InteractiveMode string

const (
	// InteractiveNever never prompts
	InteractiveNever InteractiveMode = "never"

	// InteractiveOnce prompts a single time before removing more than the
	// configured number of items, or when removing recursively
	InteractiveOnce InteractiveMode = "once"

	// InteractiveAlways prompts before every removal
	InteractiveAlways InteractiveMode = "always"
)

// InteractiveModes lists the accepted mode names, used for flag completion
var InteractiveModes = []string{
	string(InteractiveNever),
	string(InteractiveOnce),
	string(InteractiveAlways),
}

// ParseInteractiveMode parses a mode name; the empty string means never
func ParseInteractiveMode(s string) (InteractiveMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "never", "no", "none":
		return InteractiveNever, nil
	case "once":
		return InteractiveOnce, nil
	case "always", "yes":
		return InteractiveAlways, nil
	default:
		return InteractiveNever, fmt.Errorf("unknown interactive mode %q (want never, once or always)", s)
	}
}

// Confirmer asks the user a yes/no question. Implementations block until the
// user answers; an error means no answer could be read.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(prompt string) (bool, error)

// Confirm implements Confirmer
func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}
