// Package confirmations provides the console implementation of yes/no prompts.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on out and reads answers from in
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	program string
}

// NewPrompter creates a Prompter. program prefixes every question.
func NewPrompter(in io.Reader, out io.Writer, program string) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, program: program}
}

// Confirm prints prompt and accepts y or yes, case-insensitive. Anything
// else is a refusal; a read failure is returned as error.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	if p.program != "" {
		_, _ = fmt.Fprintf(p.out, "%s: %s ", p.program, prompt)
	} else {
		_, _ = fmt.Fprintf(p.out, "%s ", prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		_, _ = fmt.Fprintln(p.out)
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response := strings.ToLower(strings.TrimSpace(line))
	return response == "y" || response == "yes", nil
}
