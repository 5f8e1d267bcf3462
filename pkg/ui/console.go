package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/ui/styles"
)

// ProgramName prefixes every diagnostic
const ProgramName = "toss"

// Console writes user-facing output
type Console struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	color   bool
}

// NewConsole creates a Console on out and errOut. Color is enabled when
// errOut is a color-capable terminal.
func NewConsole(out, errOut io.Writer, verbose bool) *Console {
	color := false
	if f, ok := errOut.(*os.File); ok {
		color = DetectColor(f)
	}
	return &Console{out: out, errOut: errOut, verbose: verbose, color: color}
}

// WithColor forces styling on or off
func (c *Console) WithColor(color bool) *Console {
	c.color = color
	return c
}

// Out returns the standard output writer
func (c *Console) Out() io.Writer {
	return c.out
}

// Err returns the diagnostic writer
func (c *Console) Err() io.Writer {
	return c.errOut
}

// Color reports whether output is styled
func (c *Console) Color() bool {
	return c.color
}

func (c *Console) render(style, s string) string {
	if !c.color {
		return s
	}
	return styles.GetStyle(style).Render(s)
}

// Notice prints verbose progress on stdout
func (c *Console) Notice(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	_, _ = fmt.Fprintln(c.out, c.render(styles.Muted, fmt.Sprintf(format, args...)))
}

// Info prints a message on stdout regardless of verbosity
func (c *Console) Info(format string, args ...interface{}) {
	_, _ = fmt.Fprintln(c.out, c.render(styles.Success, fmt.Sprintf(format, args...)))
}

// Problem prints err as "toss: message" on stderr
func (c *Console) Problem(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(c.errOut, "%s: %s\n", c.render(styles.Program, ProgramName), c.render(styles.Error, errors.UserMessage(err)))
}

// Warn prints a non-fatal diagnostic on stderr
func (c *Console) Warn(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.errOut, "%s: %s\n", c.render(styles.Program, ProgramName), c.render(styles.Warning, fmt.Sprintf(format, args...)))
}

// Listed prints one dry-run entry on stdout
func (c *Console) Listed(path string) {
	_, _ = fmt.Fprintln(c.out, c.render(styles.Path, path))
}
