package extract

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Logger writes the per-file action, skip, and error lines on stdout and
// the debug trace on stderr. Colors degrade to plain text automatically
// when the destination is not a terminal.
type Logger struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	debug   bool

	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	red    func(a ...interface{}) string
}

func NewLogger(stdout, stderr io.Writer, verbose, debug bool) *Logger {
	return &Logger{
		stdout:  stdout,
		stderr:  stderr,
		verbose: verbose,
		debug:   debug,
		green:   color.New(color.FgGreen).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		red:     color.New(color.FgRed).SprintFunc(),
	}
}

// Actionf reports a per-file action. Only printed in verbose mode.
func (l *Logger) Actionf(format string, args ...interface{}) {
	if l.verbose {
		fmt.Fprintln(l.stdout, l.green(fmt.Sprintf(format, args...)))
	}
}

// Skipf reports a file or directory that was passed over. Always printed.
func (l *Logger) Skipf(format string, args ...interface{}) {
	fmt.Fprintln(l.stdout, l.yellow(fmt.Sprintf(format, args...)))
}

// Errorf reports a per-file failure. Always printed, on stdout alongside
// the other per-file lines.
func (l *Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(l.stdout, l.red(fmt.Sprintf(format, args...)))
}

// Summaryf prints a closing summary line, uncolored.
func (l *Logger) Summaryf(format string, args ...interface{}) {
	fmt.Fprintf(l.stdout, format+"\n", args...)
}

// Debugf writes a trace line to stderr when debug mode is on.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.debug {
		fmt.Fprintf(l.stderr, "extract: "+format+"\n", args...)
	}
}
