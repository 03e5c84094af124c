package sniff

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Sniffer classifies a file by content and returns a free-text description,
// e.g. "gzip compressed data, was "notes", from Unix" or "ASCII text".
type Sniffer interface {
	Sniff(path string) (string, error)
}

// FileCommand is a Sniffer backed by the external file(1) utility.
// The -b flag suppresses the leading filename so the output is the bare
// classification string.
type FileCommand struct{}

func (FileCommand) Sniff(path string) (string, error) {
	cmd := exec.Command("file", "-b", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("file %s: %w: %s", path, err, msg)
		}
		return "", fmt.Errorf("file %s: %w", path, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Func adapts a plain function to the Sniffer interface.
type Func func(path string) (string, error)

func (f Func) Sniff(path string) (string, error) { return f(path) }
