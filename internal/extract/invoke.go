package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// toolArgs builds the argument vector for a rule's external tool: the force
// flag, then any configured extra options, then the trailing operands.
func (x *Extractor) toolArgs(r Rule, trailing ...string) []string {
	args := append([]string{}, r.force...)
	if extra := strings.TrimSpace(x.cfg.ToolOpts[r.Method]); extra != "" {
		args = append(args, strings.Fields(extra)...)
	}
	return append(args, trailing...)
}

// runWithRename handles the extension-convention formats (.gz, .bz2, .Z).
// If the file does not already carry the canonical extension it is renamed
// to gain one, the tool is invoked, and on success the tool's own behavior
// strips the extension again so the output lands on the original name.
// The original permission bits are restored on the result. On failure a
// renamed artifact is removed so no stray .ext file is left behind; a
// caller-supplied name is never removed.
func (x *Extractor) runWithRename(r Rule, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	mode := info.Mode().Perm()

	work := path
	renamed := false
	if !strings.HasSuffix(path, r.Ext) {
		work = path + r.Ext
		if err := os.Rename(path, work); err != nil {
			return fmt.Errorf("rename for %s: %w", r.Method, err)
		}
		renamed = true
		x.log.Debugf("renamed %s to %s for %s", path, work, r.Method)
	}

	if err := x.runTool(r.Method, x.toolArgs(r, work)); err != nil {
		if renamed {
			os.Remove(work)
		}
		return err
	}

	target := strings.TrimSuffix(work, r.Ext)
	if err := os.Chmod(target, mode); err != nil {
		x.log.Debugf("restore mode on %s: %v", target, err)
	}
	return nil
}

// runDirect handles formats whose tool needs no extension convention.
// For zip this extracts into the file's containing directory, overwriting
// existing entries.
func (x *Extractor) runDirect(r Rule, path string) error {
	dir := filepath.Dir(path)
	return x.runTool(r.Method, x.toolArgs(r, path, "-d", dir))
}

// runTool executes an external decompressor and waits for it. There is no
// timeout: the tool runs to completion.
func (x *Extractor) runTool(tool string, args []string) error {
	x.log.Debugf("exec: %s %s", tool, strings.Join(args, " "))
	cmd := exec.Command(tool, args...)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", tool, err, msg)
		}
		return fmt.Errorf("%s: %w", tool, err)
	}
	return nil
}
