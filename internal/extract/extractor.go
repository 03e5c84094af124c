package extract

import (
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/dendrascience/extract/internal/sniff"
)

// Config is the immutable per-run configuration produced by the CLI layer.
type Config struct {
	Recursive bool
	Verbose   bool
	Debug     bool

	// ToolOpts maps a rule method (gunzip, bunzip2, unzip, uncompress) to
	// extra options passed through to that external tool.
	ToolOpts map[string]string
}

// Extractor performs a single sequential pass over the operands. It owns
// the dedup set and the report; neither is shared across goroutines.
type Extractor struct {
	cfg     Config
	sniffer sniff.Sniffer
	log     *Logger
	runID   string

	seen   map[FileIdentity]struct{}
	report Report

	// lookPath is swappable so tests can force the built-in fallback.
	lookPath func(string) (string, error)
}

// New creates an Extractor writing per-file lines to stdout and the debug
// trace to stderr.
func New(cfg Config, sniffer sniff.Sniffer, stdout, stderr io.Writer) *Extractor {
	if cfg.ToolOpts == nil {
		cfg.ToolOpts = map[string]string{}
	}
	return &Extractor{
		cfg:      cfg,
		sniffer:  sniffer,
		log:      NewLogger(stdout, stderr, cfg.Verbose, cfg.Debug),
		runID:    uuid.NewString(),
		seen:     map[FileIdentity]struct{}{},
		lookPath: exec.LookPath,
	}
}

// Run processes every operand in order, prints the closing summary, and
// returns the accumulated report. Per-file failures are counted and
// reported but never abort the run.
func (x *Extractor) Run(operands []string) *Report {
	x.log.Debugf("run %s: %d operand(s), recursive=%v", x.runID, len(operands), x.cfg.Recursive)
	for _, op := range operands {
		x.processOperand(op)
	}
	x.report.Summary(x.log)
	x.log.Debugf("run %s: done", x.runID)
	return &x.report
}

func (x *Extractor) processOperand(op string) {
	info, err := os.Stat(op)
	switch {
	case err == nil && info.IsDir():
		if x.cfg.Recursive {
			x.walkDir(op)
			return
		}
		x.log.Skipf("Skipping directory: %s (use -r for recursive unpacking)", op)
		x.report.SkippedDirs++
	case x.cfg.Recursive:
		// Historical quirk, kept on purpose: -r with a non-directory
		// operand searches the operand's own directory for names matching
		// its base name, it does not descend anywhere.
		x.matchSiblings(op)
	default:
		x.processFile(op)
	}
}

// walkDir processes every regular file under dir, at any depth.
func (x *Extractor) walkDir(dir string) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			x.log.Errorf("Error: cannot access %s", path)
			x.log.Debugf("walk %s: %v", path, err)
			x.report.Failed++
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		x.processFile(path)
		return nil
	})
	if err != nil {
		x.log.Errorf("Error: cannot access %s", dir)
		x.log.Debugf("walk %s: %v", dir, err)
		x.report.Failed++
	}
}

// matchSiblings treats op's base name as a glob pattern and processes the
// regular files in op's containing directory (only that directory) whose
// names match. A literal filename matches itself.
func (x *Extractor) matchSiblings(op string) {
	dir := filepath.Dir(op)
	pattern := filepath.Base(op)

	entries, err := os.ReadDir(dir)
	if err != nil {
		x.log.Errorf("Error: cannot access %s", op)
		x.log.Debugf("read dir %s: %v", dir, err)
		x.report.Failed++
		return
	}

	matched := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ok, merr := doublestar.Match(pattern, e.Name())
		if merr != nil {
			x.log.Debugf("bad pattern %q: %v", pattern, merr)
			break
		}
		if !ok {
			continue
		}
		matched++
		x.processFile(filepath.Join(dir, e.Name()))
	}

	if matched == 0 {
		x.log.Errorf("Error: cannot access %s", op)
		x.log.Debugf("pattern %q matched nothing in %s", pattern, dir)
		x.report.Failed++
	}
}

// processFile runs one file through dedup, classification, and dispatch.
func (x *Extractor) processFile(path string) {
	id, err := Identity(path)
	if err != nil {
		x.log.Errorf("Error: cannot access %s", path)
		x.log.Debugf("identity %s: %v", path, err)
		x.report.Failed++
		return
	}
	if _, dup := x.seen[id]; dup {
		x.log.Debugf("already processed %s, skipping", path)
		return
	}
	x.seen[id] = struct{}{}

	out, err := x.sniffer.Sniff(path)
	if err != nil {
		x.log.Errorf("Error: cannot determine type of %s", path)
		x.log.Debugf("sniff %s: %v", path, err)
		x.report.Failed++
		return
	}
	x.log.Debugf("sniff %s: %s", path, out)

	rule, ok := MatchRule(out)
	if !ok {
		if IsPlainText(out) {
			x.log.Skipf("Skipping already decompressed file: %s", path)
		} else {
			x.log.Skipf("Skipping: Unsupported compression type: %s", path)
		}
		x.report.SkippedFiles++
		return
	}

	x.log.Actionf("Decompressing (%s): %s", rule.Method, path)
	if err := x.decompress(rule, path); err != nil {
		x.log.Errorf("Error decompressing (%s): %s", rule.Method, path)
		x.log.Debugf("%s %s: %v", rule.Method, path, err)
		x.report.Failed++
		return
	}
	x.report.Decompressed++
}

// decompress routes a matched file to the external tool, or to the built-in
// fallback when the tool is not installed.
func (x *Extractor) decompress(r Rule, path string) error {
	if _, err := x.lookPath(r.Method); err != nil {
		x.log.Debugf("%s not found in PATH, trying built-in decompressor for %s", r.Method, path)
		return x.builtin(r, path)
	}
	if r.Ext == "" {
		return x.runDirect(r, path)
	}
	return x.runWithRename(r, path)
}
