package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
)

// builtin decompresses path without the external tool, using the archives
// library for format identification and streaming. The user-visible
// contract is the same as the external path: output on the original name,
// original permission bits, compressed artifact removed where the tool
// would have removed it. Formats the library cannot identify (notably
// compress'd data) still fail, keeping the external tool authoritative.
func (x *Extractor) builtin(r Rule, path string) error {
	if r.Ext == "" {
		return x.builtinExtract(path)
	}
	return x.builtinStream(r, path)
}

// builtinStream handles the single-stream formats (.gz, .bz2, .Z). The
// decompressed data is written to a temp file in the same directory and
// renamed onto the target so a failure never clobbers anything.
func (x *Extractor) builtinStream(r Rule, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	mode := info.Mode().Perm()

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx := context.Background()
	format, stream, err := archives.Identify(ctx, path, src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoBuiltin, err)
	}
	decomp, ok := format.(archives.Decompressor)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNoBuiltin, format)
	}

	rc, err := decomp.OpenReader(stream)
	if err != nil {
		return err
	}
	defer rc.Close()

	// The external tool strips the canonical extension; mirror that. A
	// file without the extension decompresses onto its own name.
	target := path
	removeSource := false
	if strings.HasSuffix(path, r.Ext) {
		target = strings.TrimSuffix(path, r.Ext)
		removeSource = true
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".extract-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, rc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		x.log.Debugf("set mode on %s: %v", tmpName, err)
	}

	src.Close()
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return err
	}
	if removeSource {
		os.Remove(path)
	}
	x.log.Debugf("built-in %s: %s -> %s", r.Method, path, target)
	return nil
}

// builtinExtract unpacks an archive into its containing directory, the
// built-in equivalent of `unzip -o FILE -d DIR`. Entries that would escape
// the directory are refused; existing files are overwritten.
func (x *Extractor) builtinExtract(path string) error {
	dir := filepath.Dir(path)

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx := context.Background()
	format, stream, err := archives.Identify(ctx, path, src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoBuiltin, err)
	}
	ex, ok := format.(archives.Extractor)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotExtractable, format)
	}

	return ex.Extract(ctx, stream, func(ctx context.Context, f archives.FileInfo) error {
		name := filepath.Clean(f.NameInArchive)
		if filepath.IsAbs(name) || name == ".." || strings.HasPrefix(name, ".."+string(filepath.Separator)) {
			return fmt.Errorf("%w: %s", ErrUnsafePath, f.NameInArchive)
		}
		target := filepath.Join(dir, name)

		if f.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if f.Mode()&os.ModeSymlink != 0 {
			x.log.Debugf("skipping symlink entry %s", f.NameInArchive)
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		w, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, f.Mode().Perm())
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, rc); err != nil {
			w.Close()
			os.Remove(target)
			return err
		}
		return w.Close()
	})
}
