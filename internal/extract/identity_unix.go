//go:build unix

package extract

import (
	"os"
	"syscall"
)

// FileIdentity uniquely names a file on its storage device. It is stable
// across renames and across the different paths a file may be reached
// through, and is used only as a dedup lookup key.
type FileIdentity struct {
	dev uint64
	ino uint64
}

// Identity returns the identity of the file at path, following symlinks.
func Identity(path string) (FileIdentity, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileIdentity{}, err
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return FileIdentity{}, &os.PathError{Op: "stat", Path: path, Err: syscall.ENOTSUP}
	}
	return FileIdentity{dev: uint64(st.Dev), ino: uint64(st.Ino)}, nil
}
