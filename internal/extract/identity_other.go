//go:build !unix

package extract

import (
	"os"
	"path/filepath"
)

// FileIdentity uniquely names a file for dedup purposes. Without raw
// device+inode data the absolute path stands in, which still collapses the
// common duplicate-operand cases.
type FileIdentity struct {
	path string
}

// Identity returns the identity of the file at path.
func Identity(path string) (FileIdentity, error) {
	if _, err := os.Stat(path); err != nil {
		return FileIdentity{}, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileIdentity{}, err
	}
	return FileIdentity{path: abs}, nil
}
