//go:build unix

package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIdentityHardlink(t *testing.T) {
	tmpDir := t.TempDir()
	orig := filepath.Join(tmpDir, "orig")
	link := filepath.Join(tmpDir, "link")

	if err := os.WriteFile(orig, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Link(orig, link); err != nil {
		t.Fatal(err)
	}

	idA, err := Identity(orig)
	if err != nil {
		t.Fatalf("Identity(%s) error = %v", orig, err)
	}
	idB, err := Identity(link)
	if err != nil {
		t.Fatalf("Identity(%s) error = %v", link, err)
	}
	if idA != idB {
		t.Errorf("hardlinked paths have different identities: %v vs %v", idA, idB)
	}
}

func TestIdentityDistinctFiles(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a")
	b := filepath.Join(tmpDir, "b")
	os.WriteFile(a, []byte("a"), 0644)
	os.WriteFile(b, []byte("b"), 0644)

	idA, _ := Identity(a)
	idB, _ := Identity(b)
	if idA == idB {
		t.Error("distinct files share an identity")
	}
}

func TestIdentityMissingFile(t *testing.T) {
	_, err := Identity(filepath.Join(t.TempDir(), "nope"))
	if !os.IsNotExist(err) {
		t.Errorf("Identity() error = %v, want os.ErrNotExist", err)
	}
}

func TestIdentityFollowsSymlink(t *testing.T) {
	tmpDir := t.TempDir()
	orig := filepath.Join(tmpDir, "orig")
	sym := filepath.Join(tmpDir, "sym")
	os.WriteFile(orig, []byte("payload"), 0644)
	if err := os.Symlink(orig, sym); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	idA, _ := Identity(orig)
	idB, err := Identity(sym)
	if err != nil {
		t.Fatal(err)
	}
	if idA != idB {
		t.Error("symlink resolves to a different identity than its target")
	}
}
