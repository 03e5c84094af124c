package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestNoOperands(t *testing.T) {
	code := ExitOK
	root := NewRootCmd(&code)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "no files provided") {
		t.Errorf("Execute() error = %v, want no-files error", err)
	}
	// Help is shown before the error surfaces.
	if !strings.Contains(out.String(), "Usage:") {
		t.Errorf("output = %q, missing usage text", out.String())
	}
}

func TestUnknownFlag(t *testing.T) {
	root := NewRootCmd(nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--frobnicate", "x"})

	if err := root.Execute(); err == nil {
		t.Error("Execute() with unknown flag succeeded")
	}
}

func TestSkipDirectoryRun(t *testing.T) {
	dir := t.TempDir()

	code := ExitOK
	root := NewRootCmd(&code)
	var out, errBuf bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errBuf)
	// Combined short flags parse as one token.
	root.SetArgs([]string{"-vx", dir})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "Skipping directory: "+dir+" (use -r for recursive unpacking)") {
		t.Errorf("stdout = %q, missing directory skip line", out.String())
	}
	if !strings.Contains(errBuf.String(), "recursive=false") {
		t.Errorf("stderr = %q, missing debug trace from -x", errBuf.String())
	}
}

func TestConfigFileEnablesRecursive(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "rc.yaml")
	os.WriteFile(cfgPath, []byte("recursive: true\n"), 0644)

	code := ExitOK
	root := NewRootCmd(&code)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--config", cfgPath, dir})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	// Empty directory walked recursively: nothing found, nothing skipped.
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Number of archives decompressed: 0") {
		t.Errorf("stdout = %q, missing summary", out.String())
	}
	if strings.Contains(out.String(), "Skipping directory") {
		t.Errorf("directory skipped despite recursive config: %q", out.String())
	}
}

func TestBuildConfigFlagOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "rc.yaml")
	os.WriteFile(cfgPath, []byte("options:\n  gunzip: \"-q\"\n  unzip: \"-j\"\n"), 0644)

	flags := &rootFlags{
		ConfigPath: cfgPath,
		GunzipOpts: "-v",
	}
	changed := func(name string) bool { return name == "gunzip-opts" }

	cfg, err := buildConfig(changed, flags)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if cfg.ToolOpts["gunzip"] != "-v" {
		t.Errorf("gunzip opts = %q, want flag value -v", cfg.ToolOpts["gunzip"])
	}
	if cfg.ToolOpts["unzip"] != "-j" {
		t.Errorf("unzip opts = %q, want file value -j", cfg.ToolOpts["unzip"])
	}
}

func TestBuildConfigBadFile(t *testing.T) {
	flags := &rootFlags{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}
	if _, err := buildConfig(func(string) bool { return false }, flags); err == nil {
		t.Error("buildConfig() with missing config file succeeded")
	}
}
