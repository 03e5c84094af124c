package extract

import (
	"bytes"
	"strings"
	"testing"
)

func TestReportNotDecompressed(t *testing.T) {
	r := Report{Decompressed: 3, Failed: 1, SkippedDirs: 2, SkippedFiles: 4}
	if got := r.NotDecompressed(); got != 7 {
		t.Errorf("NotDecompressed() = %d, want 7", got)
	}
}

func TestReportExitCode(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   int
	}{
		{"clean run", Report{Decompressed: 5}, 0},
		{"one skip", Report{SkippedFiles: 1}, 1},
		{"mixed", Report{Failed: 2, SkippedDirs: 1}, 3},
		{"clamped", Report{Failed: 300}, 255},
		{"exactly 256 would alias to zero", Report{Failed: 256}, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReportSummary(t *testing.T) {
	var out bytes.Buffer
	log := NewLogger(&out, &bytes.Buffer{}, false, false)

	r := Report{Decompressed: 3, SkippedFiles: 1}
	r.Summary(log)

	want := "Number of archives decompressed: 3\nNumber of files NOT decompressed: 1\n"
	if out.String() != want {
		t.Errorf("Summary() output = %q, want %q", out.String(), want)
	}
}

func TestLoggerVerboseGate(t *testing.T) {
	var out bytes.Buffer
	log := NewLogger(&out, &bytes.Buffer{}, false, false)
	log.Actionf("Decompressing (gunzip): %s", "x")
	if out.Len() != 0 {
		t.Errorf("Actionf printed without verbose: %q", out.String())
	}

	log = NewLogger(&out, &bytes.Buffer{}, true, false)
	log.Actionf("Decompressing (gunzip): %s", "x")
	if !strings.Contains(out.String(), "Decompressing (gunzip): x") {
		t.Errorf("Actionf output = %q", out.String())
	}
}

func TestLoggerDebugGate(t *testing.T) {
	var errBuf bytes.Buffer
	log := NewLogger(&bytes.Buffer{}, &errBuf, false, false)
	log.Debugf("trace")
	if errBuf.Len() != 0 {
		t.Errorf("Debugf printed without debug: %q", errBuf.String())
	}

	log = NewLogger(&bytes.Buffer{}, &errBuf, false, true)
	log.Debugf("trace %d", 1)
	if !strings.Contains(errBuf.String(), "trace 1") {
		t.Errorf("Debugf output = %q", errBuf.String())
	}
}
