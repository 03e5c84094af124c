package extract

// Report accumulates run counters. All fields are incremented monotonically
// during the run and read once at the end for the summary and exit status.
type Report struct {
	// Decompressed counts files successfully unpacked in place.
	Decompressed int
	// Failed counts missing files and external-tool failures.
	Failed int
	// SkippedDirs counts directory operands refused for lack of -r.
	SkippedDirs int
	// SkippedFiles counts unsupported and already-plain-text files.
	SkippedFiles int
}

// NotDecompressed is the total number of reachable files the run did not
// unpack: genuine failures plus every kind of skip.
func (r *Report) NotDecompressed() int {
	return r.Failed + r.SkippedDirs + r.SkippedFiles
}

// ExitCode maps the report to the process exit status: the NotDecompressed
// count, clamped to 255 so a large count cannot alias to 0 after the OS
// truncates the status byte.
func (r *Report) ExitCode() int {
	n := r.NotDecompressed()
	if n > 255 {
		return 255
	}
	return n
}

// Summary writes the two closing lines every run ends with.
func (r *Report) Summary(log *Logger) {
	log.Summaryf("Number of archives decompressed: %d", r.Decompressed)
	log.Summaryf("Number of files NOT decompressed: %d", r.NotDecompressed())
}
