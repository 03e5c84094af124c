package cmd

// Exit codes for failures before any file processing starts. A normal run
// exits with the count of files not decompressed instead; the two ranges
// overlap for small counts, but a usage-error exit never prints the
// closing summary lines, which is how callers tell them apart.
const (
	// ExitOK means every reachable, supported, compressed file was
	// decompressed.
	ExitOK = 0

	// ExitUsage covers bad flags, missing operands, and unreadable config
	// files.
	ExitUsage = 2
)
