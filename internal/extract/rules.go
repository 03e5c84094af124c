package extract

import "strings"

// Rule describes one supported compression format: the literal substring
// that identifies it in sniffer output, the external tool that unpacks it,
// and the canonical filename extension that tool requires. An empty Ext
// means the tool is invoked directly on the file with no rename step.
//
// Method doubles as the tool name, the label in user-facing messages, and
// the key for per-format extra options.
type Rule struct {
	Method string
	Marker string
	Ext    string

	// force holds the tool's overwrite flag, always passed so pre-existing
	// output is replaced without prompting.
	force []string
}

// Rules is the ordered dispatch table. Matching stops at the first rule
// whose Marker appears in the sniffer output, so supporting a new format is
// a pure table addition.
var Rules = []Rule{
	{Method: "gunzip", Marker: "gzip compressed", Ext: ".gz", force: []string{"-f"}},
	{Method: "bunzip2", Marker: "bzip2 compressed", Ext: ".bz2", force: []string{"-f"}},
	{Method: "unzip", Marker: "Zip archive", force: []string{"-o"}},
	{Method: "uncompress", Marker: "compress'd", Ext: ".Z", force: []string{"-f"}},
}

// MatchRule returns the first rule whose marker appears in the sniffer
// output. Matching is case-sensitive; the markers are the exact diagnostic
// phrases emitted by file(1).
func MatchRule(sniffOutput string) (Rule, bool) {
	for _, r := range Rules {
		if strings.Contains(sniffOutput, r.Marker) {
			return r, true
		}
	}
	return Rule{}, false
}

// plainTextMarker identifies files that are already decompressed. Checked
// only after every rule has failed to match.
const plainTextMarker = "ASCII text"

// IsPlainText reports whether the sniffer output describes an
// already-decompressed text file.
func IsPlainText(sniffOutput string) bool {
	return strings.Contains(sniffOutput, plainTextMarker)
}
