// Package extract implements the in-place decompression engine.
//
// The engine takes a list of operands (files, directories, or glob patterns
// in recursive mode), classifies each reachable file through a sniff.Sniffer,
// and dispatches matches to one of a fixed table of format rules. Formats
// whose external tool works off a canonical filename extension get a
// rename/restore sequence around the tool invocation; zip archives are
// extracted directly into their containing directory.
//
// Key pieces:
//   - Rules: the ordered format dispatch table (rules.go)
//   - Extractor: the single-pass run loop with identity-based dedup
//   - Report: monotonically incremented counters read once at the end
//   - Identity: platform device+inode value used only as a dedup key
//
// Files reached through multiple operands, glob expansions, or directory
// traversals are decompressed at most once per run. Per-file failures never
// stop processing of later operands.
package extract
