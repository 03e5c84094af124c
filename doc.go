// Package main provides the extract command-line interface.
//
// extract inspects a set of files, determines each file's true compression
// format by content inspection rather than filename extension, and
// decompresses each file in place. Directory operands can be traversed
// recursively, files reached through multiple paths are processed only once,
// and the exit status reports how many files were left undecompressed.
//
// Decompression is delegated to the standard external tools (gunzip,
// bunzip2, unzip, uncompress). When a tool is missing from PATH, a built-in
// pure-Go decompressor takes over for the formats it can identify.
package main
