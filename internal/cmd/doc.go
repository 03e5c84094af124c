// Package cmd provides the command-line interface implementation for extract.
//
// This package contains the single root command for the extract CLI tool.
// It uses the Cobra library for flag handling and Fang for styled help and
// error output.
//
// The command surface is intentionally small: boolean flags for recursive,
// verbose, and debug modes, one pass-through option string per external
// decompressor, and an optional YAML config file supplying defaults for all
// of them. Everything after the flags is a file or directory operand.
//
// The package maps run outcomes to exit codes: usage errors exit with
// ExitUsage before any processing, while a completed run exits with the
// number of files not decompressed, as computed by the extract package.
package cmd
