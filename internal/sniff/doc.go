// Package sniff determines a file's content type by inspection.
//
// The only implementation shipped with extract shells out to file(1), the
// standard content-inspection utility, and returns its free-text
// classification. The dispatch logic in internal/extract matches literal
// substrings of that output, so the Sniffer interface exists mainly to let
// tests inject canned classification strings instead of invoking a real
// tool.
package sniff
