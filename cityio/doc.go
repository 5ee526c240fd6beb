// Package cityio reads and writes the plain-text landmark formats and loads
// YAML scenario files.
//
// Road planner input is "N M X Y" followed by M pairs "A B"; output is "-1"
// or the pair count followed by one "a b" line per pair. Spanning walk input
// is "M N" followed by N pairs "U V"; output is "-1" or M-1 followed by the
// visit order on one line, each label followed by a single space.
//
// Tokens may be separated by any whitespace, including newlines.
package cityio
