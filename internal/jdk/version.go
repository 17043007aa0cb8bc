package jdk

import (
	"strconv"
	"strings"
)

// MajorVersion extracts the major version number from a full Java version string.
// Legacy scheme: "1.8.0_382" -> 8. Modern scheme: "21.0.1" -> 21.
// Malformed legacy strings default to 8 (a "1.x" install is assumed to be Java 8),
// anything else malformed defaults to 0. Callers depend on this exact fallback.
func MajorVersion(versionFull string) uint {
	if rest, ok := strings.CutPrefix(versionFull, "1."); ok {
		first, _, _ := strings.Cut(rest, ".")
		if n, err := strconv.ParseUint(first, 10, 32); err == nil {
			return uint(n)
		}
		return 8
	}

	first, _, _ := strings.Cut(versionFull, ".")
	if n, err := strconv.ParseUint(first, 10, 32); err == nil {
		return uint(n)
	}
	return 0
}

// QuotedSegment returns the first substring of line enclosed in a matching pair
// of double quotes. Best-effort; used to recover a vendor label from tool output.
func QuotedSegment(line string) (string, bool) {
	open := strings.IndexByte(line, '"')
	if open < 0 {
		return "", false
	}
	close := strings.IndexByte(line[open+1:], '"')
	if close < 0 {
		return "", false
	}
	return line[open+1 : open+1+close], true
}
