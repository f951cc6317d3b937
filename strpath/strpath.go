// File: strpath/strpath.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Small string/path helpers, independent of the ring packages. Useful
// for trimming source file locations in diagnostics output.

package strpath

import "strings"

// LastSegment returns the substring after the final occurrence of sep,
// or s unchanged when sep does not occur. A trailing sep yields the
// empty string.
func LastSegment(s string, sep byte) string {
	if i := strings.LastIndexByte(s, sep); i >= 0 {
		return s[i+1:]
	}
	return s
}

// LastPart returns the final component of a file path, recognizing both
// Unix and Windows separators regardless of the host platform.
func LastPart(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
