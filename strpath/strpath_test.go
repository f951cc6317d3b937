// Package strpath tests string/path segment helpers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package strpath

import "testing"

func TestLastSegment(t *testing.T) {
	cases := []struct {
		s    string
		sep  byte
		want string
	}{
		{"a/b/c.go", '/', "c.go"},
		{"c.go", '/', "c.go"},
		{"a/b/", '/', ""},
		{"", '/', ""},
		{"a:b:c", ':', "c"},
		{"/abs", '/', "abs"},
	}
	for _, c := range cases {
		if got := LastSegment(c.s, c.sep); got != c.want {
			t.Errorf("LastSegment(%q, %q) = %q, expected %q", c.s, c.sep, got, c.want)
		}
	}
}

func TestLastPart(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/usr/src/ring.go", "ring.go"},
		{`C:\src\ring.go`, "ring.go"},
		{"ring.go", "ring.go"},
		{"mixed/sep\\file.c", "file.c"},
		{"/trailing/", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := LastPart(c.path); got != c.want {
			t.Errorf("LastPart(%q) = %q, expected %q", c.path, got, c.want)
		}
	}
}
