package util

import "strings"

const fallbackFileName = "upload"

// CleanFileName strips directory components from an uploaded file name.
// Either separator is treated as a path separator. Names that reduce to
// nothing or to a traversal segment become "upload".
func CleanFileName(name string) string {
	s := strings.TrimSpace(name)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == ".." {
		return fallbackFileName
	}
	return s
}
