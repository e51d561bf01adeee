// File: pkg/combine/binary.go
package combine

import (
	"bytes"
	"unicode/utf8"
)

// sniffLength is the number of leading bytes searched for NUL bytes.
const sniffLength = 8000

// isBinaryContent reports whether data cannot be treated as text: it has a
// NUL byte near the start or is not valid UTF-8.
func isBinaryContent(data []byte) bool {
	if len(data) == 0 {
		return false // Empty files are considered text
	}

	head := data
	if len(head) > sniffLength {
		head = head[:sniffLength]
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}

	return !utf8.Valid(data)
}
