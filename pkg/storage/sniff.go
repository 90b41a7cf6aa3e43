package storage

import (
	"bytes"
	"strings"
)

// Magic byte signatures for the allowed resume types. DOCX is a ZIP container
// so it shares the PK header.
var resumeMagicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// MatchesExtension reports whether the file content starts with the magic
// bytes expected for its extension. Rejecting mismatches blocks renamed
// binaries from entering the bucket.
func MatchesExtension(ext string, content []byte) bool {
	signatures, ok := resumeMagicBytes[strings.ToLower(ext)]
	if !ok {
		return false
	}
	for _, sig := range signatures {
		if len(content) >= len(sig) && bytes.HasPrefix(content, sig) {
			return true
		}
	}
	return false
}
