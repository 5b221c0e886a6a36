// Package naming builds zero-padded sequential target filenames.
package naming

import (
	"fmt"
	"strings"
)

// SequenceName returns the target filename for sequence number seq:
// the number zero-padded to width digits, followed by the normalized
// extension (e.g. SequenceName(7, 4, ".JPG") == "0007.jpg").
// Numbers wider than width keep all their digits.
func SequenceName(seq, width int, ext string) string {
	return fmt.Sprintf("%0*d%s", width, seq, NormalizeExt(ext))
}

// NormalizeExt lower-cases an extension and ensures a leading dot.
// The empty string is returned unchanged.
func NormalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
