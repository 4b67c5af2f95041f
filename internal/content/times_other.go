//go:build !darwin && !windows

package content

import (
	"os"
	"time"
)

// birthTime reports the file creation time where the platform exposes one.
// Linux and the remaining platforms do not surface a birth time through
// os.FileInfo, so the created precedence chain falls through to mtime.
func birthTime(os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
