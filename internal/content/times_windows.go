//go:build windows

package content

import (
	"os"
	"syscall"
	"time"
)

// birthTime reports the file creation time where the platform exposes one.
func birthTime(info os.FileInfo) (time.Time, bool) {
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, data.CreationTime.Nanoseconds()), true
}
