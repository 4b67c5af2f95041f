//go:build darwin

package content

import (
	"os"
	"syscall"
	"time"
)

// birthTime reports the file creation time where the platform exposes one.
func birthTime(info os.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	ts := stat.Birthtimespec
	return time.Unix(ts.Sec, ts.Nsec), true
}
