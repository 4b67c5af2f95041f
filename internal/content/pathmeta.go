package content

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// filenameDatePattern matches stems shaped like YYYY<sep>MM<sep>DD<sep>rest
// where each separator is a single ASCII non-alphanumeric character. The
// three separators may differ from one another.
var filenameDatePattern = regexp.MustCompile(`^(\d{4})[^[:alnum:]](\d{2})[^[:alnum:]](\d{2})[^[:alnum:]](.+)`)

var titleSeparators = strings.NewReplacer("-", " ", "_", " ")

// PathMeta carries the metadata derivable from a source file's name.
type PathMeta struct {
	// Title is the filename-derived title with '-' and '_' turned into spaces.
	Title string
	// Date is the filename-derived calendar date, valid only when HasDate is set.
	Date    time.Time
	HasDate bool
}

// ExtractPathMeta derives a human title and optional date from the filename
// stem. It never fails: a stem without the date convention uses the whole
// stem as title source, and an unparsable date (e.g. month 13) silently
// yields no date while the remainder still becomes the title.
func ExtractPathMeta(path string) PathMeta {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	titleSource := stem
	meta := PathMeta{}

	if m := filenameDatePattern.FindStringSubmatch(stem); m != nil {
		titleSource = m[4]
		if date, err := time.ParseInLocation("2006-01-02", m[1]+"-"+m[2]+"-"+m[3], time.UTC); err == nil {
			meta.Date = date
			meta.HasDate = true
		}
	}

	meta.Title = titleSeparators.Replace(titleSource)
	return meta
}

// Slug returns the stable article identifier for a path: the filename stem,
// no extension, no directory. Uniqueness across a collection is not enforced.
func Slug(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
