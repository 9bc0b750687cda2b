package tabular

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// datePriority lists known date column names checked before falling back to
// name-substring matching. Covers safety-report, trials-registry and
// surveillance feeds.
var datePriority = []string{
	"receiptdate",
	"receivedate",
	"StartDate",
	"CompletionDate",
	"week_ending_date",
	"submission_date",
	"date",
}

// extraDateLayouts supplements cast's built-in layouts with compact and
// registry-style date forms seen in health data feeds.
var extraDateLayouts = []string{
	"20060102",
	"January 2, 2006",
	"January 2006",
	"2006-01",
}

// InferDateColumn picks the column most likely to hold row dates: first by
// the fixed priority list, then any column whose name contains "date" or
// "week" case-insensitively. Returns false when no candidate exists.
func InferDateColumn(d Dataset) (string, bool) {
	for _, cand := range datePriority {
		if d.HasColumn(cand) {
			return cand, true
		}
	}
	for _, col := range d.Columns() {
		lc := strings.ToLower(col)
		if strings.Contains(lc, "date") || strings.Contains(lc, "week") {
			return col, true
		}
	}
	return "", false
}

// ParseDate coerces an arbitrary value to a time. time.Time values pass
// through; strings go through cast's layout table and then the extra
// layouts. Unparseable values report false rather than an error so a single
// malformed date never aborts scoring.
func ParseDate(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, !t.IsZero()
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := cast.ToTimeE(s); err == nil {
		return t, true
	}
	for _, layout := range extraDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
