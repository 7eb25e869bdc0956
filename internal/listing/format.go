package listing

import (
	"fmt"
	"strings"
	"time"
)

const dayLength = 24 * time.Hour

// TimeAgo renders how long ago created was, in whole days. A created time
// in the future counts as today.
func TimeAgo(created, now time.Time) string {
	diff := now.Sub(created)
	if diff < 0 {
		diff = 0
	}
	days := int(diff / dayLength)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// DateLayout is the long en-US date, e.g. "March 5, 2025".
const DateLayout = "January 2, 2006"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseListItems splits multi-line text into its non-blank lines.
func ParseListItems(text *string) []string {
	if text == nil {
		return []string{}
	}
	lines := strings.Split(*text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// SplitSkills splits a comma separated list, trimming items and dropping blanks.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
