package listing

import (
	"regexp"
	"strconv"
	"strings"
)

// Salary bucket keys, in display order.
const (
	Salary0To1000    = "0-1000"
	Salary1000To2000 = "1000-2000"
	Salary2000To3000 = "2000-3000"
	Salary3000To5000 = "3000-5000"
	Salary5000Plus   = "5000+"
)

var SalaryRanges = []string{Salary0To1000, Salary1000To2000, Salary2000To3000, Salary3000To5000, Salary5000Plus}

var salaryNumber = regexp.MustCompile(`[\d,]+`)

// ParseSalary returns the first number in a free-text salary, commas removed.
// "$1,200 - $1,800" is 1200. Missing or unparseable salaries are 0.
func ParseSalary(salary *string) int {
	if salary == nil {
		return 0
	}
	for _, m := range salaryNumber.FindAllString(*salary, -1) {
		digits := strings.ReplaceAll(m, ",", "")
		if digits == "" {
			// a run of bare commas
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// SalaryBucket maps a value to its bucket. Lower bounds are inclusive.
func SalaryBucket(value int) string {
	switch {
	case value < 1000:
		return Salary0To1000
	case value < 2000:
		return Salary1000To2000
	case value < 3000:
		return Salary2000To3000
	case value < 5000:
		return Salary3000To5000
	default:
		return Salary5000Plus
	}
}

// MatchesSalaryRange reports whether salary falls in bucket. The "all"
// sentinel, an empty bucket and unknown keys match everything.
func MatchesSalaryRange(salary *string, bucket string) bool {
	if isAll(bucket) || !isSalaryRange(bucket) {
		return true
	}
	return SalaryBucket(ParseSalary(salary)) == bucket
}

func isSalaryRange(key string) bool {
	for _, r := range SalaryRanges {
		if r == key {
			return true
		}
	}
	return false
}
