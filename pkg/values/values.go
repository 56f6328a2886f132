package values

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time component. It is deliberately
// distinct from time.Time, which always carries a clock: inference maps
// time.Time to DateTime and Date to Date, and coercion to a date schema
// accepts only Date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Tuple is a fixed-shape sequence. Inference records tuple semantics for it
// (as it does for Go arrays), and coercion to a tuple-kind array schema
// rebuilds the result as a Tuple.
type Tuple []any

// Set is a collection of unique members. Any map with a struct{} element type
// is treated as a set by inference; Set is the generic form and the shape in
// which set-kind coercion results are rebuilt. Members must be comparable.
type Set map[any]struct{}

// SetOf builds a Set from the given members, dropping duplicates.
func SetOf(members ...any) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Members returns the members of the set in unspecified order.
func (s Set) Members() []any {
	out := make([]any, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	return out
}

// Contains reports whether m is a member of the set.
func (s Set) Contains(m any) bool {
	_, ok := s[m]
	return ok
}
