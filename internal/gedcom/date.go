package gedcom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// months holds the GEDCOM month abbreviations indexed by time.Month.
var months = [...]string{"", "JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// Date is a calendar date in the GEDCOM day-month-year form, e.g. "6 JUN 1523".
type Date struct {
	Day   int
	Month time.Month
	Year  int
}

// D is shorthand for building a Date.
func D(day int, month time.Month, year int) Date {
	return Date{Day: day, Month: month, Year: year}
}

// String renders the date without zero padding on the day.
func (d Date) String() string {
	return strconv.Itoa(d.Day) + " " + monthAbbrev(d.Month) + " " + strconv.Itoa(d.Year)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func monthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return "???"
	}
	return months[m]
}

// ParseDate parses "<D> <MON> <YYYY>". It is used when loading the bundled
// tables, which are authored in the same form the records are rendered in.
func ParseDate(s string) (Date, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Date{}, fmt.Errorf("date %q: want \"<day> <MON> <year>\"", s)
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("date %q: bad day", s)
	}
	var month time.Month
	for i := 1; i < len(months); i++ {
		if strings.EqualFold(fields[1], months[i]) {
			month = time.Month(i)
			break
		}
	}
	if month == 0 {
		return Date{}, fmt.Errorf("date %q: bad month %q", s, fields[1])
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil || year < 1 {
		return Date{}, fmt.Errorf("date %q: bad year", s)
	}
	return Date{Day: day, Month: month, Year: year}, nil
}

// DateSpec is either a single point in time or an interval whose bounds may
// each be omitted.
type DateSpec struct {
	Point *Date
	From  *Date
	To    *Date
}

// On returns a point date spec.
func On(d Date) DateSpec { return DateSpec{Point: &d} }

// Between returns a closed interval.
func Between(from, to Date) DateSpec { return DateSpec{From: &from, To: &to} }

// Since returns an interval open at the end.
func Since(from Date) DateSpec { return DateSpec{From: &from} }

// Until returns an interval open at the start.
func Until(to Date) DateSpec { return DateSpec{To: &to} }

// IsInterval reports whether the spec uses FROM/TO.
func (s DateSpec) IsInterval() bool { return s.Point == nil && (s.From != nil || s.To != nil) }

// IsZero reports whether the spec carries no date at all.
func (s DateSpec) IsZero() bool { return s.Point == nil && s.From == nil && s.To == nil }

// String renders the spec as it appears after "2 DATE ". A zero spec renders
// as the empty string.
func (s DateSpec) String() string {
	if s.Point != nil {
		return s.Point.String()
	}
	switch {
	case s.From != nil && s.To != nil:
		return "FROM " + s.From.String() + " TO " + s.To.String()
	case s.From != nil:
		return "FROM " + s.From.String()
	case s.To != nil:
		return "TO " + s.To.String()
	}
	return ""
}

// Clone returns a copy that shares no pointers with s.
func (s DateSpec) Clone() DateSpec {
	var c DateSpec
	if s.Point != nil {
		p := *s.Point
		c.Point = &p
	}
	if s.From != nil {
		f := *s.From
		c.From = &f
	}
	if s.To != nil {
		t := *s.To
		c.To = &t
	}
	return c
}
