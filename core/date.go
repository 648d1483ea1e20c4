package core

import (
	"fmt"
	"time"
)

// Date is a calendar date with optional precision: the year is always
// present, while the month and day may be unset. A zero Month or Day means
// "not set". A day can only be set when the month is too.
type Date struct {
	Year  int
	Month int // 0 = unset, otherwise 1..12
	Day   int // 0 = unset, otherwise 1..31
}

// NewDate builds a date from its parts, validating ranges. Pass 0 for an
// unset month or day.
func NewDate(year, month, day int) (Date, error) {
	if month < 0 || month > 12 {
		return Date{}, fmt.Errorf("month %d out of range", month)
	}
	if day < 0 || day > 31 {
		return Date{}, fmt.Errorf("day %d out of range", day)
	}
	if day != 0 && month == 0 {
		return Date{}, fmt.Errorf("day set without month")
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// YearOnly builds a date with just a year set.
func YearOnly(year int) Date {
	return Date{Year: year}
}

// Today returns the current local date at full day precision.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// HasMonth reports whether the month is set.
func (d Date) HasMonth() bool { return d.Month != 0 }

// HasDay reports whether the day is set.
func (d Date) HasDay() bool { return d.Day != 0 }

// Compare orders dates totally, treating an unset month or day as January
// or the 1st. Returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	dy, oy := d.Year, other.Year
	if dy != oy {
		if dy < oy {
			return -1
		}
		return 1
	}
	dm, om := defaultOne(d.Month), defaultOne(other.Month)
	if dm != om {
		if dm < om {
			return -1
		}
		return 1
	}
	dd, od := defaultOne(d.Day), defaultOne(other.Day)
	if dd != od {
		if dd < od {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether d orders strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d orders strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// LongFormat renders the date in a long human-readable form, showing only
// the fields that are set, e.g. "2 January 1990", "January 1990", "1990".
func (d Date) LongFormat() string {
	switch {
	case d.HasDay():
		return fmt.Sprintf("%d %s %d", d.Day, time.Month(d.Month), d.Year)
	case d.HasMonth():
		return fmt.Sprintf("%s %d", time.Month(d.Month), d.Year)
	default:
		return fmt.Sprintf("%d", d.Year)
	}
}

// ShortFormat renders the date in a compact numeric form, showing only the
// fields that are set, e.g. "2/1/1990", "1/1990", "1990".
func (d Date) ShortFormat() string {
	switch {
	case d.HasDay():
		return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
	case d.HasMonth():
		return fmt.Sprintf("%d/%d", d.Month, d.Year)
	default:
		return fmt.Sprintf("%d", d.Year)
	}
}

func defaultOne(v int) int {
	if v == 0 {
		return 1
	}
	return v
}
