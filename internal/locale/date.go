package locale

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"golang.org/x/text/language"
)

// Limits of the text considered for one date.
const (
	maxDateBytes = 48
	maxDateEnds  = 8
)

var (
	// yearFirst is an ISO-like numeric date such as 2018-07-05
	yearFirst = regexp.MustCompile(`^(\d{4})[./-](\d{1,2})[./-](\d{1,2})$`)
	// yearLast is a numeric date such as 05.07.2018 or 7/5/18, whose day/month
	// order depends on the locale
	yearLast = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{2}|\d{4})$`)
)

// regions that write numeric dates month first
var monthFirstRegions = map[string]bool{
	"US": true, "PH": true, "FM": true, "MH": true, "PW": true,
	"AS": true, "GU": true, "MP": true, "PR": true, "UM": true, "VI": true,
}

// shapes of named dates: day, month, year and an optional year word
var namedShapes = map[string]bool{
	"dmy": true, "mdy": true, "dmyw": true, "mdyw": true,
}

// DateFormat recognizes dates such as "July 5, 2018", "5 Jul 2018",
// "15 окт. 2026 г.", "2018-07-05" or "05.07.2018".
//
// Named dates must consist of a day, a month name of the locale (or English)
// and a four-digit year; any other word rejects the candidate. Numeric dates
// need all three fields. The fields are then normalized and validated by
// dateparse.
type DateFormat struct {
	loc        *time.Location
	monthFirst bool
	months     map[string]time.Month
	yearWords  map[string]bool
}

// NewDateFormat creates a date recognizer for tag; dates are interpreted in UTC.
func NewDateFormat(tag language.Tag) *DateFormat {
	region, _ := tag.Region()
	base, _ := tag.Base()
	f := &DateFormat{
		loc:        time.UTC,
		monthFirst: monthFirstRegions[region.String()],
		months:     monthsFor(base.String()),
		yearWords:  yearWordsFor(base.String()),
	}
	slog.Debug("Date format initialized", "locale", tag.String(), "region", region.String(),
		"monthFirst", f.monthFirst, "monthNames", len(f.months))
	return f
}

// Parse recognizes a date starting at pos. Candidates end on word boundaries
// and are tried longest first, so "July 5, 2018" wins over "July 5".
func (f *DateFormat) Parse(text string, pos int) (int, time.Time, bool) {
	if pos < 0 || pos >= len(text) {
		return pos, time.Time{}, false
	}
	if r, _ := utf8.DecodeRuneInString(text[pos:]); !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return pos, time.Time{}, false
	}

	ends := candidateEnds(text, pos)
	for i := len(ends) - 1; i >= 0; i-- {
		candidate := text[pos:ends[i]]
		t, err := f.parse(candidate)
		if err != nil {
			continue
		}
		slog.Debug("Date recognized", "candidate", candidate, "date", t)
		return ends[i], t, true
	}

	return pos, time.Time{}, false
}

func (f *DateFormat) parse(candidate string) (time.Time, error) {
	fields := dateFields(candidate)
	for _, field := range fields {
		if r, _ := utf8.DecodeRuneInString(field); unicode.IsLetter(r) {
			return f.parseNamed(candidate, fields)
		}
	}
	return f.parseNumeric(candidate)
}

// parseNamed accepts a day, a month name and a year in either day-month or
// month-day order, optionally followed by a year word.
func (f *DateFormat) parseNamed(candidate string, fields []string) (time.Time, error) {
	var (
		shape     strings.Builder
		day, year int
		month     time.Month
	)
	for _, field := range fields {
		if r, _ := utf8.DecodeRuneInString(field); unicode.IsLetter(r) {
			word := strings.ToLower(field)
			if m, ok := f.months[word]; ok {
				month = m
				shape.WriteByte('m')
				continue
			}
			if f.yearWords[word] && strings.HasSuffix(shape.String(), "y") {
				shape.WriteByte('w')
				continue
			}
			return time.Time{}, fmt.Errorf("%q is not part of a date", field)
		}

		n, err := strconv.Atoi(field)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date field %q", field)
		}
		switch len(field) {
		case 1, 2:
			day = n
			shape.WriteByte('d')
		case 4:
			year = n
			shape.WriteByte('y')
		default:
			return time.Time{}, fmt.Errorf("invalid date field %q", field)
		}
	}

	if !namedShapes[shape.String()] {
		return time.Time{}, fmt.Errorf("not a date: %q", candidate)
	}
	return f.resolve(fmt.Sprintf("%s %d, %04d", month, day, year), year, month, day)
}

func (f *DateFormat) parseNumeric(candidate string) (time.Time, error) {
	if m := yearFirst.FindStringSubmatch(candidate); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return f.resolveNumeric(year, month, day)
	}

	m := yearLast.FindStringSubmatch(candidate)
	if m == nil {
		return time.Time{}, fmt.Errorf("not a date: %q", candidate)
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	day, month := first, second
	if f.monthFirst {
		day, month = second, first
	}
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		year = expandYear(year, time.Now().Year())
	}
	return f.resolveNumeric(year, month, day)
}

func (f *DateFormat) resolveNumeric(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month %d", month)
	}
	return f.resolve(fmt.Sprintf("%04d-%02d-%02d", year, month, day), year, time.Month(month), day)
}

// resolve parses a normalized date and checks that it names exactly the
// requested day; dates in year 0 are rejected.
func (f *DateFormat) resolve(normalized string, year int, month time.Month, day int) (time.Time, error) {
	if year < 1 || day < 1 {
		return time.Time{}, fmt.Errorf("invalid date %q", normalized)
	}
	t, err := dateparse.ParseIn(normalized, f.loc)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q", normalized)
	}
	return t, nil
}

// expandYear maps a two-digit year into the hundred-year window ending twenty
// years after now.
func expandYear(yy, now int) int {
	year := now - now%100 + yy
	switch {
	case year > now+20:
		year -= 100
	case year <= now-80:
		year += 100
	}
	return year
}

// dateFields splits a candidate into runs of letters and runs of digits.
func dateFields(candidate string) []string {
	var fields []string
	start, kind := -1, 0
	for i, r := range candidate {
		k := 0
		switch {
		case unicode.IsLetter(r):
			k = 1
		case unicode.IsDigit(r):
			k = 2
		}
		if k != kind && start >= 0 {
			fields = append(fields, candidate[start:i])
			start = -1
		}
		if k != 0 && start < 0 {
			start = i
		}
		kind = k
	}
	if start >= 0 {
		fields = append(fields, candidate[start:])
	}
	return fields
}

// candidateEnds returns the offsets after pos where a run of letters or digits
// ends, stopping at line breaks, at characters that never occur in dates and
// at the length limits.
func candidateEnds(text string, pos int) []int {
	var ends []int
	inWord := false

	for i := pos; i < len(text) && i-pos < maxDateBytes; {
		r, size := utf8.DecodeRuneInString(text[i:])
		word := unicode.IsLetter(r) || unicode.IsDigit(r)

		if inWord && !word {
			ends = append(ends, i)
			if len(ends) == maxDateEnds {
				return ends
			}
		}
		if !word && !dateSeparator(r) {
			return ends
		}

		inWord = word
		i += size
		if inWord && (i >= len(text) || i-pos >= maxDateBytes) {
			ends = append(ends, i)
		}
	}

	return ends
}

func dateSeparator(r rune) bool {
	switch r {
	case ' ', ',', '.', '/', '-', '\u00a0':
		return true
	}
	return false
}
