package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// gregorianEra is the distinguished anchor era: the entry in a story's
// era order that marks where real-calendar dates sit relative to the
// custom eras around it.
const gregorianEra = "公元纪年"

// eraSpan separates the key ranges of adjacent eras. It is larger than
// any Gregorian millisecond magnitude (year 9999 is ~2.5e14), so the era
// index always dominates the in-era value.
const eraSpan = 1e15

// unsortableKey is the order key for dates skein cannot read. It sorts
// after every recognized date.
const unsortableKey = math.MaxFloat64

// eraFractionWidth is the number of fraction digits a custom era date
// encodes: month, day, hour, minute, second at two digits each.
const eraFractionWidth = 10

var (
	gregorianRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}( \d{2}:\d{2}:\d{2})?$`)
	eraValueRe  = regexp.MustCompile(`^(\d+)(?:\.(\d+))?$`)
	dayTailRe   = regexp.MustCompile(`^(.*?)\s*(\d+)(?:\.\d+)?$`)
)

// orderKey converts a raw date string into a single sortable scalar.
// Recognized forms, in priority order: BC years, Gregorian dates, custom
// era dates. Anything else gets unsortableKey and sorts last. The
// function is total: no input panics or errors.
func orderKey(date string, eras []string) float64 {
	date = strings.TrimSpace(date)
	if date == "" {
		return unsortableKey
	}
	if n, ok := parseBC(date); ok {
		return -float64(n)
	}
	if gregorianRe.MatchString(date) {
		t, err := parseGregorian(date)
		if err != nil {
			return unsortableKey
		}
		return float64(t.UnixMilli())
	}
	if idx, val, ok := parseEraDate(date, eras); ok {
		return float64(idx-anchorIndex(eras))*eraSpan + val
	}
	return unsortableKey
}

// dayKey collapses a date to its calendar day, the unit events stack in.
// Two events share a column iff their day keys are equal. Unrecognized
// dates key on the raw string so identical ones still group.
func dayKey(date string) string {
	date = strings.TrimSpace(date)
	if n, ok := parseBC(date); ok {
		return fmt.Sprintf("BC-%d", n)
	}
	if gregorianRe.MatchString(date) {
		return date[:10]
	}
	if m := dayTailRe.FindStringSubmatch(date); m != nil && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1]) + " " + m[2]
	}
	return date
}

// formatDate renders a human-readable form of a raw date string. Custom
// era fractions decode back into calendar fields; the time suffix is
// omitted when hour, minute and second are all zero. Unreadable dates
// display verbatim.
func formatDate(date string, eras []string) string {
	date = strings.TrimSpace(date)
	if n, ok := parseBC(date); ok {
		return fmt.Sprintf("公元前%d年", n)
	}
	if gregorianRe.MatchString(date) {
		t, err := parseGregorian(date)
		if err != nil {
			return date
		}
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	}
	if name, year, frac, ok := splitEraDate(date, eras); ok {
		month, day, hour, min, sec := decodeEraFraction(frac)
		var b strings.Builder
		fmt.Fprintf(&b, "%s %d年", name, year)
		if month > 0 {
			fmt.Fprintf(&b, "%d月", month)
		}
		if day > 0 {
			fmt.Fprintf(&b, "%d日", day)
		}
		if hour != 0 || min != 0 || sec != 0 {
			fmt.Fprintf(&b, " %02d:%02d:%02d", hour, min, sec)
		}
		return b.String()
	}
	return date
}

// composeEraDate builds the raw string for a custom era date, encoding
// the sub-year fields as a fixed-width fraction. It is the inverse of
// formatDate's era decoding, modulo zero padding.
func composeEraDate(era string, year, month, day, hour, min, sec int) string {
	return fmt.Sprintf("%s %d.%02d%02d%02d%02d%02d", era, year, month, day, hour, min, sec)
}

// parseBC recognizes "BC <n>" and the localized "公元前<n>年" forms.
func parseBC(date string) (int, bool) {
	var rest string
	switch {
	case strings.HasPrefix(date, "BC"):
		rest = strings.TrimSpace(strings.TrimPrefix(date, "BC"))
	case strings.HasPrefix(date, "公元前"):
		rest = strings.TrimSpace(strings.TrimPrefix(date, "公元前"))
	default:
		return 0, false
	}
	rest = strings.TrimSuffix(rest, "年")
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func parseGregorian(date string) (time.Time, error) {
	layout := "2006-01-02"
	if len(date) > len(layout) {
		layout = "2006-01-02 15:04:05"
	}
	return time.ParseInLocation(layout, date, time.UTC)
}

// parseEraDate resolves a custom era date against the era order. Era
// names match by prefix and the first match in order wins, even when a
// later, longer name would also match; avoiding ambiguous era name sets
// is the story author's obligation.
func parseEraDate(date string, eras []string) (index int, value float64, ok bool) {
	for i, name := range eras {
		if name == "" || !strings.HasPrefix(date, name) {
			continue
		}
		rest := strings.TrimSpace(date[len(name):])
		m := eraValueRe.FindStringSubmatch(rest)
		if m == nil {
			return 0, 0, false
		}
		year, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, 0, false
		}
		frac := padEraFraction(m[2])
		fracVal, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, 0, false
		}
		return i, float64(year) + float64(fracVal)/1e10, true
	}
	return 0, 0, false
}

// splitEraDate is parseEraDate keeping the textual parts for display.
func splitEraDate(date string, eras []string) (name string, year int, frac string, ok bool) {
	for _, n := range eras {
		if n == "" || !strings.HasPrefix(date, n) {
			continue
		}
		rest := strings.TrimSpace(date[len(n):])
		m := eraValueRe.FindStringSubmatch(rest)
		if m == nil {
			return "", 0, "", false
		}
		y, err := strconv.Atoi(m[1])
		if err != nil {
			return "", 0, "", false
		}
		return n, y, padEraFraction(m[2]), true
	}
	return "", 0, "", false
}

// padEraFraction right-pads a fraction to the fixed field width so that
// "01" and "0100000000" carry the same month and compare equal as
// numbers regardless of trailing zeros.
func padEraFraction(frac string) string {
	if len(frac) >= eraFractionWidth {
		return frac[:eraFractionWidth]
	}
	return frac + strings.Repeat("0", eraFractionWidth-len(frac))
}

func decodeEraFraction(frac string) (month, day, hour, min, sec int) {
	frac = padEraFraction(frac)
	field := func(i int) int {
		n, _ := strconv.Atoi(frac[i : i+2])
		return n
	}
	return field(0), field(2), field(4), field(6), field(8)
}

// anchorIndex is the position of the Gregorian anchor in the era order,
// 0 when the order omits it.
func anchorIndex(eras []string) int {
	for i, name := range eras {
		if name == gregorianEra {
			return i
		}
	}
	return 0
}
