package main

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEras = []string{"传说纪元", gregorianEra, "新历"}

func TestOrderKeyChronology(t *testing.T) {
	dates := []string{
		"传说纪元 3.0100000000", // era before the anchor dominates everything Gregorian
		"BC 500",
		"BC 44",
		"1970-01-02",
		"2020-01-01",
		"2020-01-01 08:00:00",
		"新历 1",
		"not a date",
	}

	keys := make([]float64, len(dates))
	for i, d := range dates {
		keys[i] = orderKey(d, testEras)
	}
	assert.True(t, sort.Float64sAreSorted(keys), "keys out of order: %v", keys)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i], "%q vs %q", dates[i-1], dates[i])
	}
}

func TestOrderKeyFractionPadding(t *testing.T) {
	short := orderKey("传说纪元 3.01", testEras)
	long := orderKey("传说纪元 3.0100000000", testEras)
	assert.Equal(t, short, long)
}

func TestOrderKeyUnreadable(t *testing.T) {
	assert.Equal(t, unsortableKey, orderKey("", testEras))
	assert.Equal(t, unsortableKey, orderKey("someday", testEras))
	// Shape matches the Gregorian pattern but the fields are impossible.
	assert.Equal(t, unsortableKey, orderKey("2020-13-45", testEras))
}

func TestOrderKeyEraPrefixFirstMatchWins(t *testing.T) {
	// "新历" appears before "新历二期" in the order, so a 新历二期 date
	// resolves against 新历 and fails on the leftover text.
	eras := []string{"新历", "新历二期", gregorianEra}
	_, _, ok := parseEraDate("新历二期 5", eras)
	assert.False(t, ok)
	idx, val, ok := parseEraDate("新历 5", eras)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 5.0, val)
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2020-01-01", dayKey("2020-01-01"))
	assert.Equal(t, "2020-01-01", dayKey("2020-01-01 08:00:00"))
	assert.Equal(t, "BC-44", dayKey("BC 44"))
	assert.Equal(t, "BC-44", dayKey("公元前44年"))
	assert.Equal(t, "传说纪元 3", dayKey("传说纪元 3.0100000000"))
	assert.Equal(t, "传说纪元 3", dayKey("传说纪元 3"))
	assert.Equal(t, "someday", dayKey("someday"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "公元前44年", formatDate("BC 44", testEras))
	assert.Equal(t, "2020-01-01", formatDate("2020-01-01", testEras))
	assert.Equal(t, "2020-01-01 08:00:00", formatDate("2020-01-01 08:00:00", testEras))
	// Midnight collapses back to the date-only form.
	assert.Equal(t, "2020-01-01", formatDate("2020-01-01 00:00:00", testEras))
	assert.Equal(t, "someday", formatDate("someday", testEras))
}

func TestFormatEraDate(t *testing.T) {
	raw := composeEraDate("传说纪元", 3, 1, 2, 0, 0, 0)
	require.Equal(t, "传说纪元 3.0102000000", raw)
	assert.Equal(t, "传说纪元 3年1月2日", formatDate(raw, testEras))

	withTime := composeEraDate("传说纪元", 3, 1, 2, 8, 30, 0)
	assert.Equal(t, "传说纪元 3年1月2日 08:30:00", formatDate(withTime, testEras))

	// No sub-year fields at all.
	assert.Equal(t, "传说纪元 3年", formatDate("传说纪元 3", testEras))
}

func TestParseBC(t *testing.T) {
	n, ok := parseBC("BC 44")
	require.True(t, ok)
	assert.Equal(t, 44, n)

	n, ok = parseBC("公元前44年")
	require.True(t, ok)
	assert.Equal(t, 44, n)

	_, ok = parseBC("BC zero")
	assert.False(t, ok)
	_, ok = parseBC("BC 0")
	assert.False(t, ok)
	_, ok = parseBC("2020-01-01")
	assert.False(t, ok)
}

func TestAnchorIndex(t *testing.T) {
	assert.Equal(t, 1, anchorIndex(testEras))
	assert.Equal(t, 0, anchorIndex([]string{"甲", "乙"}))
	assert.Equal(t, 0, anchorIndex(nil))
}
