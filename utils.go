package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// yankEvent copies a plain-text summary of an event to the system
// clipboard.
func yankEvent(ev *Event, eras []string) error {
	var b strings.Builder
	b.WriteString(ev.Title)
	if ev.Date != "" {
		fmt.Fprintf(&b, "\n%s", formatDate(ev.Date, eras))
	}
	if ev.Description != "" {
		fmt.Fprintf(&b, "\n%s", ev.Description)
	}
	return clipboard.WriteAll(b.String())
}

// truncateRunes cuts a string to at most max runes, rune-safe.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}

// wrapRunes splits a string into lines of at most width runes.
func wrapRunes(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	runes := []rune(s)
	for len(runes) > 0 {
		n := width
		if n > len(runes) {
			n = len(runes)
		}
		lines = append(lines, string(runes[:n]))
		runes = runes[n:]
	}
	return lines
}

func hexOrDefault(color, fallback string) string {
	if color == "" {
		return fallback
	}
	return color
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
