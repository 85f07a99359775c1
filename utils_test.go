package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "long…", truncateRunes("long text", 5))
	assert.Equal(t, "", truncateRunes("anything", 0))
	assert.Equal(t, "传", truncateRunes("传说纪元", 1))
	// Multibyte runes count as one cell each.
	assert.Equal(t, "传说…", truncateRunes("传说纪元", 3))
}

func TestWrapRunes(t *testing.T) {
	assert.Equal(t, []string{"abcd", "efg"}, wrapRunes("abcdefg", 4))
	assert.Nil(t, wrapRunes("abc", 0))
	assert.Nil(t, wrapRunes("", 4))
	assert.Equal(t, []string{"传说", "纪元"}, wrapRunes("传说纪元", 2))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 3, clampInt(5, 0, 3))
	assert.Equal(t, 0, clampInt(-1, 0, 3))
	assert.Equal(t, 2, clampInt(2, 0, 3))
}

func TestHexOrDefault(t *testing.T) {
	assert.Equal(t, "#abc", hexOrDefault("#abc", "#def"))
	assert.Equal(t, "#def", hexOrDefault("", "#def"))
}
