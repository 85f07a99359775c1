package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoverComponentChain(t *testing.T) {
	conns := []Connection{
		{ID: "c1", From: "e1", To: "e2"},
		{ID: "c2", From: "e2", To: "e3"},
		{ID: "c3", From: "e4", To: "e5"},
	}

	component := HoverComponent("e1", conns)
	assert.Equal(t, map[string]bool{"e1": true, "e2": true, "e3": true}, component)

	// Direction does not matter: hovering the sink finds the same set.
	assert.Equal(t, component, HoverComponent("e3", conns))
}

func TestHoverComponentEmpty(t *testing.T) {
	assert.Nil(t, HoverComponent("", []Connection{{ID: "c1", From: "a", To: "b"}}))
}

func TestHoverComponentIsolated(t *testing.T) {
	conns := []Connection{{ID: "c1", From: "a", To: "b"}}

	component := HoverComponent("lonely", conns)
	assert.Equal(t, map[string]bool{"lonely": true}, component)

	colors := ColorComponent(component, conns)
	assert.Empty(t, colors)
}

func TestColorComponentSharedEndpoint(t *testing.T) {
	conns := []Connection{
		{ID: "c1", From: "hub", To: "a"},
		{ID: "c2", From: "hub", To: "b"},
		{ID: "c3", From: "a", To: "b"},
	}
	component := HoverComponent("hub", conns)
	colors := ColorComponent(component, conns)
	require.Len(t, colors, 3)

	// Edges meeting at an endpoint never share a color within palette
	// range.
	assert.NotEqual(t, colors["c1"], colors["c2"])
	assert.NotEqual(t, colors["c1"], colors["c3"])
	assert.NotEqual(t, colors["c2"], colors["c3"])
}

func TestColorComponentPaletteWrap(t *testing.T) {
	var conns []Connection
	for i := 0; i < paletteSize+1; i++ {
		conns = append(conns, Connection{
			ID:   fmt.Sprintf("c%d", i),
			From: "hub",
			To:   fmt.Sprintf("e%d", i),
		})
	}
	component := HoverComponent("hub", conns)
	colors := ColorComponent(component, conns)
	require.Len(t, colors, paletteSize+1)

	for id, c := range colors {
		assert.GreaterOrEqual(t, c, 0, id)
		assert.Less(t, c, paletteSize, id)
	}
	// The first seven take 0..6; the eighth wraps back to 0.
	assert.Equal(t, 0, colors["c0"])
	assert.Equal(t, paletteSize-1, colors[fmt.Sprintf("c%d", paletteSize-1)])
	assert.Equal(t, 0, colors[fmt.Sprintf("c%d", paletteSize)])
}

func TestColorComponentOutsideEdgesIgnored(t *testing.T) {
	conns := []Connection{
		{ID: "in", From: "a", To: "b"},
		{ID: "out", From: "x", To: "y"},
	}
	colors := ColorComponent(HoverComponent("a", conns), conns)

	assert.Contains(t, colors, "in")
	assert.NotContains(t, colors, "out")
}
