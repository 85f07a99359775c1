package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteCrossDay(t *testing.T) {
	story := testStory()
	story.Connections = []Connection{{ID: "c1", From: "e1", To: "e3"}}
	layout := ComputeLayout(story, nil)
	routes := RouteConnections(story, layout)

	rp, ok := routes["c1"]
	require.True(t, ok)
	assert.False(t, rp.SameDay)

	from := layout.Events["e1"]
	to := layout.Events["e3"]
	// Leaves the earlier event's right edge, enters the later one's left.
	assert.Equal(t, from.Right(), rp.X1)
	assert.Equal(t, to.X, rp.X2)
	// Horizontal control offsets keep the curve flat at both ends.
	assert.Equal(t, rp.Y1, rp.CY1)
	assert.Equal(t, rp.Y2, rp.CY2)
	assert.True(t, strings.HasPrefix(rp.Path, "M "))
	assert.Contains(t, rp.Path, " C ")
}

func TestRouteSameDay(t *testing.T) {
	story := testStory()
	story.Connections = []Connection{{ID: "c1", From: "e1", To: "e2"}}
	layout := ComputeLayout(story, nil)
	routes := RouteConnections(story, layout)

	rp, ok := routes["c1"]
	require.True(t, ok)
	assert.True(t, rp.SameDay)

	higher := layout.Events["e1"]
	lower := layout.Events["e2"]
	// Bottom of the higher event to the top of the lower one.
	assert.Equal(t, higher.Bottom(), rp.Y1)
	assert.Equal(t, lower.Y, rp.Y2)
	// Vertical control offsets.
	assert.Equal(t, rp.X1, rp.CX1)
	assert.Equal(t, rp.X2, rp.CX2)
}

func TestRoutePortsDistinctAndInside(t *testing.T) {
	story := testStory()
	story.Events = append(story.Events,
		Event{ID: "e4", Title: "four", Date: "2020-01-05", StorylineID: "s1", TypeID: "t1"})
	story.Connections = []Connection{
		{ID: "c1", From: "e1", To: "e3"},
		{ID: "c2", From: "e1", To: "e4"},
	}
	layout := ComputeLayout(story, nil)
	routes := RouteConnections(story, layout)
	require.Len(t, routes, 2)

	from := layout.Events["e1"]
	y1 := routes["c1"].Y1
	y2 := routes["c2"].Y1
	// Both ports on the right edge, strictly inside it, in list order.
	assert.Greater(t, y1, from.Y)
	assert.Less(t, y1, from.Bottom())
	assert.Greater(t, y2, from.Y)
	assert.Less(t, y2, from.Bottom())
	assert.Less(t, y1, y2)
}

func TestRouteDuplicateConnections(t *testing.T) {
	story := testStory()
	story.Connections = []Connection{
		{ID: "c1", From: "e1", To: "e3"},
		{ID: "c2", From: "e1", To: "e3"},
	}
	layout := ComputeLayout(story, nil)
	routes := RouteConnections(story, layout)
	require.Len(t, routes, 2)

	// Duplicates land on distinct ports, so the curves stay visible.
	assert.NotEqual(t, routes["c1"].Y1, routes["c2"].Y1)
	assert.NotEqual(t, routes["c1"].Y2, routes["c2"].Y2)
}

func TestRouteSkipsDanglingEndpoints(t *testing.T) {
	story := testStory()
	story.Connections = []Connection{
		{ID: "c1", From: "e1", To: "ghost"},
		{ID: "c2", From: "e1", To: "e3"},
	}
	layout := ComputeLayout(story, nil)
	routes := RouteConnections(story, layout)

	assert.NotContains(t, routes, "c1")
	assert.Contains(t, routes, "c2")
}

func TestPortPointPlacement(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}

	x, y := portPoint(r, sideTop, 1, 1)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 0.0, y)

	x, y = portPoint(r, sideRight, 1, 2)
	assert.Equal(t, 100.0, x)
	assert.InDelta(t, 50.0/3, y, 0.001)

	x, _ = portPoint(r, sideBottom, 2, 2)
	assert.InDelta(t, 200.0/3, x, 0.001)
}

func TestCubicAtEndpoints(t *testing.T) {
	assert.Equal(t, 1.0, cubicAt(0, 1, 2, 3, 4))
	assert.Equal(t, 4.0, cubicAt(1, 1, 2, 3, 4))
}
