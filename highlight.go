package main

// HoverComponent returns the set of event ids reachable from the hovered
// event over the connection list, treating every edge as undirected. An
// empty hover id yields nil, which callers treat as "no highlight".
func HoverComponent(hovered string, conns []Connection) map[string]bool {
	if hovered == "" {
		return nil
	}
	adjacency := make(map[string][]string)
	for _, c := range conns {
		adjacency[c.From] = append(adjacency[c.From], c.To)
		adjacency[c.To] = append(adjacency[c.To], c.From)
	}

	component := map[string]bool{hovered: true}
	queue := []string{hovered}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[id] {
			if !component[next] {
				component[next] = true
				queue = append(queue, next)
			}
		}
	}
	return component
}

// ColorComponent assigns each connection inside the component a palette
// index so that edges sharing an endpoint differ where possible: each
// edge takes the smallest index unused at either endpoint, wrapping
// modulo the palette once indices run out. Greedy and local, not a
// proper edge coloring; good enough to tell neighbors apart on hover.
func ColorComponent(component map[string]bool, conns []Connection) map[string]int {
	colors := make(map[string]int)
	if len(component) == 0 {
		return colors
	}
	used := make(map[string]map[int]bool)
	mark := func(id string, color int) {
		if used[id] == nil {
			used[id] = make(map[int]bool)
		}
		used[id][color] = true
	}

	for _, c := range conns {
		if !component[c.From] || !component[c.To] {
			continue
		}
		color := 0
		for used[c.From][color] || used[c.To][color] {
			color++
		}
		if color >= paletteSize {
			color %= paletteSize
		}
		mark(c.From, color)
		mark(c.To, color)
		colors[c.ID] = color
	}
	return colors
}
