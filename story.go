package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadStory reads a story document from a YAML file. The era order is
// guaranteed to contain the Gregorian anchor afterwards; a document
// without one gets it appended.
func LoadStory(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read story file: %w", err)
	}
	var story Story
	if err := yaml.Unmarshal(data, &story); err != nil {
		return nil, fmt.Errorf("parse story file: %w", err)
	}
	story.ensureAnchorEra()
	return &story, nil
}

func (s *Story) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode story: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write story file: %w", err)
	}
	return nil
}

func (s *Story) ensureAnchorEra() {
	for _, name := range s.Eras {
		if name == gregorianEra {
			return
		}
	}
	s.Eras = append(s.Eras, gregorianEra)
}

func (s *Story) Event(id string) *Event {
	for i := range s.Events {
		if s.Events[i].ID == id {
			return &s.Events[i]
		}
	}
	return nil
}

func (s *Story) Storyline(id string) *Storyline {
	for i := range s.Storylines {
		if s.Storylines[i].ID == id {
			return &s.Storylines[i]
		}
	}
	return nil
}

func (s *Story) Type(id string) *EventType {
	for i := range s.Types {
		if s.Types[i].ID == id {
			return &s.Types[i]
		}
	}
	return nil
}

// nextConnID picks an unused connection id.
func (s *Story) nextConnID() string {
	taken := make(map[string]bool, len(s.Connections))
	for _, c := range s.Connections {
		taken[c.ID] = true
	}
	for i := 1; ; i++ {
		id := fmt.Sprintf("c%d", i)
		if !taken[id] {
			return id
		}
	}
}

// Command is a data mutation produced by a completed gesture. Applying a
// command returns its inverse, which the undo stack holds on to. The
// layout engine never mutates the story itself; all writes funnel
// through here.
type Command interface {
	Apply(s *Story) Command
}

// MoveEvent reassigns an event's storyline and date, typically from a
// drop-target resolution.
type MoveEvent struct {
	ID          string
	StorylineID string
	Date        string
}

func (c MoveEvent) Apply(s *Story) Command {
	ev := s.Event(c.ID)
	if ev == nil {
		return nil
	}
	inverse := MoveEvent{ID: c.ID, StorylineID: ev.StorylineID, Date: ev.Date}
	ev.StorylineID = c.StorylineID
	ev.Date = c.Date
	return inverse
}

// Connect appends a new connection. An empty id is assigned one.
type Connect struct {
	Conn Connection
}

func (c Connect) Apply(s *Story) Command {
	conn := c.Conn
	if conn.ID == "" {
		conn.ID = s.nextConnID()
	}
	s.Connections = append(s.Connections, conn)
	return Disconnect{ConnID: conn.ID}
}

// Disconnect removes a connection by id.
type Disconnect struct {
	ConnID string
}

func (c Disconnect) Apply(s *Story) Command {
	for i, conn := range s.Connections {
		if conn.ID == c.ConnID {
			s.Connections = append(s.Connections[:i], s.Connections[i+1:]...)
			return Connect{Conn: conn}
		}
	}
	return nil
}
