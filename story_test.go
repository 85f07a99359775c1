package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorySaveLoadRoundTrip(t *testing.T) {
	story := testStory()
	story.Title = "round trip"
	story.Connections = []Connection{{ID: "c1", From: "e1", To: "e3", Label: "因果"}}

	path := filepath.Join(t.TempDir(), "story.yaml")
	require.NoError(t, story.Save(path))

	loaded, err := LoadStory(path)
	require.NoError(t, err)
	assert.Equal(t, story.Title, loaded.Title)
	assert.Equal(t, story.Storylines, loaded.Storylines)
	assert.Equal(t, story.Events, loaded.Events)
	assert.Equal(t, story.Connections, loaded.Connections)
}

func TestLoadStoryAppendsAnchorEra(t *testing.T) {
	doc := []byte("title: bare\neras:\n  - 传说纪元\n")
	path := filepath.Join(t.TempDir(), "bare.yaml")
	require.NoError(t, os.WriteFile(path, doc, 0644))

	story, err := LoadStory(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"传说纪元", gregorianEra}, story.Eras)

	// Already present: nothing appended.
	story.ensureAnchorEra()
	assert.Len(t, story.Eras, 2)
}

func TestLoadStoryMissingFile(t *testing.T) {
	_, err := LoadStory(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMoveEventInverse(t *testing.T) {
	story := testStory()

	cmd := MoveEvent{ID: "e1", StorylineID: "s2", Date: "2020-02-01"}
	inverse := cmd.Apply(story)
	require.NotNil(t, inverse)

	ev := story.Event("e1")
	assert.Equal(t, "s2", ev.StorylineID)
	assert.Equal(t, "2020-02-01", ev.Date)

	inverse.Apply(story)
	ev = story.Event("e1")
	assert.Equal(t, "s1", ev.StorylineID)
	assert.Equal(t, "2020-01-01", ev.Date)
}

func TestMoveEventUnknownID(t *testing.T) {
	story := testStory()
	assert.Nil(t, MoveEvent{ID: "ghost"}.Apply(story))
}

func TestConnectDisconnectInverse(t *testing.T) {
	story := testStory()

	inverse := Connect{Conn: Connection{From: "e1", To: "e3"}}.Apply(story)
	require.Len(t, story.Connections, 1)
	assert.Equal(t, "c1", story.Connections[0].ID)

	redo := inverse.Apply(story)
	assert.Empty(t, story.Connections)

	// The disconnect's inverse restores the identical connection.
	redo.Apply(story)
	require.Len(t, story.Connections, 1)
	assert.Equal(t, Connection{ID: "c1", From: "e1", To: "e3"}, story.Connections[0])
}

func TestNextConnIDSkipsTaken(t *testing.T) {
	story := testStory()
	story.Connections = []Connection{{ID: "c1"}, {ID: "c3"}}
	assert.Equal(t, "c2", story.nextConnID())
}

func TestUndoRedoStacks(t *testing.T) {
	m := initialModel(testStory(), "")

	m.applyCommand(MoveEvent{ID: "e1", StorylineID: "s2", Date: "2020-03-01"})
	require.Len(t, m.undoStack, 1)
	assert.True(t, m.dirty)
	assert.Equal(t, "s2", m.story.Event("e1").StorylineID)

	m.undo()
	assert.Empty(t, m.undoStack)
	require.Len(t, m.redoStack, 1)
	assert.Equal(t, "s1", m.story.Event("e1").StorylineID)

	m.redo()
	assert.Equal(t, "s2", m.story.Event("e1").StorylineID)

	// A fresh command clears the redo stack.
	m.applyCommand(Connect{Conn: Connection{From: "e1", To: "e2"}})
	assert.Empty(t, m.redoStack)
}
