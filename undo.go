package main

// Action pairs an applied command with its inverse.
type Action struct {
	Do   Command
	Undo Command
}

// applyCommand runs a command against the story and records it for undo.
func (m *model) applyCommand(cmd Command) {
	inverse := cmd.Apply(m.story)
	if inverse == nil {
		return
	}
	m.undoStack = append(m.undoStack, Action{Do: cmd, Undo: inverse})
	m.redoStack = m.redoStack[:0]
	m.dirty = true
}

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}
	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]
	action.Undo.Apply(m.story)
	m.redoStack = append(m.redoStack, action)
	m.dirty = true
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}
	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]
	action.Do.Apply(m.story)
	m.undoStack = append(m.undoStack, action)
	m.dirty = true
}
