package changes

// UndoLog is the host's undo/redo log.
//
// PendingUndo returns the action string the next Undo will evaluate and
// PendingRedo the one the next Redo will evaluate. Both report false when
// there is nothing to undo or redo.
type UndoLog interface {
	PendingUndo() (string, bool)
	PendingRedo() (string, bool)
	Undo()
	Redo()
}

// History invalidates the texture cache for the edits an undo or redo
// replays, then delegates to the wrapped log.
type History struct {
	log      UndoLog
	detector *Detector
}

// NewHistory wraps log.
func NewHistory(log UndoLog, d *Detector) *History {
	return &History{log: log, detector: d}
}

// Undo notifies the pending undo action and undoes it.
func (h *History) Undo() {
	if action, ok := h.log.PendingUndo(); ok {
		h.detector.NotifyAction(action)
	}
	h.log.Undo()
}

// Redo notifies the pending redo action and redoes it.
func (h *History) Redo() {
	if action, ok := h.log.PendingRedo(); ok {
		h.detector.NotifyAction(action)
	}
	h.log.Redo()
}
