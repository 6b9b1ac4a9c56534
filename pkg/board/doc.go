// Package board translates discrete drag-and-drop intents into calls against a
// board store.
//
// The drag layer (out of process, or the terminal editor) emits [Event]
// values: place a palette exhibit, move an item, resize it, delete it. A
// [Handler] validates each event and applies it to either a free-grid
// [grid.Store] ([GridHandler]) or a quadrant [quadrant.Book]
// ([QuadrantHandler]). Every call returns an [Outcome]; rejected intents leave
// the store untouched and are never reported as errors.
//
// Events are processed strictly in the order given. [Replay] applies a whole
// log and stops only when the context is cancelled.
package board
