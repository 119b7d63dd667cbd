// Package mode implements the modal input state machine.
//
// The editor has two modes. Command mode collects a command line and runs
// it on Enter; the letters i, j, k and l typed alone move the cursor at
// once. Edit mode inserts what is typed into the focused buffer until
// Escape returns to command mode.
//
// A Worker is the active mode. Update interprets one key event against
// the editor state and returns the next worker when the mode changes, or
// nil to stay. The Manager owns the active worker and notifies callbacks
// on every transition.
package mode
